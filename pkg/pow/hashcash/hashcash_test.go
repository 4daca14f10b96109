package hashcash

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powgate/pkg/pow"
)

func TestSHA256ASCIIKnownVectors(t *testing.T) {
	alg := NewSHA256ASCII()

	tests := []struct {
		secret string
		nonce  string
		zeros  int
		want   bool
	}{
		{"random_string", "123", 4, false},
		{"CFc2hAsAk6", "6032407", 3, true},
		{"FWDvotNNpm", "634", 1, true},
		{"FWDvotNNpm", "634", 2, false},
		{"random_string", "123", 0, true},
	}

	for _, tt := range tests {
		got := pow.Verify(alg, tt.secret, []byte(tt.nonce), tt.zeros)
		assert.Equal(t, tt.want, got, "secret=%q nonce=%q zeros=%d", tt.secret, tt.nonce, tt.zeros)
	}
}

func TestSHA256HexKnownVectors(t *testing.T) {
	alg := NewSHA256()

	// sha256("FWDvotNNpm66439") = 00008de3...
	assert.True(t, pow.Verify(alg, "FWDvotNNpm", []byte("66439"), 4))
	assert.False(t, pow.Verify(alg, "FWDvotNNpm", []byte("66439"), 5))

	// the ascii vectors do not carry over to the hex representation
	assert.False(t, pow.Verify(alg, "CFc2hAsAk6", []byte("6032407"), 3))
}

func TestDigestFamiliesKnownVectors(t *testing.T) {
	tests := []struct {
		alg    pow.Algorithm
		nonce  string
		digest string
	}{
		{NewSHA256(), "3999", "0008029c887446708fdc29c31e2686c51710fe2be83d81fe67621413a4d9309f"},
		{NewSHA3(), "1648", "000bda46604e120510907b0c995eb0e6972185da7da25b222e55cf06ecae8238"},
		{NewBlake2b(), "4180", "0000cb4d35d4193d52d5e5dd0b3a2e81a9531734c6ba8ade1f93b58cb6a848e8"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.Name(), func(t *testing.T) {
			got := tt.alg.Digest([]byte("powgate" + tt.nonce))
			assert.Equal(t, tt.digest, hex.EncodeToString(got))

			nonce, err := pow.Solve(context.Background(), tt.alg, "powgate", 3, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.nonce, nonce, "first decimal nonce with three hex zeros")
		})
	}
}

func TestBlake3RoundTrip(t *testing.T) {
	alg := NewBlake3()
	require.Len(t, alg.Digest(nil), 32)

	nonce, err := pow.Solve(context.Background(), alg, "powgate", 2, nil)
	require.NoError(t, err)
	assert.True(t, pow.Verify(alg, "powgate", []byte(nonce), 2))
}

func TestEmptyInputIsTotal(t *testing.T) {
	for _, name := range Names() {
		alg, err := ByName(name)
		require.NoError(t, err)

		d1 := alg.Digest(nil)
		d2 := alg.Digest([]byte{})
		assert.Equal(t, d1, d2, name)
		assert.Len(t, d1, 32, name)
	}

	empty := NewSHA256().Digest(nil)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(empty))
}

func TestSHA256ASCIIZeroRunBounds(t *testing.T) {
	alg := NewSHA256ASCII()
	digest := []byte("000abc")

	assert.True(t, alg.HasLeadingZeroRun(digest, 0))
	assert.True(t, alg.HasLeadingZeroRun(digest, 3))
	assert.False(t, alg.HasLeadingZeroRun(digest, 4))
	assert.False(t, alg.HasLeadingZeroRun(digest, 7))
	assert.False(t, alg.HasLeadingZeroRun([]byte{0, 0, 0}, 1), "binary zero is not the '0' character")
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		alg, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, alg.Name())
	}

	_, err := ByName("md5")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}
