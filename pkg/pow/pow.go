// Package pow implements a single-round proof-of-work puzzle.
//
// The server issues a challenge "secret:000" where the run of '0' characters is the
// required difficulty. The client has to find a nonce such that
// Digest(secret + nonce) starts with that many zeros in the representation the selected
// Algorithm compares against. Finding the nonce takes brute force; verifying it is a
// single hash.
package pow

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	// Alphabet is the set of characters secrets are drawn from.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Separator joins the secret and the zero run on the wire.
	Separator = ':'
)

var (
	ErrInvalidChallenge = errors.New("invalid challenge format")
	ErrNegativeLength   = errors.New("negative length or zeros")
)

// Algorithm is the hash capability the puzzle is built on.
//
// HasLeadingZeroRun reports whether digest starts with at least zeros '0' characters in
// the representation the algorithm documents. It must be pure and must not panic for any
// digest or zeros value.
type Algorithm interface {
	Name() string
	Digest(data []byte) []byte
	HasLeadingZeroRun(digest []byte, zeros int) bool
}

// Source yields random indexes in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is backed by the runtime's global generator which is safe for concurrent use.
var DefaultSource Source = globalSource{}

// Generate returns a fresh secret of length characters and the challenge text sent to the client.
func Generate(src Source, length, zeros int) (secret, challenge string, err error) {
	if length < 0 || zeros < 0 {
		return "", "", fmt.Errorf("%w: length=%d zeros=%d", ErrNegativeLength, length, zeros)
	}
	if src == nil {
		src = DefaultSource
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[src.IntN(len(Alphabet))]
	}
	secret = string(b)

	return secret, ChallengeText(secret, zeros), nil
}

// ChallengeText formats the wire representation of a challenge.
func ChallengeText(secret string, zeros int) string {
	var sb strings.Builder
	sb.Grow(len(secret) + 1 + zeros)
	sb.WriteString(secret)
	sb.WriteByte(Separator)
	sb.WriteString(strings.Repeat("0", zeros))
	return sb.String()
}

// ParseChallenge splits challenge text back into the secret and the required zero count.
// The secret is everything before the last separator.
func ParseChallenge(text string) (secret string, zeros int, err error) {
	i := strings.LastIndexByte(text, Separator)
	if i < 0 {
		return "", 0, fmt.Errorf("%w: missing separator", ErrInvalidChallenge)
	}
	run := text[i+1:]
	for j := 0; j < len(run); j++ {
		if run[j] != '0' {
			return "", 0, fmt.Errorf("%w: unexpected %q in zero run", ErrInvalidChallenge, run[j])
		}
	}
	return text[:i], len(run), nil
}

// Verify reports whether nonce solves the puzzle for secret at the given difficulty.
// The digest input is secret followed by nonce with no delimiter.
func Verify(alg Algorithm, secret string, nonce []byte, zeros int) bool {
	if zeros <= 0 {
		return true
	}
	data := make([]byte, 0, len(secret)+len(nonce))
	data = append(data, secret...)
	data = append(data, nonce...)
	return alg.HasLeadingZeroRun(alg.Digest(data), zeros)
}

// Solve searches decimal nonces starting at zero until one verifies or ctx is done.
// progress, when non-nil, is called every 1<<16 attempts with the attempt count.
func Solve(ctx context.Context, alg Algorithm, secret string, zeros int, progress func(attempts uint64)) (string, error) {
	buf := make([]byte, 0, 20)
	for n := uint64(0); ; n++ {
		if n&0xffff == 0 && n > 0 {
			if err := ctx.Err(); err != nil {
				return "", fmt.Errorf("solve aborted after %d attempts: %w", n, err)
			}
			if progress != nil {
				progress(n)
			}
		}
		buf = strconv.AppendUint(buf[:0], n, 10)
		if Verify(alg, secret, buf, zeros) {
			return string(buf), nil
		}
	}
}

// HexZeroRun reports whether the lowercase hex rendering of digest starts with zeros '0'
// characters. Each byte contributes two hex characters.
func HexZeroRun(digest []byte, zeros int) bool {
	if zeros <= 0 {
		return true
	}
	if zeros > 2*len(digest) {
		return false
	}
	full := zeros / 2
	for i := 0; i < full; i++ {
		if digest[i] != 0 {
			return false
		}
	}
	if zeros%2 == 1 && digest[full]>>4 != 0 {
		return false
	}
	return true
}
