package hashcash

/*
	Hashcash-style digests for the challenge-response puzzle.

	The client is given a random secret and has to find a nonce such that
	Digest(secret + nonce) begins with a run of zero characters. The longer the run,
	the more nonces have to be tried on average: every extra hex '0' multiplies the
	expected work by 16. Verification is a single hash.

	All algorithms here except SHA256ASCII compare against the lowercase hex rendering of
	the digest. SHA256ASCII compares the raw digest bytes with ASCII '0' (0x30) bytes; it
	exists for clients built against servers that check the digest that way, and every
	extra zero costs a factor of 256 instead of 16.
*/

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"powgate/pkg/pow"
)

const (
	NameSHA256      = "sha256"
	NameSHA256ASCII = "sha256-ascii"
	NameSHA3        = "sha3-256"
	NameBlake2b     = "blake2b-256"
	NameBlake3      = "blake3"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// HashCash is a fixed-size digest checked for leading hex zeros.
type HashCash struct {
	name string
	sum  func([]byte) []byte
}

func NewSHA256() *HashCash {
	return &HashCash{name: NameSHA256, sum: func(b []byte) []byte {
		h := sha256.Sum256(b)
		return h[:]
	}}
}

func NewSHA3() *HashCash {
	return &HashCash{name: NameSHA3, sum: func(b []byte) []byte {
		h := sha3.Sum256(b)
		return h[:]
	}}
}

func NewBlake2b() *HashCash {
	return &HashCash{name: NameBlake2b, sum: func(b []byte) []byte {
		h := blake2b.Sum256(b)
		return h[:]
	}}
}

func NewBlake3() *HashCash {
	return &HashCash{name: NameBlake3, sum: func(b []byte) []byte {
		h := blake3.Sum256(b)
		return h[:]
	}}
}

func (h *HashCash) Name() string { return h.name }

func (h *HashCash) Digest(data []byte) []byte { return h.sum(data) }

// HasLeadingZeroRun checks the lowercase hex rendering of digest.
func (h *HashCash) HasLeadingZeroRun(digest []byte, zeros int) bool {
	return pow.HexZeroRun(digest, zeros)
}

// SHA256ASCII checks raw SHA-256 bytes against ASCII '0'.
type SHA256ASCII struct{}

func NewSHA256ASCII() SHA256ASCII { return SHA256ASCII{} }

func (SHA256ASCII) Name() string { return NameSHA256ASCII }

func (SHA256ASCII) Digest(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func (SHA256ASCII) HasLeadingZeroRun(digest []byte, zeros int) bool {
	if zeros <= 0 {
		return true
	}
	if zeros > len(digest) {
		return false
	}
	return bytes.Count(digest[:zeros], []byte{'0'}) == zeros
}

// ByName returns the digest algorithm registered under name.
func ByName(name string) (pow.Algorithm, error) {
	switch name {
	case NameSHA256:
		return NewSHA256(), nil
	case NameSHA256ASCII:
		return NewSHA256ASCII(), nil
	case NameSHA3:
		return NewSHA3(), nil
	case NameBlake2b:
		return NewBlake2b(), nil
	case NameBlake3:
		return NewBlake3(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists every algorithm ByName accepts.
func Names() []string {
	return []string{NameSHA256, NameSHA256ASCII, NameSHA3, NameBlake2b, NameBlake3}
}
