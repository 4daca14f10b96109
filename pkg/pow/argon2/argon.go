package argon2

/*
Argon2id as a proof-of-work digest.

Argon2 is a memory-hard key derivation function: computing it needs a configurable amount
of memory and passes over that memory, which makes brute-forcing nonces expensive on
GPUs and ASICs where SHA-256 is cheap. Used as a puzzle digest it turns every nonce attempt
into a full key derivation, so a small zero run already costs real work.

The digest is IDKey(data, salt, time, memory, threads, 32) with a fixed salt: the per-connection
randomness already lives in the secret that prefixes data, and a fixed salt keeps the digest a
pure function of its input so client and server compute the same value.

Verification costs exactly one derivation, so the parameters bound the CPU and memory a single
verification takes on the server. Keep memory modest when the gate sits in front of many
concurrent connections.
*/

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"

	"powgate/pkg/pow"
)

const (
	Name = "argon2id"

	DefaultTime    = 1
	DefaultMemory  = 64 * 1024 // KiB
	DefaultThreads = 4

	keyLength = 32
	maxTime   = 10
	maxMemory = 1024 * 1024 // KiB
)

var salt = []byte("powgate/argon2id")

var ErrParamsRange = errors.New("argon2 parameters out of acceptable range")

// Params are the Argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// Argon2 encapsulates the Argon2id digest.
type Argon2 struct {
	params Params
}

// NewArgon2 validates p and returns the algorithm.
func NewArgon2(p Params) (*Argon2, error) {
	if p.Time < 1 || p.Time > maxTime {
		return nil, fmt.Errorf("%w: time must be between 1 and %d", ErrParamsRange, maxTime)
	}
	if p.Memory < 8*uint32(p.Threads) || p.Memory > maxMemory {
		return nil, fmt.Errorf("%w: memory must be between 8*threads and %d KiB", ErrParamsRange, maxMemory)
	}
	if p.Threads < 1 {
		return nil, fmt.Errorf("%w: threads must be positive", ErrParamsRange)
	}
	return &Argon2{params: p}, nil
}

func (a *Argon2) Name() string { return Name }

func (a *Argon2) Digest(data []byte) []byte {
	return argon2.IDKey(data, salt, a.params.Time, a.params.Memory, a.params.Threads, keyLength)
}

// HasLeadingZeroRun checks the lowercase hex rendering of digest.
func (a *Argon2) HasLeadingZeroRun(digest []byte, zeros int) bool {
	return pow.HexZeroRun(digest, zeros)
}

// Params returns the cost parameters the digest was built with.
func (a *Argon2) Params() Params {
	return a.params
}
