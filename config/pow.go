package config

import (
	"slices"

	"powgate/pkg/pow/argon2"
	"powgate/pkg/pow/hashcash"
)

type Pow struct {
	Length    int       `yaml:"length" env:"LENGTH" env-required:"true" env-description:"secret length in characters"`
	Zeros     int       `yaml:"zeros" env:"ZEROS" env-required:"true" env-description:"required leading zero characters"`
	Algorithm Algorithm `yaml:"algorithm"`
}

type Algorithm struct {
	Name          string `yaml:"name" env:"POW_ALGORITHM" env-default:"sha256" env-description:"sha256, sha256-ascii, sha3-256, blake2b-256, blake3 or argon2id"`
	Argon2Time    uint32 `yaml:"argon2_time" env:"ARGON2_TIME" env-default:"1"`
	Argon2Memory  uint32 `yaml:"argon2_memory" env:"ARGON2_MEMORY" env-default:"65536" env-description:"argon2id memory in KiB"`
	Argon2Threads uint8  `yaml:"argon2_threads" env:"ARGON2_THREADS" env-default:"4"`
}

func (p Pow) Validate() error {
	if p.Length <= 0 {
		return invalid("LENGTH must be positive, got %d", p.Length)
	}
	if p.Zeros <= 0 {
		return invalid("ZEROS must be positive, got %d", p.Zeros)
	}
	return p.Algorithm.Validate()
}

func (a Algorithm) Validate() error {
	if a.Name == argon2.Name || slices.Contains(hashcash.Names(), a.Name) {
		return nil
	}
	return invalid("unknown POW_ALGORITHM %q", a.Name)
}

func (a Algorithm) Argon2Params() argon2.Params {
	return argon2.Params{
		Time:    a.Argon2Time,
		Memory:  a.Argon2Memory,
		Threads: a.Argon2Threads,
	}
}
