package usecases

import (
	"fmt"

	"powgate/config"
	"powgate/internal/domain"
	"powgate/pkg/pow"
	"powgate/pkg/pow/argon2"
	"powgate/pkg/pow/hashcash"
)

//go:generate mockgen -source=pow.go -destination=mocks/pow_mock.go -package=mocks

// PowUsecase issues challenges and verifies nonces with one configured algorithm.
type PowUsecase interface {
	GenerateChallenge() (*domain.Challenge, error)
	Verify(challenge *domain.Challenge, nonce []byte) bool
}

type powUsecaseImpl struct {
	algorithm pow.Algorithm
	source    pow.Source
	length    int
	zeros     int
}

// NewPowUsecase initializes the usecase from the pow configuration.
func NewPowUsecase(cfg config.Pow) (PowUsecase, error) {
	alg, err := NewAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return NewPowUsecaseWith(alg, pow.DefaultSource, cfg.Length, cfg.Zeros), nil
}

// NewPowUsecaseWith builds the usecase from explicit parts, mostly for tests.
func NewPowUsecaseWith(alg pow.Algorithm, src pow.Source, length, zeros int) PowUsecase {
	return &powUsecaseImpl{
		algorithm: alg,
		source:    src,
		length:    length,
		zeros:     zeros,
	}
}

// NewAlgorithm resolves the configured algorithm by name.
func NewAlgorithm(cfg config.Algorithm) (pow.Algorithm, error) {
	if cfg.Name == argon2.Name {
		alg, err := argon2.NewArgon2(cfg.Argon2Params())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize argon2: %w", err)
		}
		return alg, nil
	}
	alg, err := hashcash.ByName(cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hashcash: %w", err)
	}
	return alg, nil
}

// GenerateChallenge creates a fresh secret and its wire text.
func (p *powUsecaseImpl) GenerateChallenge() (*domain.Challenge, error) {
	secret, text, err := pow.Generate(p.source, p.length, p.zeros)
	if err != nil {
		return nil, fmt.Errorf("failed to generate challenge: %w", err)
	}
	return &domain.Challenge{
		Secret:    secret,
		Zeros:     p.zeros,
		Algorithm: p.algorithm.Name(),
		Text:      text,
	}, nil
}

// Verify checks nonce against the secret and difficulty the challenge was issued with.
func (p *powUsecaseImpl) Verify(challenge *domain.Challenge, nonce []byte) bool {
	return pow.Verify(p.algorithm, challenge.Secret, nonce, challenge.Zeros)
}
