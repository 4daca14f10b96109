package usecases

import (
	"context"
	"fmt"

	"powgate/config"
	"powgate/pkg/pow"
)

//go:generate mockgen -source=solver.go -destination=mocks/solver_mock.go -package=mocks

type SolverUsecase interface {
	FindSolution(ctx context.Context, challenge string) (string, error)
}

type solverUsecaseImpl struct {
	algorithm pow.Algorithm
	progress  func(attempts uint64)
}

// NewSolverUsecase builds a solver for the configured algorithm. progress may be nil.
func NewSolverUsecase(cfg config.Algorithm, progress func(attempts uint64)) (SolverUsecase, error) {
	alg, err := NewAlgorithm(cfg)
	if err != nil {
		return nil, err
	}
	return &solverUsecaseImpl{
		algorithm: alg,
		progress:  progress,
	}, nil
}

// FindSolution parses the challenge text and brute-forces a nonce for it.
func (s *solverUsecaseImpl) FindSolution(ctx context.Context, challenge string) (string, error) {
	secret, zeros, err := pow.ParseChallenge(challenge)
	if err != nil {
		return "", err
	}
	nonce, err := pow.Solve(ctx, s.algorithm, secret, zeros, s.progress)
	if err != nil {
		return "", fmt.Errorf("failed to solve challenge: %w", err)
	}
	return nonce, nil
}
