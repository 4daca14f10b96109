package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powgate/config"
	"powgate/pkg/pow"
)

func TestFindSolution(t *testing.T) {
	solver, err := NewSolverUsecase(config.Algorithm{Name: "sha256"}, nil)
	require.NoError(t, err)

	// first decimal nonce with four hex zeros for this secret
	nonce, err := solver.FindSolution(context.Background(), "FWDvotNNpm:0000")
	require.NoError(t, err)
	assert.Equal(t, "66439", nonce)
}

func TestFindSolutionASCII(t *testing.T) {
	solver, err := NewSolverUsecase(config.Algorithm{Name: "sha256-ascii"}, nil)
	require.NoError(t, err)

	nonce, err := solver.FindSolution(context.Background(), "FWDvotNNpm:0")
	require.NoError(t, err)
	assert.True(t, pow.Verify(mustAlgorithm(t, "sha256-ascii"), "FWDvotNNpm", []byte(nonce), 1))
}

func TestFindSolutionInvalidChallenge(t *testing.T) {
	solver, err := NewSolverUsecase(config.Algorithm{Name: "sha256"}, nil)
	require.NoError(t, err)

	_, err = solver.FindSolution(context.Background(), "no separator")
	require.ErrorIs(t, err, pow.ErrInvalidChallenge)
}

func TestFindSolutionCancelled(t *testing.T) {
	var reported uint64
	solver, err := NewSolverUsecase(config.Algorithm{Name: "sha256"}, func(n uint64) { reported = n })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = solver.FindSolution(ctx, "secret:"+strings.Repeat("0", 40))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, reported)
}

func mustAlgorithm(t *testing.T, name string) pow.Algorithm {
	t.Helper()
	alg, err := NewAlgorithm(config.Algorithm{Name: name})
	require.NoError(t, err)
	return alg
}
