package tcp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
)

// Custom error types
var (
	// Connection errors
	ErrConnectionClosed = errors.New("connection closed")
	ErrReadTimeout      = errors.New("read operation timeout")
	ErrWriteTimeout     = errors.New("write operation timeout")

	// Challenge errors
	ErrChallengeFailed   = errors.New("failed to generate challenge")
	ErrChallengeDelivery = errors.New("failed to deliver challenge")

	// Reward errors
	ErrRewardDelivery = errors.New("failed to deliver reward")
)

// Error types with additional context
type ServerError struct {
	Op   string // Operation that failed
	Err  error  // Original error
	Info string // Additional context
}

func (e *ServerError) Error() string {
	if e.Info != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Info)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func NewConnectionError(op string, err error, info string) error {
	return &ServerError{
		Op:   op,
		Err:  err,
		Info: info,
	}
}

func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrReadTimeout) || errors.Is(err, ErrWriteTimeout)
}

func IsConnectionClosed(err error) bool {
	return errors.Is(err, ErrConnectionClosed)
}

// classifyIO maps a raw read or write failure onto the sentinel errors above while keeping the
// original error in the chain.
func classifyIO(err error, timeout error) error {
	switch {
	case errors.Is(err, os.ErrDeadlineExceeded):
		return fmt.Errorf("%w: %w", timeout, err)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrClosedPipe), errors.Is(err, net.ErrClosed):
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	default:
		return err
	}
}
