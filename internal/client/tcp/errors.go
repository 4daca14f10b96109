package tcp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
)

var (
	// Connection errors
	ErrConnectionClosed = errors.New("connection closed")
	ErrReadTimeout      = errors.New("read operation timeout")
	ErrWriteTimeout     = errors.New("write operation timeout")

	// Challenge errors
	ErrSolutionNotFound = errors.New("solution not found")

	// Reward errors
	ErrNoReward = errors.New("server closed without a reward")

	// System errors
	ErrMaxRetriesExceeded = errors.New("maximum retry attempts exceeded")
)

type ClientError struct {
	Op   string
	Err  error
	Info string
}

func (e *ClientError) Error() string {
	if e.Info != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Info)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func NewClientError(op string, err error, info string) error {
	return &ClientError{
		Op:   op,
		Err:  err,
		Info: info,
	}
}

// IsRetryableError reports whether a new connection may succeed where this one failed.
// A rejected nonce is final.
func IsRetryableError(err error) bool {
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		return false
	}
	switch {
	case errors.Is(err, ErrConnectionClosed),
		errors.Is(err, ErrReadTimeout),
		errors.Is(err, ErrWriteTimeout):
		return true
	case clientErr.Op == "connect":
		return true
	default:
		return false
	}
}

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
