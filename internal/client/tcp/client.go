package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"powgate/internal/usecases"
)

type Client struct {
	cfg           *Config
	solverUsecase usecases.SolverUsecase
	logger        Logger
}

type Config struct {
	ServerAddr     string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	SolveTimeout   time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	BufferSize     int
}

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

func NewClient(
	cfg *Config,
	solverUsecase usecases.SolverUsecase,
	logger Logger,
) *Client {
	return &Client{
		cfg:           cfg,
		solverUsecase: solverUsecase,
		logger:        logger,
	}
}

// Start runs sessions until one yields a reward, a non-retryable error occurs or the attempts
// run out. It returns the reward text.
func (c *Client) Start(ctx context.Context) (string, error) {
	var lastErr error

	for attempt := 0; attempt < c.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			c.logger.Infow("retrying connection",
				"attempt", attempt+1,
				"max_attempts", c.cfg.RetryAttempts)

			select {
			case <-ctx.Done():
				return "", NewClientError("Start", ctx.Err(), "cancelled while waiting to retry")
			case <-time.After(c.cfg.RetryDelay):
			}
		}

		reward, err := c.executeSession(ctx)
		if err == nil {
			return reward, nil
		}

		lastErr = err
		c.logger.Warnw("session error",
			"attempt", attempt+1,
			"error", err)

		if !IsRetryableError(err) || ctx.Err() != nil {
			return "", err
		}
	}

	return "", NewClientError("Start", fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, lastErr), "")
}

func (c *Client) executeSession(ctx context.Context) (string, error) {
	connectCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	conn, err := c.connect(connectCtx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	session := &ClientSession{
		conn:    conn,
		client:  c,
		context: ctx,
	}

	return session.Execute()
}

func (c *Client) connect(ctx context.Context) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.cfg.ServerAddr)
	if err != nil {
		return nil, NewClientError("connect", err, "connection failed")
	}
	return conn, nil
}

type ClientSession struct {
	conn    net.Conn
	client  *Client
	context context.Context
}

// All magic happens here
func (s *ClientSession) Execute() (string, error) {
	// Step 1: Receive challenge
	challenge, err := s.receiveChallenge()
	if err != nil {
		return "", err
	}

	// Step 2: Solve challenge
	nonce, err := s.solveChallenge(challenge)
	if err != nil {
		return "", err
	}

	// Step 3: Send nonce and read the reward to EOF
	if err := s.sendSolution(nonce); err != nil {
		return "", err
	}
	return s.receiveReward()
}

// receiveChallenge mirrors the server: the challenge arrives in a single write, so one read is enough.
func (s *ClientSession) receiveChallenge() (string, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(s.client.cfg.RequestTimeout)); err != nil {
		return "", NewClientError("receiveChallenge", err, "setting read deadline failed")
	}

	buf := make([]byte, s.client.cfg.BufferSize)
	n, err := s.conn.Read(buf)
	if n == 0 {
		if err == nil {
			err = ErrConnectionClosed
		}
		return "", NewClientError("receiveChallenge", classifyIO(err, ErrReadTimeout), "no challenge received")
	}

	challenge := string(buf[:n])
	s.client.logger.Debugw("challenge received", "challenge", challenge)
	return challenge, nil
}

func (s *ClientSession) solveChallenge(challenge string) (string, error) {
	ctx, cancel := context.WithTimeout(s.context, s.client.cfg.SolveTimeout)
	defer cancel()

	start := time.Now()
	nonce, err := s.client.solverUsecase.FindSolution(ctx, challenge)
	if err != nil {
		return "", NewClientError("solveChallenge", fmt.Errorf("%w: %w", ErrSolutionNotFound, err), challenge)
	}

	s.client.logger.Infow("challenge solved",
		"challenge", challenge,
		"nonce", nonce,
		"elapsed", time.Since(start).String())
	return nonce, nil
}

func (s *ClientSession) sendSolution(nonce string) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.client.cfg.RequestTimeout)); err != nil {
		return NewClientError("sendSolution", err, "setting write deadline failed")
	}
	if _, err := s.conn.Write([]byte(nonce)); err != nil {
		return NewClientError("sendSolution", classifyIO(err, ErrWriteTimeout), "sending nonce failed")
	}
	return nil
}

func (s *ClientSession) receiveReward() (string, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(s.client.cfg.RequestTimeout)); err != nil {
		return "", NewClientError("receiveReward", err, "setting read deadline failed")
	}

	reward, err := io.ReadAll(s.conn)
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return "", NewClientError("receiveReward", classifyIO(err, ErrReadTimeout), "reading reward failed")
	}
	if len(reward) == 0 {
		return "", NewClientError("receiveReward", ErrNoReward, "nonce rejected")
	}

	s.client.logger.Infow("received quote", "quote", string(reward))
	return string(reward), nil
}
