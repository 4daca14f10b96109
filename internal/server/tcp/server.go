package tcp

import (
	"context"
	"errors"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/rs/xid"
	"golang.org/x/time/rate"

	"powgate/internal/usecases"
)

const (
	acceptBackoff    = 50 * time.Millisecond
	shutdownDeadline = 200 * time.Millisecond
)

type Server struct {
	cfg          *Config
	powUsecase   usecases.PowUsecase
	quoteUsecase usecases.QuoteUsecase
	recorder     Recorder
	logger       Logger
	limiter      *rate.Limiter

	wg      sync.WaitGroup
	connsMu sync.Mutex
	active  map[net.Conn]struct{}
}

type Config struct {
	Address      string
	KeepAlive    time.Duration
	ReadTimeout  time.Duration // 0 disables the nonce read deadline
	WriteTimeout time.Duration // 0 disables write deadlines
	BufferSize   int
	AcceptRate   float64 // connections per second, 0 is unlimited
	AcceptBurst  int
	ShutdownWait time.Duration
}

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// Recorder receives connection lifecycle events, see internal/metrics.
type Recorder interface {
	ConnectionOpened()
	ConnectionClosed(d time.Duration)
	ChallengeIssued()
	Verified(ok bool)
	Aborted(stage string)
}

// NewServer wires the acceptor. recorder may be nil.
func NewServer(cfg *Config, powUsecase usecases.PowUsecase, quoteUsecase usecases.QuoteUsecase, recorder Recorder, logger Logger) *Server {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	s := &Server{
		cfg:          cfg,
		powUsecase:   powUsecase,
		quoteUsecase: quoteUsecase,
		recorder:     recorder,
		logger:       logger,
		active:       make(map[net.Conn]struct{}),
	}
	if cfg.AcceptRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.AcceptRate), cfg.AcceptBurst)
	}
	return s
}

// Run binds the configured address and serves until ctx is done or accepting fails.
func (s *Server) Run(ctx context.Context) error {
	lc := net.ListenConfig{
		KeepAlive: s.cfg.KeepAlive,
	}

	listener, err := lc.Listen(ctx, "tcp", s.cfg.Address)
	if err != nil {
		return NewConnectionError("Run", err, "failed to start listener")
	}

	s.logger.Infow("server started", "address", listener.Addr().String())

	return s.Serve(ctx, listener)
}

// Serve accepts connections from listener and handles each in its own goroutine. It closes
// the listener before returning and waits for in-flight sessions up to ShutdownWait.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.acceptLoop(ctx, listener) }()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Infow("shutdown: closing listener")
		_ = listener.Close()
		<-errCh
	case err = <-errCh:
		_ = listener.Close()
	}

	s.drain()
	return err
}

func (s *Server) acceptLoop(ctx context.Context, listener net.Listener) error {
	for {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil
			}
		}

		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Debugw("listener closed")
				return nil
			}
			if isTemporary(err) {
				s.logger.Warnw("temporary accept error", "error", err)
				time.Sleep(acceptBackoff)
				continue
			}
			return NewConnectionError("accept", err, "listener failed")
		}

		s.track(conn, true)
		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			defer s.track(c, false)
			s.handleConnection(c)
		}(conn)
	}
}

func isTemporary(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE)
}

func (s *Server) track(c net.Conn, add bool) {
	s.connsMu.Lock()
	if add {
		s.active[c] = struct{}{}
	} else {
		delete(s.active, c)
	}
	s.connsMu.Unlock()
}

// drain nudges idle sessions with a short deadline, waits for them and force-closes stragglers.
func (s *Server) drain() {
	s.connsMu.Lock()
	for c := range s.active {
		_ = c.SetDeadline(time.Now().Add(shutdownDeadline))
	}
	s.connsMu.Unlock()

	done := make(chan struct{})
	go func() { s.wg.Wait(); close(done) }()

	select {
	case <-done:
		s.logger.Infow("shutdown: all connections drained")
	case <-time.After(s.cfg.ShutdownWait):
		s.logger.Warnw("shutdown: force-close remaining connections")
		s.connsMu.Lock()
		for c := range s.active {
			_ = c.Close()
		}
		s.connsMu.Unlock()
		<-done
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	start := time.Now()
	session := newSession(s, conn, xid.New().String())

	s.recorder.ConnectionOpened()
	defer func() {
		if r := recover(); r != nil {
			s.recorder.Aborted("panic")
			session.errorw("session panicked", "panic", r)
		}
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			session.errorw("connection close failed",
				"error", NewConnectionError("handleConnection", err, "cleanup failed"))
		}
		s.recorder.ConnectionClosed(time.Since(start))
	}()

	if err := session.Handle(); err != nil {
		s.recorder.Aborted(session.state.String())
		session.errorw("session aborted", "state", session.state.String(), "error", err)
		return
	}
	session.debugw("session completed", "duration", time.Since(start).String())
}

type nopRecorder struct{}

func (nopRecorder) ConnectionOpened()              {}
func (nopRecorder) ConnectionClosed(time.Duration) {}
func (nopRecorder) ChallengeIssued()               {}
func (nopRecorder) Verified(bool)                  {}
func (nopRecorder) Aborted(string)                 {}
