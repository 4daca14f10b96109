package tcp

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/text/encoding/unicode"

	"powgate/internal/domain"
)

// State is the position of a session in the single-round protocol.
type State int

const (
	StateStart State = iota
	StateChallengeSent
	StateNonceReceived
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateChallengeSent:
		return "challenge_sent"
	case StateNonceReceived:
		return "nonce_received"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session runs one round over one connection: challenge out, one read, verdict, optional reward.
type Session struct {
	conn   net.Conn
	server *Server
	state  State
	fields []interface{}
}

func newSession(server *Server, conn net.Conn, id string) *Session {
	return &Session{
		conn:   conn,
		server: server,
		state:  StateStart,
		fields: []interface{}{"conn_id", id, "remote", conn.RemoteAddr().String()},
	}
}

// All magic happens here
func (s *Session) Handle() error {
	// Step 1: Send challenge
	challenge, err := s.sendChallenge()
	if err != nil {
		return fmt.Errorf("failed to send challenge: %w", err)
	}

	// Step 2: Read nonce
	nonce, err := s.readNonce()
	if err != nil {
		return fmt.Errorf("failed to read nonce: %w", err)
	}

	// Step 3: Verify and reward, silence on failure
	if err := s.verifyAndRespond(challenge, nonce); err != nil {
		return fmt.Errorf("failed to respond: %w", err)
	}

	return nil
}

func (s *Session) sendChallenge() (*domain.Challenge, error) {
	challenge, err := s.server.powUsecase.GenerateChallenge()
	if err != nil {
		return nil, NewConnectionError("sendChallenge", fmt.Errorf("%w: %w", ErrChallengeFailed, err), "")
	}

	if err := s.write([]byte(challenge.Text)); err != nil {
		return nil, NewConnectionError("sendChallenge", fmt.Errorf("%w: %w", ErrChallengeDelivery, err), "")
	}

	s.state = StateChallengeSent
	s.server.recorder.ChallengeIssued()
	s.infow("challenge sent", "challenge", challenge.Text, "algorithm", challenge.Algorithm, "zeros", challenge.Zeros)

	return challenge, nil
}

// readNonce performs exactly one read. Whatever arrives in that read is the nonce; input
// beyond the buffer is dropped.
func (s *Session) readNonce() ([]byte, error) {
	if d := s.server.cfg.ReadTimeout; d > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(d)); err != nil {
			return nil, NewConnectionError("readNonce", err, "setting read deadline failed")
		}
	}

	buf := make([]byte, s.server.cfg.BufferSize)
	n, err := s.conn.Read(buf)
	if n == 0 {
		if err == nil {
			err = ErrConnectionClosed
		}
		return nil, NewConnectionError("readNonce", classifyIO(err, ErrReadTimeout), "no nonce received")
	}

	s.state = StateNonceReceived
	nonce := decodeNonce(buf[:n])
	s.debugw("nonce received", "bytes", n)

	return nonce, nil
}

func (s *Session) verifyAndRespond(challenge *domain.Challenge, nonce []byte) error {
	ok := s.server.powUsecase.Verify(challenge, nonce)
	s.server.recorder.Verified(ok)
	if !ok {
		s.infow("pow verification failed", "nonce", string(nonce))
		s.state = StateDone
		return nil
	}

	quote := s.server.quoteUsecase.GetRandomQuote()
	if err := s.write([]byte(quote)); err != nil {
		return NewConnectionError("verifyAndRespond", fmt.Errorf("%w: %w", ErrRewardDelivery, err), "")
	}

	s.state = StateDone
	s.infow("pow verified, reward sent", "nonce", string(nonce))
	return nil
}

func (s *Session) write(p []byte) error {
	if d := s.server.cfg.WriteTimeout; d > 0 {
		if err := s.conn.SetWriteDeadline(time.Now().Add(d)); err != nil {
			return err
		}
	}
	if _, err := s.conn.Write(p); err != nil {
		return classifyIO(err, ErrWriteTimeout)
	}
	return nil
}

// decodeNonce decodes raw as UTF-8. Every invalid byte becomes U+FFFD; the decoder never fails.
func decodeNonce(raw []byte) []byte {
	out, _ := unicode.UTF8.NewDecoder().Bytes(raw)
	return out
}

func (s *Session) debugw(msg string, kv ...interface{}) {
	s.server.logger.Debugw(msg, append(s.fields[:len(s.fields):len(s.fields)], kv...)...)
}

func (s *Session) infow(msg string, kv ...interface{}) {
	s.server.logger.Infow(msg, append(s.fields[:len(s.fields):len(s.fields)], kv...)...)
}

func (s *Session) errorw(msg string, kv ...interface{}) {
	s.server.logger.Errorw(msg, append(s.fields[:len(s.fields):len(s.fields)], kv...)...)
}
