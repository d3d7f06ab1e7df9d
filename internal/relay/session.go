package relay

import (
	"sync"

	"kurier/internal/domain"
)

// sessionState is the auth gate. The only legal transition is
// stateUnauthenticated -> stateAuthenticated; it never reverts.
type sessionState int

const (
	stateUnauthenticated sessionState = iota
	stateAuthenticated
)

// Session wraps one live duplex connection. It is owned by the connection
// goroutine that created it; the registry only holds a non-owning
// reference once the session is authorized.
type Session struct {
	conn Conn

	mu    sync.Mutex
	state sessionState
	owner domain.UserID
}

// NewSession wraps conn in an unauthenticated session.
func NewSession(conn Conn) *Session {
	return &Session{conn: conn}
}

// Authorize moves the session through the one-way auth gate and records
// its owner. A second call fails with domain.ErrAlreadyAuthorized; the
// owner is never re-bound.
func (s *Session) Authorize(owner domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateUnauthenticated {
		return domain.ErrAlreadyAuthorized
	}
	s.state = stateAuthenticated
	s.owner = owner
	return nil
}

// Authorized reports whether the session passed the auth gate.
func (s *Session) Authorized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateAuthenticated
}

// Owner returns the owning user, or the zero UserID before authorization.
func (s *Session) Owner() domain.UserID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// Send writes one frame to the connection. Writes are serialized: the
// session mutex is the single-writer discipline the transport requires,
// shared between the connection goroutine and fan-out from other senders.
func (s *Session) Send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Close tears down the underlying connection.
func (s *Session) Close() error {
	return s.conn.Close()
}
