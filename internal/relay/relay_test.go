package relay

import (
	"context"
	"errors"
	"io"
	"sync"

	"kurier/internal/domain"
)

// fakeConn scripts inbound frames through a channel and records every
// outbound write. Closing the channel reads as a dead transport.
type fakeConn struct {
	in chan any // domain.Frame to deliver, or error to return

	mu     sync.Mutex
	writes []any
	failed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan any, 16)}
}

func (c *fakeConn) ReadJSON(v any) error {
	item, ok := <-c.in
	if !ok {
		return io.EOF
	}
	if err, isErr := item.(error); isErr {
		return err
	}
	*(v.(*domain.Frame)) = item.(domain.Frame)
	return nil
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failed {
		return errors.New("write on closed connection")
	}
	c.writes = append(c.writes, v)
	return nil
}

func (c *fakeConn) Close() error { return nil }

// failWrites makes every later WriteJSON return an error.
func (c *fakeConn) failWrites() {
	c.mu.Lock()
	c.failed = true
	c.mu.Unlock()
}

func (c *fakeConn) Writes() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, len(c.writes))
	copy(out, c.writes)
	return out
}

// memLog is an in-memory domain.MessageLog for handler tests.
type memLog struct {
	mu      sync.Mutex
	entries []domain.MessageLogEntry
}

func (l *memLog) Append(entry domain.MessageLogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *memLog) ListFor(user domain.UserID) []domain.MessageLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.MessageLogEntry
	for _, e := range l.entries {
		if e.From == user || e.To == user {
			out = append(out, e)
		}
	}
	return out
}

func (l *memLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// fakeVerifier resolves tokens from a fixed table.
type fakeVerifier struct {
	tokens map[string]domain.UserID
}

func (v *fakeVerifier) Verify(_ context.Context, token string) (domain.UserID, error) {
	if id, ok := v.tokens[token]; ok {
		return id, nil
	}
	return "", domain.ErrInvalidToken
}

// blockingVerifier never answers; it exercises the handshake timeout.
type blockingVerifier struct{}

func (blockingVerifier) Verify(ctx context.Context, _ string) (domain.UserID, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
