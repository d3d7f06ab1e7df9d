package store

import (
	"sync"

	"kurier/internal/domain"
)

// MessageStore is the shared append-only message log. Every relayed
// message lands here exactly once, regardless of how many sessions it was
// fanned out to; the REST history endpoint reads it back per user.
type MessageStore struct {
	mu      sync.RWMutex
	entries []domain.MessageLogEntry
}

// NewMessageStore returns an empty log.
func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// Append adds one entry to the log. Entries are never mutated or removed.
func (s *MessageStore) Append(entry domain.MessageLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// ListFor returns the entries where user is sender or recipient, in
// insertion (chronological) order.
func (s *MessageStore) ListFor(user domain.UserID) []domain.MessageLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MessageLogEntry, 0)
	for _, e := range s.entries {
		if e.From == user || e.To == user {
			out = append(out, e)
		}
	}
	return out
}

var _ domain.MessageLog = (*MessageStore)(nil)
