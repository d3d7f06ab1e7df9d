package store

import (
	"slices"
	"sync"

	"kurier/internal/domain"
)

// ContactStore keeps each user's contact list in insertion order,
// duplicate-free.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[domain.UserID][]domain.UserID
}

// NewContactStore returns an empty contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{contacts: make(map[domain.UserID][]domain.UserID)}
}

// Add appends contact to user's list unless already present.
func (s *ContactStore) Add(user, contact domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.contacts[user], contact) {
		return
	}
	s.contacts[user] = append(s.contacts[user], contact)
}

// ListFor returns a copy of user's contact list, possibly empty.
func (s *ContactStore) ListFor(user domain.UserID) []domain.UserID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts[user])
}

var _ domain.ContactStore = (*ContactStore)(nil)
