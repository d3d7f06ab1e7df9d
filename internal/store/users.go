package store

import (
	"sync"

	"kurier/internal/domain"
)

// UserStore keeps accounts and profiles in memory, with a username
// uniqueness index.
type UserStore struct {
	mu       sync.RWMutex
	accounts map[domain.UserID]domain.Account
	byName   map[string]domain.UserID
	profiles map[domain.UserID]domain.Profile
}

// NewUserStore returns an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		accounts: make(map[domain.UserID]domain.Account),
		byName:   make(map[string]domain.UserID),
		profiles: make(map[domain.UserID]domain.Profile),
	}
}

// CreateAccount stores a new account with its initial profile. Fails with
// domain.ErrUsernameTaken when the username is already indexed.
func (s *UserStore) CreateAccount(acc domain.Account, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byName[acc.Username]; taken {
		return domain.ErrUsernameTaken
	}
	s.accounts[acc.ID] = acc
	s.byName[acc.Username] = acc.ID
	s.profiles[acc.ID] = profile
	return nil
}

// AccountByUsername looks up an account for login.
func (s *UserStore) AccountByUsername(username string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[username]
	if !ok {
		return domain.Account{}, false
	}
	acc, ok := s.accounts[id]
	return acc, ok
}

// Profile returns the profile for id.
func (s *UserStore) Profile(id domain.UserID) (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	return p, ok
}

// UpdateProfile merges non-nil fields of upd into the stored profile.
func (s *UserStore) UpdateProfile(id domain.UserID, upd domain.ProfileUpdate) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.Avatar != nil {
		p.Avatar = *upd.Avatar
	}
	s.profiles[id] = p
	return p, nil
}

// Profiles resolves ids to profiles, skipping unknown ids.
func (s *UserStore) Profiles(ids []domain.UserID) []domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

var _ domain.UserStore = (*UserStore)(nil)
