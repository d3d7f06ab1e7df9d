package relay

import (
	"sync"

	"kurier/internal/domain"
)

// Registry maps a user to the set of that user's open, authenticated
// sessions. It is the one piece of shared mutable state in the relay; a
// single RWMutex serializes same-user updates and keeps cross-user
// lookups cheap.
//
// Invariant: a session appears here if and only if it passed the auth
// gate and its connection is still open. Empty sets are pruned.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.UserID]map[*Session]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.UserID]map[*Session]struct{})}
}

// Register adds sess under user. Registering the same session twice is
// idempotent.
func (r *Registry) Register(user domain.UserID, sess *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sessions[user]
	if !ok {
		set = make(map[*Session]struct{})
		r.sessions[user] = set
	}
	set[sess] = struct{}{}
}

// Unregister removes sess from user's set and prunes the entry when the
// set empties. Removing an absent session is a no-op: connection close
// can race other cleanup paths.
func (r *Registry) Unregister(user domain.UserID, sess *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sessions[user]
	if !ok {
		return
	}
	delete(set, sess)
	if len(set) == 0 {
		delete(r.sessions, user)
	}
}

// SessionsFor returns a snapshot of user's open sessions, possibly empty.
func (r *Registry) SessionsFor(user domain.UserID) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.sessions[user]
	out := make([]*Session, 0, len(set))
	for sess := range set {
		out = append(out, sess)
	}
	return out
}

// Contains reports whether user currently has any registered session.
func (r *Registry) Contains(user domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[user]
	return ok
}
