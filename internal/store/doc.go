// Package store provides the volatile in-memory record store behind
// kurier's services.
//
// It contains concrete implementations of the domain storage interfaces,
// each a keyed collection guarded by its own RWMutex. Durability is an
// explicit non-goal: state lives for the life of the process, and the
// message log is the only append-only collection.
//
// The package includes stores for:
//   - Accounts and profiles (UserStore)
//   - The shared direct-message log (MessageStore)
//   - Contact lists (ContactStore)
//   - Feed posts and likes (PostStore)
package store
