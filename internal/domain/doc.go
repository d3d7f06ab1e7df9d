// Package domain defines the shared types, errors, and service contracts
// used across kurier.
//
// It has no dependencies on other internal packages so that the relay, the
// stores, the services, and the REST layer can all depend on it without
// cycles. Concrete implementations live in internal/store,
// internal/services, and internal/relay.
package domain
