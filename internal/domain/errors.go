package domain

import "errors"

var (
	// ErrInvalidKeyMaterial is returned by the crypto primitives when key
	// bytes are malformed or not on the configured curve.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrAuthenticationFailed is returned by Decrypt when the GCM tag does
	// not verify. It is never swallowed: corrupted plaintext must not reach
	// the caller.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidToken covers missing, malformed, expired, or mis-signed
	// bearer credentials.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned by login on a wrong username or
	// password. Deliberately indistinct between the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken is returned by register for a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is returned when a mutation targets a record the caller
	// does not own.
	ErrNotOwner = errors.New("not the owner")

	// ErrAlreadyAuthorized is returned by the session gate when an auth
	// frame arrives on an already-authenticated connection. The gate is
	// one-way and never re-runs verification.
	ErrAlreadyAuthorized = errors.New("session already authorized")
)
