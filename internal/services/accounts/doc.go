// Package accounts handles registration, login, and bearer-token
// verification.
//
// Passwords are hashed with PBKDF2-SHA512 and a per-user random salt.
// Tokens are HS256 JWTs carrying the user ID; Verify is the
// identity-verification collaborator the relay consumes once per
// connection during its auth handshake.
package accounts
