// Package api exposes kurier's HTTP surface: the /auth endpoints, the
// bearer-token-protected REST routes for profiles, contacts, message
// history, and posts, and the /ws mount where the relay upgrades
// connections.
package api
