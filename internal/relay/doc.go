// Package relay implements the real-time half of kurier: authenticated
// WebSocket sessions, the per-user connection registry, and the frame
// protocol that forwards encrypted messages, public keys, key requests,
// and WebRTC signaling between peers.
//
// A connection starts unauthenticated. Its first frame must be
// auth{token}; the token is checked against the identity verifier with a
// bounded timeout, and on success the session is registered under its
// owner. Every later frame is dispatched by type. The server is a blind
// relay: payloads, key bytes, and signaling blobs pass through verbatim,
// and message frames are additionally appended to the shared message log
// for offline retrieval over the REST history endpoint.
package relay
