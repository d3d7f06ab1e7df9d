package relay

import "github.com/gorilla/websocket"

// Conn is the duplex transport a session runs over. It is the subset of
// *websocket.Conn the relay needs; tests substitute an in-memory pipe.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)
