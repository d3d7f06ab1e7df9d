package domain

import "encoding/json"

// Frame type discriminators. Client-to-server and server-to-client kinds
// share one namespace on the wire.
const (
	FrameAuth           = "auth"
	FrameMessage        = "message"
	FramePublicKey      = "public_key"
	FrameKeyRequest     = "key_request"
	FrameSignal         = "signal"
	FrameError          = "error"
	FramePrivateMessage = "private_message"
	FrameMessageStatus  = "message_status"
)

// Frame is the superset of every client-to-server frame. Type selects the
// kind; the remaining fields are populated per kind and ignored otherwise.
type Frame struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	To    UserID `json:"to,omitempty"`

	// message
	Ciphertext string `json:"ciphertext,omitempty"`
	IV         string `json:"iv,omitempty"`
	AuthTag    string `json:"authTag,omitempty"`
	Text       string `json:"text,omitempty"`

	// public_key
	PublicKey string `json:"publicKey,omitempty"`

	// signal, forwarded verbatim
	Signal json.RawMessage `json:"signal,omitempty"`
}

// MessagePayload extracts the opaque payload of a message frame.
func (f Frame) MessagePayload() MessagePayload {
	return MessagePayload{
		Ciphertext: f.Ciphertext,
		IV:         f.IV,
		AuthTag:    f.AuthTag,
		Text:       f.Text,
	}
}

// AuthResult acknowledges a successful relay handshake.
type AuthResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
}

// ErrorFrame reports a protocol or auth failure to the sender.
type ErrorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// PrivateMessage delivers a relayed message to a recipient session.
type PrivateMessage struct {
	Type    string         `json:"type"`
	From    UserID         `json:"from"`
	Payload MessagePayload `json:"payload"`
}

// MessageStatus acknowledges a message frame back to its sender.
type MessageStatus struct {
	Type      string `json:"type"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// PublicKeyDelivery forwards a peer's public key bytes.
type PublicKeyDelivery struct {
	Type      string `json:"type"`
	From      UserID `json:"from"`
	PublicKey string `json:"publicKey"`
}

// KeyRequestDelivery notifies a peer that the sender wants its public key.
type KeyRequestDelivery struct {
	Type string `json:"type"`
	From UserID `json:"from"`
}

// SignalDelivery forwards a WebRTC negotiation payload verbatim.
type SignalDelivery struct {
	Type   string          `json:"type"`
	From   UserID          `json:"from"`
	Signal json.RawMessage `json:"signal"`
}
