package relay

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kurier/internal/domain"
)

// Handler interprets frames from authenticated sessions and fans them out
// through the registry. One handler serves every connection; it keeps no
// per-connection state, so per-sender ordering follows from each
// connection goroutine dispatching its own frames sequentially.
type Handler struct {
	registry *Registry
	log      domain.MessageLog
	logger   zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewHandler wires the handler to the registry and the message log.
func NewHandler(registry *Registry, log domain.MessageLog, logger zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		log:      log,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// HandleFrame dispatches one post-auth frame. Protocol faults are answered
// with an error frame to the sender and never close the connection or
// touch other sessions.
func (h *Handler) HandleFrame(sess *Session, f domain.Frame) {
	switch f.Type {
	case domain.FrameMessage:
		h.handleMessage(sess, f)
	case domain.FramePublicKey:
		h.handlePublicKey(sess, f)
	case domain.FrameKeyRequest:
		h.handleKeyRequest(sess, f)
	case domain.FrameSignal:
		h.handleSignal(sess, f)
	case domain.FrameAuth:
		// The gate is one-way; verification never re-runs.
		h.sendError(sess, "already authenticated")
	default:
		h.logger.Warn().
			Str("type", f.Type).
			Str("user", string(sess.Owner())).
			Msg("unrecognized frame type")
	}
}

// handleMessage appends the message to the durable log exactly once, then
// best-effort delivers it to every open session of the recipient. The log
// append and the fan-out are independent effects: an offline recipient is
// not an error, and the sender is acked either way.
func (h *Handler) handleMessage(sess *Session, f domain.Frame) {
	payload := f.MessagePayload()
	if f.To == "" || payload.Empty() {
		h.sendError(sess, "message requires to and a payload")
		return
	}

	entry := domain.MessageLogEntry{
		ID:        h.newID(),
		From:      sess.Owner(),
		To:        f.To,
		Payload:   payload,
		Timestamp: h.now().UnixMilli(),
	}
	h.log.Append(entry)

	h.fanOut(f.To, domain.PrivateMessage{
		Type:    domain.FramePrivateMessage,
		From:    entry.From,
		Payload: payload,
	})

	if err := sess.Send(domain.MessageStatus{
		Type:      domain.FrameMessageStatus,
		Success:   true,
		MessageID: entry.ID,
	}); err != nil {
		h.logger.Debug().Err(err).Msg("message ack write failed")
	}
}

func (h *Handler) handlePublicKey(sess *Session, f domain.Frame) {
	if f.To == "" || f.PublicKey == "" {
		h.sendError(sess, "public_key requires to and publicKey")
		return
	}
	h.fanOut(f.To, domain.PublicKeyDelivery{
		Type:      domain.FramePublicKey,
		From:      sess.Owner(),
		PublicKey: f.PublicKey,
	})
}

func (h *Handler) handleKeyRequest(sess *Session, f domain.Frame) {
	if f.To == "" {
		h.sendError(sess, "key_request requires to")
		return
	}
	h.fanOut(f.To, domain.KeyRequestDelivery{
		Type: domain.FrameKeyRequest,
		From: sess.Owner(),
	})
}

func (h *Handler) handleSignal(sess *Session, f domain.Frame) {
	if f.To == "" || len(f.Signal) == 0 {
		h.sendError(sess, "signal requires to and signal")
		return
	}
	h.fanOut(f.To, domain.SignalDelivery{
		Type:   domain.FrameSignal,
		From:   sess.Owner(),
		Signal: f.Signal,
	})
}

// fanOut delivers the identical frame to every open session of the
// recipient. A write failure on one session (it may be closing
// concurrently) must not stop delivery to the rest.
func (h *Handler) fanOut(to domain.UserID, v any) {
	for _, target := range h.registry.SessionsFor(to) {
		if err := target.Send(v); err != nil {
			h.logger.Debug().
				Err(err).
				Str("to", string(to)).
				Msg("fan-out write failed")
		}
	}
}

func (h *Handler) sendError(sess *Session, msg string) {
	if err := sess.Send(domain.ErrorFrame{Type: domain.FrameError, Error: msg}); err != nil {
		h.logger.Debug().Err(err).Msg("error frame write failed")
	}
}
