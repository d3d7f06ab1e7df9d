package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"kurier/internal/domain"
)

// DefaultAuthTimeout bounds the identity-verification call during the
// handshake. A hung verifier fails the connection closed instead of
// pinning its goroutine.
const DefaultAuthTimeout = 10 * time.Second

// Server upgrades HTTP requests to WebSocket sessions and runs the
// per-connection protocol loop: auth gate first, then frame dispatch.
type Server struct {
	verifier    domain.TokenVerifier
	registry    *Registry
	handler     *Handler
	authTimeout time.Duration
	logger      zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewServer builds a relay server around the verifier, registry, and
// handler. authTimeout <= 0 selects DefaultAuthTimeout.
func NewServer(verifier domain.TokenVerifier, registry *Registry, handler *Handler, authTimeout time.Duration, logger zerolog.Logger) *Server {
	if authTimeout <= 0 {
		authTimeout = DefaultAuthTimeout
	}
	return &Server{
		verifier:    verifier,
		registry:    registry,
		handler:     handler,
		authTimeout: authTimeout,
		logger:      logger,
		upgrader: websocket.Upgrader{
			// The browser client authenticates in-band with its first
			// frame, so cross-origin upgrades are allowed through.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and serves the connection until it
// closes. Each connection gets its own goroutine courtesy of net/http.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	s.serve(conn)
}

func (s *Server) serve(conn Conn) {
	sess := NewSession(conn)
	defer sess.Close()

	owner, ok := s.authenticate(sess)
	if !ok {
		return
	}

	// Ack before registering: once the session is in the registry, fan-out
	// from other senders may write to it, and the ack must be the first
	// frame the client sees.
	if err := sess.Send(domain.AuthResult{Type: domain.FrameAuth, Success: true}); err != nil {
		return
	}

	s.registry.Register(owner, sess)
	// Transport close on any path below must deregister exactly once.
	defer s.registry.Unregister(owner, sess)

	logger := s.logger.With().Str("user", string(owner)).Logger()
	logger.Info().Msg("session authenticated")
	defer logger.Info().Msg("session closed")

	for {
		var f domain.Frame
		if err := conn.ReadJSON(&f); err != nil {
			if isDecodeError(err) {
				// Malformed frame: report and keep the connection.
				s.sendError(sess, "malformed frame")
				continue
			}
			return
		}
		s.handler.HandleFrame(sess, f)
	}
}

// authenticate enforces the first-frame-must-be-auth gate. Any failure
// sends an error frame and reports false; the caller closes the
// connection without registering it.
func (s *Server) authenticate(sess *Session) (domain.UserID, bool) {
	var f domain.Frame
	if err := sess.conn.ReadJSON(&f); err != nil {
		if isDecodeError(err) {
			s.sendError(sess, "authentication required")
		}
		return "", false
	}
	if f.Type != domain.FrameAuth || f.Token == "" {
		s.sendError(sess, "authentication required")
		return "", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.authTimeout)
	defer cancel()
	owner, err := s.verifier.Verify(ctx, f.Token)
	if err != nil {
		s.sendError(sess, "invalid token")
		return "", false
	}

	if err := sess.Authorize(owner); err != nil {
		return "", false
	}
	return owner, true
}

func (s *Server) sendError(sess *Session, msg string) {
	if err := sess.Send(domain.ErrorFrame{Type: domain.FrameError, Error: msg}); err != nil {
		s.logger.Debug().Err(err).Msg("error frame write failed")
	}
}

// isDecodeError distinguishes a frame that failed to parse from a dead
// transport. Decode errors leave the connection usable.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
