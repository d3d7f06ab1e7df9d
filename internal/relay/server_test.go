package relay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"kurier/internal/domain"
)

func newTestServer(verifier domain.TokenVerifier) (*Server, *Registry, *memLog) {
	registry := NewRegistry()
	log := &memLog{}
	handler := NewHandler(registry, log, zerolog.Nop())
	return NewServer(verifier, registry, handler, time.Second, zerolog.Nop()), registry, log
}

// runServe drives s.serve on conn and reports completion.
func runServe(s *Server, conn *fakeConn) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.serve(conn)
	}()
	return done
}

func waitRegistered(t *testing.T, registry *Registry, user domain.UserID) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !registry.Contains(user) {
		select {
		case <-deadline:
			t.Fatalf("user %s never registered", user)
		case <-time.After(time.Millisecond):
		}
	}
}

func TestFirstFrameMustBeAuth(t *testing.T) {
	s, registry, log := newTestServer(&fakeVerifier{tokens: map[string]domain.UserID{}})
	conn := newFakeConn()
	conn.in <- encryptedMessage("7")

	<-runServe(s, conn)

	writes := conn.Writes()
	if len(writes) != 1 {
		t.Fatalf("got %d frames, want 1 error", len(writes))
	}
	if _, ok := writes[0].(domain.ErrorFrame); !ok {
		t.Fatalf("want ErrorFrame, got %T", writes[0])
	}
	if registry.Contains("7") || log.len() != 0 {
		t.Fatal("pre-auth frame was processed")
	}
}

func TestInvalidTokenClosesConnection(t *testing.T) {
	s, registry, _ := newTestServer(&fakeVerifier{tokens: map[string]domain.UserID{"good": "42"}})
	conn := newFakeConn()
	conn.in <- domain.Frame{Type: domain.FrameAuth, Token: "bad"}

	<-runServe(s, conn)

	writes := conn.Writes()
	if len(writes) != 1 {
		t.Fatalf("got %d frames, want 1 error", len(writes))
	}
	ef, ok := writes[0].(domain.ErrorFrame)
	if !ok || ef.Error == "" {
		t.Fatalf("want populated ErrorFrame, got %+v", writes[0])
	}
	if registry.Contains("42") {
		t.Fatal("failed auth registered a session")
	}
}

func TestMissingTokenClosesConnection(t *testing.T) {
	s, _, _ := newTestServer(&fakeVerifier{tokens: map[string]domain.UserID{}})
	conn := newFakeConn()
	conn.in <- domain.Frame{Type: domain.FrameAuth}

	<-runServe(s, conn)

	if len(conn.Writes()) != 1 {
		t.Fatalf("got %d frames, want 1 error", len(conn.Writes()))
	}
}

func TestHungVerifierFailsClosed(t *testing.T) {
	registry := NewRegistry()
	handler := NewHandler(registry, &memLog{}, zerolog.Nop())
	s := NewServer(blockingVerifier{}, registry, handler, 20*time.Millisecond, zerolog.Nop())

	conn := newFakeConn()
	conn.in <- domain.Frame{Type: domain.FrameAuth, Token: "whatever"}

	select {
	case <-runServe(s, conn):
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return; verifier timeout not applied")
	}
	if len(conn.Writes()) != 1 {
		t.Fatalf("got %d frames, want 1 error", len(conn.Writes()))
	}
}

func TestSuccessfulHandshakeRegistersAndAcks(t *testing.T) {
	s, registry, _ := newTestServer(&fakeVerifier{tokens: map[string]domain.UserID{"tok-42": "42"}})
	conn := newFakeConn()
	conn.in <- domain.Frame{Type: domain.FrameAuth, Token: "tok-42"}

	done := runServe(s, conn)
	waitRegistered(t, registry, "42")

	close(conn.in)
	<-done

	writes := conn.Writes()
	if len(writes) != 1 {
		t.Fatalf("got %d frames, want 1 ack", len(writes))
	}
	ack, ok := writes[0].(domain.AuthResult)
	if !ok || !ack.Success {
		t.Fatalf("want auth success ack, got %+v", writes[0])
	}
	if registry.Contains("42") {
		t.Fatal("session not deregistered after transport close")
	}
}

func TestMalformedFrameKeepsConnectionOpen(t *testing.T) {
	s, registry, log := newTestServer(&fakeVerifier{tokens: map[string]domain.UserID{"tok-42": "42"}})
	conn := newFakeConn()
	conn.in <- domain.Frame{Type: domain.FrameAuth, Token: "tok-42"}
	conn.in <- &json.SyntaxError{}
	conn.in <- encryptedMessage("7")
	close(conn.in)

	<-runServe(s, conn)

	var sawError, sawStatus bool
	for _, w := range conn.Writes() {
		switch w.(type) {
		case domain.ErrorFrame:
			sawError = true
		case domain.MessageStatus:
			sawStatus = true
		}
	}
	if !sawError {
		t.Fatal("malformed frame produced no error frame")
	}
	if !sawStatus {
		t.Fatal("connection did not survive the malformed frame")
	}
	if log.len() != 1 {
		t.Fatalf("log has %d entries, want 1", log.len())
	}
	if registry.Contains("42") {
		t.Fatal("session not deregistered after close")
	}
}

// TestRelayScenario walks the end-to-end exchange: a rejected token, a
// successful handshake, and an encrypted message relayed to an online
// recipient with a status ack back to the sender.
func TestRelayScenario(t *testing.T) {
	s, registry, log := newTestServer(&fakeVerifier{tokens: map[string]domain.UserID{
		"valid-for-user-42": "42",
		"valid-for-user-7":  "7",
	}})

	// Bad token: error and close.
	bad := newFakeConn()
	bad.in <- domain.Frame{Type: domain.FrameAuth, Token: "bad"}
	<-runServe(s, bad)
	if _, ok := bad.Writes()[0].(domain.ErrorFrame); !ok {
		t.Fatalf("bad token: want ErrorFrame, got %T", bad.Writes()[0])
	}

	// User 7 comes online.
	recipient := newFakeConn()
	recipient.in <- domain.Frame{Type: domain.FrameAuth, Token: "valid-for-user-7"}
	recipientDone := runServe(s, recipient)
	waitRegistered(t, registry, "7")

	// User 42 authenticates and sends an encrypted message to 7.
	sender := newFakeConn()
	sender.in <- domain.Frame{Type: domain.FrameAuth, Token: "valid-for-user-42"}
	sender.in <- domain.Frame{
		Type:       domain.FrameMessage,
		To:         "7",
		Ciphertext: "Zg==",
		IV:         "lZ9tsPEwLy4typk9",
		AuthTag:    "q83vASNFZ4mrze8BI0VniQ==",
	}
	close(sender.in)
	<-runServe(s, sender)

	close(recipient.in)
	<-recipientDone

	senderWrites := sender.Writes()
	if len(senderWrites) != 2 {
		t.Fatalf("sender got %d frames, want auth ack + status", len(senderWrites))
	}
	status, ok := senderWrites[1].(domain.MessageStatus)
	if !ok || !status.Success || status.MessageID == "" {
		t.Fatalf("want message_status success with id, got %+v", senderWrites[1])
	}

	recipientWrites := recipient.Writes()
	if len(recipientWrites) != 2 {
		t.Fatalf("recipient got %d frames, want auth ack + delivery", len(recipientWrites))
	}
	pm, ok := recipientWrites[1].(domain.PrivateMessage)
	if !ok || pm.From != "42" || pm.Payload.Ciphertext != "Zg==" {
		t.Fatalf("unexpected delivery %+v", recipientWrites[1])
	}

	if entries := log.ListFor("7"); len(entries) != 1 || entries[0].ID != status.MessageID {
		t.Fatalf("log mismatch: %+v vs ack id %q", entries, status.MessageID)
	}
}
