package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/mkravets/lingochat-server/internal/language"
	"github.com/mkravets/lingochat-server/internal/proto"
	"github.com/mkravets/lingochat-server/internal/translate"
)

func TestWebSocketLanguagesOnConnect(t *testing.T) {
	ts, _ := startTestServer(t, translate.New(translate.Credentials{}, testLogger()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)

	frame := readEvent(t, ctx, conn, proto.EventNameLanguages)
	var langs []language.Language
	if err := json.Unmarshal(frame.Data, &langs); err != nil {
		t.Fatalf("unmarshal languages: %v", err)
	}
	if len(langs) != 15 {
		t.Fatalf("expected 15 languages, got %d", len(langs))
	}
}

func TestWebSocketPrivateMessageRoundTrip(t *testing.T) {
	ts, hub := startTestServer(t, translate.New(translate.Credentials{}, testLogger()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts)
	bob := dialWS(t, ctx, ts)

	authenticate(t, ctx, alice, hub, "alice")
	authenticate(t, ctx, bob, hub, "bob")

	sendInbound(t, ctx, alice, proto.InboundTypePrivateMessage, proto.PrivateMessageData{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hi",
	})

	delivered := readEvent(t, ctx, bob, proto.EventNamePrivateMessage)
	var got proto.EventMessage
	if err := json.Unmarshal(delivered.Data, &got); err != nil {
		t.Fatalf("unmarshal delivery: %v", err)
	}
	if got.SenderID != "alice" || got.ReceiverID != "bob" || got.Text != "hi" {
		t.Fatalf("unexpected delivery payload: %+v", got)
	}
	if got.ID == "" || got.Timestamp == "" {
		t.Fatalf("delivery missing id or timestamp: %+v", got)
	}

	ack := readEvent(t, ctx, alice, proto.EventNameMessageSent)
	var echoed proto.EventMessage
	if err := json.Unmarshal(ack.Data, &echoed); err != nil {
		t.Fatalf("unmarshal ack: %v", err)
	}
	if echoed != got {
		t.Fatalf("ack and delivery differ:\nack:       %+v\ndelivered: %+v", echoed, got)
	}
}

func TestWebSocketValidationErrorGoesToSenderOnly(t *testing.T) {
	ts, hub := startTestServer(t, translate.New(translate.Credentials{}, testLogger()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts)
	authenticate(t, ctx, alice, hub, "alice")

	sendInbound(t, ctx, alice, proto.InboundTypePrivateMessage, proto.PrivateMessageData{
		SenderID: "alice",
		Text:     "no receiver",
	})

	for i := 0; i < 5; i++ {
		frame := readFrame(t, ctx, alice)
		if frame.Type == proto.OutboundTypeError {
			if frame.Error == nil || frame.Error.Msg != "Sender and receiver IDs are required" {
				t.Fatalf("unexpected error frame: %+v", frame.Error)
			}
			return
		}
	}
	t.Fatal("error frame not received")
}

func TestWebSocketUnknownTypeAnswersProtocolError(t *testing.T) {
	ts, _ := startTestServer(t, translate.New(translate.Credentials{}, testLogger()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	sendInbound(t, ctx, conn, "bogus", struct{}{})

	for i := 0; i < 5; i++ {
		frame := readFrame(t, ctx, conn)
		if frame.Type == proto.OutboundTypeError {
			if frame.Error == nil || frame.Error.Code != "invalid_message" {
				t.Fatalf("unexpected error frame: %+v", frame.Error)
			}
			return
		}
	}
	t.Fatal("protocol error not received")
}

func TestWebSocketDisconnectDeregisters(t *testing.T) {
	ts, hub := startTestServer(t, translate.New(translate.Credentials{}, testLogger()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alice := dialWS(t, ctx, ts)
	authenticate(t, ctx, alice, hub, "alice")

	_ = alice.Close(websocket.StatusNormalClosure, "bye")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := hub.Registry().Lookup("alice"); !ok {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("alice still registered after close")
}
