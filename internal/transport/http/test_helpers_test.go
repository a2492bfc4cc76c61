package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/mkravets/lingochat-server/internal/config"
	"github.com/mkravets/lingochat-server/internal/core"
	"github.com/mkravets/lingochat-server/internal/proto"
	"github.com/mkravets/lingochat-server/internal/translate"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// startTestServer spins up the full HTTP surface with a running hub and the
// given translator.
func startTestServer(t *testing.T, translator *translate.Translator) (*httptest.Server, *core.Hub) {
	t.Helper()

	logger := testLogger()

	hub := core.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, translator, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, hub
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

type outboundFrame struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Error *proto.Error    `json:"error"`
}

// readFrame reads the next outbound envelope.
func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) outboundFrame {
	t.Helper()

	var frame outboundFrame
	if err := wsjson.Read(ctx, conn, &frame); err != nil {
		t.Fatalf("read outbound: %v", err)
	}
	return frame
}

// readEvent skips frames until one carries the named event.
func readEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string) outboundFrame {
	t.Helper()

	for i := 0; i < 10; i++ {
		frame := readFrame(t, ctx, conn)
		if frame.Type == proto.OutboundTypeEvent && frame.Event == event {
			return frame
		}
	}
	t.Fatalf("event %q not received", event)
	return outboundFrame{}
}

func sendInbound(t *testing.T, ctx context.Context, conn *websocket.Conn, typ string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal inbound data: %v", err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
		t.Fatalf("write inbound: %v", err)
	}
}

// authenticate sends the authenticate event and waits for presence to land.
func authenticate(t *testing.T, ctx context.Context, conn *websocket.Conn, hub *core.Hub, userID string) {
	t.Helper()

	sendInbound(t, ctx, conn, proto.InboundTypeAuthenticate, proto.AuthenticateData{UserID: userID, Email: userID + "@example.com"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := hub.Registry().Lookup(userID); ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("user %q not registered in time", userID)
}
