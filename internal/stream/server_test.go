package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

func readEnvelope(t *testing.T, conn *websocket.Conn, want string) Envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		env, err := DecodeEnvelope(msg)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.T == want {
			return env
		}
	}
}

func TestWebsocketFeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newTestHub(t)
	go h.Run(ctx)
	srv := httptest.NewServer(Handler(ctx, h, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	pilot, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer pilot.Close()

	w, err := DecodePayload[Welcome](readEnvelope(t, pilot, MsgWelcome))
	if err != nil || w.Role != RolePilot || w.TickHz != 60 {
		t.Fatalf("unexpected welcome %+v err=%v", w, err)
	}

	msg, err := Encode(MsgInput, InputMsg{Start: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := pilot.WriteMessage(websocket.TextMessage, msg); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := DecodePayload[game.Snapshot](readEnvelope(t, pilot, MsgState))
		if err != nil {
			t.Fatalf("decode state: %v", err)
		}
		if snap.State == game.StatePlaying {
			return
		}
	}
	t.Fatalf("session never started over the websocket")
}
