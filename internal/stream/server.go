package stream

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn serialises writes; gorilla connections allow one concurrent writer.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Handler serves the websocket feed at /ws and a liveness check at /healthz.
func Handler(ctx context.Context, h *Hub, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(ctx, h, logger, w, r)
	})
	return mux
}

func serveWS(ctx context.Context, h *Hub, logger *log.Logger, w http.ResponseWriter, r *http.Request) {
	raw, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Println("upgrade:", err)
		return
	}
	conn := &wsConn{conn: raw}
	defer conn.Close()

	reply := make(chan JoinResult, 1)
	if !h.Submit(ctx, Join{Conn: conn, Reply: reply}) {
		return
	}
	var joined JoinResult
	select {
	case joined = <-reply:
	case <-ctx.Done():
		return
	}
	defer h.Submit(ctx, Leave{ClientID: joined.ClientID})

	raw.SetReadLimit(1 << 16)
	_ = raw.SetReadDeadline(time.Now().Add(pongWait))
	raw.SetPongHandler(func(string) error {
		return raw.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, msg, err := raw.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Printf("%s read: %v", joined.ClientID, err)
			}
			return
		}
		env, err := DecodeEnvelope(msg)
		if err != nil || env.T != MsgInput {
			continue
		}
		in, err := DecodePayload[InputMsg](env)
		if err != nil {
			continue
		}
		if !h.Submit(ctx, Input{ClientID: joined.ClientID, Input: in}) {
			return
		}
	}
}

// Serve runs the hub and its HTTP front until ctx is cancelled.
func Serve(ctx context.Context, addr string, h *Hub, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go h.Run(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(ctx, h, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s (ws endpoint: /ws)", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		return srv.Shutdown(shutdownCtx)
	}
}
