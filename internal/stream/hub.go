package stream

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

type Conn interface {
	Send([]byte) error
	Close() error
}

type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
	Role     string
}

type Input struct {
	ClientID string
	Input    InputMsg
}

type Leave struct {
	ClientID string
}

// clientBuffer is how many frames a client may fall behind before the hub
// drops it.
const clientBuffer = 64

// client pairs a connection with its outbox. Only the client's writer
// goroutine calls Conn.Send, so a slow socket never stalls the tick.
type client struct {
	id   string
	conn Conn
	out  chan []byte
	done chan struct{}
}

func (c *client) enqueue(b []byte) bool {
	select {
	case c.out <- b:
		return true
	default:
		return false
	}
}

// Hub owns one session and drives it from a ticker. The first client to join
// pilots the boat; everyone else watches. All state is confined to the Run
// goroutine and mutated only through Inbox. Writes go through per-client
// outboxes; a client that falls a full buffer behind is dropped.
type Hub struct {
	Inbox chan any

	tickHz         int
	broadcastEvery int
	session        *game.Session
	queue          *game.InputQueue
	clients        map[string]*client
	order          []string
	pilot          string
	nextID         int
	tick           int
	logger         *log.Logger
	now            func() time.Time
}

func NewHub(session *game.Session, tickHz int, logger *log.Logger) *Hub {
	if tickHz < 1 {
		tickHz = 60
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	broadcastEvery := tickHz / 20
	if broadcastEvery < 1 {
		broadcastEvery = 1
	}
	return &Hub{
		Inbox:          make(chan any, 256),
		tickHz:         tickHz,
		broadcastEvery: broadcastEvery,
		session:        session,
		queue:          game.NewInputQueue(32),
		clients:        make(map[string]*client),
		nextID:         1,
		logger:         logger,
		now:            time.Now,
	}
}

// Submit hands cmd to the hub unless ctx is done first.
func (h *Hub) Submit(ctx context.Context, cmd any) bool {
	select {
	case h.Inbox <- cmd:
		return true
	case <-ctx.Done():
		return false
	}
}

func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(h.tickHz))
	defer ticker.Stop()
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-h.Inbox:
			h.handleCommand(cmd)
		case <-ticker.C:
			h.step(h.now())
		}
	}
}

func (h *Hub) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		id := fmt.Sprintf("c%d", h.nextID)
		h.nextID++
		cl := &client{id: id, conn: c.Conn, out: make(chan []byte, clientBuffer), done: make(chan struct{})}
		h.clients[id] = cl
		h.order = append(h.order, id)
		go h.writeLoop(cl)
		role := RoleViewer
		if h.pilot == "" {
			h.pilot = id
			role = RolePilot
		}
		h.logger.Printf("%s joined as %s", id, role)
		if c.Reply != nil {
			c.Reply <- JoinResult{ClientID: id, Role: role}
		}
		h.sendWelcome(id, role)
		h.sendTo(cl, MsgState, h.session.Snapshot())
	case Input:
		if c.ClientID != h.pilot || h.pilot == "" {
			return
		}
		h.applyInput(c.Input)
	case Leave:
		h.removeClient(c.ClientID)
	}
}

func (h *Hub) applyInput(in InputMsg) {
	h.queue.Enqueue(game.Action{Kind: game.ActionLeft, Down: in.Left})
	h.queue.Enqueue(game.Action{Kind: game.ActionRight, Down: in.Right})
	if in.Cast != nil {
		h.queue.Enqueue(game.Action{Kind: game.ActionCast, Aim: *in.Cast})
	}
	if in.Start {
		h.queue.Enqueue(game.Action{Kind: game.ActionStart})
	}
}

func (h *Hub) step(now time.Time) {
	events := h.session.Advance(now, h.queue.Drain())
	h.tick++
	if len(events) > 0 {
		h.broadcast(MsgEvents, events)
	}
	if h.tick%h.broadcastEvery == 0 || len(events) > 0 {
		h.broadcast(MsgState, h.session.Snapshot())
	}
}

func (h *Hub) removeClient(id string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	close(c.done)
	_ = c.conn.Close()
	delete(h.clients, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	h.logger.Printf("%s left", id)
	if id != h.pilot {
		return
	}
	h.pilot = ""
	h.queue.Release()
	if len(h.order) > 0 {
		h.pilot = h.order[0]
		h.logger.Printf("%s promoted to pilot", h.pilot)
		h.sendWelcome(h.pilot, RolePilot)
	}
}

func (h *Hub) sendWelcome(id, role string) {
	if c, ok := h.clients[id]; ok {
		h.sendTo(c, MsgWelcome, Welcome{ClientID: id, Role: role, TickHz: h.tickHz})
	}
}

// writeLoop drains one client's outbox. A failed write reports the client
// back to the hub as a Leave.
func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case b := <-c.out:
			if err := c.conn.Send(b); err != nil {
				select {
				case h.Inbox <- Leave{ClientID: c.id}:
				case <-c.done:
				}
				return
			}
		}
	}
}

func (h *Hub) sendTo(c *client, t string, payload any) {
	b, err := Encode(t, payload)
	if err != nil {
		h.logger.Printf("encode %s: %v", t, err)
		return
	}
	if !c.enqueue(b) {
		h.logger.Printf("%s outbox full, dropping %s", c.id, t)
	}
}

func (h *Hub) broadcast(t string, payload any) {
	b, err := Encode(t, payload)
	if err != nil {
		h.logger.Printf("encode %s: %v", t, err)
		return
	}
	var lagging []string
	for _, id := range h.order {
		if !h.clients[id].enqueue(b) {
			lagging = append(lagging, id)
		}
	}
	for _, id := range lagging {
		h.logger.Printf("%s fell %d frames behind", id, clientBuffer)
		h.removeClient(id)
	}
}

func (h *Hub) closeAll() {
	for _, c := range h.clients {
		close(c.done)
		_ = c.conn.Close()
	}
	h.clients = map[string]*client{}
	h.order = nil
	h.pilot = ""
}
