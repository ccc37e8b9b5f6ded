package stream

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

var epoch = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

type fakeConn struct {
	mu     sync.Mutex
	sent   []Envelope
	fail   bool
	closed bool
}

func (c *fakeConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		return err
	}
	c.sent = append(c.sent, env)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) setFail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = true
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeConn) count(t string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, env := range c.sent {
		if env.T == t {
			n++
		}
	}
	return n
}

func (c *fakeConn) last(t string) (Envelope, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.sent) - 1; i >= 0; i-- {
		if c.sent[i].T == t {
			return c.sent[i], true
		}
	}
	return Envelope{}, false
}

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	tuning := game.DefaultTuning()
	tuning.SpawnChance = 0
	session, err := game.NewSession(tuning, 42)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return NewHub(session, 60, nil)
}

func join(t *testing.T, h *Hub, c Conn) JoinResult {
	t.Helper()
	reply := make(chan JoinResult, 1)
	h.handleCommand(Join{Conn: c, Reply: reply})
	return <-reply
}

// eventually polls cond; client writes land on their own goroutines.
func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func welcomeRole(t *testing.T, c *fakeConn) string {
	t.Helper()
	return welcomeRoleAfter(t, c, 1)
}

// welcomeRoleAfter waits for the n-th welcome and returns the latest role.
func welcomeRoleAfter(t *testing.T, c *fakeConn, n int) string {
	t.Helper()
	eventually(t, "welcome", func() bool { return c.count(MsgWelcome) >= n })
	env, _ := c.last(MsgWelcome)
	w, err := DecodePayload[Welcome](env)
	if err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	return w.Role
}

func TestFirstClientPilotsOthersWatch(t *testing.T) {
	h := newTestHub(t)
	a, b := &fakeConn{}, &fakeConn{}

	if res := join(t, h, a); res.Role != RolePilot {
		t.Fatalf("expected first client to pilot, got %s", res.Role)
	}
	if res := join(t, h, b); res.Role != RoleViewer {
		t.Fatalf("expected second client to watch, got %s", res.Role)
	}
	if welcomeRole(t, a) != RolePilot || welcomeRole(t, b) != RoleViewer {
		t.Fatalf("welcome roles do not match join results")
	}
	eventually(t, "initial state for a new viewer", func() bool { return b.count(MsgState) > 0 })
}

func TestOnlyPilotInputDrivesTheSession(t *testing.T) {
	h := newTestHub(t)
	pilot, viewer := &fakeConn{}, &fakeConn{}
	p := join(t, h, pilot)
	v := join(t, h, viewer)

	h.handleCommand(Input{ClientID: v.ClientID, Input: InputMsg{Start: true}})
	h.step(epoch)
	if h.session.State() != game.StateMenu {
		t.Fatalf("viewer input should be ignored, state=%s", h.session.State())
	}

	h.handleCommand(Input{ClientID: p.ClientID, Input: InputMsg{Start: true}})
	h.step(epoch)
	if h.session.State() != game.StatePlaying {
		t.Fatalf("pilot start should begin the session, state=%s", h.session.State())
	}

	eventually(t, "events at the viewer", func() bool { return viewer.count(MsgEvents) > 0 })
	env, _ := viewer.last(MsgEvents)
	events, err := DecodePayload[[]game.Event](env)
	if err != nil || len(events) == 0 || events[0].Type != game.EventSessionStarted {
		t.Fatalf("expected session_started event, got %+v err=%v", events, err)
	}
	eventually(t, "playing snapshot", func() bool {
		stateEnv, _ := viewer.last(MsgState)
		snap, err := DecodePayload[game.Snapshot](stateEnv)
		return err == nil && snap.State == game.StatePlaying
	})
}

func TestHeldInputPersistsBetweenMessages(t *testing.T) {
	h := newTestHub(t)
	pilot := &fakeConn{}
	p := join(t, h, pilot)
	h.handleCommand(Input{ClientID: p.ClientID, Input: InputMsg{Start: true}})
	h.step(epoch)

	startX := h.session.Snapshot().BoatX
	h.handleCommand(Input{ClientID: p.ClientID, Input: InputMsg{Right: true}})
	now := epoch
	for i := 0; i < 3; i++ {
		now = now.Add(time.Second / 60)
		h.step(now)
	}
	if got := h.session.Snapshot().BoatX; got != startX+3*h.session.Tuning().BoatSpeed {
		t.Fatalf("expected boat to keep moving right, %g -> %g", startX, got)
	}
}

func TestPilotLeavePromotesOldestViewer(t *testing.T) {
	h := newTestHub(t)
	a, b, c := &fakeConn{}, &fakeConn{}, &fakeConn{}
	pa := join(t, h, a)
	pb := join(t, h, b)
	join(t, h, c)

	h.handleCommand(Leave{ClientID: pa.ClientID})
	if !a.isClosed() {
		t.Fatalf("expected leaving connection closed")
	}
	if h.pilot != pb.ClientID {
		t.Fatalf("expected %s promoted, pilot is %s", pb.ClientID, h.pilot)
	}
	if welcomeRoleAfter(t, b, 2) != RolePilot {
		t.Fatalf("expected promoted client to get a pilot welcome")
	}
	if welcomeRole(t, c) != RoleViewer {
		t.Fatalf("expected third client to stay a viewer")
	}
}

func TestFailedSendDropsOnlyThatClient(t *testing.T) {
	h := newTestHub(t)
	good, bad := &fakeConn{}, &fakeConn{}
	join(t, h, good)
	pb := join(t, h, bad)
	eventually(t, "join traffic", func() bool { return bad.count(MsgState) > 0 })
	bad.setFail()

	h.broadcast(MsgState, h.session.Snapshot())
	select {
	case cmd := <-h.Inbox:
		h.handleCommand(cmd)
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the failed write to report a leave")
	}
	if _, ok := h.clients[pb.ClientID]; ok || !bad.isClosed() {
		t.Fatalf("expected failing client removed")
	}
	if len(h.clients) != 1 {
		t.Fatalf("expected the healthy client kept, have %d", len(h.clients))
	}
}

type stalledConn struct {
	release chan struct{}
	closed  chan struct{}
	once    sync.Once
}

func (c *stalledConn) Send([]byte) error {
	<-c.release
	return nil
}

func (c *stalledConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func TestStalledViewerNeverBlocksTheTick(t *testing.T) {
	h := newTestHub(t)
	good := &fakeConn{}
	stalled := &stalledConn{release: make(chan struct{}), closed: make(chan struct{})}
	defer close(stalled.release)
	pg := join(t, h, good)
	ps := join(t, h, stalled)
	healthy := h.clients[pg.ClientID]

	now := epoch
	for i := 0; i < 3*clientBuffer*h.broadcastEvery; i++ {
		now = now.Add(time.Second / 60)
		start := time.Now()
		h.step(now)
		if took := time.Since(start); took > 100*time.Millisecond {
			t.Fatalf("tick %d blocked for %v", i, took)
		}
		eventually(t, "healthy outbox drained", func() bool { return len(healthy.out) == 0 })
	}

	if _, ok := h.clients[ps.ClientID]; ok {
		t.Fatalf("expected the stalled viewer dropped once its outbox filled")
	}
	select {
	case <-stalled.closed:
	default:
		t.Fatalf("expected the stalled connection closed")
	}
	eventually(t, "state frames at the healthy viewer", func() bool { return good.count(MsgState) > clientBuffer })
}

func TestEncodeRejectsBadEnvelopes(t *testing.T) {
	if _, err := Encode("", InputMsg{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := Encode(MsgInput, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty message")
	}
	if _, err := DecodePayload[InputMsg](Envelope{T: MsgInput}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
