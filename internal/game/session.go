package game

import (
	"math/rand/v2"
	"time"
)

// Session owns every piece of mutable simulation state for one player. It is
// not safe for concurrent use; a single loop calls Advance and reads
// Snapshot between ticks.
type Session struct {
	tuning  Tuning
	rng     *rand.Rand
	spawner *Spawner

	state  GameState
	reason OverReason
	ledger Ledger
	clock  Clock
	run    float64

	boatX     float64
	castAnim  float64
	hook      Hook
	entities  []*Entity
	nextID    EntityID
	particles particleTracker
	inventory inventory
}

func NewSession(tuning Tuning, seed int64) (*Session, error) {
	return newSessionWithKinds(tuning, seed, Catalog())
}

func newSessionWithKinds(tuning Tuning, seed int64, kinds []*EntityKind) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		tuning:  tuning,
		rng:     newRNG(seed),
		spawner: newSpawner(tuning, kinds),
		state:   StateMenu,
	}
	s.reset(time.Time{})
	return s, nil
}

func (s *Session) reset(now time.Time) {
	s.reason = ReasonNone
	s.ledger = Ledger{}
	s.clock = newClock(s.tuning.SessionSeconds, s.tuning.MaxFrameGap, now)
	s.run = 0
	s.boatX = s.tuning.CanvasWidth / 2
	s.castAnim = 0
	s.entities = nil
	s.nextID = 0
	s.particles.reset()
	s.inventory = inventory{limit: s.tuning.InventoryLimit}
	s.hook = Hook{ID: primaryHook, State: HookIdle, Pos: s.RodTip()}
}

// Start begins a fresh session from any state. Everything mutable is
// re-initialized, so calling it twice in a row is the same as calling it once.
func (s *Session) Start(now time.Time) []Event {
	s.reset(now)
	s.state = StatePlaying
	return []Event{{Type: EventSessionStarted, Score: 0}}
}

// Advance runs one tick. Input.Start restarts a session that is not already
// playing; otherwise nothing advances outside StatePlaying.
func (s *Session) Advance(now time.Time, in Input) []Event {
	if in.Start && s.state != StatePlaying {
		return s.Start(now)
	}
	if s.state != StatePlaying {
		return nil
	}

	elapsed, ok := s.clock.sample(now)
	if !ok {
		return nil
	}
	s.run += elapsed

	var events []Event
	if s.clock.consume(elapsed) {
		return append(events, s.end(ReasonTime))
	}

	s.moveBoat(in)
	tip := s.RodTip()

	if in.Cast != nil && s.hook.cast(tip, *in.Cast, s.tuning.CastSpeed) {
		events = append(events, Event{Type: EventCast, X: in.Cast.X, Y: in.Cast.Y, Score: s.ledger.Score()})
	}

	switch s.hook.State {
	case HookIdle:
		s.castAnim = max(s.castAnim-s.tuning.CastAnimStep, 0)
	case HookCasting:
		s.castAnim = min(s.castAnim+s.tuning.CastAnimStep, 1)
	}

	if s.hook.advance(s.tuning, tip) {
		landed, over := s.resolveCatch()
		if landed == nil {
			events = append(events, Event{Type: EventReeled, Score: s.ledger.Score()})
		} else {
			events = append(events, landed...)
		}
		if over {
			return events
		}
	}

	if e := s.spawner.trySpawn(s.rng, s.clock.Remaining, s.nextID+1); e != nil {
		s.nextID = e.ID
		s.entities = append(s.entities, e)
		events = append(events, Event{Type: EventSpawned, Entity: e.ID, Kind: e.Kind.ID, Category: e.Kind.Category, X: e.X, Y: e.Y, Score: s.ledger.Score()})
	}

	s.moveEntities()
	if caught := s.detectCatch(); caught != nil {
		events = append(events, *caught)
	}
	s.particles.update(s.tuning.WaterLevel)

	return events
}

func (s *Session) moveBoat(in Input) {
	half := s.tuning.BoatWidth / 2
	if in.Left && s.boatX > half {
		s.boatX -= s.tuning.BoatSpeed
	}
	if in.Right && s.boatX < s.tuning.CanvasWidth-half {
		s.boatX += s.tuning.BoatSpeed
	}
}

func (s *Session) moveEntities() {
	limit := s.tuning.CanvasWidth + s.tuning.DespawnMargin
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Attached.Caught {
			e.X = s.hook.Pos.X
			e.Y = s.hook.Pos.Y + s.tuning.CaughtOffsetY
			kept = append(kept, e)
			continue
		}
		e.step(s.run, s.tuning.WobbleAmp)
		if e.X < limit {
			kept = append(kept, e)
		}
	}
	clear(s.entities[len(kept):])
	s.entities = kept
}

func (s *Session) end(reason OverReason) Event {
	s.state = StateGameOver
	s.reason = reason
	return Event{Type: EventGameOver, Reason: reason, Score: s.ledger.Score()}
}

func (s *Session) State() GameState {
	return s.state
}

func (s *Session) Reason() OverReason {
	return s.reason
}

func (s *Session) Score() int {
	return s.ledger.Score()
}

func (s *Session) Hook() Hook {
	return s.hook
}

func (s *Session) Tuning() Tuning {
	return s.tuning
}

func (s *Session) RodTip() Vec {
	return rodTip(s.tuning, s.boatX, s.castAnim, s.run)
}
