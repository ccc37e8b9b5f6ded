package game

import "slices"

// detectCatch attaches the first entity, in insertion order, that sits inside
// the capture radius of a casting hook.
func (s *Session) detectCatch() *Event {
	if s.hook.State != HookCasting {
		return nil
	}
	if _, busy := s.hook.Caught(); busy {
		return nil
	}
	for _, e := range s.entities {
		if e.distanceTo(s.hook.Pos.X, s.hook.Pos.Y) >= s.tuning.CaptureRadius {
			continue
		}
		e.Attached = CaughtBy(s.hook.ID)
		s.hook.attach(e.ID)
		s.particles.burst(s.rng, e.X, e.Y, s.tuning.CatchBurst)
		return &Event{
			Type:     EventCaught,
			Entity:   e.ID,
			Kind:     e.Kind.ID,
			Category: e.Kind.Category,
			X:        e.X,
			Y:        e.Y,
			Score:    s.ledger.Score(),
		}
	}
	return nil
}

// resolveCatch lands whatever the hook brought back to the rod tip. A trash
// landing ends the session in the same step that applies its penalty; over
// tells the caller to stop processing the tick.
func (s *Session) resolveCatch() (events []Event, over bool) {
	id, ok := s.hook.Caught()
	if !ok {
		return nil, false
	}
	s.hook.release()

	idx := s.entityIndex(id)
	if idx < 0 {
		return nil, false
	}
	entity := s.entities[idx]
	kind := entity.Kind

	delta := kind.Score
	if kind.IsTrash() {
		delta = -1
	}
	score := s.ledger.apply(delta)

	s.particles.burst(s.rng, s.boatX, s.tuning.WaterLevel, s.tuning.LandingBurst)
	s.inventory.add(InventoryItem{
		Kind:     kind.ID,
		Glyph:    kind.Glyph,
		Category: kind.Category,
		X:        100 + jitter(s.rng, 70),
		Y:        -55 + jitter(s.rng, 40),
		Rotation: jitter(s.rng, 1.5),
	})
	s.entities = slices.Delete(s.entities, idx, idx+1)

	events = append(events, Event{
		Type:     EventLanded,
		Entity:   id,
		Kind:     kind.ID,
		Category: kind.Category,
		X:        s.boatX,
		Y:        s.tuning.WaterLevel,
		Delta:    delta,
		Score:    score,
	})
	if kind.IsTrash() {
		events = append(events, s.end(ReasonTrash))
		return events, true
	}
	return events, false
}

func (s *Session) entityIndex(id EntityID) int {
	for i, e := range s.entities {
		if e.ID == id {
			return i
		}
	}
	return -1
}
