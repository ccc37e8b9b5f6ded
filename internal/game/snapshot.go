package game

type HookView struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	State HookState `json:"state"`
}

type EntityView struct {
	ID        EntityID  `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Kind      KindID    `json:"kind"`
	Glyph     string    `json:"glyph"`
	Color     string    `json:"color"`
	Size      SizeClass `json:"size"`
	Category  Category  `json:"category"`
	Direction int       `json:"direction"`
	Caught    bool      `json:"caught"`
}

type ParticleView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Alpha float64 `json:"alpha"`
}

// Snapshot is a self-contained copy of everything a renderer needs. Nothing
// in it aliases session memory.
type Snapshot struct {
	State      GameState  `json:"state"`
	Reason     OverReason `json:"reason,omitempty"`
	Score      int        `json:"score"`
	TimeLeft   int        `json:"time_left"`
	Remaining  float64    `json:"remaining"`
	Canvas     Vec        `json:"canvas"`
	WaterLevel float64    `json:"water_level"`
	BoatX      float64    `json:"boat_x"`
	BoatY      float64    `json:"boat_y"`
	BoatWidth  float64    `json:"boat_width"`
	RodTip     Vec        `json:"rod_tip"`
	CastAnim   float64    `json:"cast_anim"`
	Hook       HookView   `json:"hook"`

	Entities  []EntityView    `json:"entities"`
	Particles []ParticleView  `json:"particles"`
	Inventory []InventoryItem `json:"inventory"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Reason:     s.reason,
		Score:      s.ledger.Score(),
		TimeLeft:   s.clock.Display(),
		Remaining:  s.clock.Remaining,
		Canvas:     Vec{X: s.tuning.CanvasWidth, Y: s.tuning.CanvasHeight},
		WaterLevel: s.tuning.WaterLevel,
		BoatX:      s.boatX,
		BoatY:      boatY(s.tuning, s.run),
		BoatWidth:  s.tuning.BoatWidth,
		RodTip:     s.RodTip(),
		CastAnim:   s.castAnim,
		Hook:       HookView{X: s.hook.Pos.X, Y: s.hook.Pos.Y, State: s.hook.State},
		Entities:   make([]EntityView, 0, len(s.entities)),
		Particles:  make([]ParticleView, 0, len(s.particles.live)),
		Inventory:  append([]InventoryItem{}, s.inventory.items...),
	}
	for _, e := range s.entities {
		snap.Entities = append(snap.Entities, EntityView{
			ID:        e.ID,
			X:         e.X,
			Y:         e.Y,
			Kind:      e.Kind.ID,
			Glyph:     e.Kind.Glyph,
			Color:     e.Kind.Color,
			Size:      e.Kind.Size,
			Category:  e.Kind.Category,
			Direction: e.Direction,
			Caught:    e.Attached.Caught,
		})
	}
	for _, p := range s.particles.live {
		snap.Particles = append(snap.Particles, ParticleView{X: p.X, Y: p.Y, Size: p.Size, Alpha: p.Alpha})
	}
	return snap
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s HookState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s SizeClass) MarshalText() ([]byte, error) {
	switch s {
	case SizeLarge:
		return []byte("large"), nil
	case SizeMedium:
		return []byte("medium"), nil
	default:
		return []byte("small"), nil
	}
}

func (s *GameState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = StatePlaying
	case "game_over":
		*s = StateGameOver
	default:
		*s = StateMenu
	}
	return nil
}

func (s *HookState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "casting":
		*s = HookCasting
	case "reeling":
		*s = HookReeling
	default:
		*s = HookIdle
	}
	return nil
}

func (s *SizeClass) UnmarshalText(b []byte) error {
	switch string(b) {
	case "large":
		*s = SizeLarge
	case "medium":
		*s = SizeMedium
	default:
		*s = SizeSmall
	}
	return nil
}
