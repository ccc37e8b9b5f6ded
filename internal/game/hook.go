package game

import "math"

type HookID int

const primaryHook HookID = 1

type HookState int

const (
	HookIdle HookState = iota
	HookCasting
	HookReeling
)

func (s HookState) String() string {
	switch s {
	case HookIdle:
		return "idle"
	case HookCasting:
		return "casting"
	case HookReeling:
		return "reeling"
	default:
		return "unknown"
	}
}

type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Hook struct {
	ID    HookID
	Pos   Vec
	Vel   Vec
	State HookState

	caught    EntityID
	hasCaught bool
}

func (h *Hook) Caught() (EntityID, bool) {
	return h.caught, h.hasCaught
}

func (h *Hook) attach(id EntityID) {
	h.caught = id
	h.hasCaught = true
	h.State = HookReeling
}

func (h *Hook) release() {
	h.caught = 0
	h.hasCaught = false
}

// cast launches the hook from tip toward aim. Only an idle hook can be cast.
func (h *Hook) cast(tip, aim Vec, speed float64) bool {
	if h.State != HookIdle {
		return false
	}
	angle := math.Atan2(aim.Y-tip.Y, aim.X-tip.X)
	h.Pos = tip
	h.Vel = Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	h.State = HookCasting
	return true
}

// advance moves the hook one tick and reports whether a reel just finished.
func (h *Hook) advance(t Tuning, tip Vec) bool {
	switch h.State {
	case HookIdle:
		h.Pos = tip
	case HookCasting:
		h.Pos.X += h.Vel.X
		h.Pos.Y += h.Vel.Y
		if h.Pos.Y >= t.CanvasHeight-t.FloorMargin || h.Pos.X < 0 || h.Pos.X > t.CanvasWidth {
			h.State = HookReeling
		}
	case HookReeling:
		dx := tip.X - h.Pos.X
		dy := tip.Y - h.Pos.Y
		if math.Hypot(dx, dy) < t.ReelSpeed+t.ReelEpsilon {
			h.State = HookIdle
			return true
		}
		angle := math.Atan2(dy, dx)
		h.Pos.X += math.Cos(angle) * t.ReelSpeed
		h.Pos.Y += math.Sin(angle) * t.ReelSpeed
	}
	return false
}

const (
	rodLength     = 140.0
	rodStartAngle = -math.Pi / 2.5
	rodEndAngle   = 0.2
)

// boatY is the hull's waterline position including the gentle bob.
func boatY(t Tuning, runSeconds float64) float64 {
	bob := math.Sin(runSeconds*1000/500) * 2
	return t.WaterLevel - 25 + bob
}

// rodTip derives the rod tip from the boat position and how far the rod has
// swung forward (castAnim in [0,1]).
func rodTip(t Tuning, boatX, castAnim, runSeconds float64) Vec {
	fx := boatX - 50
	fy := boatY(t, runSeconds) - 70

	angle := rodStartAngle + (rodEndAngle-rodStartAngle)*castAnim
	handX := fx + math.Cos(angle)*30
	handY := fy - 30 + math.Sin(angle)*30

	return Vec{
		X: handX + math.Cos(angle)*rodLength,
		Y: handY + math.Sin(angle)*rodLength,
	}
}
