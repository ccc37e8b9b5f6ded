package game

import "math"

type EntityID uint64

// Attachment is Free (zero value) or CaughtBy a hook.
type Attachment struct {
	Hook   HookID
	Caught bool
}

func CaughtBy(hook HookID) Attachment {
	return Attachment{Hook: hook, Caught: true}
}

type Entity struct {
	ID        EntityID
	X, Y      float64
	Kind      *EntityKind
	Direction int
	Phase     float64
	Attached  Attachment
}

// step advances free-swimming kinematics. Fish wobble on a sine keyed to the
// session run time; trash drifts flat.
func (e *Entity) step(runSeconds, wobbleAmp float64) {
	e.X += e.Kind.Speed * float64(e.Direction)
	if e.Kind.Category == CategoryFish {
		e.Y += math.Sin(runSeconds*1000/200+e.Phase) * wobbleAmp
	}
}

func (e *Entity) distanceTo(x, y float64) float64 {
	return math.Hypot(e.X-x, e.Y-y)
}
