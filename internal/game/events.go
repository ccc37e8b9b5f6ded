package game

type EventType string

const (
	EventSessionStarted EventType = "session_started"
	EventSpawned        EventType = "spawned"
	EventCast           EventType = "cast"
	EventCaught         EventType = "caught"
	EventReeled         EventType = "reeled"
	EventLanded         EventType = "landed"
	EventGameOver       EventType = "game_over"
)

// Event is what a render or audio consumer hears about a tick. Only the
// fields relevant to the type are set.
type Event struct {
	Type     EventType  `json:"type"`
	Entity   EntityID   `json:"entity,omitempty"`
	Kind     KindID     `json:"kind,omitempty"`
	Category Category   `json:"category,omitempty"`
	X        float64    `json:"x,omitempty"`
	Y        float64    `json:"y,omitempty"`
	Delta    int        `json:"delta,omitempty"`
	Score    int        `json:"score"`
	Reason   OverReason `json:"reason,omitempty"`
}
