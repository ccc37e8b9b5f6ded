package game

import (
	"math"
	"time"
)

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type OverReason string

const (
	ReasonNone  OverReason = ""
	ReasonTime  OverReason = "time"
	ReasonTrash OverReason = "trash"
)

// Clock is the session countdown. It is sampled once per tick with a
// monotonic timestamp.
type Clock struct {
	Remaining float64

	maxGap float64
	last   time.Time
}

func newClock(seconds, maxGap float64, now time.Time) Clock {
	return Clock{Remaining: seconds, maxGap: maxGap, last: now}
}

// sample refreshes the clock reading and returns the elapsed seconds. ok is
// false when the gap since the previous sample is too large to simulate
// (backgrounded window, debugger pause); the caller skips that tick.
func (c *Clock) sample(now time.Time) (elapsed float64, ok bool) {
	elapsed = now.Sub(c.last).Seconds()
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= c.maxGap {
		return 0, false
	}
	return elapsed, true
}

// consume takes elapsed seconds off the countdown and reports expiry.
func (c *Clock) consume(elapsed float64) bool {
	c.Remaining -= elapsed
	if c.Remaining <= 0 {
		c.Remaining = 0
		return true
	}
	return false
}

func (c Clock) Display() int {
	return int(math.Ceil(c.Remaining))
}
