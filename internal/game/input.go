package game

import "sync"

type Input struct {
	Left  bool
	Right bool
	Cast  *Vec
	Start bool
}

type ActionKind int

const (
	ActionLeft ActionKind = iota
	ActionRight
	ActionCast
	ActionStart
)

// Action is one captured player gesture. Down marks press vs release for
// the held boat keys; Aim is the cast target in canvas space.
type Action struct {
	Kind ActionKind
	Down bool
	Aim  Vec
}

// InputQueue buffers actions captured on other goroutines until the owning
// loop drains them at the start of its next tick. Boat keys are folded into
// held state as they arrive, so saturation only ever drops casts and starts.
type InputQueue struct {
	ch chan Action

	mu    sync.Mutex
	left  bool
	right bool
}

func NewInputQueue(size int) *InputQueue {
	if size < 1 {
		size = 16
	}
	return &InputQueue{ch: make(chan Action, size)}
}

func (q *InputQueue) Enqueue(a Action) {
	if q == nil {
		return
	}
	switch a.Kind {
	case ActionLeft, ActionRight:
		q.mu.Lock()
		if a.Kind == ActionLeft {
			q.left = a.Down
		} else {
			q.right = a.Down
		}
		q.mu.Unlock()
		return
	}
	select {
	case q.ch <- a:
	default:
		// Drop only when queue is saturated; a stale gesture is worthless.
	}
}

// Drain folds every pending action into one Input. Held keys persist
// between drains until released; the last cast wins.
func (q *InputQueue) Drain() Input {
	if q == nil {
		return Input{}
	}
	var in Input
	for {
		select {
		case a := <-q.ch:
			switch a.Kind {
			case ActionCast:
				aim := a.Aim
				in.Cast = &aim
			case ActionStart:
				in.Start = true
			}
		default:
			q.mu.Lock()
			in.Left, in.Right = q.left, q.right
			q.mu.Unlock()
			return in
		}
	}
}

// Release clears held keys, e.g. when the window loses focus.
func (q *InputQueue) Release() {
	if q == nil {
		return
	}
	q.mu.Lock()
	q.left, q.right = false, false
	q.mu.Unlock()
}
