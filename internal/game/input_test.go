package game

import "testing"

func TestInputQueueHeldKeysPersistUntilReleased(t *testing.T) {
	q := NewInputQueue(8)
	q.Enqueue(Action{Kind: ActionLeft, Down: true})

	if in := q.Drain(); !in.Left || in.Right {
		t.Fatalf("expected left held, got %+v", in)
	}
	if in := q.Drain(); !in.Left {
		t.Fatalf("expected left still held on an empty drain")
	}
	q.Enqueue(Action{Kind: ActionLeft, Down: false})
	if in := q.Drain(); in.Left {
		t.Fatalf("expected left released")
	}
}

func TestInputQueueLastCastWins(t *testing.T) {
	q := NewInputQueue(8)
	q.Enqueue(Action{Kind: ActionCast, Aim: Vec{X: 1, Y: 2}})
	q.Enqueue(Action{Kind: ActionCast, Aim: Vec{X: 3, Y: 4}})
	q.Enqueue(Action{Kind: ActionStart})

	in := q.Drain()
	if in.Cast == nil || *in.Cast != (Vec{X: 3, Y: 4}) {
		t.Fatalf("expected last cast to win, got %+v", in.Cast)
	}
	if !in.Start {
		t.Fatalf("expected start request")
	}
	if again := q.Drain(); again.Cast != nil || again.Start {
		t.Fatalf("expected one-shot actions consumed, got %+v", again)
	}
}

func TestInputQueueDropsWhenSaturated(t *testing.T) {
	q := NewInputQueue(2)
	q.Enqueue(Action{Kind: ActionCast, Aim: Vec{X: 1}})
	q.Enqueue(Action{Kind: ActionCast, Aim: Vec{X: 2}})
	q.Enqueue(Action{Kind: ActionCast, Aim: Vec{X: 3}})

	if in := q.Drain(); in.Cast == nil || in.Cast.X != 2 {
		t.Fatalf("expected overflow dropped, got %+v", in.Cast)
	}
}

func TestNilInputQueueIsSafe(t *testing.T) {
	var q *InputQueue
	q.Enqueue(Action{Kind: ActionStart})
	q.Release()
	if in := q.Drain(); in != (Input{}) {
		t.Fatalf("expected zero input, got %+v", in)
	}
}

func TestKeyReleaseSurvivesSaturation(t *testing.T) {
	q := NewInputQueue(1)
	q.Enqueue(Action{Kind: ActionRight, Down: true})
	q.Enqueue(Action{Kind: ActionCast, Aim: Vec{X: 1}})
	q.Enqueue(Action{Kind: ActionStart})
	q.Enqueue(Action{Kind: ActionRight, Down: false})

	in := q.Drain()
	if in.Right {
		t.Fatalf("expected right released even with the queue full")
	}
	if in.Cast == nil || in.Start {
		t.Fatalf("expected the cast kept and the overflow start dropped, got %+v", in)
	}
}
