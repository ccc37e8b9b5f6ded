package gui

import "github.com/appengine-ltd/azure-guardian/internal/parser"

type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

// intentQueue carries hotkey intents from input capture to the controller
// within one frame.
type intentQueue struct {
	ch chan parser.Intent
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

func (q *intentQueue) EnqueueIntent(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Drop only when queue is saturated; key repeats are non-critical.
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

// drain hands every pending intent to exec in arrival order.
func (q *intentQueue) drain(exec func(parser.Intent)) int {
	n := 0
	for {
		intent, ok := q.Dequeue()
		if !ok {
			return n
		}
		exec(intent)
		n++
	}
}
