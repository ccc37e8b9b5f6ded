package game

import (
	"testing"
	"time"
)

func TestClockDisplayIsCeiling(t *testing.T) {
	tests := []struct {
		remaining float64
		want      int
	}{
		{remaining: 60, want: 60},
		{remaining: 59.01, want: 60},
		{remaining: 0.2, want: 1},
		{remaining: 0, want: 0},
	}
	for _, tc := range tests {
		c := Clock{Remaining: tc.remaining}
		if got := c.Display(); got != tc.want {
			t.Fatalf("Display(%g)=%d want=%d", tc.remaining, got, tc.want)
		}
	}
}

func TestClockConsumeClampsAtZero(t *testing.T) {
	c := newClock(1, 0.5, epoch)
	if c.consume(0.4) {
		t.Fatalf("did not expect expiry after 0.4s")
	}
	if !c.consume(0.7) {
		t.Fatalf("expected expiry")
	}
	if c.Remaining != 0 {
		t.Fatalf("expected clamp to 0, got %g", c.Remaining)
	}
}

func TestClockSampleRejectsLargeGaps(t *testing.T) {
	c := newClock(60, 0.5, epoch)

	if dt, ok := c.sample(epoch.Add(100 * time.Millisecond)); !ok || dt != 0.1 {
		t.Fatalf("expected 0.1s sample, got %g ok=%v", dt, ok)
	}
	if _, ok := c.sample(epoch.Add(600 * time.Millisecond)); ok {
		t.Fatalf("expected exactly 0.5s gap to be rejected")
	}
	if dt, ok := c.sample(epoch.Add(650 * time.Millisecond)); !ok || dt < 0.0499 || dt > 0.0501 {
		t.Fatalf("expected sample refreshed after a gap, got %g ok=%v", dt, ok)
	}
	if dt, ok := c.sample(epoch); !ok || dt != 0 {
		t.Fatalf("expected backwards time to clamp to 0, got %g ok=%v", dt, ok)
	}
}
