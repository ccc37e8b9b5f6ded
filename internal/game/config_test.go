package game

import "testing"

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestDefaultTuningKeepsLiteralBands(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		depth DepthBand
		want  Band
	}{
		{depth: DepthShallow, want: Band{Min: 280, Max: 400}},
		{depth: DepthMedium, want: Band{Min: 400, Max: 620}},
		{depth: DepthDeep, want: Band{Min: 620, Max: 760}},
	}
	for _, tc := range tests {
		if got := tuning.Band(tc.depth); got != tc.want {
			t.Fatalf("Band(%s)=%+v want=%+v", tc.depth, got, tc.want)
		}
	}
}

func TestTuningValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{name: "zero canvas", mutate: func(t *Tuning) { t.CanvasWidth = 0 }},
		{name: "water below floor", mutate: func(t *Tuning) { t.WaterLevel = 900 }},
		{name: "spawn chance above one", mutate: func(t *Tuning) { t.SpawnChance = 1.5 }},
		{name: "negative trash chance", mutate: func(t *Tuning) { t.TrashChance = -0.1 }},
		{name: "zero reel speed", mutate: func(t *Tuning) { t.ReelSpeed = 0 }},
		{name: "empty band", mutate: func(t *Tuning) { t.Deep.Max = t.Deep.Min }},
		{name: "overlapping bands", mutate: func(t *Tuning) { t.Shallow.Max = 500 }},
		{name: "inventory limit", mutate: func(t *Tuning) { t.InventoryLimit = 0 }},
		{name: "zero session", mutate: func(t *Tuning) { t.SessionSeconds = 0 }},
	}
	for _, tc := range tests {
		tuning := DefaultTuning()
		tc.mutate(&tuning)
		if err := tuning.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
