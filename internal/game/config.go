package game

import (
	"fmt"
	"math"
)

type Band struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

type Tuning struct {
	CanvasWidth  float64 `toml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height"`
	WaterLevel   float64 `toml:"water_level"`

	BoatWidth float64 `toml:"boat_width"`
	BoatSpeed float64 `toml:"boat_speed"`

	CastSpeed     float64 `toml:"cast_speed"`
	ReelSpeed     float64 `toml:"reel_speed"`
	ReelEpsilon   float64 `toml:"reel_epsilon"`
	CastAnimStep  float64 `toml:"cast_anim_step"`
	FloorMargin   float64 `toml:"floor_margin"`
	CaptureRadius float64 `toml:"capture_radius"`
	CaughtOffsetY float64 `toml:"caught_offset_y"`

	SessionSeconds    float64 `toml:"session_seconds"`
	SpawnGuardSeconds float64 `toml:"spawn_guard_seconds"`
	MaxFrameGap       float64 `toml:"max_frame_gap"`

	SpawnChance   float64 `toml:"spawn_chance"`
	TrashChance   float64 `toml:"trash_chance"`
	SpawnX        float64 `toml:"spawn_x"`
	DespawnMargin float64 `toml:"despawn_margin"`
	WobbleAmp     float64 `toml:"wobble_amp"`

	Shallow Band `toml:"shallow"`
	Medium  Band `toml:"medium"`
	Deep    Band `toml:"deep"`

	CatchBurst     int `toml:"catch_burst"`
	LandingBurst   int `toml:"landing_burst"`
	InventoryLimit int `toml:"inventory_limit"`
}

func DefaultTuning() Tuning {
	const (
		width  = 1180
		height = 820
		water  = 220
	)
	return Tuning{
		CanvasWidth:  width,
		CanvasHeight: height,
		WaterLevel:   water,

		BoatWidth: 380,
		BoatSpeed: 5,

		CastSpeed:     8,
		ReelSpeed:     10,
		ReelEpsilon:   5,
		CastAnimStep:  0.1,
		FloorMargin:   20,
		CaptureRadius: 30,
		CaughtOffsetY: 20,

		SessionSeconds:    60,
		SpawnGuardSeconds: 0.1,
		MaxFrameGap:       0.5,

		SpawnChance:   0.04,
		TrashChance:   0.2,
		SpawnX:        -100,
		DespawnMargin: 150,
		WobbleAmp:     0.8,

		Shallow: Band{Min: water + 60, Max: water + 180},
		Medium:  Band{Min: water + 180, Max: water + 400},
		Deep:    Band{Min: water + 400, Max: height - 60},

		CatchBurst:     8,
		LandingBurst:   15,
		InventoryLimit: 20,
	}
}

func (t Tuning) Validate() error {
	if t.CanvasWidth <= 0 || t.CanvasHeight <= 0 {
		return fmt.Errorf("canvas must be positive, got %gx%g", t.CanvasWidth, t.CanvasHeight)
	}
	if t.WaterLevel <= 0 || t.WaterLevel >= t.CanvasHeight {
		return fmt.Errorf("water level %g outside canvas height %g", t.WaterLevel, t.CanvasHeight)
	}
	if t.BoatWidth <= 0 || t.BoatWidth > t.CanvasWidth {
		return fmt.Errorf("invalid boat width: %g", t.BoatWidth)
	}
	for name, v := range map[string]float64{
		"boat speed":      t.BoatSpeed,
		"cast speed":      t.CastSpeed,
		"reel speed":      t.ReelSpeed,
		"capture radius":  t.CaptureRadius,
		"session seconds": t.SessionSeconds,
		"max frame gap":   t.MaxFrameGap,
		"cast anim step":  t.CastAnimStep,
	} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be positive, got %g", name, v)
		}
	}
	if !isProbability(t.SpawnChance) {
		return fmt.Errorf("spawn chance must be within [0,1], got %g", t.SpawnChance)
	}
	if !isProbability(t.TrashChance) {
		return fmt.Errorf("trash chance must be within [0,1], got %g", t.TrashChance)
	}
	if t.ReelEpsilon < 0 || t.DespawnMargin < 0 || t.SpawnGuardSeconds < 0 || t.FloorMargin < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	for name, b := range map[DepthBand]Band{DepthShallow: t.Shallow, DepthMedium: t.Medium, DepthDeep: t.Deep} {
		if b.Max <= b.Min {
			return fmt.Errorf("%s depth band is empty: [%g,%g)", name, b.Min, b.Max)
		}
	}
	if t.Shallow.Max > t.Medium.Min || t.Medium.Max > t.Deep.Min {
		return fmt.Errorf("depth bands overlap")
	}
	if t.InventoryLimit < 1 {
		return fmt.Errorf("inventory limit must be at least 1, got %d", t.InventoryLimit)
	}
	if t.CatchBurst < 0 || t.LandingBurst < 0 {
		return fmt.Errorf("burst sizes must not be negative")
	}
	return nil
}

func (t Tuning) Band(depth DepthBand) Band {
	switch depth {
	case DepthShallow:
		return t.Shallow
	case DepthMedium:
		return t.Medium
	default:
		return t.Deep
	}
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
