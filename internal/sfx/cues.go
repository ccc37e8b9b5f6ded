package sfx

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueCast
	CueBite
	CueLand
	CueTrash
	CueTimeUp
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueCast:
		return "cast"
	case CueBite:
		return "bite"
	case CueLand:
		return "land"
	case CueTrash:
		return "trash"
	case CueTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// CueFor maps a session event to its sound. Spawns and empty reels are
// silent, and a trash game over is already covered by the trash landing.
func CueFor(ev game.Event) Cue {
	switch ev.Type {
	case game.EventSessionStarted:
		return CueStart
	case game.EventCast:
		return CueCast
	case game.EventCaught:
		return CueBite
	case game.EventLanded:
		if ev.Category == game.CategoryTrash {
			return CueTrash
		}
		return CueLand
	case game.EventGameOver:
		if ev.Reason == game.ReasonTime {
			return CueTimeUp
		}
	}
	return CueNone
}

// Build renders a cue at the given linear volume. It returns nil for CueNone.
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueStart:
		s = beep.Seq(
			tone(523.25, 90*time.Millisecond, WaveSquare, rate),
			tone(659.25, 90*time.Millisecond, WaveSquare, rate),
			tone(783.99, 140*time.Millisecond, WaveSquare, rate),
		)
	case CueCast:
		s = newVolume(newEnvelope(newOscillator(0, 180*time.Millisecond, WaveNoise, rate),
			180*time.Millisecond, 20*time.Millisecond, 150*time.Millisecond, rate), 0.5)
	case CueBite:
		s = beep.Mix(
			newVolume(tone(880, 250*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(1760, 250*time.Millisecond, WaveSine, rate), 0.3),
		)
	case CueLand:
		s = beep.Seq(
			tone(987.77, 80*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 220*time.Millisecond, WaveSquare, rate),
		)
	case CueTrash:
		s = tone(110, 300*time.Millisecond, WaveSaw, rate)
	case CueTimeUp:
		s = beep.Seq(
			tone(659.25, 150*time.Millisecond, WaveSine, rate),
			tone(523.25, 150*time.Millisecond, WaveSine, rate),
			tone(392, 300*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
