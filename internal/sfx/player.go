package sfx

import (
	"io"
	"log"
	"sync"

	"github.com/gopxl/beep"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player turns session events into sound. Without an audio device it stays
// silent and every call is a no-op.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	out    sync.Locker
	volume float64
	muted  bool
	logger *log.Logger
}

func New(volume float64, muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{mixer: &beep.Mixer{}, volume: volume, muted: muted, logger: logger}
	out, err := openSpeaker(sampleRate, p.mixer)
	if err != nil {
		logger.Printf("audio disabled: %v", err)
		return p
	}
	p.out = out
	return p
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out != nil
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted && p.out != nil {
		p.out.Lock()
		p.mixer.Clear()
		p.out.Unlock()
	}
}

// Handle plays the cue of every event in order.
func (p *Player) Handle(events []game.Event) {
	for _, ev := range events {
		if c := CueFor(ev); c != CueNone {
			p.Play(c)
		}
	}
}

func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil || p.muted {
		return
	}
	s := Build(c, sampleRate, p.volume)
	if s == nil {
		return
	}
	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
}

// Playing reports how many cues are still sounding.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil {
		return 0
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.mixer.Len()
}

func (p *Player) Close() {
	p.SetMuted(true)
}
