package game

import (
	"math"
	"math/rand/v2"
)

type Particle struct {
	ID    uint64
	X, Y  float64
	Size  float64
	Speed float64
	Alpha float64
}

type particleTracker struct {
	live   []Particle
	nextID uint64
}

func (pt *particleTracker) reset() {
	pt.live = pt.live[:0]
	pt.nextID = 0
}

func (pt *particleTracker) burst(rng *rand.Rand, x, y float64, count int) {
	for i := 0; i < count; i++ {
		pt.nextID++
		pt.live = append(pt.live, Particle{
			ID:    pt.nextID,
			X:     x + jitter(rng, 30),
			Y:     y,
			Size:  rng.Float64()*4 + 2,
			Speed: rng.Float64()*2 + 1,
			Alpha: 1,
		})
	}
}

// update rises every bubble, pops the ones that reach the surface and prunes
// the dead.
func (pt *particleTracker) update(surface float64) {
	kept := pt.live[:0]
	for _, p := range pt.live {
		p.Y -= p.Speed
		p.X += math.Sin(p.Y*0.1) * 0.5
		if p.Y <= surface {
			p.Alpha = 0
		}
		if p.Alpha > 0 {
			kept = append(kept, p)
		}
	}
	pt.live = kept
}
