package game

import "math/rand/v2"

// newRNG returns the session's generator. Every draw the simulation makes
// goes through it, so one seed replays a whole shift.
func newRNG(seed int64) *rand.Rand {
	hi := splitmix(uint64(seed))
	lo := splitmix(hi)
	return rand.New(rand.NewPCG(hi, lo)) // #nosec G404 -- gameplay randomness
}

// splitmix spreads nearby seeds (0, 1, 2...) across the whole state space.
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// jitter draws from [-spread/2, spread/2).
func jitter(rng *rand.Rand, spread float64) float64 {
	return (rng.Float64() - 0.5) * spread
}
