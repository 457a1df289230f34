package game

import "math/rand"

// Rand is the random capability the simulation draws from. *rand.Rand
// satisfies it; tests may substitute a scripted source to make spawn and
// drop decisions deterministic.
type Rand interface {
	Float64() float64
}

// newRand builds the default seeded source.
func newRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
}

// uniform returns a draw in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// chance returns true with probability p.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// weighted3 picks 0, 1 or 2 with the given relative weights.
func weighted3(rng Rand, w0, w1, w2 int) int {
	total := w0 + w1 + w2
	roll := rng.Float64() * float64(total)
	if roll < float64(w0) {
		return 0
	}
	if roll < float64(w0+w1) {
		return 1
	}
	return 2
}
