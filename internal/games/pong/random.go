package pong

import "math/rand"

// Random is the source of rebound and serve angles.
type Random interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
}

type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random backed by math/rand with the given seed.
// Equal seeds give equal sequences.
func NewRandom(seed int64) Random {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) Uniform(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// FixedRandom always lands at the same fraction of the requested range:
// 0 gives min, 0.5 the midpoint. Intended for tests.
type FixedRandom float64

func (f FixedRandom) Uniform(min, max float64) float64 {
	return min + float64(f)*(max-min)
}
