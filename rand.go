package ink

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rand supplies uniform random scalars to the live engine. Injecting
// the source keeps "random" strokes reproducible in tests and explains
// the cached engine's relationship to the live one: same geometry,
// generator replaced by a lookup.
type Rand interface {
	// Uniform returns a sample uniformly distributed in [lo, hi).
	// Implementations must return lo when hi <= lo.
	Uniform(lo, hi float64) float64
}

// seededRand is the default Rand, backed by a seedable PRNG.
type seededRand struct {
	src rand.Source
}

// NewSeededRand returns a Rand backed by a PRNG seeded with seed.
// Two sources with the same seed produce the same sample sequence.
//
// The returned Rand is not safe for concurrent use; that matches the
// pipeline's single-threaded call-and-return model.
func NewSeededRand(seed uint64) Rand {
	return &seededRand{src: rand.NewSource(seed)}
}

func (r *seededRand) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: r.src}.Rand()
}
