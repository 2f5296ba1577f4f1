// Package random provides the uniform random source used for spawning.
package random

import (
	"math/rand/v2"
	"time"
)

// Source produces uniform random values.
type Source interface {
	// IntRange returns a uniform integer in [lo, hi). Returns lo when the range is empty.
	IntRange(lo, hi int) int
}

// Rand is a seeded Source backed by a PCG generator.
type Rand struct {
	r *rand.Rand
}

// New creates a Source from seed. A zero seed is replaced by a time-derived one.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange returns a uniform integer in [lo, hi).
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}
