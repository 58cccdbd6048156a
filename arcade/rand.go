package arcade

import "math/rand/v2"

// Rand is the random source the engine draws from
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source; equal seeds replay identical sessions
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickWeighted draws an index with probability proportional to its weight
// Non-positive weights are never picked; returns -1 when nothing can be picked
func PickWeighted(r Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	x := r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if x < w {
			return i
		}
		x -= w
	}

	// Float rounding can leave x marginally above the last bucket
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// uniform draws from [lo, hi)
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
