package practicesession

import "math/rand/v2"

// Rand is the randomness the selector needs. *rand.Rand from math/rand/v2
// satisfies it; tests plug in fixed values.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// distribution is a discrete distribution over indexes 0..n-1 backed by a
// cumulative weight array.
type distribution struct {
	cumulative []float64
}

func newDistribution(weights []float64) distribution {
	cumulative := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}
	return distribution{cumulative: cumulative}
}

func (d distribution) total() float64 {
	if len(d.cumulative) == 0 {
		return 0
	}
	return d.cumulative[len(d.cumulative)-1]
}

// index returns the first index whose cumulative weight is >= r. If r lies
// beyond the total it falls back to index 0.
func (d distribution) index(r float64) int {
	for i, c := range d.cumulative {
		if r <= c {
			return i
		}
	}
	return 0
}

func (d distribution) sample(rng Rand) int {
	return d.index(rng.Float64() * d.total())
}
