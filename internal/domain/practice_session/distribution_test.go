package practicesession

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistribution_Index(t *testing.T) {
	t.Parallel()

	d := newDistribution([]float64{5, 2})

	tests := []struct {
		r    float64
		want int
	}{
		{0, 0},
		{3, 0},
		{5, 0}, // inclusive upper bound
		{5.0001, 1},
		{6, 1},
		{7, 1},
		{7.5, 0}, // past the total falls back to the first entry
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.index(tt.r), "r=%v", tt.r)
	}
	assert.Equal(t, 7.0, d.total())
}

func TestDistribution_Empty(t *testing.T) {
	t.Parallel()

	d := newDistribution(nil)
	assert.Equal(t, 0.0, d.total())
	assert.Equal(t, 0, d.index(0))
}

func TestDistribution_SampleFrequencies(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	d := newDistribution([]float64{5, 3, 2})

	counts := make([]int, 3)
	const n = 100_000
	for i := 0; i < n; i++ {
		counts[d.sample(rng)]++
	}

	assert.InDelta(t, 0.5, float64(counts[0])/n, 0.01)
	assert.InDelta(t, 0.3, float64(counts[1])/n, 0.01)
	assert.InDelta(t, 0.2, float64(counts[2])/n, 0.01)
}
