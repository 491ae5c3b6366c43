package prng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolConsumesOneDraw(t *testing.T) {
	a := New(TextSeed("bool"))
	b := New(TextSeed("bool"))

	a.Bool(0)
	b.Bool(1)
	assert.Equal(t, a.State(), b.State())

	assert.False(t, a.Bool(0))
	assert.True(t, a.Bool(1))
}

func TestChoice(t *testing.T) {
	g := New(TextSeed("choice"))
	before := g.State()
	assert.Equal(t, "", Choice(g, []string{}))
	assert.Equal(t, before, g.State(), "empty choice consumes nothing")

	items := []string{"a", "b", "c"}
	counts := map[string]int{}
	for i := 0; i < 3000; i++ {
		counts[Choice(g, items)]++
	}
	for _, item := range items {
		assert.InDelta(t, 1000, counts[item], 150)
	}
}

func TestWeightedProportions(t *testing.T) {
	g := New(TextSeed("weighted"))
	items := []string{"rare", "common"}
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[Weighted(g, items, []float64{1, 3})]++
	}
	assert.InDelta(t, 2500, counts["rare"], 250)
	assert.InDelta(t, 7500, counts["common"], 250)
}

func TestWeightedIndexDegenerateWeights(t *testing.T) {
	g := New(TextSeed("weighted"))
	assert.Equal(t, 0, g.WeightedIndex(nil))
	assert.Equal(t, 0, g.WeightedIndex([]float64{0, 0, 0}))
	assert.Equal(t, 0, g.WeightedIndex([]float64{-1, math.NaN()}))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 2, g.WeightedIndex([]float64{0, -3, 5, math.Inf(1)}))
	}
}

func TestGeometricMean(t *testing.T) {
	g := New(TextSeed("geometric"))
	const p = 0.6
	const n = 20000
	sum := 0
	for i := 0; i < n; i++ {
		k := g.Geometric(p)
		require.GreaterOrEqual(t, k, 0)
		sum += k
	}
	// mean successes before failure = p / (1-p)
	assert.InDelta(t, p/(1-p), float64(sum)/n, 0.08)
}

func TestGeometricBoundaries(t *testing.T) {
	g := New(TextSeed("geometric"))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, g.Geometric(0))
		assert.Equal(t, 0, g.Geometric(-1))
		assert.Equal(t, 0, g.Geometric(math.NaN()))
		k := g.Geometric(1)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 100000)
	}
}

func TestPoisson(t *testing.T) {
	g := New(TextSeed("poisson"))
	before := g.State()
	assert.Equal(t, 0, g.Poisson(0))
	assert.Equal(t, 0, g.Poisson(-2))
	assert.Equal(t, 0, g.Poisson(math.Inf(1)))
	assert.Equal(t, before, g.State(), "degenerate lambda consumes nothing")

	for _, lambda := range []float64{0.5, 4, 80} {
		sum := 0
		const n = 5000
		for i := 0; i < n; i++ {
			k := g.Poisson(lambda)
			require.GreaterOrEqual(t, k, 0)
			sum += k
		}
		assert.InDelta(t, lambda, float64(sum)/n, lambda*0.08+0.05, "lambda=%v", lambda)
	}
}

func TestNormalMoments(t *testing.T) {
	g := New(TextSeed("normal"))
	const n = 20000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := g.Normal()
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	assert.InDelta(t, 0, mean, 0.03)
	assert.InDelta(t, 1, sumSq/n-mean*mean, 0.05)
}

func TestLogNormalPositive(t *testing.T) {
	g := New(TextSeed("lognormal"))
	for i := 0; i < 1000; i++ {
		require.Greater(t, g.LogNormal(0, 1), 0.0)
	}
	assert.InDelta(t, 1.0, g.LogNormal(0, 0), 1e-12)
}
