package prng

import "math"

const (
	maxGeometricP       = 0.999
	poissonNormalCutoff = 30.0
)

// Bool returns true with probability p. Exactly one float draw is consumed
// regardless of p, which keeps downstream sequences aligned when a caller
// tweaks a probability.
func (g *Generator) Bool(p float64) bool {
	return g.Float64() < p
}

// Choice picks a uniform element. An empty slice returns the zero value and
// consumes nothing.
func Choice[T any](g *Generator, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[g.Int(0, len(items)-1)]
}

// Weighted picks an element with probability proportional to its weight.
func Weighted[T any](g *Generator, items []T, weights []float64) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	idx := g.WeightedIndex(weights[:min(len(weights), len(items))])
	return items[idx]
}

// WeightedIndex returns an index with probability proportional to weights[i].
// Negative and non-finite weights count as zero. When every weight is zero
// the first index is returned. One draw is consumed whenever weights is
// non-empty.
func (g *Generator) WeightedIndex(weights []float64) int {
	if len(weights) == 0 {
		return 0
	}
	total := 0.0
	last := 0
	for i, w := range weights {
		if usableWeight(w) {
			total += w
			last = i
		}
	}
	r := g.Float64() * total
	if total <= 0 {
		return 0
	}
	acc := 0.0
	for i, w := range weights {
		if !usableWeight(w) {
			continue
		}
		acc += w
		if r < acc {
			return i
		}
	}
	return last
}

func usableWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Geometric returns the number of successes before the first failure, where
// each trial succeeds with probability p. It uses inverse-transform sampling
// so a single float draw is consumed. p <= 0 yields 0; p >= 1 is clamped to
// 0.999 so the result stays finite.
func (g *Generator) Geometric(p float64) int {
	u := 1 - g.Float64()
	if !(p > 0) {
		return 0
	}
	if p > maxGeometricP {
		p = maxGeometricP
	}
	k := math.Floor(math.Log(u) / math.Log(p))
	if math.IsNaN(k) || k < 0 {
		return 0
	}
	return int(k)
}

// Poisson samples a Poisson count with mean lambda. lambda <= 0 returns 0
// without consuming a draw. Small means use Knuth's multiplication method;
// means above 30 use a rounded normal approximation floored at 0.
func (g *Generator) Poisson(lambda float64) int {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return 0
	}
	if lambda > poissonNormalCutoff {
		k := math.Round(lambda + math.Sqrt(lambda)*g.Normal())
		if k < 0 || math.IsNaN(k) {
			return 0
		}
		return int(k)
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= g.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// Normal returns a standard normal variate via Box–Muller. Two float draws
// are consumed and no spare value is cached.
func (g *Generator) Normal() float64 {
	u1 := 1 - g.Float64()
	u2 := g.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func (g *Generator) NormalWith(mean, stddev float64) float64 {
	return mean + stddev*g.Normal()
}

// LogNormal returns exp(mu + sigma*N(0,1)).
func (g *Generator) LogNormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*g.Normal())
}

// Sign returns -1 or 1 with equal probability.
func (g *Generator) Sign() float64 {
	if g.Bool(0.5) {
		return -1
	}
	return 1
}
