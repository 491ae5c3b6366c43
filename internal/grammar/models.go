// Package grammar evaluates stochastic tree grammars into abstract system
// trees.
//
// A Grammar maps symbols to weighted production rules. Expansion starts from
// the axiom and grows the tree top-down with an explicit work stack, so the
// order in which random draws are taken is the pre-order of the produced
// tree and nothing depends on the Go call stack.
package grammar

import (
	"fmt"
	"math"

	"planets-generator/internal/prng"
	"planets-generator/internal/shared/errors"
)

type Symbol string

const (
	SymbolSystem   Symbol = "system"
	SymbolStar     Symbol = "star"
	SymbolStars    Symbol = "stars"
	SymbolPlanet   Symbol = "planet"
	SymbolPlanets  Symbol = "planets"
	SymbolMoon     Symbol = "moon"
	SymbolMoons    Symbol = "moons"
	SymbolSubmoon  Symbol = "submoon"
	SymbolSubmoons Symbol = "submoons"
)

var declaredSymbols = map[Symbol]bool{
	SymbolSystem:   true,
	SymbolStar:     true,
	SymbolStars:    true,
	SymbolPlanet:   true,
	SymbolPlanets:  true,
	SymbolMoon:     true,
	SymbolMoons:    true,
	SymbolSubmoon:  true,
	SymbolSubmoons: true,
}

// Declared reports whether s is part of the symbol alphabet.
func (s Symbol) Declared() bool {
	return declaredSymbols[s]
}

// NodeType returns the node type produced by a concrete symbol. Container
// symbols (stars, planets, moons, submoons) produce no node of their own.
func (s Symbol) NodeType() (NodeType, bool) {
	switch s {
	case SymbolSystem:
		return NodeSystem, true
	case SymbolStar:
		return NodeStar, true
	case SymbolPlanet:
		return NodePlanet, true
	case SymbolMoon, SymbolSubmoon:
		return NodeMoon, true
	default:
		return "", false
	}
}

func (s Symbol) isSubmoon() bool {
	return s == SymbolSubmoon || s == SymbolSubmoons
}

type NodeType string

const (
	NodeSystem NodeType = "system"
	NodeStar   NodeType = "star"
	NodePlanet NodeType = "planet"
	NodeMoon   NodeType = "moon"
)

type DistributionKind string

const (
	DistributionGeometric DistributionKind = "geometric"
	DistributionFixed     DistributionKind = "fixed"
	DistributionUniform   DistributionKind = "uniform"
	DistributionPoisson   DistributionKind = "poisson"
)

// RepeatDistribution is a tagged variant; only the fields of its Kind are read.
type RepeatDistribution struct {
	Kind   DistributionKind `json:"kind"`
	P      float64          `json:"p,omitempty"`
	Count  int              `json:"count,omitempty"`
	Min    int              `json:"min,omitempty"`
	Max    int              `json:"max,omitempty"`
	Lambda float64          `json:"lambda,omitempty"`
}

func Geometric(p float64) *RepeatDistribution {
	return &RepeatDistribution{Kind: DistributionGeometric, P: p}
}

func Fixed(count int) *RepeatDistribution {
	return &RepeatDistribution{Kind: DistributionFixed, Count: count}
}

func Uniform(min, max int) *RepeatDistribution {
	return &RepeatDistribution{Kind: DistributionUniform, Min: min, Max: max}
}

func Poisson(lambda float64) *RepeatDistribution {
	return &RepeatDistribution{Kind: DistributionPoisson, Lambda: lambda}
}

func (d RepeatDistribution) Validate() error {
	switch d.Kind {
	case DistributionGeometric:
		if math.IsNaN(d.P) || d.P < 0 || d.P > 1 {
			return errors.Invariantf("geometric p must be within [0,1], got %v", d.P)
		}
	case DistributionFixed:
		if d.Count < 0 {
			return errors.Invariantf("fixed count must not be negative, got %d", d.Count)
		}
	case DistributionUniform:
		if d.Min < 0 || d.Max < d.Min {
			return errors.Invariantf("uniform range [%d,%d] is invalid", d.Min, d.Max)
		}
	case DistributionPoisson:
		if math.IsNaN(d.Lambda) || math.IsInf(d.Lambda, 0) || d.Lambda < 0 {
			return errors.Invariantf("poisson lambda must be finite and non-negative, got %v", d.Lambda)
		}
	default:
		return errors.Invariantf("unknown repeat distribution %q", d.Kind)
	}
	return nil
}

// Sample draws a repeat count. Results are never negative.
func (d RepeatDistribution) Sample(g *prng.Generator) int {
	var n int
	switch d.Kind {
	case DistributionGeometric:
		n = g.Geometric(d.P)
	case DistributionFixed:
		n = d.Count
	case DistributionUniform:
		n = g.Int(d.Min, d.Max)
	case DistributionPoisson:
		n = g.Poisson(d.Lambda)
	}
	if n < 0 {
		return 0
	}
	return n
}

// ProductionRule is one weighted expansion option of a symbol. When Repeat is
// set, the trailing symbol of Expansion is instantiated a sampled number of
// times, clamped to [MinCount, MaxCount] when those are present.
type ProductionRule struct {
	Weight    float64             `json:"weight"`
	Expansion []Symbol            `json:"expansion"`
	Repeat    *RepeatDistribution `json:"repeat,omitempty"`
	MinCount  *int                `json:"min_count,omitempty"`
	MaxCount  *int                `json:"max_count,omitempty"`
}

// Bound is a helper for the optional count clamps.
func Bound(n int) *int {
	return &n
}

func (r ProductionRule) clamp(n int) int {
	if r.MinCount != nil && n < *r.MinCount {
		n = *r.MinCount
	}
	if r.MaxCount != nil && n > *r.MaxCount {
		n = *r.MaxCount
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Grammar is the complete structural description of a topology.
type Grammar struct {
	Axiom                  []Symbol                    `json:"axiom"`
	Rules                  map[Symbol][]ProductionRule `json:"rules"`
	MaxDepth               int                         `json:"max_depth"`
	StarCountProbabilities [3]float64                  `json:"star_count_probabilities"`
	AllowSubmoons          bool                        `json:"allow_submoons"`
}

// Clone returns a deep copy that shares no slices, maps or pointers with g.
func (g Grammar) Clone() Grammar {
	out := g
	out.Axiom = append([]Symbol(nil), g.Axiom...)
	if g.Rules != nil {
		out.Rules = make(map[Symbol][]ProductionRule, len(g.Rules))
		for symbol, rules := range g.Rules {
			cloned := make([]ProductionRule, len(rules))
			for i, r := range rules {
				cloned[i] = r.clone()
			}
			out.Rules[symbol] = cloned
		}
	}
	return out
}

func (r ProductionRule) clone() ProductionRule {
	out := r
	out.Expansion = append([]Symbol(nil), r.Expansion...)
	if r.Repeat != nil {
		repeat := *r.Repeat
		out.Repeat = &repeat
	}
	if r.MinCount != nil {
		out.MinCount = Bound(*r.MinCount)
	}
	if r.MaxCount != nil {
		out.MaxCount = Bound(*r.MaxCount)
	}
	return out
}

// Validate reports structural defects. They are invariant violations because
// grammars ship with the program rather than arriving as user input.
func (g Grammar) Validate() error {
	if len(g.Axiom) == 0 || g.Axiom[0] != SymbolSystem {
		return errors.Invariantf("grammar axiom must start with %q", SymbolSystem)
	}
	for _, s := range g.Axiom {
		if !s.Declared() {
			return errors.Invariantf("axiom references undeclared symbol %q", s)
		}
	}
	if g.MaxDepth < 1 {
		return errors.Invariantf("grammar max depth must be at least 1, got %d", g.MaxDepth)
	}

	starTotal := 0.0
	for i, p := range g.StarCountProbabilities {
		if math.IsNaN(p) || p < 0 {
			return errors.Invariantf("star count probability %d is invalid: %v", i, p)
		}
		starTotal += p
	}
	if starTotal <= 0 {
		return errors.Invariantf("star count probabilities must not all be zero")
	}

	for symbol, rules := range g.Rules {
		if !symbol.Declared() {
			return errors.Invariantf("rule registered for undeclared symbol %q", symbol)
		}
		if err := validateRules(symbol, rules); err != nil {
			return err
		}
	}
	return nil
}

func validateRules(symbol Symbol, rules []ProductionRule) error {
	total := 0.0
	for i, rule := range rules {
		where := fmt.Sprintf("rule %d of %q", i, symbol)
		if math.IsNaN(rule.Weight) || math.IsInf(rule.Weight, 0) || rule.Weight < 0 {
			return errors.Invariantf("%s has invalid weight %v", where, rule.Weight)
		}
		total += rule.Weight
		for _, s := range rule.Expansion {
			if !s.Declared() {
				return errors.Invariantf("%s references undeclared symbol %q", where, s)
			}
		}
		if rule.Repeat != nil {
			if len(rule.Expansion) == 0 {
				return errors.Invariantf("%s has a repeat distribution but no symbol to repeat", where)
			}
			if err := rule.Repeat.Validate(); err != nil {
				return errors.WrapInvariant(where, err)
			}
		}
		if rule.MinCount != nil && *rule.MinCount < 0 {
			return errors.Invariantf("%s has negative min count", where)
		}
		if rule.MaxCount != nil && *rule.MaxCount < 0 {
			return errors.Invariantf("%s has negative max count", where)
		}
		if rule.MinCount != nil && rule.MaxCount != nil && *rule.MinCount > *rule.MaxCount {
			return errors.Invariantf("%s has min count %d above max count %d", where, *rule.MinCount, *rule.MaxCount)
		}
	}
	if len(rules) > 0 && total <= 0 {
		return errors.Invariantf("rules of %q have zero total weight", symbol)
	}
	return nil
}
