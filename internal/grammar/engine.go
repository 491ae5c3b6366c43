package grammar

import (
	"planets-generator/internal/prng"
)

// Limits are caller-imposed ceilings layered on top of a grammar. Zero values
// leave the grammar's own bounds in place.
type Limits struct {
	MaxStars        int
	MaxPlanets      int
	MaxMoons        int
	MaxSubmoons     int
	MaxDepth        int
	DisableSubmoons bool
}

// frame is one pending expansion. Concrete symbols carry the node they
// created; container symbols carry the node their children attach to.
type frame struct {
	symbol Symbol
	node   *Node
	owner  *Node
}

// Expand evaluates g against stream and returns the produced tree.
//
// Each non-terminal picks one rule with probability proportional to its
// weight, samples a repeat count when the rule has one, and schedules the
// produced symbols. A node at the depth ceiling is never expanded, so no node
// is deeper than the effective max depth.
func Expand(g Grammar, stream *prng.Generator, limits Limits) (*Tree, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	maxDepth := g.MaxDepth
	if limits.MaxDepth > 0 && limits.MaxDepth < maxDepth {
		maxDepth = limits.MaxDepth
	}
	allowSubmoons := g.AllowSubmoons && !limits.DisableSubmoons

	root := &Node{Type: NodeSystem, Symbol: SymbolSystem, ID: string(SymbolSystem)}
	tree := &Tree{Root: root, MaxDepth: maxDepth}

	e := &expander{
		grammar:       g,
		stream:        stream,
		limits:        limits,
		maxDepth:      maxDepth,
		allowSubmoons: allowSubmoons,
	}

	e.push(e.schedule(append(e.produce(SymbolSystem), g.Axiom[1:]...), root))

	for len(e.stack) > 0 {
		f := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if f.node != nil {
			if f.node.Depth >= maxDepth {
				continue
			}
			e.push(e.schedule(e.produce(f.symbol), f.node))
			continue
		}
		e.push(e.schedule(e.produce(f.symbol), f.owner))
	}

	return tree, nil
}

type expander struct {
	grammar       Grammar
	stream        *prng.Generator
	limits        Limits
	maxDepth      int
	allowSubmoons bool
	stack         []frame
}

// push adds frames so that frames[0] is popped first.
func (e *expander) push(frames []frame) {
	for i := len(frames) - 1; i >= 0; i-- {
		e.stack = append(e.stack, frames[i])
	}
}

// produce selects a rule for symbol and returns its expansion. Symbols with
// no rules are terminal and produce nothing.
func (e *expander) produce(symbol Symbol) []Symbol {
	rules := e.grammar.Rules[symbol]
	if len(rules) == 0 {
		return nil
	}

	weights := make([]float64, len(rules))
	for i, r := range rules {
		weights[i] = r.Weight
	}
	rule := rules[e.stream.WeightedIndex(weights)]

	if len(rule.Expansion) == 0 {
		return nil
	}

	var count int
	switch {
	case symbol == SymbolStars:
		count = e.starCount(rule)
	case rule.Repeat != nil:
		count = rule.clamp(rule.Repeat.Sample(e.stream))
	default:
		return append([]Symbol{}, rule.Expansion...)
	}

	last := rule.Expansion[len(rule.Expansion)-1]
	count = e.capCount(last, count)

	out := make([]Symbol, 0, len(rule.Expansion)-1+count)
	out = append(out, rule.Expansion[:len(rule.Expansion)-1]...)
	for i := 0; i < count; i++ {
		out = append(out, last)
	}
	return out
}

// starCount resolves the single/binary/ternary table instead of the rule's
// repeat distribution. The rule's clamps still apply.
func (e *expander) starCount(rule ProductionRule) int {
	p := e.grammar.StarCountProbabilities
	return rule.clamp(1 + e.stream.WeightedIndex(p[:]))
}

func (e *expander) capCount(symbol Symbol, count int) int {
	var limit int
	switch symbol {
	case SymbolStar:
		limit = e.limits.MaxStars
	case SymbolPlanet:
		limit = e.limits.MaxPlanets
	case SymbolMoon:
		limit = e.limits.MaxMoons
	case SymbolSubmoon:
		limit = e.limits.MaxSubmoons
	}
	if limit > 0 && count > limit {
		return limit
	}
	return count
}

// schedule turns produced symbols into frames. Concrete symbols create their
// node immediately, which fixes sibling indices in production order.
func (e *expander) schedule(symbols []Symbol, owner *Node) []frame {
	frames := make([]frame, 0, len(symbols))
	for _, s := range symbols {
		if s.isSubmoon() && !e.allowSubmoons {
			continue
		}
		if s == SymbolSystem {
			continue
		}
		if _, concrete := s.NodeType(); concrete {
			child := owner.addChild(s)
			frames = append(frames, frame{symbol: s, node: child})
			continue
		}
		frames = append(frames, frame{symbol: s, owner: owner})
	}
	return frames
}
