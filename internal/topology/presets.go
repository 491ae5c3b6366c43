package topology

import (
	g "planets-generator/internal/grammar"
)

// Builtins returns fresh copies of the shipped presets, in catalog order.
func Builtins() []Preset {
	return []Preset{
		classic(),
		compact(),
		multiStarHeavy(),
		moonRich(),
		sparseOutpost(),
		deepHierarchy(),
	}
}

func baseRules() map[g.Symbol][]g.ProductionRule {
	return map[g.Symbol][]g.ProductionRule{
		g.SymbolSystem: {{Weight: 1, Expansion: []g.Symbol{g.SymbolStars, g.SymbolPlanets}}},
		g.SymbolStars:  {{Weight: 1, Expansion: []g.Symbol{g.SymbolStar}, MinCount: g.Bound(1), MaxCount: g.Bound(3)}},
		g.SymbolPlanet: {{Weight: 1, Expansion: []g.Symbol{g.SymbolMoons}}},
	}
}

func classic() Preset {
	rules := baseRules()
	rules[g.SymbolPlanets] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolPlanet}, Repeat: g.Geometric(0.8), MinCount: g.Bound(2), MaxCount: g.Bound(10)},
	}
	rules[g.SymbolMoons] = []g.ProductionRule{
		{Weight: 0.35},
		{Weight: 0.65, Expansion: []g.Symbol{g.SymbolMoon}, Repeat: g.Geometric(0.5), MinCount: g.Bound(1), MaxCount: g.Bound(5)},
	}

	return Preset{
		ID:          PresetClassic,
		Name:        "Classic",
		Description: "Mostly single stars with a handful of planets and occasional moons.",
		Grammar: g.Grammar{
			Axiom:                  []g.Symbol{g.SymbolSystem},
			Rules:                  rules,
			MaxDepth:               2,
			StarCountProbabilities: [3]float64{0.75, 0.2, 0.05},
		},
	}
}

func compact() Preset {
	rules := baseRules()
	rules[g.SymbolStars] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolStar}, MinCount: g.Bound(1), MaxCount: g.Bound(2)},
	}
	rules[g.SymbolPlanets] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolPlanet}, Repeat: g.Uniform(2, 4)},
	}
	rules[g.SymbolMoons] = []g.ProductionRule{
		{Weight: 0.6},
		{Weight: 0.4, Expansion: []g.Symbol{g.SymbolMoon}, Repeat: g.Geometric(0.3), MinCount: g.Bound(1), MaxCount: g.Bound(2)},
	}

	return Preset{
		ID:          PresetCompact,
		Name:        "Compact",
		Description: "Few, tightly packed planets around one or two stars.",
		Grammar: g.Grammar{
			Axiom:                  []g.Symbol{g.SymbolSystem},
			Rules:                  rules,
			MaxDepth:               2,
			StarCountProbabilities: [3]float64{0.85, 0.15, 0},
		},
		SuggestedOverrides: map[string]float64{
			"orbit_spacing":     0.2,
			"belt_density":      0.3,
			"comet_frequency":   0.2,
			"planet_size_scale": 0.4,
		},
	}
}

func multiStarHeavy() Preset {
	rules := baseRules()
	rules[g.SymbolPlanets] = []g.ProductionRule{
		{Weight: 0.1},
		{Weight: 0.9, Expansion: []g.Symbol{g.SymbolPlanet}, Repeat: g.Poisson(3), MinCount: g.Bound(1), MaxCount: g.Bound(6)},
	}
	rules[g.SymbolMoons] = []g.ProductionRule{
		{Weight: 0.5},
		{Weight: 0.5, Expansion: []g.Symbol{g.SymbolMoon}, Repeat: g.Geometric(0.4), MinCount: g.Bound(1), MaxCount: g.Bound(3)},
	}

	return Preset{
		ID:          PresetMultiStarHeavy,
		Name:        "Multi-star heavy",
		Description: "Binary and ternary stars dominate; planets are fewer and widely spaced.",
		Grammar: g.Grammar{
			Axiom:                  []g.Symbol{g.SymbolSystem},
			Rules:                  rules,
			MaxDepth:               2,
			StarCountProbabilities: [3]float64{0.15, 0.5, 0.35},
		},
		SuggestedOverrides: map[string]float64{
			"orbit_spacing":        0.8,
			"inclination_variance": 0.5,
			"star_brightness":      0.7,
		},
	}
}

func moonRich() Preset {
	rules := baseRules()
	rules[g.SymbolPlanets] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolPlanet}, Repeat: g.Uniform(3, 6)},
	}
	rules[g.SymbolMoons] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolMoon}, Repeat: g.Poisson(4), MinCount: g.Bound(1), MaxCount: g.Bound(10)},
	}
	rules[g.SymbolMoon] = []g.ProductionRule{
		{Weight: 0.7},
		{Weight: 0.3, Expansion: []g.Symbol{g.SymbolSubmoons}},
	}
	rules[g.SymbolSubmoons] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolSubmoon}, Repeat: g.Uniform(1, 2)},
	}

	return Preset{
		ID:          PresetMoonRich,
		Name:        "Moon rich",
		Description: "Every planet carries a retinue of moons, some with moons of their own.",
		Grammar: g.Grammar{
			Axiom:                  []g.Symbol{g.SymbolSystem},
			Rules:                  rules,
			MaxDepth:               3,
			StarCountProbabilities: [3]float64{0.7, 0.25, 0.05},
			AllowSubmoons:          true,
		},
		SuggestedOverrides: map[string]float64{
			"ring_frequency":  0.6,
			"ring_prominence": 0.7,
		},
	}
}

func sparseOutpost() Preset {
	rules := baseRules()
	rules[g.SymbolStars] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolStar}, MinCount: g.Bound(1), MaxCount: g.Bound(2)},
	}
	rules[g.SymbolPlanets] = []g.ProductionRule{
		{Weight: 0.15},
		{Weight: 0.85, Expansion: []g.Symbol{g.SymbolPlanet}, Repeat: g.Uniform(1, 3)},
	}
	rules[g.SymbolMoons] = []g.ProductionRule{
		{Weight: 0.7},
		{Weight: 0.3, Expansion: []g.Symbol{g.SymbolMoon}, Repeat: g.Fixed(1)},
	}

	return Preset{
		ID:          PresetSparseOutpost,
		Name:        "Sparse outpost",
		Description: "Lonely stars with at most a few planets; some systems have none at all.",
		Grammar: g.Grammar{
			Axiom:                  []g.Symbol{g.SymbolSystem},
			Rules:                  rules,
			MaxDepth:               2,
			StarCountProbabilities: [3]float64{0.9, 0.1, 0},
		},
		SuggestedOverrides: map[string]float64{
			"belt_density":    0.15,
			"comet_frequency": 0.1,
			"nebula_density":  0.1,
		},
	}
}

func deepHierarchy() Preset {
	rules := baseRules()
	rules[g.SymbolPlanets] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolPlanet}, Repeat: g.Geometric(0.75), MinCount: g.Bound(3), MaxCount: g.Bound(9)},
	}
	rules[g.SymbolMoons] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolMoon}, Repeat: g.Poisson(3), MinCount: g.Bound(1), MaxCount: g.Bound(6)},
	}
	rules[g.SymbolMoon] = []g.ProductionRule{
		{Weight: 0.5},
		{Weight: 0.5, Expansion: []g.Symbol{g.SymbolSubmoons}},
	}
	rules[g.SymbolSubmoons] = []g.ProductionRule{
		{Weight: 1, Expansion: []g.Symbol{g.SymbolSubmoon}, Repeat: g.Geometric(0.5), MinCount: g.Bound(1), MaxCount: g.Bound(3)},
	}

	return Preset{
		ID:          PresetDeepHierarchy,
		Name:        "Deep hierarchy",
		Description: "Many planets, many moons and frequent sub-moons.",
		Grammar: g.Grammar{
			Axiom:                  []g.Symbol{g.SymbolSystem},
			Rules:                  rules,
			MaxDepth:               3,
			StarCountProbabilities: [3]float64{0.6, 0.3, 0.1},
			AllowSubmoons:          true,
		},
		SuggestedOverrides: map[string]float64{
			"orbit_spacing":    0.7,
			"ring_frequency":   0.4,
			"trojan_frequency": 0.5,
		},
	}
}
