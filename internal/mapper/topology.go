package mapper

import (
	"planets-generator/internal/genconfig"
	"planets-generator/internal/grammar"
)

// TopologyParams carry the preset choice and the caps layered over its
// grammar.
type TopologyParams struct {
	Preset           string         `json:"preset"`
	Systems          int            `json:"systems"`
	Limits           grammar.Limits `json:"limits"`
	ApplySuggestions bool           `json:"apply_suggestions"`
}

func MapTopology(t genconfig.TopologySettings) TopologyParams {
	preset := t.Preset
	if preset == "" {
		preset = genconfig.DefaultTopologyLabel
	}
	return TopologyParams{
		Preset:  preset,
		Systems: clampInt(t.MaxSystems, 1, genconfig.MaxSystemsLimit),
		Limits: grammar.Limits{
			MaxStars:        clampInt(t.MaxStarsPerSystem, 1, genconfig.MaxStarsLimit),
			MaxPlanets:      clampInt(t.MaxPlanetsPerSystem, 1, genconfig.MaxPlanetsLimit),
			MaxMoons:        clampInt(t.MaxMoonsPerPlanet, 1, genconfig.MaxMoonsLimit),
			MaxDepth:        clampInt(t.MaxDepth, 0, genconfig.MaxDepthLimit),
			DisableSubmoons: !t.EnableSubmoons,
		},
		ApplySuggestions: t.UsePresetSuggestions,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
