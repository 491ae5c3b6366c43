// Package topology holds the catalog of named grammars that control the
// overall shape of a generated system.
package topology

import (
	"maps"

	"planets-generator/internal/grammar"
)

const (
	PresetClassic        = "classic"
	PresetCompact        = "compact"
	PresetMultiStarHeavy = "multiStarHeavy"
	PresetMoonRich       = "moonRich"
	PresetSparseOutpost  = "sparseOutpost"
	PresetDeepHierarchy  = "deepHierarchy"

	DefaultPreset = PresetClassic
)

// Preset is an immutable bundle. SuggestedOverrides are config values, keyed
// by their JSON field name, that suit the preset; they are only applied when
// the caller asks for them.
type Preset struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Grammar            grammar.Grammar    `json:"grammar"`
	SuggestedOverrides map[string]float64 `json:"suggested_overrides,omitempty"`
}

// Clone returns a deep copy, so callers can never reach the registry's copy.
func (p Preset) Clone() Preset {
	out := p
	out.Grammar = p.Grammar.Clone()
	out.SuggestedOverrides = maps.Clone(p.SuggestedOverrides)
	return out
}

// Summary is the listing shape used by the presets endpoint.
type Summary struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	MaxDepth           int                `json:"max_depth"`
	StarCountOdds      [3]float64         `json:"star_count_odds"`
	AllowSubmoons      bool               `json:"allow_submoons"`
	SuggestedOverrides map[string]float64 `json:"suggested_overrides,omitempty"`
}

func (p Preset) Summary() Summary {
	return Summary{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		MaxDepth:           p.Grammar.MaxDepth,
		StarCountOdds:      p.Grammar.StarCountProbabilities,
		AllowSubmoons:      p.Grammar.AllowSubmoons,
		SuggestedOverrides: maps.Clone(p.SuggestedOverrides),
	}
}
