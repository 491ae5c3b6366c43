package mapper

import (
	"planets-generator/internal/genconfig"
)

// GroupingParams control how a batch of systems is clustered into groups.
type GroupingParams struct {
	Enabled            bool                       `json:"enabled"`
	Strategy           genconfig.GroupingStrategy `json:"strategy"`
	GroupSize          IntRange                   `json:"group_size"`
	NestingProbability float64                    `json:"nesting_probability"`
	MaxNesting         int                        `json:"max_nesting"`
}

func MapGrouping(g genconfig.GroupingSettings) GroupingParams {
	maxSize := lerpInt(2, 8, g.GroupSize)
	p := GroupingParams{
		Enabled:            g.EnableGrouping,
		Strategy:           g.GroupingStrategy,
		GroupSize:          IntRange{Min: 2, Max: maxSize},
		NestingProbability: genconfig.Clamp01(g.NestingProbability),
		MaxNesting:         1,
	}
	if g.GroupingStrategy == genconfig.GroupingHierarchical {
		p.MaxNesting = 3
	}
	if p.Strategy == "" {
		p.Strategy = genconfig.GroupingProximity
	}
	return p
}
