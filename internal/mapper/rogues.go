package mapper

import (
	"planets-generator/internal/genconfig"
)

// RogueParams govern unbound planets drifting through a system.
type RogueParams struct {
	Enabled           bool       `json:"enabled"`
	CountLambda       float64    `json:"count_lambda"`
	MaxCount          int        `json:"max_count"`
	CurvedProbability float64    `json:"curved_probability"`
	SpeedKmS          FloatRange `json:"speed_km_s"`
	DistanceAU        FloatRange `json:"distance_au"`
	MassEarths        FloatRange `json:"mass_earths"`
}

func MapRogues(r genconfig.RogueSettings) RogueParams {
	p := RogueParams{
		Enabled:     r.EnableRoguePlanets,
		CountLambda: lerp(0.2, 5, r.RogueFrequency),
		MaxCount:    12,
		SpeedKmS:    FloatRange{Min: 5, Max: 60},
		DistanceAU:  FloatRange{Min: 60, Max: 400},
		MassEarths:  FloatRange{Min: 0.05, Max: 300},
	}

	switch r.RogueTrajectory {
	case genconfig.RogueLinear:
		p.CurvedProbability = 0
	case genconfig.RogueCurved:
		p.CurvedProbability = 1
	default:
		p.CurvedProbability = 0.5
	}
	return p
}
