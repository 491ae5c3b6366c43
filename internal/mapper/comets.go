package mapper

import (
	"maps"

	"planets-generator/internal/genconfig"
)

// CometShape bounds the orbit of one comet family.
type CometShape struct {
	PerihelionAU FloatRange `json:"perihelion_au"`
	Eccentricity FloatRange `json:"eccentricity"`
	Inclination  FloatRange `json:"inclination_deg"`
}

type CometParams struct {
	Enabled     bool                                     `json:"enabled"`
	CountLambda float64                                  `json:"count_lambda"`
	MaxCount    int                                      `json:"max_count"`
	Styles      []genconfig.CometOrbitStyle              `json:"styles"`
	StyleWeight []float64                                `json:"style_weights"`
	Shapes      map[genconfig.CometOrbitStyle]CometShape `json:"shapes"`
	TailLength  FloatRange                               `json:"tail_length_au"`
	Activity    float64                                  `json:"activity"`
}

var cometShapes = map[genconfig.CometOrbitStyle]CometShape{
	genconfig.CometShortPeriod: {
		PerihelionAU: FloatRange{Min: 0.8, Max: 3},
		Eccentricity: FloatRange{Min: 0.4, Max: 0.75},
		Inclination:  FloatRange{Min: 0, Max: 25},
	},
	genconfig.CometLongPeriod: {
		PerihelionAU: FloatRange{Min: 1, Max: 8},
		Eccentricity: FloatRange{Min: 0.85, Max: 0.99},
		Inclination:  FloatRange{Min: 0, Max: 180},
	},
	genconfig.CometSungrazer: {
		PerihelionAU: FloatRange{Min: 0.005, Max: 0.05},
		Eccentricity: FloatRange{Min: 0.98, Max: 0.999},
		Inclination:  FloatRange{Min: 0, Max: 150},
	},
}

func MapComets(c genconfig.CometSettings) CometParams {
	activity := genconfig.Clamp01(c.CometActivity)

	p := CometParams{
		Enabled:     c.EnableComets,
		CountLambda: lerp(0.5, 12, c.CometFrequency),
		MaxCount:    40,
		Shapes:      maps.Clone(cometShapes),
		TailLength:  FloatRange{Min: lerp(0.05, 0.5, activity), Max: lerp(0.2, 3, activity)},
		Activity:    activity,
	}

	switch c.CometOrbitStyle {
	case genconfig.CometShortPeriod, genconfig.CometLongPeriod, genconfig.CometSungrazer:
		p.Styles = []genconfig.CometOrbitStyle{c.CometOrbitStyle}
		p.StyleWeight = []float64{1}
	default:
		p.Styles = []genconfig.CometOrbitStyle{genconfig.CometShortPeriod, genconfig.CometLongPeriod, genconfig.CometSungrazer}
		p.StyleWeight = []float64{0.5, 0.35, 0.15}
	}
	return p
}
