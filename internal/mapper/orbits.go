package mapper

import (
	"planets-generator/internal/genconfig"
)

// OrbitParams shape planet and moon orbits.
//
// Planet i sits at InnerRadiusAU * SpacingRatio^i, perturbed by Jitter.
type OrbitParams struct {
	Style             genconfig.OrbitStyle `json:"style"`
	InnerRadiusAU     FloatRange           `json:"inner_radius_au"`
	SpacingRatio      float64              `json:"spacing_ratio"`
	Jitter            float64              `json:"jitter"`
	Eccentricity      FloatRange           `json:"eccentricity"`
	MaxInclinationDeg float64              `json:"max_inclination_deg"`
	SpeedScale        float64              `json:"speed_scale"`
	RandomPhase       bool                 `json:"random_phase"`
	MoonSpacingRatio  float64              `json:"moon_spacing_ratio"`
}

func MapOrbits(o genconfig.OrbitSettings) OrbitParams {
	p := OrbitParams{
		Style:             o.OrbitStyle,
		InnerRadiusAU:     FloatRange{Min: 0.2, Max: 0.5},
		SpacingRatio:      lerp(1.4, 2.2, o.OrbitSpacing),
		MaxInclinationDeg: lerp(0, 30, o.InclinationVariance),
		SpeedScale:        lerp(0.25, 2, o.OrbitSpeed),
		RandomPhase:       o.PhaseMode != genconfig.PhaseAligned,
		MoonSpacingRatio:  lerp(1.3, 1.9, o.OrbitSpacing),
	}

	switch o.OrbitStyle {
	case genconfig.OrbitCircular:
		p.Eccentricity = FloatRange{Min: 0, Max: 0.02}
		p.Jitter = 0.03
	case genconfig.OrbitChaotic:
		p.Eccentricity = FloatRange{Min: 0.05, Max: 0.6}
		p.Jitter = 0.25
		p.MaxInclinationDeg = min(p.MaxInclinationDeg*1.5+5, 90)
	default:
		p.Eccentricity = FloatRange{Min: 0, Max: 0.25}
		p.Jitter = 0.1
	}
	return p
}
