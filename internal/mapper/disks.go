package mapper

import (
	"planets-generator/internal/genconfig"
)

// DiskParams describe protoplanetary disks around young stars.
type DiskParams struct {
	Enabled       bool                `json:"enabled"`
	Probability   float64             `json:"probability"`
	Style         genconfig.DiskStyle `json:"style"`
	ParticleCount IntRange            `json:"particle_count"`
	InnerRadiusAU FloatRange          `json:"inner_radius_au"`
	OuterRadiusAU FloatRange          `json:"outer_radius_au"`
	ThicknessAU   FloatRange          `json:"thickness_au"`
	BandCount     IntRange            `json:"band_count"`
}

func MapDisks(d genconfig.DiskSettings) DiskParams {
	p := DiskParams{
		Enabled:     d.EnableProtoplanetaryDisks,
		Probability: genconfig.Clamp01(d.DiskFrequency),
		Style:       d.DiskStyle,
		ParticleCount: IntRange{
			Min: lerpInt(200, 2000, d.DiskDensity),
			Max: lerpInt(600, 8000, d.DiskDensity),
		},
		InnerRadiusAU: FloatRange{Min: 0.05, Max: 0.3},
		OuterRadiusAU: FloatRange{Min: 20, Max: lerp(40, 150, d.DiskDensity)},
	}

	switch d.DiskStyle {
	case genconfig.DiskThick:
		p.ThicknessAU = FloatRange{Min: 1, Max: 4}
	case genconfig.DiskBanded:
		p.ThicknessAU = FloatRange{Min: 0.2, Max: 1}
		p.BandCount = IntRange{Min: 2, Max: 5}
	default:
		p.Style = genconfig.DiskThin
		p.ThicknessAU = FloatRange{Min: 0.05, Max: 0.4}
	}
	return p
}
