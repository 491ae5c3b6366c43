package mapper

import (
	"math"

	"planets-generator/internal/genconfig"
)

// StellarClasses lists spectral classes from hottest to coolest. Class
// weights in StarParams follow the same order.
var StellarClasses = [7]string{"O", "B", "A", "F", "G", "K", "M"}

// baseClassWeights is a field distribution skewed toward visible variety
// while keeping red dwarfs the most common.
var baseClassWeights = [7]float64{0.5, 2, 5, 10, 17.5, 25, 40}

type StarParams struct {
	ClassWeights      [7]float64 `json:"class_weights"`
	LuminosityScale   float64    `json:"luminosity_scale"`
	ColorJitter       float64    `json:"color_jitter"`
	RadiusScale       float64    `json:"radius_scale"`
	PlanetRadiusScale float64    `json:"planet_radius_scale"`
}

// MapStars derives class odds and visual scalars. Brightness above 0.5
// favours hotter classes, below 0.5 cooler ones.
func MapStars(s genconfig.StarSettings) StarParams {
	bias := genconfig.Clamp01(s.StarBrightness) - 0.5

	var weights [7]float64
	for i, w := range baseClassWeights {
		hotness := float64(len(baseClassWeights) - 1 - i)
		weights[i] = w * math.Exp(bias*hotness*0.6)
	}

	return StarParams{
		ClassWeights:      weights,
		LuminosityScale:   lerp(0.5, 1.5, s.StarBrightness),
		ColorJitter:       lerp(0, 0.15, s.ColorVariation),
		RadiusScale:       lerp(0.5, 1.5, s.StarSizeScale),
		PlanetRadiusScale: lerp(0.5, 1.5, s.PlanetSizeScale),
	}
}
