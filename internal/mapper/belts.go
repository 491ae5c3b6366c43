package mapper

import (
	"planets-generator/internal/genconfig"
)

// BeltParams describe asteroid belts and the Kuiper belt. Belt radii are
// expressed relative to the planetary region so they always fit the system.
type BeltParams struct {
	AsteroidEnabled  bool                    `json:"asteroid_enabled"`
	Placement        genconfig.BeltPlacement `json:"placement"`
	AsteroidCount    IntRange                `json:"asteroid_count"`
	AsteroidWidthAU  FloatRange              `json:"asteroid_width_au"`
	KuiperEnabled    bool                    `json:"kuiper_enabled"`
	KuiperCount      IntRange                `json:"kuiper_count"`
	KuiperOffset     FloatRange              `json:"kuiper_offset"`
	KuiperWidthRatio FloatRange              `json:"kuiper_width_ratio"`
	ThicknessDeg     FloatRange              `json:"thickness_deg"`
	DetailFactor     float64                 `json:"detail_factor"`
}

// detailFactors scale particle counts for the renderer's level of detail.
var detailFactors = map[genconfig.DetailLevel]float64{
	genconfig.DetailLow:    0.25,
	genconfig.DetailMedium: 1,
	genconfig.DetailHigh:   2.5,
	genconfig.DetailUltra:  5,
}

// DetailFactor returns the particle multiplier for level, 1 when unknown.
func DetailFactor(level genconfig.DetailLevel) float64 {
	if f, ok := detailFactors[level]; ok {
		return f
	}
	return 1
}

func MapBelts(b genconfig.BeltSettings) BeltParams {
	detail := DetailFactor(b.SmallBodyDetail)

	asteroids := IntRange{
		Min: lerpInt(40, 600, b.BeltDensity),
		Max: lerpInt(120, 2400, b.BeltDensity),
	}
	kuiper := IntRange{
		Min: lerpInt(60, 900, b.KuiperDensity),
		Max: lerpInt(180, 3600, b.KuiperDensity),
	}

	placement := b.BeltPlacement
	if placement == "" {
		placement = genconfig.BeltInner
	}

	return BeltParams{
		AsteroidEnabled:  b.EnableAsteroidBelts,
		Placement:        placement,
		AsteroidCount:    scaleCount(asteroids, detail, 1),
		AsteroidWidthAU:  FloatRange{Min: 0.2, Max: lerp(0.4, 1.2, b.BeltDensity)},
		KuiperEnabled:    b.EnableKuiperBelt,
		KuiperCount:      scaleCount(kuiper, detail, 1),
		KuiperOffset:     FloatRange{Min: 1.3, Max: 1.6},
		KuiperWidthRatio: FloatRange{Min: 0.5, Max: lerp(0.8, 1.5, b.KuiperDensity)},
		ThicknessDeg:     FloatRange{Min: 1, Max: lerp(4, 15, b.KuiperDensity)},
		DetailFactor:     detail,
	}
}
