package mapper

import (
	"planets-generator/internal/genconfig"
)

// RingParams decide which planets get rings and what they look like. Ring
// radii are multiples of the host planet's radius.
type RingParams struct {
	Enabled           bool       `json:"enabled"`
	GiantProbability  float64    `json:"giant_probability"`
	RockyProbability  float64    `json:"rocky_probability"`
	InnerRadiusFactor FloatRange `json:"inner_radius_factor"`
	WidthFactor       FloatRange `json:"width_factor"`
	Opacity           FloatRange `json:"opacity"`
	BandCount         IntRange   `json:"band_count"`
	Tilt              FloatRange `json:"tilt_deg"`
}

func MapRings(r genconfig.RingSettings) RingParams {
	freq := genconfig.Clamp01(r.RingFrequency)
	prominence := genconfig.Clamp01(r.RingProminence)

	return RingParams{
		Enabled:           r.EnablePlanetRings,
		GiantProbability:  min(1, freq*1.8),
		RockyProbability:  freq * 0.25,
		InnerRadiusFactor: FloatRange{Min: 1.2, Max: 1.6},
		WidthFactor:       FloatRange{Min: lerp(0.3, 0.8, prominence), Max: lerp(0.8, 2.2, prominence)},
		Opacity:           FloatRange{Min: lerp(0.2, 0.6, prominence), Max: lerp(0.5, 1, prominence)},
		BandCount:         IntRange{Min: 1, Max: 1 + lerpInt(0, 4, prominence)},
		Tilt:              FloatRange{Min: 0, Max: 30},
	}
}
