package mapper

import (
	"planets-generator/internal/genconfig"
)

// LagrangeParams decide which planets get L1-L5 markers and Trojan swarms.
type LagrangeParams struct {
	Enabled           bool     `json:"enabled"`
	Markers           bool     `json:"markers"`
	GiantsOnly        bool     `json:"giants_only"`
	TrojanProbability float64  `json:"trojan_probability"`
	TrojanCount       IntRange `json:"trojan_count"`
	TrojanSpreadDeg   float64  `json:"trojan_spread_deg"`
}

func MapLagrange(l genconfig.LagrangeSettings) LagrangeParams {
	return LagrangeParams{
		Enabled:           l.EnableLagrangePoints,
		Markers:           l.LagrangeMarkerMode != genconfig.LagrangeNone,
		GiantsOnly:        l.LagrangeMarkerMode != genconfig.LagrangeAll,
		TrojanProbability: genconfig.Clamp01(l.TrojanFrequency),
		TrojanCount: IntRange{
			Min: lerpInt(10, 150, l.TrojanDensity),
			Max: lerpInt(40, 600, l.TrojanDensity),
		},
		TrojanSpreadDeg: lerp(5, 25, l.TrojanDensity),
	}
}
