package mapper

import (
	"planets-generator/internal/genconfig"
)

// BlackHoleParams govern the optional stellar-mass black hole of a system
// and its visual features.
type BlackHoleParams struct {
	Enabled                  bool                        `json:"enabled"`
	Probability              float64                     `json:"probability"`
	MassSolar                FloatRange                  `json:"mass_solar"`
	Spin                     FloatRange                  `json:"spin"`
	Activity                 genconfig.BlackHoleActivity `json:"activity"`
	AccretionDiskProbability float64                     `json:"accretion_disk_probability"`
	JetProbability           float64                     `json:"jet_probability"`
	PhotonRingProbability    float64                     `json:"photon_ring_probability"`
	DistanceAU               FloatRange                  `json:"distance_au"`
}

// maxSpin is the Thorne limit on the dimensionless spin parameter.
const maxSpin = 0.998

func MapBlackHoles(b genconfig.BlackHoleSettings) BlackHoleParams {
	spin := genconfig.Clamp01(b.BlackHoleSpin)
	p := BlackHoleParams{
		Enabled:     b.EnableBlackHoles,
		Probability: genconfig.Clamp01(b.BlackHoleFrequency),
		MassSolar: FloatRange{
			Min: lerp(3, 10, b.BlackHoleMassScale),
			Max: lerp(10, 80, b.BlackHoleMassScale),
		},
		Spin:                  FloatRange{Min: spin * 0.5, Max: min(maxSpin, 0.3+spin*0.7)},
		Activity:              b.BlackHoleActivity,
		PhotonRingProbability: lerp(0.3, 1, spin),
		DistanceAU:            FloatRange{Min: 200, Max: 2000},
	}

	switch b.BlackHoleActivity {
	case genconfig.BlackHoleDormant:
		p.AccretionDiskProbability = 0.1
		p.JetProbability = 0.02
	case genconfig.BlackHoleQuasar:
		p.AccretionDiskProbability = 1
		p.JetProbability = 0.9
	default:
		p.Activity = genconfig.BlackHoleActive
		p.AccretionDiskProbability = 0.8
		p.JetProbability = 0.3
	}
	return p
}
