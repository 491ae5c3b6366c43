package genconfig

const (
	MaxSystemsLimit      = 1000
	MaxStarsLimit        = 3
	MaxPlanetsLimit      = 20
	MaxMoonsLimit        = 20
	MaxDepthLimit        = 6
	DefaultTopologyLabel = "classic"
)

// Default returns the configuration used when a request omits fields.
func Default() GenerationConfig {
	return GenerationConfig{
		TopologySettings: TopologySettings{
			Preset:              DefaultTopologyLabel,
			MaxSystems:          1,
			MaxStarsPerSystem:   3,
			MaxPlanetsPerSystem: 12,
			MaxMoonsPerPlanet:   8,
			EnableSubmoons:      true,
		},
		OrbitSettings: OrbitSettings{
			OrbitStyle:          OrbitEccentric,
			OrbitSpacing:        0.5,
			InclinationVariance: 0.3,
			OrbitSpeed:          0.5,
			PhaseMode:           PhaseRandom,
		},
		StarSettings: StarSettings{
			StarBrightness:  0.5,
			ColorVariation:  0.3,
			StarSizeScale:   0.5,
			PlanetSizeScale: 0.5,
		},
		GroupingSettings: GroupingSettings{
			GroupingStrategy:   GroupingProximity,
			GroupSize:          0.4,
			NestingProbability: 0.2,
		},
		BeltSettings: BeltSettings{
			EnableAsteroidBelts: true,
			BeltDensity:         0.5,
			BeltPlacement:       BeltInner,
			EnableKuiperBelt:    true,
			KuiperDensity:       0.4,
			SmallBodyDetail:     DetailMedium,
		},
		RingSettings: RingSettings{
			EnablePlanetRings: true,
			RingFrequency:     0.3,
			RingProminence:    0.5,
		},
		CometSettings: CometSettings{
			EnableComets:    true,
			CometFrequency:  0.4,
			CometActivity:   0.5,
			CometOrbitStyle: CometMixed,
		},
		LagrangeSettings: LagrangeSettings{
			EnableLagrangePoints: true,
			LagrangeMarkerMode:   LagrangeGiantsOnly,
			TrojanFrequency:      0.3,
			TrojanDensity:        0.4,
		},
		DiskSettings: DiskSettings{
			DiskFrequency: 0.2,
			DiskDensity:   0.5,
			DiskStyle:     DiskThin,
		},
		NebulaSettings: NebulaSettings{
			NebulaDensity:    0.3,
			NebulaSize:       0.5,
			NebulaBrightness: 0.5,
			NebulaPalette:    NebulaMixed,
		},
		BlackHoleSettings: BlackHoleSettings{
			BlackHoleFrequency: 0.1,
			BlackHoleMassScale: 0.5,
			BlackHoleSpin:      0.5,
			BlackHoleActivity:  BlackHoleActive,
		},
		RogueSettings: RogueSettings{
			RogueFrequency:  0.2,
			RogueTrajectory: RogueMixed,
		},
	}
}
