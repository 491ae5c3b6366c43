// Package genconfig defines the user-facing generation configuration.
//
// GenerationConfig is a flat JSON record. In Go it is assembled from one
// embedded settings struct per subsystem, which lets each configuration
// mapper receive only the slice it reads.
package genconfig

type OrbitStyle string

const (
	OrbitCircular  OrbitStyle = "circular"
	OrbitEccentric OrbitStyle = "eccentric"
	OrbitChaotic   OrbitStyle = "chaotic"
)

type PhaseMode string

const (
	PhaseRandom  PhaseMode = "random"
	PhaseAligned PhaseMode = "aligned"
)

type GroupingStrategy string

const (
	GroupingProximity    GroupingStrategy = "proximity"
	GroupingRandom       GroupingStrategy = "random"
	GroupingHierarchical GroupingStrategy = "hierarchical"
)

type BeltPlacement string

const (
	BeltInner BeltPlacement = "inner"
	BeltOuter BeltPlacement = "outer"
	BeltBoth  BeltPlacement = "both"
)

type DetailLevel string

const (
	DetailLow    DetailLevel = "low"
	DetailMedium DetailLevel = "medium"
	DetailHigh   DetailLevel = "high"
	DetailUltra  DetailLevel = "ultra"
)

type CometOrbitStyle string

const (
	CometShortPeriod CometOrbitStyle = "short_period"
	CometLongPeriod  CometOrbitStyle = "long_period"
	CometSungrazer   CometOrbitStyle = "sungrazer"
	CometMixed       CometOrbitStyle = "mixed"
)

type LagrangeMode string

const (
	LagrangeNone       LagrangeMode = "none"
	LagrangeGiantsOnly LagrangeMode = "giants_only"
	LagrangeAll        LagrangeMode = "all"
)

type DiskStyle string

const (
	DiskThin   DiskStyle = "thin"
	DiskThick  DiskStyle = "thick"
	DiskBanded DiskStyle = "banded"
)

type NebulaPalette string

const (
	NebulaEmission   NebulaPalette = "emission"
	NebulaReflection NebulaPalette = "reflection"
	NebulaDark       NebulaPalette = "dark"
	NebulaMixed      NebulaPalette = "mixed"
)

type BlackHoleActivity string

const (
	BlackHoleDormant BlackHoleActivity = "dormant"
	BlackHoleActive  BlackHoleActivity = "active"
	BlackHoleQuasar  BlackHoleActivity = "quasar"
)

type RogueTrajectory string

const (
	RogueLinear RogueTrajectory = "linear"
	RogueCurved RogueTrajectory = "curved"
	RogueMixed  RogueTrajectory = "mixed"
)

// TopologySettings bound the structural size of what the grammar produces.
// Zero MaxDepth keeps the preset's own depth.
type TopologySettings struct {
	Preset               string `json:"topology_preset"`
	MaxSystems           int    `json:"max_systems"`
	MaxStarsPerSystem    int    `json:"max_stars_per_system"`
	MaxPlanetsPerSystem  int    `json:"max_planets_per_system"`
	MaxMoonsPerPlanet    int    `json:"max_moons_per_planet"`
	MaxDepth             int    `json:"max_depth"`
	EnableSubmoons       bool   `json:"enable_submoons"`
	UsePresetSuggestions bool   `json:"use_preset_suggestions"`
}

type OrbitSettings struct {
	OrbitStyle          OrbitStyle `json:"orbit_style"`
	OrbitSpacing        float64    `json:"orbit_spacing"`
	InclinationVariance float64    `json:"inclination_variance"`
	OrbitSpeed          float64    `json:"orbit_speed"`
	PhaseMode           PhaseMode  `json:"phase_mode"`
}

// StarSettings are visual scalars for stars and planets.
type StarSettings struct {
	StarBrightness  float64 `json:"star_brightness"`
	ColorVariation  float64 `json:"color_variation"`
	StarSizeScale   float64 `json:"star_size_scale"`
	PlanetSizeScale float64 `json:"planet_size_scale"`
}

type GroupingSettings struct {
	EnableGrouping     bool             `json:"enable_grouping"`
	GroupingStrategy   GroupingStrategy `json:"grouping_strategy"`
	GroupSize          float64          `json:"group_size"`
	NestingProbability float64          `json:"nesting_probability"`
}

type BeltSettings struct {
	EnableAsteroidBelts bool          `json:"enable_asteroid_belts"`
	BeltDensity         float64       `json:"belt_density"`
	BeltPlacement       BeltPlacement `json:"belt_placement"`
	EnableKuiperBelt    bool          `json:"enable_kuiper_belt"`
	KuiperDensity       float64       `json:"kuiper_density"`
	SmallBodyDetail     DetailLevel   `json:"small_body_detail"`
}

type RingSettings struct {
	EnablePlanetRings bool    `json:"enable_planet_rings"`
	RingFrequency     float64 `json:"ring_frequency"`
	RingProminence    float64 `json:"ring_prominence"`
}

type CometSettings struct {
	EnableComets    bool            `json:"enable_comets"`
	CometFrequency  float64         `json:"comet_frequency"`
	CometActivity   float64         `json:"comet_activity"`
	CometOrbitStyle CometOrbitStyle `json:"comet_orbit_style"`
}

type LagrangeSettings struct {
	EnableLagrangePoints bool         `json:"enable_lagrange_points"`
	LagrangeMarkerMode   LagrangeMode `json:"lagrange_marker_mode"`
	TrojanFrequency      float64      `json:"trojan_frequency"`
	TrojanDensity        float64      `json:"trojan_density"`
}

type DiskSettings struct {
	EnableProtoplanetaryDisks bool      `json:"enable_protoplanetary_disks"`
	DiskFrequency             float64   `json:"disk_frequency"`
	DiskDensity               float64   `json:"disk_density"`
	DiskStyle                 DiskStyle `json:"disk_style"`
}

type NebulaSettings struct {
	EnableNebulae    bool          `json:"enable_nebulae"`
	NebulaDensity    float64       `json:"nebula_density"`
	NebulaSize       float64       `json:"nebula_size"`
	NebulaBrightness float64       `json:"nebula_brightness"`
	NebulaPalette    NebulaPalette `json:"nebula_palette"`
}

type BlackHoleSettings struct {
	EnableBlackHoles   bool              `json:"enable_black_holes"`
	BlackHoleFrequency float64           `json:"black_hole_frequency"`
	BlackHoleMassScale float64           `json:"black_hole_mass_scale"`
	BlackHoleSpin      float64           `json:"black_hole_spin"`
	BlackHoleActivity  BlackHoleActivity `json:"black_hole_activity"`
}

type RogueSettings struct {
	EnableRoguePlanets bool            `json:"enable_rogue_planets"`
	RogueFrequency     float64         `json:"rogue_frequency"`
	RogueTrajectory    RogueTrajectory `json:"rogue_trajectory"`
}

// GenerationConfig is immutable input to a generation run. Embedded fields
// are promoted, so it encodes as a single flat JSON object.
type GenerationConfig struct {
	TopologySettings
	OrbitSettings
	StarSettings
	GroupingSettings
	BeltSettings
	RingSettings
	CometSettings
	LagrangeSettings
	DiskSettings
	NebulaSettings
	BlackHoleSettings
	RogueSettings
}
