// Package entity defines the attributed output graph of a generation run.
package entity

type Kind string

const (
	KindStar          Kind = "star"
	KindPlanet        Kind = "planet"
	KindMoon          Kind = "moon"
	KindComet         Kind = "comet"
	KindLagrangePoint Kind = "lagrange_point"
	KindBlackHole     Kind = "black_hole"
	KindRoguePlanet   Kind = "rogue_planet"
)

type PlanetType string

const (
	PlanetTypeBarren      PlanetType = "barren"
	PlanetTypeTerrestrial PlanetType = "terrestrial"
	PlanetTypeGasGiant    PlanetType = "gas_giant"
	PlanetTypeIce         PlanetType = "ice"
	PlanetTypeVolcanic    PlanetType = "volcanic"
)

// IsGiant reports whether t counts as a giant for rings and Trojans.
func (t PlanetType) IsGiant() bool {
	return t == PlanetTypeGasGiant || t == PlanetTypeIce
}

// Orbit describes a body's path around its parent. Root bodies have a zero
// orbit.
type Orbit struct {
	SemiMajorAxis float64 `json:"semi_major_axis"`
	Eccentricity  float64 `json:"eccentricity"`
	Inclination   float64 `json:"inclination"`
	Phase         float64 `json:"phase"`
	AngularSpeed  float64 `json:"angular_speed"`
	PeriodYears   float64 `json:"period_years"`
}

type Ring struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	Opacity     float64 `json:"opacity"`
	Bands       int     `json:"bands"`
	Tilt        float64 `json:"tilt"`
	Color       string  `json:"color"`
}

type CometProps struct {
	Style      string  `json:"style"`
	Perihelion float64 `json:"perihelion"`
	Aphelion   float64 `json:"aphelion"`
	TailLength float64 `json:"tail_length"`
	Activity   float64 `json:"activity"`
}

type LagrangeProps struct {
	Point       int    `json:"point"`
	PrimaryID   string `json:"primary_id"`
	SecondaryID string `json:"secondary_id"`
	Stable      bool   `json:"stable"`
}

type BlackHoleProps struct {
	Spin          float64 `json:"spin"`
	AccretionDisk bool    `json:"accretion_disk"`
	Jets          bool    `json:"jets"`
	PhotonRing    bool    `json:"photon_ring"`
	Activity      string  `json:"activity"`
}

type RogueProps struct {
	Trajectory string     `json:"trajectory"`
	SpeedKmS   float64    `json:"speed_km_s"`
	Position   [3]float64 `json:"position"`
	Velocity   [3]float64 `json:"velocity"`
	Curvature  float64    `json:"curvature"`
}

// Body is any point-like entity: stars, planets, moons and the secondary
// populations that are modelled as single objects.
type Body struct {
	ID          string          `json:"id"`
	Key         string          `json:"key"`
	Kind        Kind            `json:"kind"`
	Name        string          `json:"name"`
	ParentID    string          `json:"parent_id,omitempty"`
	SystemIndex int             `json:"system_index"`
	Class       string          `json:"class,omitempty"`
	PlanetType  PlanetType      `json:"planet_type,omitempty"`
	Mass        float64         `json:"mass"`
	Radius      float64         `json:"radius"`
	Color       string          `json:"color"`
	Temperature float64         `json:"temperature"`
	Luminosity  float64         `json:"luminosity,omitempty"`
	Orbit       Orbit           `json:"orbit"`
	Ring        *Ring           `json:"ring,omitempty"`
	Comet       *CometProps     `json:"comet,omitempty"`
	Lagrange    *LagrangeProps  `json:"lagrange,omitempty"`
	BlackHole   *BlackHoleProps `json:"black_hole,omitempty"`
	Rogue       *RogueProps     `json:"rogue,omitempty"`
}

type SmallBodyCategory string

const (
	CategoryAsteroid SmallBodyCategory = "asteroid"
	CategoryKuiper   SmallBodyCategory = "kuiper"
	CategoryTrojan   SmallBodyCategory = "trojan"
)

// SmallBodyField is a particle population rendered as a band or swarm.
// Trojan swarms also carry the Lagrange point they lead or trail.
type SmallBodyField struct {
	ID            string            `json:"id"`
	Key           string            `json:"key"`
	Category      SmallBodyCategory `json:"category"`
	Name          string            `json:"name"`
	HostID        string            `json:"host_id"`
	SystemIndex   int               `json:"system_index"`
	InnerRadius   float64           `json:"inner_radius"`
	OuterRadius   float64           `json:"outer_radius"`
	Thickness     float64           `json:"thickness"`
	ParticleCount int               `json:"particle_count"`
	Color         string            `json:"color"`
	LagrangePoint int               `json:"lagrange_point,omitempty"`
	SpreadDeg     float64           `json:"spread_deg,omitempty"`
}

// Belt is the flattened view of asteroid and Kuiper fields kept for older
// renderers.
type Belt struct {
	ID          string  `json:"id"`
	HostID      string  `json:"host_id"`
	Kind        string  `json:"kind"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	Density     int     `json:"density"`
}

type ProtoplanetaryDisk struct {
	ID            string  `json:"id"`
	Key           string  `json:"key"`
	HostID        string  `json:"host_id"`
	SystemIndex   int     `json:"system_index"`
	Style         string  `json:"style"`
	InnerRadius   float64 `json:"inner_radius"`
	OuterRadius   float64 `json:"outer_radius"`
	Thickness     float64 `json:"thickness"`
	ParticleCount int     `json:"particle_count"`
	Bands         int     `json:"bands"`
	Color         string  `json:"color"`
}

type NebulaRegion struct {
	ID          string     `json:"id"`
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	HostID      string     `json:"host_id"`
	SystemIndex int        `json:"system_index"`
	Kind        string     `json:"kind"`
	Center      [3]float64 `json:"center"`
	Radius      float64    `json:"radius"`
	Color       string     `json:"color"`
	Brightness  float64    `json:"brightness"`
	Opacity     float64    `json:"opacity"`
}

type GroupChildType string

const (
	GroupChildSystem GroupChildType = "system"
	GroupChildGroup  GroupChildType = "group"
)

type GroupChild struct {
	Type GroupChildType `json:"type"`
	ID   string         `json:"id"`
}

// Group clusters systems, or other groups when nesting is enabled.
type Group struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ParentGroupID string       `json:"parent_group_id,omitempty"`
	Children      []GroupChild `json:"children"`
}

// System is the header record of one generated star system.
type System struct {
	ID       string     `json:"id"`
	Index    int        `json:"index"`
	Name     string     `json:"name"`
	Preset   string     `json:"preset"`
	Position [3]float64 `json:"position"`
	RootIDs  []string   `json:"root_ids"`
}

// Entities is the flat keyed output. Maps encode with sorted keys, so the
// JSON form is deterministic.
type Entities struct {
	Systems   map[string]*System             `json:"systems"`
	Bodies    map[string]*Body               `json:"bodies"`
	SmallBody map[string]*SmallBodyField     `json:"small_body_fields"`
	Disks     map[string]*ProtoplanetaryDisk `json:"protoplanetary_disks"`
	Nebulae   map[string]*NebulaRegion       `json:"nebulae"`
	Groups    map[string]*Group              `json:"groups"`
	Belts     map[string]*Belt               `json:"belts"`
	RootIDs   []string                       `json:"root_ids"`
}

func New() *Entities {
	return &Entities{
		Systems:   map[string]*System{},
		Bodies:    map[string]*Body{},
		SmallBody: map[string]*SmallBodyField{},
		Disks:     map[string]*ProtoplanetaryDisk{},
		Nebulae:   map[string]*NebulaRegion{},
		Groups:    map[string]*Group{},
		Belts:     map[string]*Belt{},
	}
}
