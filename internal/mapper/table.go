package mapper

import (
	"slices"

	"planets-generator/internal/genconfig"
)

// Subsystem names one entry of the mapping table.
type Subsystem string

const (
	SubsystemTopology   Subsystem = "topology"
	SubsystemOrbits     Subsystem = "orbits"
	SubsystemStars      Subsystem = "stars"
	SubsystemGrouping   Subsystem = "grouping"
	SubsystemBelts      Subsystem = "belts"
	SubsystemRings      Subsystem = "rings"
	SubsystemComets     Subsystem = "comets"
	SubsystemLagrange   Subsystem = "lagrange"
	SubsystemDisks      Subsystem = "disks"
	SubsystemNebulae    Subsystem = "nebulae"
	SubsystemBlackHoles Subsystem = "black_holes"
	SubsystemRogues     Subsystem = "rogues"
)

// order is the sequence MapAll applies the table in.
var order = []Subsystem{
	SubsystemTopology,
	SubsystemOrbits,
	SubsystemStars,
	SubsystemGrouping,
	SubsystemBelts,
	SubsystemRings,
	SubsystemComets,
	SubsystemLagrange,
	SubsystemDisks,
	SubsystemNebulae,
	SubsystemBlackHoles,
	SubsystemRogues,
}

// Mapper fills the part of Params owned by one subsystem.
type Mapper func(cfg genconfig.GenerationConfig, p *Params)

// table adapts each typed mapping function to the Mapper shape.
var table = map[Subsystem]Mapper{
	SubsystemTopology:   func(c genconfig.GenerationConfig, p *Params) { p.Topology = MapTopology(c.TopologySettings) },
	SubsystemOrbits:     func(c genconfig.GenerationConfig, p *Params) { p.Orbits = MapOrbits(c.OrbitSettings) },
	SubsystemStars:      func(c genconfig.GenerationConfig, p *Params) { p.Stars = MapStars(c.StarSettings) },
	SubsystemGrouping:   func(c genconfig.GenerationConfig, p *Params) { p.Grouping = MapGrouping(c.GroupingSettings) },
	SubsystemBelts:      func(c genconfig.GenerationConfig, p *Params) { p.Belts = MapBelts(c.BeltSettings) },
	SubsystemRings:      func(c genconfig.GenerationConfig, p *Params) { p.Rings = MapRings(c.RingSettings) },
	SubsystemComets:     func(c genconfig.GenerationConfig, p *Params) { p.Comets = MapComets(c.CometSettings) },
	SubsystemLagrange:   func(c genconfig.GenerationConfig, p *Params) { p.Lagrange = MapLagrange(c.LagrangeSettings) },
	SubsystemDisks:      func(c genconfig.GenerationConfig, p *Params) { p.Disks = MapDisks(c.DiskSettings) },
	SubsystemNebulae:    func(c genconfig.GenerationConfig, p *Params) { p.Nebulae = MapNebulae(c.NebulaSettings) },
	SubsystemBlackHoles: func(c genconfig.GenerationConfig, p *Params) { p.BlackHoles = MapBlackHoles(c.BlackHoleSettings) },
	SubsystemRogues:     func(c genconfig.GenerationConfig, p *Params) { p.Rogues = MapRogues(c.RogueSettings) },
}

// Subsystems returns the subsystems in the order MapAll applies them.
func Subsystems() []Subsystem {
	return slices.Clone(order)
}

// Lookup returns the mapper registered for a subsystem.
func Lookup(s Subsystem) (Mapper, bool) {
	m, ok := table[s]
	return m, ok
}

// MapAll runs every mapper in order.
func MapAll(cfg genconfig.GenerationConfig) Params {
	var p Params
	for _, s := range order {
		table[s](cfg, &p)
	}
	return p
}
