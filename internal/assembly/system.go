package assembly

import (
	"math"

	"planets-generator/internal/entity"
	"planets-generator/internal/grammar"
	"planets-generator/internal/mapper"
	"planets-generator/internal/prng"
	"planets-generator/internal/shared/errors"
)

// systemBuilder assembles one system. It is used by a single goroutine and
// writes only to its own entity set.
type systemBuilder struct {
	plan     *plan
	index    int
	stream   *prng.Generator
	entities *entity.Entities
	system   *entity.System

	bodies  map[string]*entity.Body
	stars   []*entity.Body
	planets []*entity.Body
	primary *entity.Body

	starMass       float64
	starLuminosity float64
	companionSep   float64
	innerAU        float64
}

func newSystemBuilder(pl *plan, index int, stream *prng.Generator) *systemBuilder {
	return &systemBuilder{
		plan:     pl,
		index:    index,
		stream:   stream,
		entities: entity.New(),
		bodies:   make(map[string]*entity.Body),
	}
}

// build walks the tree and then adds the secondary populations in a fixed
// order: rings, belts, disks, nebulae, comets, lagrange, rogues, black holes.
func (b *systemBuilder) build(tree *grammar.Tree) error {
	if err := b.header(); err != nil {
		return err
	}
	if err := tree.Walk(b.node); err != nil {
		return err
	}

	steps := []func() error{
		b.rings,
		b.belts,
		b.disks,
		b.nebulae,
		b.comets,
		b.lagrange,
		b.rogues,
		b.blackHoles,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	b.entities.RootIDs = append([]string(nil), b.system.RootIDs...)
	return nil
}

func (b *systemBuilder) id(key string) string {
	return b.plan.ids.ID(b.index, key)
}

func (b *systemBuilder) header() error {
	g := b.stream.Fork("header")
	b.system = &entity.System{
		ID:       b.id("system"),
		Index:    b.index,
		Name:     prng.Choice(g, systemNames),
		Preset:   b.plan.preset.ID,
		Position: [3]float64{g.Range(-500, 500), g.Range(-500, 500), g.Range(-50, 50)},
		RootIDs:  []string{},
	}
	return b.entities.AddSystem(b.system)
}

func (b *systemBuilder) addBody(body *entity.Body, root bool) error {
	if err := b.entities.AddBody(body); err != nil {
		return err
	}
	if root {
		b.system.RootIDs = append(b.system.RootIDs, body.ID)
	}
	return nil
}

func (b *systemBuilder) node(n *grammar.Node) error {
	switch n.Type {
	case grammar.NodeStar:
		return b.star(n)
	case grammar.NodePlanet:
		return b.planet(n)
	case grammar.NodeMoon:
		return b.moon(n)
	default:
		return nil
	}
}

func (b *systemBuilder) star(n *grammar.Node) error {
	params := b.plan.params.Stars
	g := b.stream.Fork(n.ID)

	class := prng.Weighted(g, mapper.StellarClasses[:], params.ClassWeights[:])
	sc := stellarClasses[class]

	temperature := sc.Temperature.Sample(g)
	luminosity := sc.Luminosity.Sample(g) * params.LuminosityScale
	mass := sc.Mass.Sample(g)
	radius := sc.Radius.Sample(g) * params.RadiusScale
	color := jitterColor(g, sc.Color, params.ColorJitter)
	separation := g.Range(0.05, 0.3) * float64(n.Index)

	star := &entity.Body{
		ID:          b.id(n.ID),
		Key:         n.ID,
		Kind:        entity.KindStar,
		Name:        starName(b.system.Name, n.Index, len(n.Parent.ChildrenOf(grammar.NodeStar))),
		SystemIndex: b.index,
		Class:       class,
		Mass:        mass,
		Radius:      radius,
		Color:       color,
		Temperature: temperature,
		Luminosity:  luminosity,
	}

	orbit := sampleOrbit(g, b.plan.params.Orbits, separation, b.starMass+mass)
	root := b.primary == nil
	if root {
		b.primary = star
	} else {
		star.ParentID = b.primary.ID
		star.Orbit = orbit
		b.companionSep = math.Max(b.companionSep, separation)
	}

	b.starMass += mass
	b.starLuminosity += luminosity
	b.stars = append(b.stars, star)
	b.bodies[n.ID] = star
	return b.addBody(star, root)
}

// innerRadius is the orbit of planet 0. It scales with the square root of the
// total luminosity and stays clear of close companions.
func (b *systemBuilder) innerRadius() float64 {
	if b.innerAU > 0 {
		return b.innerAU
	}
	g := b.stream.Fork("orbits")
	inner := b.plan.params.Orbits.InnerRadiusAU.Sample(g) * math.Sqrt(b.starLuminosity)
	inner = clampFloat(inner, 0.05, 5)
	b.innerAU = math.Max(inner, 3*b.companionSep)
	return b.innerAU
}

func (b *systemBuilder) planet(n *grammar.Node) error {
	if b.primary == nil {
		return errors.Invariantf("planet %s assembled before any star in system %d", n.ID, b.index)
	}
	orbits := b.plan.params.Orbits
	g := b.stream.Fork(n.ID)

	spacing := math.Pow(orbits.SpacingRatio, float64(n.Index))
	distance := b.innerRadius() * spacing * (1 + orbits.Jitter*g.Range(-1, 1))

	zone := zoneFor(distance, b.starLuminosity)
	planetType := prng.Weighted(g, planetTypes, planetTypeWeights[zone])
	shape := planetShapes[planetType]

	mass := shape.Mass.Sample(g)
	radius := shape.Radius.Sample(g) * b.plan.params.Stars.PlanetRadiusScale
	color := jitterColor(g, prng.Choice(g, shape.Colors), b.plan.params.Stars.ColorJitter)

	planet := &entity.Body{
		ID:          b.id(n.ID),
		Key:         n.ID,
		Kind:        entity.KindPlanet,
		Name:        planetName(b.system.Name, n.Index),
		ParentID:    b.primary.ID,
		SystemIndex: b.index,
		PlanetType:  planetType,
		Mass:        mass,
		Radius:      radius,
		Color:       color,
		Temperature: equilibriumTemperature(b.starLuminosity, distance),
		Orbit:       sampleOrbit(g, orbits, distance, b.starMass),
	}

	b.planets = append(b.planets, planet)
	b.bodies[n.ID] = planet
	return b.addBody(planet, false)
}

// moon covers both moons and submoons; a submoon's parent is itself a moon.
func (b *systemBuilder) moon(n *grammar.Node) error {
	parent, ok := b.bodies[n.Parent.ID]
	if !ok {
		return errors.Invariantf("moon %s has no assembled parent in system %d", n.ID, b.index)
	}
	orbits := b.plan.params.Orbits
	g := b.stream.Fork(n.ID)

	sizeRange := mapper.FloatRange{Min: 0.05, Max: 0.35}
	if parent.Kind == entity.KindMoon {
		sizeRange = mapper.FloatRange{Min: 0.05, Max: 0.2}
	}

	radius := parent.Radius * sizeRange.Sample(g)
	mass := parent.Mass * g.Range(1e-4, 0.02)
	distance := parent.Radius * earthRadiusAU * g.Range(3, 6) * math.Pow(orbits.MoonSpacingRatio, float64(n.Index))
	color := jitterColor(g, prng.Choice(g, moonColors), b.plan.params.Stars.ColorJitter)

	moon := &entity.Body{
		ID:          b.id(n.ID),
		Key:         n.ID,
		Kind:        entity.KindMoon,
		Name:        moonName(parent.Name, n.Index),
		ParentID:    parent.ID,
		SystemIndex: b.index,
		Mass:        mass,
		Radius:      radius,
		Color:       color,
		Temperature: parent.Temperature,
		Orbit:       sampleOrbit(g, orbits, distance, parent.Mass*earthMassSol),
	}

	b.bodies[n.ID] = moon
	return b.addBody(moon, false)
}
