package assembly

import (
	"math"
	"strconv"

	"planets-generator/internal/entity"
	"planets-generator/internal/genconfig"
	"planets-generator/internal/prng"
)

func (b *systemBuilder) rings() error {
	params := b.plan.params.Rings
	if !params.Enabled {
		return nil
	}
	for _, planet := range b.planets {
		g := b.stream.Fork(planet.Key + "/ring")

		p := params.RockyProbability
		if planet.PlanetType.IsGiant() {
			p = params.GiantProbability
		}
		if !g.Bool(p) {
			continue
		}

		inner := planet.Radius * params.InnerRadiusFactor.Sample(g)
		planet.Ring = &entity.Ring{
			InnerRadius: inner,
			OuterRadius: inner + planet.Radius*params.WidthFactor.Sample(g),
			Opacity:     params.Opacity.Sample(g),
			Bands:       params.BandCount.Sample(g),
			Tilt:        params.Tilt.Sample(g),
			Color:       jitterColor(g, prng.Choice(g, ringColors), b.plan.params.Stars.ColorJitter),
		}
	}
	return nil
}

// outermostPlanet returns the largest planetary orbit, or zero.
func (b *systemBuilder) outermostPlanet() float64 {
	outer := 0.0
	for _, p := range b.planets {
		outer = math.Max(outer, p.Orbit.SemiMajorAxis)
	}
	return outer
}

func (b *systemBuilder) frostLine() float64 {
	return frostLineAU * math.Sqrt(b.starLuminosity)
}

func (b *systemBuilder) belts() error {
	params := b.plan.params.Belts
	if b.primary == nil {
		return nil
	}
	g := b.stream.Fork("belts")

	if params.AsteroidEnabled {
		var placements []string
		switch params.Placement {
		case genconfig.BeltOuter:
			placements = []string{"outer"}
		case genconfig.BeltBoth:
			placements = []string{"inner", "outer"}
		default:
			placements = []string{"inner"}
		}

		for _, placement := range placements {
			bg := g.Fork("asteroid:" + placement)

			centre := 0.8 * b.frostLine()
			if placement == "outer" {
				centre = 2 * b.frostLine()
				if outer := b.outermostPlanet(); outer > 0 {
					centre = 1.15 * outer
				}
			}
			width := params.AsteroidWidthAU.Sample(bg) * math.Max(1, math.Sqrt(b.starLuminosity))

			field := &entity.SmallBodyField{
				ID:            b.id("belt:asteroid:" + placement),
				Key:           "belt:asteroid:" + placement,
				Category:      entity.CategoryAsteroid,
				Name:          b.system.Name + " " + placement + " asteroid belt",
				HostID:        b.primary.ID,
				SystemIndex:   b.index,
				InnerRadius:   math.Max(0.01, centre-width/2),
				OuterRadius:   centre + width/2,
				Thickness:     params.ThicknessDeg.Sample(bg),
				ParticleCount: params.AsteroidCount.Sample(bg),
				Color:         jitterColor(bg, "#9c8f7a", 0.05),
			}
			if err := b.addField(field, "asteroid"); err != nil {
				return err
			}
		}
	}

	if params.KuiperEnabled {
		kg := g.Fork("kuiper")
		start := math.Max(b.outermostPlanet(), 2*b.frostLine())
		inner := start * params.KuiperOffset.Sample(kg)
		field := &entity.SmallBodyField{
			ID:            b.id("belt:kuiper"),
			Key:           "belt:kuiper",
			Category:      entity.CategoryKuiper,
			Name:          b.system.Name + " Kuiper belt",
			HostID:        b.primary.ID,
			SystemIndex:   b.index,
			InnerRadius:   inner,
			OuterRadius:   inner * (1 + params.KuiperWidthRatio.Sample(kg)),
			Thickness:     params.ThicknessDeg.Sample(kg),
			ParticleCount: params.KuiperCount.Sample(kg),
			Color:         jitterColor(kg, "#a7b8c9", 0.05),
		}
		if err := b.addField(field, "kuiper"); err != nil {
			return err
		}
	}
	return nil
}

// addField stores a belt field together with its flattened legacy view.
func (b *systemBuilder) addField(f *entity.SmallBodyField, kind string) error {
	if err := b.entities.AddSmallBodyField(f); err != nil {
		return err
	}
	return b.entities.AddBelt(&entity.Belt{
		ID:          b.id(f.Key + "/legacy"),
		HostID:      f.HostID,
		Kind:        kind,
		InnerRadius: f.InnerRadius,
		OuterRadius: f.OuterRadius,
		Density:     f.ParticleCount,
	})
}

func (b *systemBuilder) disks() error {
	params := b.plan.params.Disks
	if !params.Enabled {
		return nil
	}
	g := b.stream.Fork("disks")
	for _, star := range b.stars {
		dg := g.Fork(star.Key)
		if !dg.Bool(params.Probability) {
			continue
		}

		reach := math.Sqrt(star.Mass)
		bands := 0
		if params.BandCount.Max > 0 {
			bands = params.BandCount.Sample(dg)
		}
		disk := &entity.ProtoplanetaryDisk{
			ID:            b.id(star.Key + "/disk"),
			Key:           star.Key + "/disk",
			HostID:        star.ID,
			SystemIndex:   b.index,
			Style:         string(params.Style),
			InnerRadius:   params.InnerRadiusAU.Sample(dg) * reach,
			OuterRadius:   params.OuterRadiusAU.Sample(dg) * reach,
			Thickness:     params.ThicknessAU.Sample(dg),
			ParticleCount: params.ParticleCount.Sample(dg),
			Bands:         bands,
			Color:         jitterColor(dg, "#d9a066", 0.08),
		}
		if err := b.entities.AddDisk(disk); err != nil {
			return err
		}
	}
	return nil
}

func (b *systemBuilder) nebulae() error {
	params := b.plan.params.Nebulae
	if !params.Enabled || len(params.Palettes) == 0 {
		return nil
	}
	g := b.stream.Fork("nebulae")
	count := min(g.Poisson(params.CountLambda), params.MaxCount)

	for i := 0; i < count; i++ {
		key := "nebula:" + strconv.Itoa(i)
		ng := g.Fork(key)

		palette := prng.Choice(ng, params.Palettes)
		nebula := &entity.NebulaRegion{
			ID:          b.id(key),
			Key:         key,
			Name:        b.system.Name + " Nebula " + roman(i),
			HostID:      b.system.ID,
			SystemIndex: b.index,
			Kind:        palette.Kind,
			Color:       prng.Choice(ng, palette.Colors),
			Center:      scale(randomDirection(ng), params.DistanceLY.Sample(ng)),
			Radius:      params.RadiusLY.Sample(ng),
			Brightness:  params.Brightness.Sample(ng),
			Opacity:     params.Opacity.Sample(ng),
		}
		if err := b.entities.AddNebula(nebula); err != nil {
			return err
		}
	}
	return nil
}

func (b *systemBuilder) comets() error {
	params := b.plan.params.Comets
	if !params.Enabled || b.primary == nil {
		return nil
	}
	g := b.stream.Fork("comets")
	count := min(g.Poisson(params.CountLambda), params.MaxCount)

	for i := 0; i < count; i++ {
		key := "comet:" + strconv.Itoa(i)
		cg := g.Fork(key)

		style := prng.Weighted(cg, params.Styles, params.StyleWeight)
		shape := params.Shapes[style]
		perihelion := shape.PerihelionAU.Sample(cg)
		ecc := shape.Eccentricity.Sample(cg)
		semiMajor := perihelion / (1 - ecc)
		period := periodYears(semiMajor, b.starMass)

		comet := &entity.Body{
			ID:          b.id(key),
			Key:         key,
			Kind:        entity.KindComet,
			Name:        "C/" + b.system.Name + " " + strconv.Itoa(i+1),
			ParentID:    b.primary.ID,
			SystemIndex: b.index,
			Mass:        cg.Range(1e-12, 1e-9),
			Radius:      cg.Range(1e-4, 3e-3),
			Color:       jitterColor(cg, "#cfe8ff", 0.05),
			Temperature: equilibriumTemperature(b.starLuminosity, semiMajor),
			Orbit: entity.Orbit{
				SemiMajorAxis: semiMajor,
				Eccentricity:  ecc,
				Inclination:   shape.Inclination.Sample(cg),
				Phase:         cg.Range(0, 2*math.Pi),
				AngularSpeed:  angularSpeed(period, b.plan.params.Orbits.SpeedScale),
				PeriodYears:   period,
			},
			Comet: &entity.CometProps{
				Style:      string(style),
				Perihelion: perihelion,
				Aphelion:   semiMajor * (1 + ecc),
				TailLength: params.TailLength.Sample(cg),
				Activity:   params.Activity,
			},
		}
		if err := b.addBody(comet, false); err != nil {
			return err
		}
	}
	return nil
}

// lagrange adds L1-L5 markers and Trojan swarms for eligible planets.
// Markers are placed analytically and take no draws.
func (b *systemBuilder) lagrange() error {
	params := b.plan.params.Lagrange
	if !params.Enabled || b.primary == nil {
		return nil
	}
	g := b.stream.Fork("lagrange")

	for _, planet := range b.planets {
		giant := planet.PlanetType.IsGiant()

		if params.Markers && (giant || !params.GiantsOnly) {
			for _, m := range lagrangeMarkers(planet, b.starMass) {
				marker := &entity.Body{
					ID:          b.id(planet.Key + "/L" + strconv.Itoa(m.point)),
					Key:         planet.Key + "/L" + strconv.Itoa(m.point),
					Kind:        entity.KindLagrangePoint,
					Name:        planet.Name + " L" + strconv.Itoa(m.point),
					ParentID:    b.primary.ID,
					SystemIndex: b.index,
					Color:       "#ffffff",
					Orbit:       m.orbit,
					Lagrange: &entity.LagrangeProps{
						Point:       m.point,
						PrimaryID:   b.primary.ID,
						SecondaryID: planet.ID,
						Stable:      m.point >= 4,
					},
				}
				if err := b.addBody(marker, false); err != nil {
					return err
				}
			}
		}

		if !giant {
			continue
		}
		tg := g.Fork(planet.Key)
		if !tg.Bool(params.TrojanProbability) {
			continue
		}
		spread := params.TrojanSpreadDeg * math.Pi / 180
		for _, point := range []int{4, 5} {
			key := planet.Key + "/trojan:L" + strconv.Itoa(point)
			a := planet.Orbit.SemiMajorAxis
			field := &entity.SmallBodyField{
				ID:            b.id(key),
				Key:           key,
				Category:      entity.CategoryTrojan,
				Name:          planet.Name + " L" + strconv.Itoa(point) + " Trojans",
				HostID:        planet.ID,
				SystemIndex:   b.index,
				InnerRadius:   a * (1 - spread/4),
				OuterRadius:   a * (1 + spread/4),
				Thickness:     tg.Range(1, 10),
				ParticleCount: params.TrojanCount.Sample(tg),
				Color:         jitterColor(tg, "#8f8677", 0.05),
				LagrangePoint: point,
				SpreadDeg:     params.TrojanSpreadDeg,
			}
			if err := b.entities.AddSmallBodyField(field); err != nil {
				return err
			}
		}
	}
	return nil
}

type lagrangeMarker struct {
	point int
	orbit entity.Orbit
}

// lagrangeMarkers places the five points of the star-planet pair. L1 and L2
// sit at the Hill radius inside and outside the orbit; L3 is opposite the
// planet and L4/L5 lead and trail it by 60 degrees.
func lagrangeMarkers(planet *entity.Body, starMass float64) []lagrangeMarker {
	a := planet.Orbit.SemiMajorAxis
	phase := planet.Orbit.Phase
	hill := 0.0
	if starMass > 0 {
		hill = math.Cbrt(planet.Mass * earthMassSol / (3 * starMass))
	}

	at := func(point int, radius, phaseOffset float64) lagrangeMarker {
		o := planet.Orbit
		o.SemiMajorAxis = radius
		o.Phase = math.Mod(phase+phaseOffset+2*math.Pi, 2*math.Pi)
		o.Eccentricity = 0
		return lagrangeMarker{point: point, orbit: o}
	}
	return []lagrangeMarker{
		at(1, a*(1-hill), 0),
		at(2, a*(1+hill), 0),
		at(3, a, math.Pi),
		at(4, a, math.Pi/3),
		at(5, a, -math.Pi/3),
	}
}

func (b *systemBuilder) rogues() error {
	params := b.plan.params.Rogues
	if !params.Enabled {
		return nil
	}
	g := b.stream.Fork("rogues")
	count := min(g.Poisson(params.CountLambda), params.MaxCount)

	for i := 0; i < count; i++ {
		key := "rogue:" + strconv.Itoa(i)
		rg := g.Fork(key)

		curved := rg.Bool(params.CurvedProbability)
		curvature := rg.Range(0.001, 0.02)
		trajectory := "curved"
		if !curved {
			curvature = 0
			trajectory = "linear"
		}
		distance := params.DistanceAU.Sample(rg)
		position := scale(randomDirection(rg), distance)
		speed := params.SpeedKmS.Sample(rg)
		velocity := scale(randomDirection(rg), speed)
		mass := math.Exp(rg.Range(math.Log(params.MassEarths.Min), math.Log(params.MassEarths.Max)))

		rogue := &entity.Body{
			ID:          b.id(key),
			Key:         key,
			Kind:        entity.KindRoguePlanet,
			Name:        b.system.Name + " Rogue " + roman(i),
			SystemIndex: b.index,
			Mass:        mass,
			Radius:      math.Min(math.Cbrt(mass), 12) * b.plan.params.Stars.PlanetRadiusScale,
			Color:       jitterColor(rg, prng.Choice(rg, planetShapes[entity.PlanetTypeBarren].Colors), 0.05),
			Temperature: rg.Range(30, 60),
			Orbit:       entity.Orbit{SemiMajorAxis: distance},
			Rogue: &entity.RogueProps{
				Trajectory: trajectory,
				SpeedKmS:   speed,
				Position:   position,
				Velocity:   velocity,
				Curvature:  curvature,
			},
		}
		if err := b.addBody(rogue, true); err != nil {
			return err
		}
	}
	return nil
}

// schwarzschildKmPerSol is the event-horizon radius of one solar mass.
const schwarzschildKmPerSol = 2.953

const earthRadiusKm = 6371.0

func (b *systemBuilder) blackHoles() error {
	params := b.plan.params.BlackHoles
	if !params.Enabled {
		return nil
	}
	g := b.stream.Fork("blackholes")
	if !g.Bool(params.Probability) {
		return nil
	}

	mass := params.MassSolar.Sample(g)
	disk := g.Bool(params.AccretionDiskProbability)
	jets := g.Bool(params.JetProbability)
	key := "blackhole:0"

	hole := &entity.Body{
		ID:          b.id(key),
		Key:         key,
		Kind:        entity.KindBlackHole,
		Name:        b.system.Name + " X-1",
		SystemIndex: b.index,
		Mass:        mass,
		Radius:      mass * schwarzschildKmPerSol / earthRadiusKm,
		Color:       "#000000",
		Orbit: entity.Orbit{
			SemiMajorAxis: params.DistanceAU.Sample(g),
			Phase:         g.Range(0, 2*math.Pi),
		},
		BlackHole: &entity.BlackHoleProps{
			Spin:          params.Spin.Sample(g),
			AccretionDisk: disk,
			Jets:          disk && jets,
			PhotonRing:    g.Bool(params.PhotonRingProbability),
			Activity:      string(params.Activity),
		},
	}
	return b.addBody(hole, true)
}
