package mapper

import (
	"math"
	"testing"

	"planets-generator/internal/genconfig"
	"planets-generator/internal/prng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCoversOrder(t *testing.T) {
	subsystems := Subsystems()
	require.Len(t, table, len(subsystems))
	for _, s := range subsystems {
		_, ok := Lookup(s)
		assert.True(t, ok, "no mapper for %s", s)
	}
	_, ok := Lookup("warp")
	assert.False(t, ok)
}

func TestSubsystemsReturnsACopy(t *testing.T) {
	first := Subsystems()
	first[0] = "warp"
	assert.Equal(t, SubsystemTopology, Subsystems()[0])
}

func TestCometShapesAreNotShared(t *testing.T) {
	p := MapComets(genconfig.CometSettings{CometOrbitStyle: genconfig.CometMixed})
	p.Shapes[genconfig.CometShortPeriod] = CometShape{}
	delete(p.Shapes, genconfig.CometLongPeriod)

	fresh := MapComets(genconfig.CometSettings{CometOrbitStyle: genconfig.CometMixed})
	assert.Len(t, fresh.Shapes, 3)
	assert.NotEqual(t, CometShape{}, fresh.Shapes[genconfig.CometShortPeriod])
}

func TestMapAllMatchesTypedMappers(t *testing.T) {
	cfg := genconfig.Default()
	p := MapAll(cfg)

	assert.Equal(t, MapTopology(cfg.TopologySettings), p.Topology)
	assert.Equal(t, MapOrbits(cfg.OrbitSettings), p.Orbits)
	assert.Equal(t, MapStars(cfg.StarSettings), p.Stars)
	assert.Equal(t, MapGrouping(cfg.GroupingSettings), p.Grouping)
	assert.Equal(t, MapBelts(cfg.BeltSettings), p.Belts)
	assert.Equal(t, MapRings(cfg.RingSettings), p.Rings)
	assert.Equal(t, MapComets(cfg.CometSettings), p.Comets)
	assert.Equal(t, MapLagrange(cfg.LagrangeSettings), p.Lagrange)
	assert.Equal(t, MapDisks(cfg.DiskSettings), p.Disks)
	assert.Equal(t, MapNebulae(cfg.NebulaSettings), p.Nebulae)
	assert.Equal(t, MapBlackHoles(cfg.BlackHoleSettings), p.BlackHoles)
	assert.Equal(t, MapRogues(cfg.RogueSettings), p.Rogues)
}

func TestMapAllIsPure(t *testing.T) {
	cfg := genconfig.Default()
	before := cfg
	a := MapAll(cfg)
	b := MapAll(cfg)
	assert.Equal(t, a, b)
	assert.Equal(t, before, cfg)
}

// rangesOf collects every interval in p so boundary tests can check them
// uniformly.
func rangesOf(p Params) (map[string]IntRange, map[string]FloatRange) {
	ints := map[string]IntRange{
		"grouping.size":    p.Grouping.GroupSize,
		"belts.asteroids":  p.Belts.AsteroidCount,
		"belts.kuiper":     p.Belts.KuiperCount,
		"rings.bands":      p.Rings.BandCount,
		"lagrange.trojans": p.Lagrange.TrojanCount,
		"disks.particles":  p.Disks.ParticleCount,
		"disks.bands":      p.Disks.BandCount,
	}
	floats := map[string]FloatRange{
		"orbits.inner":        p.Orbits.InnerRadiusAU,
		"orbits.eccentricity": p.Orbits.Eccentricity,
		"belts.width":         p.Belts.AsteroidWidthAU,
		"belts.kuiper_offset": p.Belts.KuiperOffset,
		"belts.kuiper_width":  p.Belts.KuiperWidthRatio,
		"belts.thickness":     p.Belts.ThicknessDeg,
		"rings.inner":         p.Rings.InnerRadiusFactor,
		"rings.width":         p.Rings.WidthFactor,
		"rings.opacity":       p.Rings.Opacity,
		"comets.tail":         p.Comets.TailLength,
		"disks.inner":         p.Disks.InnerRadiusAU,
		"disks.outer":         p.Disks.OuterRadiusAU,
		"disks.thickness":     p.Disks.ThicknessAU,
		"nebulae.radius":      p.Nebulae.RadiusLY,
		"nebulae.brightness":  p.Nebulae.Brightness,
		"nebulae.opacity":     p.Nebulae.Opacity,
		"black_holes.mass":    p.BlackHoles.MassSolar,
		"black_holes.spin":    p.BlackHoles.Spin,
		"rogues.speed":        p.Rogues.SpeedKmS,
		"rogues.distance":     p.Rogues.DistanceAU,
	}
	return ints, floats
}

func TestBoundaryValuesProduceValidRanges(t *testing.T) {
	for _, v := range []float64{0, 1, -5, 5} {
		overrides := map[string]float64{}
		for _, name := range genconfig.SliderNames() {
			overrides[name] = v
		}
		cfg, err := genconfig.Default().WithOverrides(overrides)
		require.NoError(t, err)

		// Write raw values past the clamp to check mappers re-clamp.
		cfg.BeltDensity = v
		cfg.RingProminence = v
		p := MapAll(cfg)

		ints, floats := rangesOf(p)
		for name, r := range ints {
			assert.LessOrEqual(t, r.Min, r.Max, "%s at %v", name, v)
			assert.GreaterOrEqual(t, r.Min, 0, "%s at %v", name, v)
		}
		for name, r := range floats {
			assert.False(t, math.IsNaN(r.Min) || math.IsNaN(r.Max), "%s at %v", name, v)
			assert.LessOrEqual(t, r.Min, r.Max, "%s at %v", name, v)
		}
		assert.GreaterOrEqual(t, p.Comets.CountLambda, 0.0)
		assert.GreaterOrEqual(t, p.Nebulae.CountLambda, 0.0)
		assert.GreaterOrEqual(t, p.Rogues.CountLambda, 0.0)
		assert.LessOrEqual(t, p.Rings.GiantProbability, 1.0)
		assert.LessOrEqual(t, p.BlackHoles.Spin.Max, maxSpin)
	}
}

func TestDensityIsMonotonic(t *testing.T) {
	low := MapBelts(genconfig.BeltSettings{BeltDensity: 0.1, KuiperDensity: 0.1, SmallBodyDetail: genconfig.DetailMedium})
	high := MapBelts(genconfig.BeltSettings{BeltDensity: 0.9, KuiperDensity: 0.9, SmallBodyDetail: genconfig.DetailMedium})

	assert.Less(t, low.AsteroidCount.Max, high.AsteroidCount.Max)
	assert.Less(t, low.KuiperCount.Min, high.KuiperCount.Min)

	assert.Less(t, MapComets(genconfig.CometSettings{CometFrequency: 0}).CountLambda,
		MapComets(genconfig.CometSettings{CometFrequency: 1}).CountLambda)
	assert.Less(t, MapLagrange(genconfig.LagrangeSettings{TrojanDensity: 0}).TrojanCount.Max,
		MapLagrange(genconfig.LagrangeSettings{TrojanDensity: 1}).TrojanCount.Max)
}

func TestSmallBodyDetailScalesCounts(t *testing.T) {
	base := genconfig.BeltSettings{BeltDensity: 0.5, KuiperDensity: 0.5}

	counts := map[genconfig.DetailLevel]int{}
	for _, level := range []genconfig.DetailLevel{genconfig.DetailLow, genconfig.DetailMedium, genconfig.DetailHigh, genconfig.DetailUltra} {
		base.SmallBodyDetail = level
		counts[level] = MapBelts(base).AsteroidCount.Max
	}
	assert.Less(t, counts[genconfig.DetailLow], counts[genconfig.DetailMedium])
	assert.Less(t, counts[genconfig.DetailMedium], counts[genconfig.DetailHigh])
	assert.Less(t, counts[genconfig.DetailHigh], counts[genconfig.DetailUltra])
	assert.Equal(t, 1.0, DetailFactor("bogus"))
}

func TestMapTopology(t *testing.T) {
	p := MapTopology(genconfig.TopologySettings{
		MaxSystems:          5000,
		MaxStarsPerSystem:   9,
		MaxPlanetsPerSystem: 4,
		MaxMoonsPerPlanet:   2,
		MaxDepth:            2,
		EnableSubmoons:      false,
	})

	assert.Equal(t, genconfig.DefaultTopologyLabel, p.Preset)
	assert.Equal(t, genconfig.MaxSystemsLimit, p.Systems)
	assert.Equal(t, 3, p.Limits.MaxStars)
	assert.Equal(t, 4, p.Limits.MaxPlanets)
	assert.Equal(t, 2, p.Limits.MaxMoons)
	assert.Equal(t, 2, p.Limits.MaxDepth)
	assert.True(t, p.Limits.DisableSubmoons)
}

func TestMapOrbitsByStyle(t *testing.T) {
	base := genconfig.OrbitSettings{OrbitSpacing: 0.5, InclinationVariance: 0.5, OrbitSpeed: 0.5}

	base.OrbitStyle = genconfig.OrbitCircular
	circular := MapOrbits(base)
	base.OrbitStyle = genconfig.OrbitEccentric
	eccentric := MapOrbits(base)
	base.OrbitStyle = genconfig.OrbitChaotic
	chaotic := MapOrbits(base)

	assert.Less(t, circular.Eccentricity.Max, eccentric.Eccentricity.Max)
	assert.Less(t, eccentric.Eccentricity.Max, chaotic.Eccentricity.Max)
	assert.Greater(t, chaotic.MaxInclinationDeg, eccentric.MaxInclinationDeg)
	assert.True(t, circular.RandomPhase)

	base.PhaseMode = genconfig.PhaseAligned
	assert.False(t, MapOrbits(base).RandomPhase)
	assert.InDelta(t, 1.8, MapOrbits(base).SpacingRatio, 1e-9)
}

func TestMapStarsBrightnessShiftsClasses(t *testing.T) {
	dim := MapStars(genconfig.StarSettings{StarBrightness: 0})
	neutral := MapStars(genconfig.StarSettings{StarBrightness: 0.5})
	bright := MapStars(genconfig.StarSettings{StarBrightness: 1})

	assert.Equal(t, baseClassWeights, neutral.ClassWeights)
	share := func(p StarParams) float64 {
		total := 0.0
		for _, w := range p.ClassWeights {
			total += w
		}
		return p.ClassWeights[0] / total
	}
	assert.Less(t, share(dim), share(neutral))
	assert.Less(t, share(neutral), share(bright))
}

func TestMapGrouping(t *testing.T) {
	p := MapGrouping(genconfig.GroupingSettings{EnableGrouping: true, GroupSize: 1, GroupingStrategy: genconfig.GroupingHierarchical})
	assert.Equal(t, IntRange{Min: 2, Max: 8}, p.GroupSize)
	assert.Equal(t, 3, p.MaxNesting)

	p = MapGrouping(genconfig.GroupingSettings{GroupSize: 0})
	assert.Equal(t, IntRange{Min: 2, Max: 2}, p.GroupSize)
	assert.Equal(t, genconfig.GroupingProximity, p.Strategy)
	assert.Equal(t, 1, p.MaxNesting)
}

func TestMapCometsStyles(t *testing.T) {
	single := MapComets(genconfig.CometSettings{CometOrbitStyle: genconfig.CometSungrazer})
	assert.Equal(t, []genconfig.CometOrbitStyle{genconfig.CometSungrazer}, single.Styles)

	mixed := MapComets(genconfig.CometSettings{CometOrbitStyle: genconfig.CometMixed})
	require.Len(t, mixed.Styles, 3)
	require.Len(t, mixed.StyleWeight, 3)
	for _, s := range mixed.Styles {
		_, ok := mixed.Shapes[s]
		assert.True(t, ok, "no shape for %s", s)
	}
}

func TestMapLagrangeModes(t *testing.T) {
	none := MapLagrange(genconfig.LagrangeSettings{EnableLagrangePoints: true, LagrangeMarkerMode: genconfig.LagrangeNone})
	assert.False(t, none.Markers)

	giants := MapLagrange(genconfig.LagrangeSettings{EnableLagrangePoints: true, LagrangeMarkerMode: genconfig.LagrangeGiantsOnly})
	assert.True(t, giants.Markers)
	assert.True(t, giants.GiantsOnly)

	all := MapLagrange(genconfig.LagrangeSettings{EnableLagrangePoints: true, LagrangeMarkerMode: genconfig.LagrangeAll})
	assert.True(t, all.Markers)
	assert.False(t, all.GiantsOnly)
}

func TestMapDisksStyles(t *testing.T) {
	banded := MapDisks(genconfig.DiskSettings{DiskStyle: genconfig.DiskBanded})
	assert.Equal(t, IntRange{Min: 2, Max: 5}, banded.BandCount)

	thin := MapDisks(genconfig.DiskSettings{DiskStyle: genconfig.DiskThin})
	thick := MapDisks(genconfig.DiskSettings{DiskStyle: genconfig.DiskThick})
	assert.Less(t, thin.ThicknessAU.Max, thick.ThicknessAU.Max)
	assert.Equal(t, IntRange{}, thin.BandCount)
}

func TestMapNebulaePalettes(t *testing.T) {
	emission := MapNebulae(genconfig.NebulaSettings{NebulaPalette: genconfig.NebulaEmission})
	require.Len(t, emission.Palettes, 1)
	assert.Equal(t, "emission", emission.Palettes[0].Kind)
	assert.Len(t, emission.Palettes[0].Colors, 3)

	mixed := MapNebulae(genconfig.NebulaSettings{NebulaPalette: genconfig.NebulaMixed})
	kinds := []string{}
	for _, p := range mixed.Palettes {
		kinds = append(kinds, p.Kind)
	}
	assert.Equal(t, []string{"emission", "reflection", "dark"}, kinds)
}

func TestMapBlackHolesActivity(t *testing.T) {
	dormant := MapBlackHoles(genconfig.BlackHoleSettings{BlackHoleActivity: genconfig.BlackHoleDormant})
	active := MapBlackHoles(genconfig.BlackHoleSettings{BlackHoleActivity: genconfig.BlackHoleActive})
	quasar := MapBlackHoles(genconfig.BlackHoleSettings{BlackHoleActivity: genconfig.BlackHoleQuasar})

	assert.Less(t, dormant.JetProbability, active.JetProbability)
	assert.Less(t, active.JetProbability, quasar.JetProbability)
	assert.Equal(t, 1.0, quasar.AccretionDiskProbability)

	fast := MapBlackHoles(genconfig.BlackHoleSettings{BlackHoleSpin: 1})
	assert.InDelta(t, maxSpin, fast.Spin.Max, 1e-12)
	assert.InDelta(t, 1.0, fast.PhotonRingProbability, 1e-12)
}

func TestMapRoguesTrajectory(t *testing.T) {
	assert.Equal(t, 0.0, MapRogues(genconfig.RogueSettings{RogueTrajectory: genconfig.RogueLinear}).CurvedProbability)
	assert.Equal(t, 1.0, MapRogues(genconfig.RogueSettings{RogueTrajectory: genconfig.RogueCurved}).CurvedProbability)
	assert.Equal(t, 0.5, MapRogues(genconfig.RogueSettings{RogueTrajectory: genconfig.RogueMixed}).CurvedProbability)
}

func TestRangeSampling(t *testing.T) {
	g := prng.New(prng.TextSeed("ranges"))
	for i := 0; i < 500; i++ {
		n := IntRange{Min: 3, Max: 7}.Sample(g)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)

		f := FloatRange{Min: -1, Max: 2}.Sample(g)
		assert.GreaterOrEqual(t, f, -1.0)
		assert.Less(t, f, 2.0)
	}
	assert.Equal(t, 0.5, FloatRange{Min: 0, Max: 1}.Mid())
}

func TestScaleCount(t *testing.T) {
	assert.Equal(t, IntRange{Min: 1, Max: 1}, scaleCount(IntRange{Min: 1, Max: 2}, 0.1, 1))
	assert.Equal(t, IntRange{Min: 10, Max: 20}, scaleCount(IntRange{Min: 4, Max: 8}, 2.5, 1))
}
