package assembly

import (
	"math"
	"regexp"
	"testing"

	"planets-generator/internal/entity"
	"planets-generator/internal/mapper"
	"planets-generator/internal/prng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStellarClassTableCoversEveryClass(t *testing.T) {
	for _, class := range mapper.StellarClasses {
		sc, ok := stellarClasses[class]
		require.True(t, ok, class)
		assert.Less(t, sc.Mass.Min, sc.Mass.Max, class)
		assert.Less(t, sc.Temperature.Min, sc.Temperature.Max, class)
	}
}

func TestPlanetTablesAreConsistent(t *testing.T) {
	for zone, weights := range planetTypeWeights {
		assert.Len(t, weights, len(planetTypes), "zone %d", zone)
	}
	for _, pt := range planetTypes {
		shape, ok := planetShapes[pt]
		require.True(t, ok, pt)
		assert.NotEmpty(t, shape.Colors)
	}
}

func TestZoneFor(t *testing.T) {
	assert.Equal(t, zoneHot, zoneFor(0.3, 1))
	assert.Equal(t, zoneTemperate, zoneFor(2, 1))
	assert.Equal(t, zoneCold, zoneFor(10, 1))
	assert.Equal(t, zoneHot, zoneFor(10, 100))
}

func TestEquilibriumTemperature(t *testing.T) {
	assert.InDelta(t, 278, equilibriumTemperature(1, 1), 1e-9)
	assert.Less(t, equilibriumTemperature(1, 5), equilibriumTemperature(1, 1))
	assert.Zero(t, equilibriumTemperature(1, 0))
}

func TestPeriodYears(t *testing.T) {
	assert.InDelta(t, 1, periodYears(1, 1), 1e-12)
	assert.InDelta(t, 8, periodYears(4, 1), 1e-12)
	assert.InDelta(t, 1, periodYears(1, 0), 1e-12)
}

func TestJitterColor(t *testing.T) {
	g := prng.New(prng.TextSeed("colors"))
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, hex, jitterColor(g, "#FFCC6F", 0.2))
	}
	assert.Equal(t, "#ffcc6f", jitterColor(g, "#ffcc6f", 0))
	assert.Equal(t, "red", jitterColor(g, "red", 0.5))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "IV", roman(3))
	assert.Equal(t, "21", roman(20))
	assert.Equal(t, "a", letter(0))
	assert.Equal(t, "z", letter(25))
	assert.Equal(t, "aa", letter(26))
	assert.Equal(t, "Vega", starName("Vega", 0, 1))
	assert.Equal(t, "Vega B", starName("Vega", 1, 2))
	assert.Equal(t, "Vega III", planetName("Vega", 2))
	assert.Equal(t, "Vega IIIb", moonName("Vega III", 1))
}

func TestLagrangeMarkers(t *testing.T) {
	planet := &entity.Body{Mass: 318, Orbit: entity.Orbit{SemiMajorAxis: 5.2, Phase: 1}}
	markers := lagrangeMarkers(planet, 1)
	require.Len(t, markers, 5)

	assert.Less(t, markers[0].orbit.SemiMajorAxis, 5.2)
	assert.Greater(t, markers[1].orbit.SemiMajorAxis, 5.2)
	assert.InDelta(t, 1+math.Pi, markers[2].orbit.Phase, 1e-9)
	assert.InDelta(t, 1+math.Pi/3, markers[3].orbit.Phase, 1e-9)
	assert.InDelta(t, 1-math.Pi/3+2*math.Pi, markers[4].orbit.Phase, 1e-9)
	for i, m := range markers {
		assert.Equal(t, i+1, m.point)
	}
}

func TestRandomDirectionIsUnit(t *testing.T) {
	g := prng.New(prng.TextSeed("dirs"))
	for i := 0; i < 100; i++ {
		v := randomDirection(g)
		assert.InDelta(t, 1, math.Sqrt(v[0]*v[0]+v[1]*v[1]+v[2]*v[2]), 1e-9)
	}
}

func TestSampleOrbitBounds(t *testing.T) {
	g := prng.New(prng.TextSeed("orbits"))
	o := mapper.OrbitParams{
		Eccentricity:      mapper.FloatRange{Min: 0, Max: 0.3},
		MaxInclinationDeg: 10,
		SpeedScale:        1,
		RandomPhase:       true,
	}
	for i := 0; i < 200; i++ {
		orbit := sampleOrbit(g, o, 2, 1)
		assert.GreaterOrEqual(t, orbit.Eccentricity, 0.0)
		assert.Less(t, orbit.Eccentricity, 0.3)
		assert.LessOrEqual(t, math.Abs(orbit.Inclination), 10.0)
		assert.GreaterOrEqual(t, orbit.Phase, 0.0)
		assert.Less(t, orbit.Phase, 2*math.Pi)
		assert.Positive(t, orbit.AngularSpeed)
	}
}
