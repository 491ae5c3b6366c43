package assembly

import (
	"math"

	"planets-generator/internal/entity"
	"planets-generator/internal/mapper"
	"planets-generator/internal/prng"
)

const (
	earthRadiusAU = 4.2635e-5
	earthMassSol  = 3.003e-6
	frostLineAU   = 2.7
)

// stellarClass holds the physical ranges of one spectral class. Mass and
// radius are in solar units.
type stellarClass struct {
	Description string
	Color       string
	Temperature mapper.FloatRange
	Luminosity  mapper.FloatRange
	Mass        mapper.FloatRange
	Radius      mapper.FloatRange
}

var stellarClasses = map[string]stellarClass{
	"O": {"Blue Supergiant", "#9bb0ff", fr(30000, 50000), fr(30000, 50000), fr(16, 60), fr(6.6, 15)},
	"B": {"Blue Giant", "#aabfff", fr(10000, 30000), fr(25, 1025), fr(2.1, 16), fr(1.8, 6.6)},
	"A": {"White Star", "#cad7ff", fr(7500, 10000), fr(5, 25), fr(1.4, 2.1), fr(1.4, 1.8)},
	"F": {"Yellow-White Star", "#f8f7ff", fr(6000, 7500), fr(1.5, 5), fr(1.04, 1.4), fr(1.15, 1.4)},
	"G": {"Yellow Dwarf", "#fff4ea", fr(5200, 6000), fr(0.6, 1.5), fr(0.8, 1.04), fr(0.96, 1.15)},
	"K": {"Orange Dwarf", "#ffd2a1", fr(3700, 5200), fr(0.08, 0.6), fr(0.45, 0.8), fr(0.7, 0.96)},
	"M": {"Red Dwarf", "#ffcc6f", fr(2400, 3700), fr(0.001, 0.08), fr(0.08, 0.45), fr(0.1, 0.7)},
}

func fr(min, max float64) mapper.FloatRange {
	return mapper.FloatRange{Min: min, Max: max}
}

// planetZone splits the system by distance relative to the frost line.
type planetZone int

const (
	zoneHot planetZone = iota
	zoneTemperate
	zoneCold
)

var planetTypes = []entity.PlanetType{
	entity.PlanetTypeBarren,
	entity.PlanetTypeTerrestrial,
	entity.PlanetTypeGasGiant,
	entity.PlanetTypeIce,
	entity.PlanetTypeVolcanic,
}

// planetTypeWeights follow planetTypes order. Terrestrial worlds dominate the
// temperate zone and giants the cold zone.
var planetTypeWeights = map[planetZone][]float64{
	zoneHot:       {25, 30, 5, 0, 40},
	zoneTemperate: {15, 40, 20, 15, 10},
	zoneCold:      {10, 5, 45, 40, 0},
}

// planetShape holds mass and radius ranges in Earth units.
type planetShape struct {
	Mass   mapper.FloatRange
	Radius mapper.FloatRange
	Colors []string
}

var planetShapes = map[entity.PlanetType]planetShape{
	entity.PlanetTypeBarren:      {fr(0.05, 1.5), fr(0.3, 1.2), []string{"#8c8c8c", "#a39e93", "#6e6a64"}},
	entity.PlanetTypeTerrestrial: {fr(0.3, 5), fr(0.6, 1.8), []string{"#4f7cac", "#5c9e6a", "#b59b6a"}},
	entity.PlanetTypeGasGiant:    {fr(20, 320), fr(4, 12), []string{"#d9b38c", "#c98f5a", "#e8d3a9"}},
	entity.PlanetTypeIce:         {fr(5, 25), fr(2, 4.5), []string{"#9fd3e6", "#7fb8d9", "#c4e6f2"}},
	entity.PlanetTypeVolcanic:    {fr(0.1, 2), fr(0.4, 1.3), []string{"#b3412b", "#8a2f1d", "#d9693f"}},
}

var moonColors = []string{"#b0b0b0", "#cfc6b8", "#9a8f80", "#d8d2c4", "#7d7a75"}

var ringColors = []string{"#e6d8b8", "#c9b48f", "#d7d0c8", "#a89f91"}

func zoneFor(distanceAU, luminosity float64) planetZone {
	frost := frostLineAU * math.Sqrt(luminosity)
	switch {
	case distanceAU < 0.5*frost:
		return zoneHot
	case distanceAU < frost:
		return zoneTemperate
	default:
		return zoneCold
	}
}

// equilibriumTemperature is the blackbody temperature in kelvin at the given
// distance from a star of the given luminosity.
func equilibriumTemperature(luminosity, distanceAU float64) float64 {
	if distanceAU <= 0 {
		return 0
	}
	return 278 * math.Pow(luminosity, 0.25) / math.Sqrt(distanceAU)
}

// periodYears applies Kepler's third law with the central mass in solar
// masses.
func periodYears(semiMajorAU, centralMassSol float64) float64 {
	if centralMassSol <= 0 {
		centralMassSol = 1
	}
	return math.Sqrt(semiMajorAU * semiMajorAU * semiMajorAU / centralMassSol)
}

// angularSpeed is radians per year scaled by the configured speed factor.
func angularSpeed(period, scale float64) float64 {
	if period <= 0 {
		return 0
	}
	return 2 * math.Pi / period * scale
}

// sampleOrbit draws eccentricity, inclination and phase in that order. The
// phase is always drawn so aligned mode does not change later draws.
func sampleOrbit(g *prng.Generator, o mapper.OrbitParams, semiMajor, centralMassSol float64) entity.Orbit {
	ecc := o.Eccentricity.Sample(g)
	incl := clampFloat(g.NormalWith(0, o.MaxInclinationDeg/3), -o.MaxInclinationDeg, o.MaxInclinationDeg)
	phase := g.Range(0, 2*math.Pi)
	if !o.RandomPhase {
		phase = 0
	}

	period := periodYears(semiMajor, centralMassSol)
	return entity.Orbit{
		SemiMajorAxis: semiMajor,
		Eccentricity:  ecc,
		Inclination:   incl,
		Phase:         phase,
		AngularSpeed:  angularSpeed(period, o.SpeedScale),
		PeriodYears:   period,
	}
}

// jitterColor nudges each RGB channel of a "#rrggbb" colour by up to
// amount (fraction of full scale). One draw per channel is always taken.
func jitterColor(g *prng.Generator, hex string, amount float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	out := []byte{'#'}
	for i := 1; i < 7; i += 2 {
		v := float64(hexByte(hex[i])<<4|hexByte(hex[i+1])) / 255
		v = clampFloat(v+g.Range(-amount, amount), 0, 1)
		b := byte(math.Round(v * 255))
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}

const hexDigits = "0123456789abcdef"

func hexByte(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// randomDirection returns a uniformly distributed unit vector.
func randomDirection(g *prng.Generator) [3]float64 {
	z := g.Range(-1, 1)
	theta := g.Range(0, 2*math.Pi)
	r := math.Sqrt(1 - z*z)
	return [3]float64{r * math.Cos(theta), r * math.Sin(theta), z}
}

func scale(v [3]float64, s float64) [3]float64 {
	return [3]float64{v[0] * s, v[1] * s, v[2] * s}
}
