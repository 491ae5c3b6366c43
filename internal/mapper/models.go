// Package mapper turns user-facing sliders and enums into the numeric
// parameters the grammar and assembly consume.
//
// Every mapper is a pure function of one settings slice. Inputs outside
// [0,1] are clamped rather than rejected, so the boundary values 0 and 1 are
// always valid.
package mapper

import (
	"math"

	"planets-generator/internal/genconfig"
	"planets-generator/internal/prng"
)

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Sample draws uniformly from r. A zero-width range still consumes a draw.
func (r IntRange) Sample(g *prng.Generator) int {
	return g.Int(r.Min, r.Max)
}

// FloatRange is a half-open interval [Min, Max).
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r FloatRange) Sample(g *prng.Generator) float64 {
	return g.Range(r.Min, r.Max)
}

// Mid is the centre of the range.
func (r FloatRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// lerp interpolates between a and b by t, with t clamped to [0,1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*genconfig.Clamp01(t)
}

// lerpInt interpolates and rounds to the nearest integer.
func lerpInt(a, b int, t float64) int {
	return int(math.Round(lerp(float64(a), float64(b), t)))
}

// scaleCount multiplies a count range, keeping Min >= floor and Max >= Min.
func scaleCount(r IntRange, factor float64, floor int) IntRange {
	out := IntRange{
		Min: int(math.Round(float64(r.Min) * factor)),
		Max: int(math.Round(float64(r.Max) * factor)),
	}
	if out.Min < floor {
		out.Min = floor
	}
	if out.Max < out.Min {
		out.Max = out.Min
	}
	return out
}

// Params is the full set of internal parameters for one generation call.
type Params struct {
	Topology   TopologyParams  `json:"topology"`
	Orbits     OrbitParams     `json:"orbits"`
	Stars      StarParams      `json:"stars"`
	Grouping   GroupingParams  `json:"grouping"`
	Belts      BeltParams      `json:"belts"`
	Rings      RingParams      `json:"rings"`
	Comets     CometParams     `json:"comets"`
	Lagrange   LagrangeParams  `json:"lagrange"`
	Disks      DiskParams      `json:"disks"`
	Nebulae    NebulaParams    `json:"nebulae"`
	BlackHoles BlackHoleParams `json:"black_holes"`
	Rogues     RogueParams     `json:"rogues"`
}
