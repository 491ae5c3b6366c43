package genconfig

import (
	"sort"

	"planets-generator/internal/shared/errors"
)

// floatFields maps the JSON name of every 0..1 slider to its storage.
func (c *GenerationConfig) floatFields() map[string]*float64 {
	return map[string]*float64{
		"orbit_spacing":         &c.OrbitSpacing,
		"inclination_variance":  &c.InclinationVariance,
		"orbit_speed":           &c.OrbitSpeed,
		"star_brightness":       &c.StarBrightness,
		"color_variation":       &c.ColorVariation,
		"star_size_scale":       &c.StarSizeScale,
		"planet_size_scale":     &c.PlanetSizeScale,
		"group_size":            &c.GroupSize,
		"nesting_probability":   &c.NestingProbability,
		"belt_density":          &c.BeltDensity,
		"kuiper_density":        &c.KuiperDensity,
		"ring_frequency":        &c.RingFrequency,
		"ring_prominence":       &c.RingProminence,
		"comet_frequency":       &c.CometFrequency,
		"comet_activity":        &c.CometActivity,
		"trojan_frequency":      &c.TrojanFrequency,
		"trojan_density":        &c.TrojanDensity,
		"disk_frequency":        &c.DiskFrequency,
		"disk_density":          &c.DiskDensity,
		"nebula_density":        &c.NebulaDensity,
		"nebula_size":           &c.NebulaSize,
		"nebula_brightness":     &c.NebulaBrightness,
		"black_hole_frequency":  &c.BlackHoleFrequency,
		"black_hole_mass_scale": &c.BlackHoleMassScale,
		"black_hole_spin":       &c.BlackHoleSpin,
		"rogue_frequency":       &c.RogueFrequency,
	}
}

// SliderNames lists the names accepted by WithOverrides, sorted.
func SliderNames() []string {
	var c GenerationConfig
	fields := c.floatFields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides returns a copy of c with the named sliders replaced.
// Values are clamped to [0,1]. An unknown name is reported as an invariant
// violation since overrides come from preset definitions, not users.
func (c GenerationConfig) WithOverrides(overrides map[string]float64) (GenerationConfig, error) {
	out := c
	fields := out.floatFields()
	for name, v := range overrides {
		ptr, ok := fields[name]
		if !ok {
			return c, errors.Invariantf("unknown config override %q", name)
		}
		*ptr = Clamp01(v)
	}
	return out, nil
}

// Clamp01 limits v to [0,1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	switch {
	case v != v || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
