package genconfig

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"

	"planets-generator/internal/shared/errors"
)

// Decode reads a JSON config over Default, so omitted fields keep their
// default value. Unknown fields are rejected.
func Decode(data []byte) (GenerationConfig, error) {
	return DecodeOver(Default(), data)
}

// DecodeOver is Decode with a caller supplied base config.
func DecodeOver(base GenerationConfig, data []byte) (GenerationConfig, error) {
	cfg := base
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return cfg, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return GenerationConfig{}, errors.WrapValidation("invalid generation config", err)
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found. Fields
// are checked in a fixed order so the reported field is stable.
func (c GenerationConfig) Validate() error {
	if err := c.TopologySettings.validate(); err != nil {
		return err
	}

	floats := c.floatFields()
	names := make([]string, 0, len(floats))
	for name := range floats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := *floats[name]
		if math.IsNaN(v) || v < 0 || v > 1 {
			return errors.Validationf("%s must be between 0 and 1, got %v", name, v)
		}
	}

	for _, e := range c.enumFields() {
		if !e.valid() {
			return errors.Validationf("%s must be one of %v, got %q", e.name, e.allowed, e.value)
		}
	}
	return nil
}

func (t TopologySettings) validate() error {
	if t.Preset == "" {
		return errors.Validation("topology_preset is required")
	}
	if err := intInRange("max_systems", t.MaxSystems, 1, MaxSystemsLimit); err != nil {
		return err
	}
	if err := intInRange("max_stars_per_system", t.MaxStarsPerSystem, 1, MaxStarsLimit); err != nil {
		return err
	}
	if err := intInRange("max_planets_per_system", t.MaxPlanetsPerSystem, 1, MaxPlanetsLimit); err != nil {
		return err
	}
	if err := intInRange("max_moons_per_planet", t.MaxMoonsPerPlanet, 1, MaxMoonsLimit); err != nil {
		return err
	}
	return intInRange("max_depth", t.MaxDepth, 0, MaxDepthLimit)
}

func intInRange(name string, v, min, max int) error {
	if v < min || v > max {
		return errors.Validationf("%s must be between %d and %d, got %d", name, min, max, v)
	}
	return nil
}

type enumField struct {
	name    string
	value   string
	allowed []string
}

func (e enumField) valid() bool {
	for _, a := range e.allowed {
		if e.value == a {
			return true
		}
	}
	return false
}

func (c GenerationConfig) enumFields() []enumField {
	return []enumField{
		{"orbit_style", string(c.OrbitStyle), []string{"circular", "eccentric", "chaotic"}},
		{"phase_mode", string(c.PhaseMode), []string{"random", "aligned"}},
		{"grouping_strategy", string(c.GroupingStrategy), []string{"proximity", "random", "hierarchical"}},
		{"belt_placement", string(c.BeltPlacement), []string{"inner", "outer", "both"}},
		{"small_body_detail", string(c.SmallBodyDetail), []string{"low", "medium", "high", "ultra"}},
		{"comet_orbit_style", string(c.CometOrbitStyle), []string{"short_period", "long_period", "sungrazer", "mixed"}},
		{"lagrange_marker_mode", string(c.LagrangeMarkerMode), []string{"none", "giants_only", "all"}},
		{"disk_style", string(c.DiskStyle), []string{"thin", "thick", "banded"}},
		{"nebula_palette", string(c.NebulaPalette), []string{"emission", "reflection", "dark", "mixed"}},
		{"black_hole_activity", string(c.BlackHoleActivity), []string{"dormant", "active", "quasar"}},
		{"rogue_trajectory", string(c.RogueTrajectory), []string{"linear", "curved", "mixed"}},
	}
}
