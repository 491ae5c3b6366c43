package universe

import (
	"encoding/json"

	"planets-generator/internal/assembly"
	"planets-generator/internal/genconfig"
	"planets-generator/internal/prng"
	"planets-generator/internal/topology"
)

// GenerateRequest is the body accepted by both generation endpoints. Config is
// kept raw so that omitted fields fall back to the defaults rather than to
// Go zero values.
type GenerateRequest struct {
	Seed    prng.Seed       `json:"seed"`
	Config  json.RawMessage `json:"config,omitempty"`
	Systems int             `json:"systems,omitempty"`
}

// Generation wraps a pipeline result. SeedGenerated is set when the caller
// sent no seed and one was drawn for them; replaying that seed reproduces the
// result.
type Generation struct {
	*assembly.Result
	SeedGenerated bool `json:"seed_generated"`
}

type PresetCatalog struct {
	Default string             `json:"default"`
	Presets []topology.Summary `json:"presets"`
}

type DefaultConfig struct {
	Config  genconfig.GenerationConfig `json:"config"`
	Sliders []string                   `json:"sliders"`
}
