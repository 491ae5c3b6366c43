package universe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"planets-generator/internal/assembly"
	"planets-generator/internal/genconfig"
	"planets-generator/internal/prng"
	"planets-generator/internal/shared/config"
	"planets-generator/internal/shared/errors"
	"planets-generator/internal/topology"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Service fronts the generation pipeline for the HTTP layer. Generation is a
// pure function of seed, config and system selection, so results are
// memoised by those inputs.
type Service struct {
	pipeline      *assembly.Pipeline
	registry      *topology.Registry
	cache         *lru.Cache[string, *assembly.Result]
	defaultPreset string
	maxBatch      int
	logger        *slog.Logger
}

func NewService(pipeline *assembly.Pipeline, registry *topology.Registry, cfg config.GeneratorConfig, logger *slog.Logger) (*Service, error) {
	cache, err := lru.New[string, *assembly.Result](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	defaultPreset := cfg.DefaultPreset
	if _, ok := registry.Get(defaultPreset); !ok {
		return nil, fmt.Errorf("default preset %q is not registered", defaultPreset)
	}

	maxBatch := cfg.MaxBatchSystems
	if maxBatch <= 0 || maxBatch > genconfig.MaxSystemsLimit {
		maxBatch = genconfig.MaxSystemsLimit
	}

	return &Service{
		pipeline:      pipeline,
		registry:      registry,
		cache:         cache,
		defaultPreset: defaultPreset,
		maxBatch:      maxBatch,
		logger:        logger.With("component", "universe_service"),
	}, nil
}

// GenerateUniverse builds a batch of systems. When Systems is zero the
// config's max_systems decides the batch size.
func (s *Service) GenerateUniverse(ctx context.Context, req GenerateRequest) (*Generation, error) {
	logger := s.logger.With("operation", "generate_universe")

	areq, generated, err := s.request(req)
	if err != nil {
		return nil, err
	}

	n := req.Systems
	if n < 0 {
		return nil, errors.Validationf("systems must not be negative, got %d", n)
	}
	if n == 0 {
		n = areq.Config.MaxSystems
	}
	if n > s.maxBatch {
		return nil, errors.Validationf("systems must be at most %d, got %d", s.maxBatch, n)
	}

	key := cacheKey(areq, "batch:"+strconv.Itoa(n))
	if !generated {
		if result, ok := s.cache.Get(key); ok {
			logger.Debug("Serving cached universe", "seed", areq.Seed.String(), "systems", n)
			return &Generation{Result: result}, nil
		}
	}

	result, err := s.pipeline.GenerateBatch(ctx, areq, n)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapInternal("universe generation aborted", err)
		}
		return nil, err
	}
	s.cache.Add(key, result)

	logger.Info("Universe generated",
		"seed", result.Seed,
		"seed_generated", generated,
		"systems", result.Systems,
		"entities", result.Stats.TotalEntities)
	return &Generation{Result: result, SeedGenerated: generated}, nil
}

// GenerateSystem builds a single system by index. The result matches the
// same index inside any batch generated from the same seed and config.
func (s *Service) GenerateSystem(ctx context.Context, req GenerateRequest, index int) (*Generation, error) {
	logger := s.logger.With("operation", "generate_system")

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapInternal("system generation aborted", err)
	}

	areq, generated, err := s.request(req)
	if err != nil {
		return nil, err
	}
	if index >= s.maxBatch {
		return nil, errors.Validationf("system index must be below %d, got %d", s.maxBatch, index)
	}

	key := cacheKey(areq, "system:"+strconv.Itoa(index))
	if !generated {
		if result, ok := s.cache.Get(key); ok {
			logger.Debug("Serving cached system", "seed", areq.Seed.String(), "system_index", index)
			return &Generation{Result: result}, nil
		}
	}

	result, err := s.pipeline.GenerateSystem(areq, index)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, result)

	logger.Info("System generated",
		"seed", result.Seed,
		"seed_generated", generated,
		"system_index", index,
		"entities", result.Stats.TotalEntities)
	return &Generation{Result: result, SeedGenerated: generated}, nil
}

func (s *Service) Presets() PresetCatalog {
	presets := s.registry.List()
	summaries := make([]topology.Summary, 0, len(presets))
	for _, p := range presets {
		summaries = append(summaries, p.Summary())
	}
	return PresetCatalog{
		Default: s.defaultPreset,
		Presets: summaries,
	}
}

// Preset returns the catalog entry for one preset. Unlike generation, which
// falls back to the default preset, an unknown id here is reported.
func (s *Service) Preset(id string) (topology.Summary, error) {
	p, ok := s.registry.Get(id)
	if !ok {
		return topology.Summary{}, errors.NotFoundf("preset %q not found", id)
	}
	return p.Summary(), nil
}

func (s *Service) DefaultConfig() DefaultConfig {
	return DefaultConfig{
		Config:  s.baseConfig(),
		Sliders: genconfig.SliderNames(),
	}
}

func (s *Service) baseConfig() genconfig.GenerationConfig {
	cfg := genconfig.Default()
	cfg.Preset = s.defaultPreset
	return cfg
}

// request decodes the config and fills in a random seed when none was sent.
// The boolean reports whether the seed was generated here.
func (s *Service) request(req GenerateRequest) (assembly.Request, bool, error) {
	cfg, err := genconfig.DecodeOver(s.baseConfig(), req.Config)
	if err != nil {
		return assembly.Request{}, false, err
	}
	if err := cfg.Validate(); err != nil {
		return assembly.Request{}, false, err
	}

	seed := req.Seed
	generated := false
	if seed.IsZero() {
		seed = prng.TextSeed(uuid.NewString())
		generated = true
	}

	return assembly.Request{Seed: seed, Config: cfg}, generated, nil
}

// cacheKey relies on encoding/json writing struct fields in declaration
// order, so equal configs always encode to equal bytes.
func cacheKey(req assembly.Request, selection string) string {
	data, err := json.Marshal(req.Config)
	if err != nil {
		// GenerationConfig holds only strings, numbers and bools
		panic(err)
	}
	return req.Seed.String() + "\x00" + selection + "\x00" + string(data)
}
