// Package assembly turns a seed and a generation config into a fully
// attributed entity graph.
//
// Every system k draws from the root stream forked under "system:<k>", and
// every subsystem inside it from its own labelled fork of that stream. Forks
// never advance their parent, so switching a subsystem off cannot shift the
// draws seen by any other subsystem, and generating system k alone yields
// exactly the entities it has inside a batch.
package assembly

import (
	"context"
	"log/slog"
	"strconv"

	"planets-generator/internal/entity"
	"planets-generator/internal/genconfig"
	"planets-generator/internal/grammar"
	"planets-generator/internal/mapper"
	"planets-generator/internal/prng"
	"planets-generator/internal/shared/errors"
	"planets-generator/internal/stats"
	"planets-generator/internal/topology"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// Request is the input of one generation call. A zero Seed is rejected;
// callers that want a fresh random universe substitute their own seed.
type Request struct {
	Seed   prng.Seed                  `json:"seed"`
	Config genconfig.GenerationConfig `json:"config"`
}

// Result is the single artifact of a generation call.
type Result struct {
	Seed     string                `json:"seed"`
	Preset   string                `json:"preset"`
	Systems  int                   `json:"system_count"`
	Entities *entity.Entities      `json:"entities"`
	Stats    stats.GenerationStats `json:"stats"`
}

type Pipeline struct {
	registry *topology.Registry
	logger   *slog.Logger
	workers  int
}

type Option func(*Pipeline)

// WithWorkers bounds how many systems a batch generates concurrently.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

func NewPipeline(registry *topology.Registry, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: registry,
		logger:   logger.With("component", "assembly"),
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// plan is everything a system needs that does not depend on its index.
type plan struct {
	seed   string
	preset topology.Preset
	config genconfig.GenerationConfig
	params mapper.Params
	ids    entity.IDSource
	root   *prng.Generator
}

// prepare validates the request and resolves the preset. No random draw is
// taken before validation succeeds.
func (p *Pipeline) prepare(req Request) (*plan, error) {
	if req.Seed.IsZero() {
		return nil, errors.Validation("seed is required")
	}
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	cfg := req.Config
	preset, fellBack := p.registry.Resolve(cfg.Preset)
	if fellBack {
		p.logger.Warn("Unknown topology preset, using default",
			"operation", "prepare",
			"requested", cfg.Preset,
			"preset", preset.ID)
	}

	if cfg.UsePresetSuggestions && len(preset.SuggestedOverrides) > 0 {
		overridden, err := cfg.WithOverrides(preset.SuggestedOverrides)
		if err != nil {
			return nil, errors.WrapInvariant("preset "+preset.ID+" has invalid overrides", err)
		}
		cfg = overridden
	}

	seed := req.Seed.String()
	return &plan{
		seed:   seed,
		preset: preset,
		config: cfg,
		params: mapper.MapAll(cfg),
		ids:    entity.NewIDSource(seed),
		root:   prng.New(req.Seed),
	}, nil
}

// Generate builds system 0.
func (p *Pipeline) Generate(req Request) (*Result, error) {
	return p.GenerateSystem(req, 0)
}

// GenerateSystem builds system index alone. Its entities are identical to
// those of the same index in a batch.
func (p *Pipeline) GenerateSystem(req Request, index int) (*Result, error) {
	if index < 0 {
		return nil, errors.Validationf("system index must not be negative, got %d", index)
	}
	pl, err := p.prepare(req)
	if err != nil {
		return nil, err
	}

	logger := p.logger.With("operation", "generate_system", "seed", pl.seed, "preset", pl.preset.ID, "system_index", index)
	logger.Debug("Generating system")

	ents, err := p.system(pl, index)
	if err != nil {
		logger.Error("System generation failed", "error", err)
		return nil, err
	}
	if err := ents.CheckReferences(); err != nil {
		logger.Error("Generated system failed integrity check", "error", err)
		return nil, err
	}

	result := &Result{
		Seed:     pl.seed,
		Preset:   pl.preset.ID,
		Systems:  1,
		Entities: ents,
		Stats:    stats.Reduce(ents),
	}
	logger.Info("System generated", "entities", result.Stats.TotalEntities)
	return result, nil
}

// GenerateBatch builds systems 0..n-1 concurrently and merges them in index
// order. When n is not positive the config's max_systems is used. Grouping,
// when enabled, runs over the merged batch.
func (p *Pipeline) GenerateBatch(ctx context.Context, req Request, n int) (*Result, error) {
	pl, err := p.prepare(req)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = pl.params.Topology.Systems
	}
	if n > genconfig.MaxSystemsLimit {
		return nil, errors.Validationf("batch size must be at most %d, got %d", genconfig.MaxSystemsLimit, n)
	}

	logger := p.logger.With("operation", "generate_batch", "seed", pl.seed, "preset", pl.preset.ID, "systems", n)
	logger.Debug("Generating batch")

	slots := make([]*entity.Entities, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for k := 0; k < n; k++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ents, err := p.system(pl, k)
			if err != nil {
				return err
			}
			slots[k] = ents
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Batch generation failed", "error", err)
		return nil, err
	}

	merged := entity.New()
	for _, ents := range slots {
		if err := merged.Merge(ents); err != nil {
			logger.Error("Failed to merge system", "error", err)
			return nil, err
		}
	}

	if pl.params.Grouping.Enabled {
		if err := buildGroups(pl, merged, pl.root.Fork("groups")); err != nil {
			logger.Error("Failed to group systems", "error", err)
			return nil, err
		}
	}

	if err := merged.CheckReferences(); err != nil {
		logger.Error("Generated batch failed integrity check", "error", err)
		return nil, err
	}

	result := &Result{
		Seed:     pl.seed,
		Preset:   pl.preset.ID,
		Systems:  n,
		Entities: merged,
		Stats:    stats.Reduce(merged),
	}
	logger.Info("Batch generated", "entities", result.Stats.TotalEntities, "groups", result.Stats.Groups)
	return result, nil
}

// system expands and assembles one system from its own fork.
func (p *Pipeline) system(pl *plan, index int) (*entity.Entities, error) {
	stream := pl.root.Fork("system:" + strconv.Itoa(index))

	tree, err := grammar.Expand(pl.preset.Grammar, stream.Fork("topology"), pl.params.Topology.Limits)
	if err != nil {
		return nil, errors.WrapInvariant("preset "+pl.preset.ID+" failed to expand", err)
	}

	b := newSystemBuilder(pl, index, stream)
	if err := b.build(tree); err != nil {
		return nil, err
	}
	if err := checkTreeCounts(tree, b.entities); err != nil {
		return nil, err
	}
	return b.entities, nil
}

// treeKinds pairs each tree node type with the body kind it becomes.
var treeKinds = []struct {
	node grammar.NodeType
	kind entity.Kind
}{
	{grammar.NodeStar, entity.KindStar},
	{grammar.NodePlanet, entity.KindPlanet},
	{grammar.NodeMoon, entity.KindMoon},
}

// checkTreeCounts verifies that every expanded node became exactly one body.
// Submoons are moon nodes, so they count as moons on both sides.
func checkTreeCounts(tree *grammar.Tree, ents *entity.Entities) error {
	nodes := tree.CountByType()
	bodies := make(map[entity.Kind]int)
	for _, b := range ents.Bodies {
		bodies[b.Kind]++
	}
	for _, tk := range treeKinds {
		if nodes[tk.node] != bodies[tk.kind] {
			return errors.Invariantf("tree has %d %s nodes but %d %s bodies were built",
				nodes[tk.node], tk.node, bodies[tk.kind], tk.kind)
		}
	}
	return nil
}
