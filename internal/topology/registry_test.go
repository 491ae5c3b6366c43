package topology

import (
	"fmt"
	"testing"

	"planets-generator/internal/grammar"
	"planets-generator/internal/prng"
	"planets-generator/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsAreValid(t *testing.T) {
	presets := Builtins()
	require.Len(t, presets, 6)

	ids := map[string]bool{}
	for _, p := range presets {
		require.NoError(t, p.Grammar.Validate(), p.ID)
		ids[p.ID] = true
	}
	for _, id := range []string{PresetClassic, PresetCompact, PresetMultiStarHeavy, PresetMoonRich, PresetSparseOutpost, PresetDeepHierarchy} {
		assert.True(t, ids[id], "missing %s", id)
	}
}

func TestRegistryResolveFallsBack(t *testing.T) {
	r := NewRegistry()

	p, fellBack := r.Resolve(PresetMoonRich)
	assert.False(t, fellBack)
	assert.Equal(t, PresetMoonRich, p.ID)

	p, fellBack = r.Resolve("spiralArms")
	assert.True(t, fellBack)
	assert.Equal(t, PresetClassic, p.ID)
}

func TestRegisterRejectsDuplicatesAndDefects(t *testing.T) {
	r := NewRegistry()

	err := r.Register(classic())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	broken := classic()
	broken.ID = "broken"
	broken.Grammar.MaxDepth = 0
	err = r.Register(broken)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvariant))

	custom := compact()
	custom.ID = "custom"
	require.NoError(t, r.Register(custom))
	assert.Len(t, r.List(), 7)
	assert.Equal(t, "custom", r.List()[6].ID)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	extra := compact()
	extra.ID = "extra"
	require.NoError(t, a.Register(extra))

	_, ok := b.Get("extra")
	assert.False(t, ok)
}

func TestSparseOutpostEmptyPlanetRate(t *testing.T) {
	p, _ := NewRegistry().Resolve(PresetSparseOutpost)

	empty := 0
	const runs = 1000
	for i := 0; i < runs; i++ {
		tree, err := grammar.Expand(p.Grammar, prng.New(prng.TextSeed(fmt.Sprintf("outpost-%d", i))), grammar.Limits{})
		require.NoError(t, err)
		if tree.CountByType()[grammar.NodePlanet] == 0 {
			empty++
		}
	}
	// 15% expected; three standard deviations at n=1000 is about 3.4%.
	assert.InDelta(t, 0.15, float64(empty)/runs, 0.04)
}

func TestPresetDepthBound(t *testing.T) {
	for _, p := range Builtins() {
		for i := 0; i < 100; i++ {
			tree, err := grammar.Expand(p.Grammar, prng.New(prng.NumberSeed(int64(i))), grammar.Limits{})
			require.NoError(t, err)
			require.LessOrEqual(t, tree.Depth(), p.Grammar.MaxDepth, p.ID)
		}
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	r := NewRegistry()
	want, ok := r.Get(PresetClassic)
	require.True(t, ok)
	want = want.Clone()

	got, _ := r.Get(PresetClassic)
	got.Grammar.Rules[grammar.SymbolPlanets][0].Repeat.P = 0.01
	*got.Grammar.Rules[grammar.SymbolPlanets][0].MaxCount = 99
	got.Grammar.Rules[grammar.SymbolPlanets] = nil
	got.Grammar.Axiom[0] = grammar.SymbolStar

	listed := r.List()
	listed[0].Grammar.Rules[grammar.SymbolMoons] = nil

	again, _ := r.Get(PresetClassic)
	assert.Equal(t, want, again)
}

func TestRegisterStoresACopy(t *testing.T) {
	r := NewRegistry()
	custom := compact()
	custom.ID = "custom"
	custom.SuggestedOverrides = map[string]float64{"ring_frequency": 0.5}
	require.NoError(t, r.Register(custom))

	custom.SuggestedOverrides["ring_frequency"] = 1
	custom.Grammar.Rules[grammar.SymbolPlanets] = nil

	stored, ok := r.Get("custom")
	require.True(t, ok)
	assert.Equal(t, 0.5, stored.SuggestedOverrides["ring_frequency"])
	assert.NotEmpty(t, stored.Grammar.Rules[grammar.SymbolPlanets])

	summary := stored.Summary()
	summary.SuggestedOverrides["ring_frequency"] = 0
	stored, _ = r.Get("custom")
	assert.Equal(t, 0.5, stored.SuggestedOverrides["ring_frequency"])
}
