package topology

import (
	"sort"
	"sync"

	"planets-generator/internal/shared/errors"
)

// Registry is the preset catalog handed to generation code. It is safe for
// concurrent use; presets are only added, never replaced.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
	order   []string
}

// NewRegistry returns a registry preloaded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset)}
	for _, p := range Builtins() {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a copy of a preset. Duplicate IDs and invalid grammars are
// rejected.
func (r *Registry) Register(p Preset) error {
	if p.ID == "" {
		return errors.Validation("preset id is required")
	}
	if err := p.Grammar.Validate(); err != nil {
		return errors.WrapInvariant("preset "+p.ID+" has an invalid grammar", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.presets[p.ID]; exists {
		return errors.Validationf("preset %q is already registered", p.ID)
	}
	r.presets[p.ID] = p.Clone()
	r.order = append(r.order, p.ID)
	return nil
}

// Get returns a copy of the preset; mutating it leaves the registry untouched.
func (r *Registry) Get(id string) (Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.presets[id]
	if !ok {
		return Preset{}, false
	}
	return p.Clone(), true
}

// Resolve returns the preset for id, or the default preset when id is
// unknown. The second result reports whether the fallback was taken.
func (r *Registry) Resolve(id string) (Preset, bool) {
	if p, ok := r.Get(id); ok {
		return p, false
	}
	p, ok := r.Get(DefaultPreset)
	if !ok {
		// A registry without the default preset is a programming error.
		panic("topology: default preset " + DefaultPreset + " is not registered")
	}
	return p, true
}

// List returns copies of the presets in registration order.
func (r *Registry) List() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Preset, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.presets[id].Clone())
	}
	return out
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := append([]string(nil), r.order...)
	sort.Strings(ids)
	return ids
}
