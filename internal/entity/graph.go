package entity

import (
	"sort"

	"planets-generator/internal/shared/errors"
)

// AddSystem and the other Add methods fail with an invariant violation when
// the ID is already taken by any entity.
func (e *Entities) AddSystem(s *System) error {
	if err := e.claim(s.ID, s.Index, "system"); err != nil {
		return err
	}
	e.Systems[s.ID] = s
	return nil
}

func (e *Entities) AddBody(b *Body) error {
	if err := e.claim(b.ID, b.SystemIndex, b.Key); err != nil {
		return err
	}
	e.Bodies[b.ID] = b
	return nil
}

func (e *Entities) AddSmallBodyField(f *SmallBodyField) error {
	if err := e.claim(f.ID, f.SystemIndex, f.Key); err != nil {
		return err
	}
	e.SmallBody[f.ID] = f
	return nil
}

func (e *Entities) AddDisk(d *ProtoplanetaryDisk) error {
	if err := e.claim(d.ID, d.SystemIndex, d.Key); err != nil {
		return err
	}
	e.Disks[d.ID] = d
	return nil
}

func (e *Entities) AddNebula(n *NebulaRegion) error {
	if err := e.claim(n.ID, n.SystemIndex, n.Key); err != nil {
		return err
	}
	e.Nebulae[n.ID] = n
	return nil
}

func (e *Entities) AddGroup(g *Group) error {
	if err := e.claim(g.ID, -1, g.Name); err != nil {
		return err
	}
	e.Groups[g.ID] = g
	return nil
}

func (e *Entities) AddBelt(b *Belt) error {
	if err := e.claim(b.ID, -1, b.Kind); err != nil {
		return err
	}
	e.Belts[b.ID] = b
	return nil
}

func (e *Entities) claim(id string, systemIndex int, key string) error {
	if id == "" {
		return errors.Invariantf("entity %q in system %d has no id", key, systemIndex)
	}
	if e.Has(id) {
		return errors.Invariantf("duplicate entity id %s for %q in system %d", id, key, systemIndex)
	}
	return nil
}

// Has reports whether any entity uses id.
func (e *Entities) Has(id string) bool {
	if _, ok := e.Systems[id]; ok {
		return true
	}
	if _, ok := e.Bodies[id]; ok {
		return true
	}
	if _, ok := e.SmallBody[id]; ok {
		return true
	}
	if _, ok := e.Disks[id]; ok {
		return true
	}
	if _, ok := e.Nebulae[id]; ok {
		return true
	}
	if _, ok := e.Groups[id]; ok {
		return true
	}
	_, ok := e.Belts[id]
	return ok
}

// Merge moves every entity of other into e. Root IDs are appended in order.
func (e *Entities) Merge(other *Entities) error {
	for _, id := range sortedKeys(other.Systems) {
		if err := e.AddSystem(other.Systems[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(other.Bodies) {
		if err := e.AddBody(other.Bodies[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(other.SmallBody) {
		if err := e.AddSmallBodyField(other.SmallBody[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(other.Disks) {
		if err := e.AddDisk(other.Disks[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(other.Nebulae) {
		if err := e.AddNebula(other.Nebulae[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(other.Groups) {
		if err := e.AddGroup(other.Groups[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(other.Belts) {
		if err := e.AddBelt(other.Belts[id]); err != nil {
			return err
		}
	}
	e.RootIDs = append(e.RootIDs, other.RootIDs...)
	return nil
}

// CheckReferences verifies that every parent, host and group reference
// resolves, that each body's parent chain ends at a root, and that every
// root ID exists.
func (e *Entities) CheckReferences() error {
	for _, id := range sortedKeys(e.Bodies) {
		b := e.Bodies[id]
		if b.ParentID != "" {
			if _, ok := e.Bodies[b.ParentID]; !ok {
				return errors.Invariantf("body %s (%s) references missing parent %s", b.ID, b.Key, b.ParentID)
			}
		}
		if b.Lagrange != nil {
			for _, ref := range []string{b.Lagrange.PrimaryID, b.Lagrange.SecondaryID} {
				if _, ok := e.Bodies[ref]; !ok {
					return errors.Invariantf("lagrange point %s references missing body %s", b.ID, ref)
				}
			}
		}
		if err := e.checkAcyclic(b); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(e.SmallBody) {
		if f := e.SmallBody[id]; !e.Has(f.HostID) {
			return errors.Invariantf("small body field %s (%s) references missing host %s", f.ID, f.Key, f.HostID)
		}
	}
	for _, id := range sortedKeys(e.Disks) {
		if d := e.Disks[id]; !e.Has(d.HostID) {
			return errors.Invariantf("disk %s references missing host %s", d.ID, d.HostID)
		}
	}
	for _, id := range sortedKeys(e.Nebulae) {
		n := e.Nebulae[id]
		_, isSystem := e.Systems[n.HostID]
		if _, isBody := e.Bodies[n.HostID]; !isSystem && !isBody {
			return errors.Invariantf("nebula %s references missing host %s", n.ID, n.HostID)
		}
	}
	for _, id := range sortedKeys(e.Belts) {
		if b := e.Belts[id]; !e.Has(b.HostID) {
			return errors.Invariantf("belt %s references missing host %s", b.ID, b.HostID)
		}
	}
	for _, id := range sortedKeys(e.Systems) {
		for _, root := range e.Systems[id].RootIDs {
			if !e.Has(root) {
				return errors.Invariantf("system %s lists missing root %s", id, root)
			}
		}
	}
	for _, id := range sortedKeys(e.Groups) {
		g := e.Groups[id]
		if g.ParentGroupID != "" {
			if _, ok := e.Groups[g.ParentGroupID]; !ok {
				return errors.Invariantf("group %s references missing parent group %s", g.ID, g.ParentGroupID)
			}
		}
		for _, c := range g.Children {
			var ok bool
			switch c.Type {
			case GroupChildSystem:
				_, ok = e.Systems[c.ID]
			case GroupChildGroup:
				_, ok = e.Groups[c.ID]
			}
			if !ok {
				return errors.Invariantf("group %s references missing %s %s", g.ID, c.Type, c.ID)
			}
		}
	}
	for _, root := range e.RootIDs {
		if !e.Has(root) {
			return errors.Invariantf("missing root entity %s", root)
		}
	}
	return nil
}

func (e *Entities) checkAcyclic(b *Body) error {
	seen := map[string]bool{b.ID: true}
	for cur := b; cur.ParentID != ""; {
		if seen[cur.ParentID] {
			return errors.Invariantf("body %s has a cyclic parent chain", b.ID)
		}
		seen[cur.ParentID] = true
		next, ok := e.Bodies[cur.ParentID]
		if !ok {
			break
		}
		cur = next
	}
	return nil
}

// Children returns the bodies whose parent is id, sorted by key.
func (e *Entities) Children(id string) []*Body {
	var out []*Body
	for _, b := range e.Bodies {
		if b.ParentID == id {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// BodiesOfKind returns the bodies of kind k sorted by system index then key.
func (e *Entities) BodiesOfKind(k Kind) []*Body {
	var out []*Body
	for _, b := range e.Bodies {
		if b.Kind == k {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SystemIndex != out[j].SystemIndex {
			return out[i].SystemIndex < out[j].SystemIndex
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
