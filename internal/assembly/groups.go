package assembly

import (
	"math"
	"sort"
	"strconv"

	"planets-generator/internal/entity"
	"planets-generator/internal/genconfig"
	"planets-generator/internal/mapper"
	"planets-generator/internal/prng"
)

// buildGroups clusters the systems of a batch. Level-one groups hold
// systems; each further level, up to MaxNesting, wraps groups of the level
// below with probability NestingProbability per group.
func buildGroups(pl *plan, ents *entity.Entities, g *prng.Generator) error {
	params := pl.params.Grouping

	systems := make([]*entity.System, 0, len(ents.Systems))
	for _, s := range ents.Systems {
		systems = append(systems, s)
	}
	sort.Slice(systems, func(i, j int) bool { return systems[i].Index < systems[j].Index })
	if len(systems) == 0 {
		return nil
	}

	var clusters [][]*entity.System
	switch params.Strategy {
	case genconfig.GroupingRandom:
		clusters = randomClusters(g.Fork("random"), systems, params.GroupSize)
	default:
		clusters = proximityClusters(g.Fork("proximity"), systems, params.GroupSize)
	}

	level := make([]*entity.Group, 0, len(clusters))
	for i, cluster := range clusters {
		group := &entity.Group{
			ID:   pl.ids.ID(-1, "group:1:"+strconv.Itoa(i)),
			Name: "Cluster " + roman(i),
		}
		for _, s := range cluster {
			group.Children = append(group.Children, entity.GroupChild{Type: entity.GroupChildSystem, ID: s.ID})
		}
		if err := ents.AddGroup(group); err != nil {
			return err
		}
		level = append(level, group)
	}

	ng := g.Fork("nesting")
	for depth := 2; depth <= params.MaxNesting && len(level) > 1; depth++ {
		var next []*entity.Group
		var pending []*entity.Group
		for _, child := range level {
			if ng.Bool(params.NestingProbability) {
				pending = append(pending, child)
			}
		}
		for i := 0; i+1 < len(pending); i += params.GroupSize.Max {
			end := min(i+params.GroupSize.Max, len(pending))
			parent := &entity.Group{
				ID:   pl.ids.ID(-1, "group:"+strconv.Itoa(depth)+":"+strconv.Itoa(len(next))),
				Name: "Supercluster " + roman(len(next)),
			}
			for _, child := range pending[i:end] {
				child.ParentGroupID = parent.ID
				parent.Children = append(parent.Children, entity.GroupChild{Type: entity.GroupChildGroup, ID: child.ID})
			}
			if err := ents.AddGroup(parent); err != nil {
				return err
			}
			next = append(next, parent)
		}
		level = next
	}
	return nil
}

// randomClusters shuffles the systems and cuts them into groups of sampled
// size.
func randomClusters(g *prng.Generator, systems []*entity.System, size mapper.IntRange) [][]*entity.System {
	shuffled := append([]*entity.System(nil), systems...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.Int(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	var out [][]*entity.System
	for len(shuffled) > 0 {
		n := min(size.Sample(g), len(shuffled))
		out = append(out, shuffled[:n])
		shuffled = shuffled[n:]
	}
	return out
}

// proximityClusters seeds each group with the lowest-index unassigned
// system and fills it with its nearest unassigned neighbours.
func proximityClusters(g *prng.Generator, systems []*entity.System, size mapper.IntRange) [][]*entity.System {
	assigned := make([]bool, len(systems))
	var out [][]*entity.System

	for seed := range systems {
		if assigned[seed] {
			continue
		}
		assigned[seed] = true
		cluster := []*entity.System{systems[seed]}
		want := size.Sample(g)

		for len(cluster) < want {
			best, bestDist := -1, math.Inf(1)
			for j, s := range systems {
				if assigned[j] {
					continue
				}
				if d := distance(systems[seed].Position, s.Position); d < bestDist {
					best, bestDist = j, d
				}
			}
			if best < 0 {
				break
			}
			assigned[best] = true
			cluster = append(cluster, systems[best])
		}
		out = append(out, cluster)
	}
	return out
}

func distance(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
