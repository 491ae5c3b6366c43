// Package stats reduces an entity set to aggregate counts.
package stats

import (
	"planets-generator/internal/entity"
)

// GenerationStats is derived entirely from the entity set; nothing here is
// sampled independently.
type GenerationStats struct {
	Systems            int            `json:"systems"`
	Stars              int            `json:"stars"`
	Planets            int            `json:"planets"`
	Moons              int            `json:"moons"`
	Submoons           int            `json:"submoons"`
	Comets             int            `json:"comets"`
	LagrangePoints     int            `json:"lagrange_points"`
	BlackHoles         int            `json:"black_holes"`
	RoguePlanets       int            `json:"rogue_planets"`
	RingedPlanets      int            `json:"ringed_planets"`
	AsteroidBelts      int            `json:"asteroid_belts"`
	KuiperBelts        int            `json:"kuiper_belts"`
	TrojanSwarms       int            `json:"trojan_swarms"`
	SmallBodyParticles int            `json:"small_body_particles"`
	Disks              int            `json:"protoplanetary_disks"`
	DiskParticles      int            `json:"disk_particles"`
	Nebulae            int            `json:"nebulae"`
	Groups             int            `json:"groups"`
	PlanetTypes        map[string]int `json:"planet_types"`
	StarClasses        map[string]int `json:"star_classes"`
	TotalEntities      int            `json:"total_entities"`
}

// Reduce counts e. A moon whose parent is another moon is counted as a
// submoon, not a moon.
func Reduce(e *entity.Entities) GenerationStats {
	s := GenerationStats{
		Systems:     len(e.Systems),
		Disks:       len(e.Disks),
		Nebulae:     len(e.Nebulae),
		Groups:      len(e.Groups),
		PlanetTypes: map[string]int{},
		StarClasses: map[string]int{},
	}

	for _, b := range e.Bodies {
		switch b.Kind {
		case entity.KindStar:
			s.Stars++
			s.StarClasses[b.Class]++
		case entity.KindPlanet:
			s.Planets++
			s.PlanetTypes[string(b.PlanetType)]++
			if b.Ring != nil {
				s.RingedPlanets++
			}
		case entity.KindMoon:
			if parent, ok := e.Bodies[b.ParentID]; ok && parent.Kind == entity.KindMoon {
				s.Submoons++
			} else {
				s.Moons++
			}
		case entity.KindComet:
			s.Comets++
		case entity.KindLagrangePoint:
			s.LagrangePoints++
		case entity.KindBlackHole:
			s.BlackHoles++
		case entity.KindRoguePlanet:
			s.RoguePlanets++
		}
	}

	for _, f := range e.SmallBody {
		switch f.Category {
		case entity.CategoryAsteroid:
			s.AsteroidBelts++
		case entity.CategoryKuiper:
			s.KuiperBelts++
		case entity.CategoryTrojan:
			s.TrojanSwarms++
		}
		s.SmallBodyParticles += f.ParticleCount
	}

	for _, d := range e.Disks {
		s.DiskParticles += d.ParticleCount
	}

	s.TotalEntities = len(e.Systems) + len(e.Bodies) + len(e.SmallBody) + len(e.Disks) + len(e.Nebulae) + len(e.Groups)
	return s
}
