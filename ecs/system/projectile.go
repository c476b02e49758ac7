package system

import (
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// ProjectileSystem flies projectiles and resolves their first hit.
type ProjectileSystem struct {
	query ecs.SpatialQuery
}

func NewProjectileSystem(query ecs.SpatialQuery) *ProjectileSystem {
	return &ProjectileSystem{query: query}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	query := resolveQuery(w, s.query)
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		setEntityVelocity(w, e, p.Direction.Mult(p.Speed))
		if query == nil {
			return
		}
		pos, ok := entityPosition(w, e)
		if !ok {
			return
		}

		for _, hit := range query.OverlapCircle(pos, p.Radius, component.LayerObstacle|component.LayerGhost|component.LayerEnemy) {
			if hit == e {
				continue
			}
			if g, ok := ecs.Get(w, hit, component.GhostComponent.Kind()); ok && g.State.Frozen() {
				continue
			}
			ApplyDamage(w, hit, p.Damage)
			ecs.DestroyEntity(w, e)
			return
		}
	})
}
