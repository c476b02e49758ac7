package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

const ProjectilePrefab = "projectile.yaml"

// NewProjectile fires a projectile from pos along dir. Lifetime is measured
// from now on the simulation clock.
func NewProjectile(w *ecs.World, pos, dir cp.Vector, now float64) (ecs.Entity, error) {
	if dir.LengthSq() == 0 {
		return 0, fmt.Errorf("projectile: zero direction")
	}
	e, err := BuildEntity(w, ProjectilePrefab)
	if err != nil {
		return 0, fmt.Errorf("projectile: %w", err)
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("projectile: set transform: %w", err)
	}
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: prefab %q has no projectile component", ProjectilePrefab)
	}
	p.Direction = dir.Normalize()
	if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok {
		ttl.ExpiresAt += now
	}
	return e, nil
}

type projectileSpec = prefabs.ProjectileComponentSpec

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Speed:  orDefault(spec.Speed, 10),
		Radius: orDefault(spec.Radius, 0.12),
		Damage: max(spec.Damage, 1),
	}); err != nil {
		return err
	}
	// ExpiresAt holds the lifetime until NewProjectile offsets it by the clock.
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{ExpiresAt: orDefault(spec.Lifetime, 2)})
}
