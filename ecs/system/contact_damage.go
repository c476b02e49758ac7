package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// ContactDamageSystem hurts the player when it overlaps a harmful ghost or
// enemy, then knocks it back and grants a short invulnerability window.
type ContactDamageSystem struct {
	query ecs.SpatialQuery
	hud   HUDSink
}

func NewContactDamageSystem(query ecs.SpatialQuery, hud HUDSink) *ContactDamageSystem {
	return &ContactDamageSystem{query: query, hud: hud}
}

func (s *ContactDamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	query := resolveQuery(w, s.query)
	if query == nil {
		return
	}

	now := w.Clock().Now
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.HealthComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Player, h *component.Health, pb *component.PhysicsBody) {
		if p.Dead || h.Current <= 0 {
			return
		}
		if inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind()); ok {
			if now < inv.Until {
				return
			}
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}

		pos, _ := entityPosition(w, e)
		for _, other := range query.OverlapBox(pos, bodySize(pb), 0, component.LayerGhost|component.LayerEnemy) {
			if g, ok := ecs.Get(w, other, component.GhostComponent.Kind()); ok && g.State.Frozen() {
				continue
			}
			cd, ok := ecs.Get(w, other, component.ContactDamageComponent.Kind())
			if !ok || cd.Amount <= 0 {
				continue
			}

			h.Current = max(0, h.Current-cd.Amount)
			_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Until: now + p.InvincibleDuration})
			_ = ecs.Add(w, e, component.KnockbackComponent.Kind(), &component.Knockback{Until: now + p.KnockbackDuration})

			otherPos, _ := entityPosition(w, other)
			knockback(w, e, p, pos, otherPos)

			if s.hud != nil {
				s.hud.SetHealth(h.Current, h.Max)
			}
			startHitFlash(w, e)
			if h.Current == 0 {
				p.Dead = true
				p.DiedAt = now
				log.Printf("ContactDamageSystem: player %v died", e)
			}
			return
		}
	})
}

// knockback pushes the player away from source horizontally with a small hop.
func knockback(w *ecs.World, e ecs.Entity, p *component.Player, pos, source cp.Vector) {
	dir := 1.0
	switch {
	case pos.X < source.X:
		dir = -1
	case pos.X == source.X && p.FacingRight:
		dir = -1
	}
	impulse := cp.Vector{X: dir * p.KnockbackForce, Y: p.KnockbackForce * 0.5}
	if body, ok := dynamicBody(w, e); ok {
		body.SetVelocityVector(cp.Vector{})
		body.ApplyImpulseAtWorldPoint(impulse, pos)
		return
	}
	setEntityVelocity(w, e, impulse)
}

func bodySize(pb *component.PhysicsBody) cp.Vector {
	if pb.Radius > 0 {
		return cp.Vector{X: pb.Radius * 2, Y: pb.Radius * 2}
	}
	return cp.Vector{X: pb.Width, Y: pb.Height}
}
