package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// RespawnSystem brings a dead player back at its spawn point with full
// health once RespawnDelay has passed.
type RespawnSystem struct {
	hud HUDSink
}

func NewRespawnSystem(hud HUDSink) *RespawnSystem { return &RespawnSystem{hud: hud} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	now := w.Clock().Now
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, p *component.Player, h *component.Health) {
		if !p.Dead || now < p.DiedAt+p.RespawnDelay {
			return
		}

		p.Dead = false
		h.Current = h.Max
		setEntityPosition(w, e, p.Spawn)
		setEntityVelocity(w, e, cp.Vector{})
		_ = ecs.Remove(w, e, component.KnockbackComponent.Kind())
		_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Until: now + p.InvincibleDuration})
		if s.hud != nil {
			s.hud.SetHealth(h.Current, h.Max)
		}
		log.Printf("RespawnSystem: player %v respawned at (%.2f, %.2f)", e, p.Spawn.X, p.Spawn.Y)
	})
}
