package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/ecs/entity"
)

// PlayerControllerSystem turns player intent into locomotion, jumps and
// shots. Facing is frozen while an ability is busy; movement is not.
type PlayerControllerSystem struct {
	query ecs.SpatialQuery
}

func NewPlayerControllerSystem(query ecs.SpatialQuery) *PlayerControllerSystem {
	return &PlayerControllerSystem{query: query}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	query := resolveQuery(w, s.query)
	now := w.Clock().Now
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input) {
		defer func() {
			in.JumpPressed = false
			in.ShootPressed = false
		}()

		vel := entityVelocity(w, e)
		if p.Dead {
			vel.X = 0
			setEntityVelocity(w, e, vel)
			return
		}

		busy := false
		if arb, ok := ecs.Get(w, e, component.AbilityArbiterComponent.Kind()); ok {
			busy = arb.Busy()
		}

		pos, _ := entityPosition(w, e)
		p.Grounded = query != nil && len(query.OverlapCircle(pos.Sub(cp.Vector{Y: p.GroundProbeOffset}), p.GroundProbeRadius, component.LayerObstacle)) > 0

		if kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind()); ok {
			if now < kb.Until {
				return
			}
			ecs.Remove(w, e, component.KnockbackComponent.Kind())
		}

		vel.X = in.MoveX * p.MoveSpeed
		if in.MoveX != 0 && !busy {
			p.FacingRight = in.MoveX > 0
		}
		if in.JumpPressed && p.Grounded {
			vel.Y = p.JumpSpeed
		}
		setEntityVelocity(w, e, vel)

		if in.ShootPressed && !busy {
			dir := p.Facing()
			if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok && aim.Up {
				dir = cp.Vector{Y: 1}
			}
			if _, err := entity.NewProjectile(w, pos.Add(dir.Mult(0.6)), dir, now); err != nil {
				log.Printf("PlayerControllerSystem: shoot: %v", err)
			}
		}
	})
}
