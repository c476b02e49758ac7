package system

import (
	"log"

	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// ApplyDamage removes amount health from e. Ghosts that are stunned or
// capturable are immune. It reports whether any damage landed.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	if amount <= 0 {
		return false
	}
	if g, ok := ecs.Get(w, e, component.GhostComponent.Kind()); ok && g.State.Frozen() {
		return false
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || h.Current <= 0 {
		return false
	}

	h.Current = max(0, h.Current-amount)
	startHitFlash(w, e)
	if h.Current == 0 {
		onDepleted(w, e)
	}
	return true
}

// onDepleted turns an out-of-health ghost capturable and harmless. Anything
// else without a capture state is simply removed.
func onDepleted(w *ecs.World, e ecs.Entity) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.Dead = true
		p.DiedAt = w.Clock().Now
		return
	}
	if ecs.Has(w, e, component.GhostComponent.Kind()) && ecs.Has(w, e, component.CaptureComponent.Kind()) {
		if cd, ok := ecs.Get(w, e, component.ContactDamageComponent.Kind()); ok {
			cd.Amount = 0
		}
		RequestCapturable(w, e)
		log.Printf("DamageSystem: ghost %v depleted, now capturable", e)
		return
	}
	ecs.DestroyEntity(w, e)
}
