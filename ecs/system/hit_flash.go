package system

import (
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const (
	hitFlashDuration = 0.3
	hitFlashInterval = 0.05
)

// startHitFlash makes e blink for a short while. A running flash is extended.
func startHitFlash(w *ecs.World, e ecs.Entity) {
	now := w.Clock().Now
	if hf, ok := ecs.Get(w, e, component.HitFlashComponent.Kind()); ok {
		hf.Until = now + hitFlashDuration
		return
	}
	_ = ecs.Add(w, e, component.HitFlashComponent.Kind(), &component.HitFlash{
		Until:    now + hitFlashDuration,
		Interval: hitFlashInterval,
		NextAt:   now + hitFlashInterval,
		On:       true,
	})
}

// HitFlashSystem toggles hit flashes and removes them once they expire.
type HitFlashSystem struct{}

func NewHitFlashSystem() *HitFlashSystem { return &HitFlashSystem{} }

func (s *HitFlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Clock().Now
	ecs.ForEach(w, component.HitFlashComponent.Kind(), func(e ecs.Entity, hf *component.HitFlash) {
		if now >= hf.Until {
			_ = ecs.Remove(w, e, component.HitFlashComponent.Kind())
			return
		}
		if hf.Interval <= 0 {
			hf.Interval = hitFlashInterval
		}
		for now >= hf.NextAt {
			hf.On = !hf.On
			hf.NextAt += hf.Interval
		}
	})
}
