package entity

import (
	"fmt"

	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

// ApplyTuning reloads prefab and pushes its tuning values onto every live
// entity built from it. Runtime state (energy, capture progress, wander
// targets) is kept. It returns how many entities were updated.
func ApplyTuning(w *ecs.World, prefab string) (int, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("apply tuning: %w", err)
	}

	updated := 0
	var applyErr error
	ecs.ForEach(w, component.PrefabComponent.Kind(), func(e ecs.Entity, p *component.Prefab) {
		if applyErr != nil || p.Name != prefab {
			return
		}
		if err := applyTuningTo(w, e, spec); err != nil {
			applyErr = fmt.Errorf("apply tuning: %q on %v: %w", prefab, e, err)
			return
		}
		updated++
	})
	return updated, applyErr
}

func applyTuningTo(w *ecs.World, e ecs.Entity, spec prefabs.EntityBuildSpec) error {
	for name, raw := range spec.Components {
		switch name {
		case "player":
			s, err := prefabs.DecodeComponentSpec[playerSpec](raw)
			if err != nil {
				return err
			}
			if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
				applyPlayerSpec(p, s)
			}
		case "aim":
			s, err := prefabs.DecodeComponentSpec[aimSpec](raw)
			if err != nil {
				return err
			}
			if a, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
				applyAimSpec(a, s)
			}
		case "torch":
			s, err := prefabs.DecodeComponentSpec[torchSpec](raw)
			if err != nil {
				return err
			}
			if t, ok := ecs.Get(w, e, component.TorchComponent.Kind()); ok {
				applyTorchSpec(t, s)
			}
		case "vacuum":
			s, err := prefabs.DecodeComponentSpec[vacuumSpec](raw)
			if err != nil {
				return err
			}
			if v, ok := ecs.Get(w, e, component.VacuumComponent.Kind()); ok {
				applyVacuumSpec(v, s)
			}
		case "ghost":
			s, err := prefabs.DecodeComponentSpec[ghostSpec](raw)
			if err != nil {
				return err
			}
			if g, ok := ecs.Get(w, e, component.GhostComponent.Kind()); ok {
				applyGhostSpec(g, s)
			}
		case "capture":
			s, err := prefabs.DecodeComponentSpec[captureSpec](raw)
			if err != nil {
				return err
			}
			if c, ok := ecs.Get(w, e, component.CaptureComponent.Kind()); ok {
				applyCaptureSpec(c, s)
			}
		case "patroller":
			s, err := prefabs.DecodeComponentSpec[patrollerSpec](raw)
			if err != nil {
				return err
			}
			if p, ok := ecs.Get(w, e, component.PatrollerComponent.Kind()); ok {
				applyPatrollerSpec(p, s)
			}
		}
	}
	return nil
}
