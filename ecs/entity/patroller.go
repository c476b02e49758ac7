package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

const PatrollerPrefab = "patroller.yaml"

func NewPatroller(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	e, err := BuildEntity(w, PatrollerPrefab)
	if err != nil {
		return 0, fmt.Errorf("patroller: %w", err)
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("patroller: set transform: %w", err)
	}
	return e, nil
}

type patrollerSpec = prefabs.PatrollerComponentSpec

func addPatroller(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[patrollerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode patroller spec: %w", err)
	}
	p := &component.Patroller{MovingRight: spec.StartRight}
	applyPatrollerSpec(p, spec)
	return ecs.Add(w, e, component.PatrollerComponent.Kind(), p)
}

func applyPatrollerSpec(p *component.Patroller, spec patrollerSpec) {
	p.MoveSpeed = orDefault(spec.MoveSpeed, 2)
	p.GroundProbeOffset = spec.GroundProbeOffset.Vector()
	p.GroundProbeLength = orDefault(spec.GroundProbeLength, 0.1)
	p.WallProbeOffset = spec.WallProbeOffset.Vector()
	p.WallProbeLength = orDefault(spec.WallProbeLength, 0.5)
	p.TurnPause = orDefault(spec.TurnPause, 0.5)
}
