package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

const GhostPrefab = "ghost.yaml"

// NewGhost builds a ghost at pos that wanders inside room. A nil room makes
// it wander around its spawn point instead.
func NewGhost(w *ecs.World, pos cp.Vector, room *common.Rect) (ecs.Entity, error) {
	e, err := BuildEntity(w, GhostPrefab)
	if err != nil {
		return 0, fmt.Errorf("ghost: %w", err)
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("ghost: set transform: %w", err)
	}
	g, ok := ecs.Get(w, e, component.GhostComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("ghost: prefab %q has no ghost component", GhostPrefab)
	}
	g.Spawn = pos
	if room != nil {
		bounds := *room
		g.Room = &bounds
	}
	return e, nil
}

type ghostSpec = prefabs.GhostComponentSpec

func applyGhostSpec(g *component.Ghost, spec ghostSpec) {
	g.MoveSpeed = orDefault(spec.MoveSpeed, 2.2)
	g.WaypointRadius = orDefault(spec.WaypointRadius, 0.25)
	g.WaitMin = orDefault(spec.WaitMin, 0.4)
	g.WaitMax = orDefault(spec.WaitMax, 1.2)
	if g.WaitMax < g.WaitMin {
		g.WaitMax = g.WaitMin
	}
	g.RetargetDelay = orDefault(spec.RetargetDelay, 4)
	g.LookAhead = orDefault(spec.LookAhead, 0.8)
	g.AvoidStrength = orDefault(spec.AvoidStrength, 6)
	g.HoverAmplitude = orDefault(spec.HoverAmplitude, 0.05)
	g.HoverSpeed = orDefault(spec.HoverSpeed, 3)
	g.FlipDeadzone = orDefault(spec.FlipDeadzone, 0.3)
	g.WallMargin = orDefault(spec.WallMargin, 0.6)
	g.FallbackRadius = orDefault(spec.FallbackRadius, 2)
}

func addGhost(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ghostSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ghost spec: %w", err)
	}
	g := &component.Ghost{FacingRight: true}
	applyGhostSpec(g, spec)
	return ecs.Add(w, e, component.GhostComponent.Kind(), g)
}

type captureSpec = prefabs.CaptureComponentSpec

func applyCaptureSpec(c *component.Capture, spec captureSpec) {
	c.ProgressMax = orDefault(spec.ProgressMax, 3)
	c.CaptureRate = orDefault(spec.CaptureRate, 1.5)
	c.Reward = spec.Reward
	c.Progress = cp.Clamp(c.Progress, 0, c.ProgressMax)
}

func addCapture(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[captureSpec](raw)
	if err != nil {
		return fmt.Errorf("decode capture spec: %w", err)
	}
	c := &component.Capture{}
	applyCaptureSpec(c, spec)
	return ecs.Add(w, e, component.CaptureComponent.Kind(), c)
}
