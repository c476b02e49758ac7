package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"transform":       addTransform,
	"input":           addInput,
	"inventory":       addInventory,
	"ability_arbiter": addAbilityArbiter,
	"physics_body":    addPhysicsBody,
	"player":          addPlayer,
	"health":          addHealth,
	"contact_damage":  addContactDamage,
	"aim":             addAim,
	"torch":           addTorch,
	"vacuum":          addVacuum,
	"ghost":           addGhost,
	"capture":         addCapture,
	"patroller":       addPatroller,
	"pickup":          addPickup,
	"projectile":      addProjectile,
	"visual":          addVisual,
}

var componentBuildOrder = []string{
	"player_tag",
	"transform",
	"input",
	"inventory",
	"ability_arbiter",
	"physics_body",
	"player",
	"health",
	"contact_damage",
	"aim",
	"torch",
	"vacuum",
	"ghost",
	"capture",
	"patroller",
	"pickup",
	"projectile",
	"visual",
}

// BuildEntity creates an entity from a prefab. On any failure the partially
// built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if err := ecs.Add(w, e, component.PrefabComponent.Kind(), &component.Prefab{Name: prefabPath}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: tag prefab: %w", prefabPath, err)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

// SetEntityTransform moves a freshly built entity before its body exists.
func SetEntityTransform(w *ecs.World, e ecs.Entity, pos cp.Vector) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.SetPosition(pos)
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		body.Body.SetPosition(pos)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addInventory(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InventoryComponent.Kind(), &component.Inventory{})
}

func addAbilityArbiter(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AbilityArbiterComponent.Kind(), &component.AbilityArbiter{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

var layerNames = map[string]uint{
	"obstacle":   component.LayerObstacle,
	"player":     component.LayerPlayer,
	"ghost":      component.LayerGhost,
	"pickup":     component.LayerPickup,
	"projectile": component.LayerProjectile,
	"enemy":      component.LayerEnemy,
}

func parseLayer(name string) (uint, error) {
	layer, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown collision layer %q", name)
	}
	return layer, nil
}

func parseMask(names []string) (uint, error) {
	var mask uint
	for _, name := range names {
		layer, err := parseLayer(name)
		if err != nil {
			return 0, err
		}
		mask |= layer
	}
	return mask, nil
}

func parseBodyType(name string) (component.BodyType, error) {
	switch strings.ToLower(name) {
	case "", "dynamic":
		return component.BodyDynamic, nil
	case "kinematic":
		return component.BodyKinematic, nil
	case "static":
		return component.BodyStatic, nil
	default:
		return 0, fmt.Errorf("unknown body type %q", name)
	}
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	bodyType, err := parseBodyType(spec.Type)
	if err != nil {
		return err
	}
	layer := component.LayerObstacle
	if spec.Layer != "" {
		if layer, err = parseLayer(spec.Layer); err != nil {
			return err
		}
	}
	mask, err := parseMask(spec.Mask)
	if err != nil {
		return err
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		spec.Width, spec.Height = 1, 1
	}
	if bodyType == component.BodyDynamic && spec.Mass <= 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:          bodyType,
		Width:         spec.Width,
		Height:        spec.Height,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Sensor:        spec.Sensor,
		IgnoreGravity: spec.IgnoreGravity,
		FixedRotation: spec.FixedRotation,
		Layer:         layer,
		Mask:          mask,
	})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		spec.Max = 1
	}
	if spec.Current <= 0 || spec.Current > spec.Max {
		spec.Current = spec.Max
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Max: spec.Max, Current: spec.Current})
}

type contactDamageSpec = prefabs.ContactDamageComponentSpec

func addContactDamage(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[contactDamageSpec](raw)
	if err != nil {
		return fmt.Errorf("decode contact damage spec: %w", err)
	}
	if spec.Amount < 0 {
		spec.Amount = 0
	}
	return ecs.Add(w, e, component.ContactDamageComponent.Kind(), &component.ContactDamage{Amount: spec.Amount})
}

type visualSpec = prefabs.VisualComponentSpec

func addVisual(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[visualSpec](raw)
	if err != nil {
		return fmt.Errorf("decode visual spec: %w", err)
	}
	visual := &component.Visual{
		Color:  spec.Color.RGBA,
		Width:  spec.Width,
		Height: spec.Height,
		Radius: spec.Radius,
		Layer:  spec.Layer,
	}
	if !spec.Color.Set {
		visual.Color.R, visual.Color.G, visual.Color.B, visual.Color.A = 0xff, 0x00, 0xff, 0xff
	}
	return ecs.Add(w, e, component.VisualComponent.Kind(), visual)
}
