package entity

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

const (
	CoinPrefab         = "coin.yaml"
	HealthPickupPrefab = "health_pickup.yaml"
)

func NewCoin(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	return newPickup(w, CoinPrefab, pos)
}

func NewHealthPickup(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	return newPickup(w, HealthPickupPrefab, pos)
}

func newPickup(w *ecs.World, prefab string, pos cp.Vector) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("pickup: %w", err)
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("pickup: set transform: %w", err)
	}
	if p, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok {
		p.Anchor = pos
	}
	return e, nil
}

type pickupSpec = prefabs.PickupComponentSpec

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[pickupSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	var kind component.PickupKind
	switch strings.ToLower(spec.Kind) {
	case "coin":
		kind = component.PickupCoin
	case "health":
		kind = component.PickupHealth
	default:
		return fmt.Errorf("unknown pickup kind %q", spec.Kind)
	}
	if spec.Value <= 0 {
		spec.Value = 1
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:         kind,
		Value:        spec.Value,
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
	})
}
