package system

import (
	"log"

	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// PickupCollectSystem consumes pickups the player touches. Health pickups
// are consumed even at full health.
type PickupCollectSystem struct {
	query ecs.SpatialQuery
	hud   HUDSink
}

func NewPickupCollectSystem(query ecs.SpatialQuery, hud HUDSink) *PickupCollectSystem {
	return &PickupCollectSystem{query: query, hud: hud}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	query := resolveQuery(w, s.query)
	if query == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.Player, pb *component.PhysicsBody) {
		if p.Dead {
			return
		}
		pos, _ := entityPosition(w, e)
		for _, other := range query.OverlapBox(pos, bodySize(pb), 0, component.LayerPickup) {
			pickup, ok := ecs.Get(w, other, component.PickupComponent.Kind())
			if !ok {
				continue
			}
			s.collect(w, e, pickup)
			ecs.DestroyEntity(w, other)
		}
	})
}

func (s *PickupCollectSystem) collect(w *ecs.World, player ecs.Entity, pickup *component.Pickup) {
	switch pickup.Kind {
	case component.PickupCoin:
		inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
		if !ok {
			return
		}
		inv.Coins += pickup.Value
		if s.hud != nil {
			s.hud.SetCoins(inv.Coins)
		}
	case component.PickupHealth:
		h, ok := ecs.Get(w, player, component.HealthComponent.Kind())
		if !ok {
			return
		}
		h.Current = min(h.Max, h.Current+pickup.Value)
		if s.hud != nil {
			s.hud.SetHealth(h.Current, h.Max)
		}
	default:
		log.Printf("PickupCollectSystem: unknown pickup kind %d", pickup.Kind)
	}
}
