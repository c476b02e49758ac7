package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

func addPlayerBody(t *testing.T, w *ecs.World, e ecs.Entity) {
	t.Helper()
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:          component.BodyDynamic,
		Width:         0.8,
		Height:        1.4,
		Mass:          1,
		FixedRotation: true,
		Layer:         component.LayerPlayer,
		Mask:          component.LayerObstacle,
	})
	NewPhysicsSystem().Sync(w)
}

func addTestPickup(t *testing.T, w *ecs.World, pos cp.Vector, kind component.PickupKind, value int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Value: value, Anchor: pos, BobAmplitude: 0.1, BobSpeed: 4})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyKinematic,
		Radius: 0.25,
		Sensor: true,
		Layer:  component.LayerPickup,
		Mask:   component.LayerPlayer,
	})
	NewPhysicsSystem().Sync(w)
	return e
}

func TestPickupCollect(t *testing.T) {
	cases := []struct {
		name       string
		kind       component.PickupKind
		value      int
		health     int
		wantCoins  int
		wantHealth int
	}{
		{"coin", component.PickupCoin, 2, 3, 2, 3},
		{"heal", component.PickupHealth, 1, 1, 0, 2},
		{"heal_capped", component.PickupHealth, 5, 2, 0, 3},
		{"heal_at_full", component.PickupHealth, 1, 3, 0, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newZeroGravityWorld()
			player := newTestPlayer(t, w, cp.Vector{})
			addPlayerBody(t, w, player.e)
			h, _ := ecs.Get(w, player.e, component.HealthComponent.Kind())
			h.Current = c.health
			near := addTestPickup(t, w, cp.Vector{X: 0.3}, c.kind, c.value)
			far := addTestPickup(t, w, cp.Vector{X: 4}, c.kind, c.value)
			hud := &recordingHUD{}

			w.Clock().Advance(testDT)
			NewPickupCollectSystem(nil, hud).Update(w)

			if ecs.IsAlive(w, near) {
				t.Fatalf("expected touched pickup consumed")
			}
			if !ecs.IsAlive(w, far) {
				t.Fatalf("expected distant pickup kept")
			}
			inv, _ := ecs.Get(w, player.e, component.InventoryComponent.Kind())
			if inv.Coins != c.wantCoins || h.Current != c.wantHealth {
				t.Fatalf("expected coins=%d health=%d, got %d %d", c.wantCoins, c.wantHealth, inv.Coins, h.Current)
			}
		})
	}
}

func TestPickupHoverBobsAroundAnchor(t *testing.T) {
	w := newZeroGravityWorld()
	e := addTestPickup(t, w, cp.Vector{X: 1, Y: 1}, component.PickupCoin, 1)
	hover := NewPickupHoverSystem()
	for range 120 {
		w.Clock().Advance(testDT)
		hover.Update(w)
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if tr.X != 1 || tr.Y < 0.9-1e-9 || tr.Y > 1.1+1e-9 {
			t.Fatalf("pickup drifted to %v", tr.Position())
		}
	}
	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if pb.Body.Position() != tr.Position() {
		t.Fatalf("body %v and transform %v out of sync", pb.Body.Position(), tr.Position())
	}
}

func TestTTLExpires(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TTLComponent.Kind(), &component.TTL{ExpiresAt: 0.05})
	ttl := NewTTLSystem()

	w.Clock().Advance(0.025)
	ttl.Update(w)
	if !ecs.IsAlive(w, e) {
		t.Fatalf("expired early")
	}
	w.Clock().Advance(0.025)
	ttl.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected entity destroyed at its deadline")
	}
}
