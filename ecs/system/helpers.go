package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// HUDSink receives presentation values. Every call is last-value-wins; a nil
// sink skips the update.
type HUDSink interface {
	SetHealth(current, max int)
	SetCoins(coins int)
	SetTorchEnergy(fraction float64)
}

// resolveQuery prefers an injected query and falls back to the world's
// physics. A nil result means no spatial queries are possible this tick.
func resolveQuery(w *ecs.World, override ecs.SpatialQuery) ecs.SpatialQuery {
	if override != nil {
		return override
	}
	if pw := w.PhysicsWorld(); pw != nil {
		return pw
	}
	return nil
}

func dynamicBody(w *ecs.World, e ecs.Entity) (*cp.Body, bool) {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil || pb.Type != component.BodyDynamic {
		return nil, false
	}
	return pb.Body, true
}

func entityPosition(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil && pb.Type != component.BodyStatic {
		return pb.Body.Position(), true
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.Position(), true
	}
	return cp.Vector{}, false
}

func entityVelocity(w *ecs.World, e ecs.Entity) cp.Vector {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil && pb.Type != component.BodyStatic {
		return pb.Body.Velocity()
	}
	return cp.Vector{}
}

// setEntityVelocity drives the body when there is one. Without a body the
// transform is nudged by v over the current tick.
func setEntityVelocity(w *ecs.World, e ecs.Entity, v cp.Vector) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		if pb.Type != component.BodyStatic {
			pb.Body.SetVelocityVector(v)
		}
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.SetPosition(t.Position().Add(v.Mult(w.Clock().Delta)))
}

func setEntityPosition(w *ecs.World, e ecs.Entity, p cp.Vector) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil && pb.Type != component.BodyStatic {
		pb.Body.SetPosition(p)
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.SetPosition(p)
	}
	if pickup, ok := ecs.Get(w, e, component.PickupComponent.Kind()); ok {
		pickup.Anchor = p
	}
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}
