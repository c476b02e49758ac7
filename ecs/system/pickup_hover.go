package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// PickupHoverSystem bobs non-dynamic pickups around their anchor.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().Delta
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if _, dynamic := dynamicBody(w, e); dynamic || pickup.BobAmplitude == 0 {
			return
		}
		if !pickup.Initialized {
			if pickup.Anchor == (cp.Vector{}) {
				pickup.Anchor = t.Position()
			}
			pickup.Initialized = true
		}

		pickup.BobPhase += pickup.BobSpeed * dt
		p := pickup.Anchor.Add(cp.Vector{Y: math.Sin(pickup.BobPhase) * pickup.BobAmplitude})
		t.SetPosition(p)
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
			pb.Body.SetPosition(p)
			pb.Body.SetVelocityVector(cp.Vector{})
		}
	})
}
