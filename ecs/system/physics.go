package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// PhysicsSystem creates Chipmunk bodies for new PhysicsBody components,
// steps the space and copies body positions back onto transforms.
type PhysicsSystem struct {
	gravity cp.Vector
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{gravity: cp.Vector{X: 0, Y: common.Gravity}}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	pw := ps.Sync(w)
	pw.Step(w.Clock().Delta)
	ps.syncTransforms(w)
}

// Sync makes sure the world has a physics space and every PhysicsBody has a
// body in it. Call it after loading a level so the first tick can query.
func (ps *PhysicsSystem) Sync(w *ecs.World) *ecs.PhysicsWorld {
	pw := w.PhysicsWorld()
	if pw == nil {
		pw = ecs.NewPhysicsWorld(ps.gravity)
		w.SetPhysicsWorld(pw)
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body != nil {
			return
		}
		ps.createBody(pw, e, pb, t)
	})
	return pw
}

func (ps *PhysicsSystem) createBody(pw *ecs.PhysicsWorld, e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
	width, height, radius := pb.Width, pb.Height, pb.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width, height = 1, 1
	}
	center := t.Position()

	var body *cp.Body
	var shape *cp.Shape
	switch pb.Type {
	case component.BodyStatic:
		body = pw.Space().StaticBody
		if radius > 0 {
			shape = cp.NewCircle(body, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(body, bb, 0)
		}
	case component.BodyKinematic:
		body = cp.NewKinematicBody()
		body.SetPosition(center)
		shape = newBodyShape(body, width, height, radius)
	default:
		mass := pb.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := math.Inf(1)
		if !pb.FixedRotation {
			if radius > 0 {
				moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
			} else {
				moment = cp.MomentForBox(mass, width, height)
			}
		}
		body = cp.NewBody(mass, moment)
		body.SetPosition(center)
		body.SetAngle(t.Rotation)
		if pb.IgnoreGravity {
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
			})
		}
		shape = newBodyShape(body, width, height, radius)
	}

	mask := pb.Mask
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	shape.SetFriction(pb.Friction)
	shape.SetElasticity(pb.Elasticity)
	shape.SetSensor(pb.Sensor)
	shape.Filter = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: pb.Layer, Mask: mask}

	pw.Attach(e, body, shape)
	pb.Body = body
	pb.Shape = shape
	if pb.Layer == 0 {
		log.Printf("PhysicsSystem: entity %v has no collision layer", e)
	}
}

func newBodyShape(body *cp.Body, width, height, radius float64) *cp.Shape {
	if radius > 0 {
		return cp.NewCircle(body, radius, cp.Vector{})
	}
	return cp.NewBox(body, width, height, 0)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Type == component.BodyStatic {
			return
		}
		t.SetPosition(pb.Body.Position())
		t.Rotation = pb.Body.Angle()
	})
}
