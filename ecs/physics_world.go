package ecs

import (
	"log"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
)

// RayHit describes the first shape hit by a raycast.
type RayHit struct {
	Entity   Entity
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
}

// SpatialQuery answers synchronous ray and overlap questions against the
// physics world. Masks are collision category bits; only shapes whose
// category intersects the mask are reported.
type SpatialQuery interface {
	Raycast(origin, dir cp.Vector, maxDistance float64, mask uint) (RayHit, bool)
	OverlapCircle(center cp.Vector, radius float64, mask uint) []Entity
	OverlapBox(center, size cp.Vector, rotation float64, mask uint) []Entity
}

// PhysicsWorld owns the Chipmunk space and maps shapes back to entities.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*cp.Body
	shapes map[Entity][]*cp.Shape
}

var _ SpatialQuery = (*PhysicsWorld)(nil)

// NewPhysicsWorld creates an empty space with the given gravity.
func NewPhysicsWorld(gravity cp.Vector) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(gravity)
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*cp.Body),
		shapes: make(map[Entity][]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Attach adds body and its shapes to the space on behalf of e. Pass the
// space's static body for level geometry.
func (pw *PhysicsWorld) Attach(e Entity, body *cp.Body, shapes ...*cp.Shape) {
	if pw == nil || pw.space == nil || body == nil {
		return
	}
	if body != pw.space.StaticBody && !pw.space.ContainsBody(body) {
		pw.space.AddBody(body)
	}
	pw.bodies[e] = body
	for _, shape := range shapes {
		if shape == nil {
			continue
		}
		shape.UserData = e
		pw.space.AddShape(shape)
		pw.shapes[e] = append(pw.shapes[e], shape)
	}
}

// Body returns the body attached for e.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	body, ok := pw.bodies[e]
	return body, ok
}

// RemoveEntity drops every shape and body owned by e. Unknown entities are ignored.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	for _, shape := range pw.shapes[e] {
		if pw.space.ContainsShape(shape) {
			pw.space.RemoveShape(shape)
		}
	}
	delete(pw.shapes, e)
	if body, ok := pw.bodies[e]; ok {
		if body != pw.space.StaticBody && pw.space.ContainsBody(body) {
			pw.space.RemoveBody(body)
		}
		delete(pw.bodies, e)
	}
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

func queryFilter(mask uint) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: mask}
}

// Raycast returns the first non-sensor shape along dir within maxDistance.
func (pw *PhysicsWorld) Raycast(origin, dir cp.Vector, maxDistance float64, mask uint) (RayHit, bool) {
	if pw == nil || pw.space == nil || maxDistance <= 0 {
		return RayHit{}, false
	}
	if dir.LengthSq() == 0 {
		return RayHit{}, false
	}
	dir = dir.Normalize()
	end := origin.Add(dir.Mult(maxDistance))
	info := pw.space.SegmentQueryFirst(origin, end, 0, queryFilter(mask))
	if info.Shape == nil {
		return RayHit{}, false
	}
	return RayHit{
		Entity:   shapeEntity(info.Shape),
		Point:    info.Point,
		Normal:   info.Normal,
		Distance: info.Alpha * maxDistance,
	}, true
}

// OverlapCircle returns entities whose shapes intersect the circle, sensors included.
func (pw *PhysicsWorld) OverlapCircle(center cp.Vector, radius float64, mask uint) []Entity {
	if pw == nil || pw.space == nil || radius <= 0 {
		return nil
	}
	probe := cp.NewKinematicBody()
	probe.SetPosition(center)
	shape := cp.NewCircle(probe, radius, cp.Vector{})
	return pw.overlap(shape, mask)
}

// OverlapBox returns entities whose shapes intersect the box centred on center
// and rotated by rotation radians.
func (pw *PhysicsWorld) OverlapBox(center, size cp.Vector, rotation float64, mask uint) []Entity {
	if pw == nil || pw.space == nil || size.X <= 0 || size.Y <= 0 {
		return nil
	}
	probe := cp.NewKinematicBody()
	probe.SetPosition(center)
	if rotation != 0 && !math.IsNaN(rotation) {
		probe.SetAngle(rotation)
	}
	shape := cp.NewBox(probe, size.X, size.Y, 0)
	return pw.overlap(shape, mask)
}

func (pw *PhysicsWorld) overlap(probe *cp.Shape, mask uint) []Entity {
	probe.Filter = queryFilter(mask)
	var out []Entity
	pw.space.ShapeQuery(probe, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		e := shapeEntity(shape)
		if !e.Valid() {
			return
		}
		out = append(out, e)
	})
	slices.Sort(out)
	return slices.Compact(out)
}

func shapeEntity(shape *cp.Shape) Entity {
	if shape == nil {
		return 0
	}
	e, ok := shape.UserData.(Entity)
	if !ok {
		log.Printf("PhysicsWorld: shape without entity user data (%T)", shape.UserData)
		return 0
	}
	return e
}
