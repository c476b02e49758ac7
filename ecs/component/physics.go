package component

import "github.com/jakecoffman/cp"

type BodyType int

const (
	BodyDynamic BodyType = iota
	BodyKinematic
	BodyStatic
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Radius > 0 selects a circle collider, otherwise Width x Height box.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Type          BodyType
	Width         float64
	Height        float64
	Radius        float64
	Mass          float64
	Friction      float64
	Elasticity    float64
	Sensor        bool
	IgnoreGravity bool
	FixedRotation bool

	// Layer is the collision category, Mask the categories it physically collides with.
	Layer uint
	Mask  uint
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
