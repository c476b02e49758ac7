package component

import "github.com/jakecoffman/cp"

// Patroller walks back and forth, turning at ledges and walls.
type Patroller struct {
	MoveSpeed         float64
	GroundProbeOffset cp.Vector
	GroundProbeLength float64
	WallProbeOffset   cp.Vector
	WallProbeLength   float64
	TurnPause         float64

	MovingRight bool
	Turning     bool
	TurnAt      float64
}

var PatrollerComponent = NewComponent[Patroller]()
