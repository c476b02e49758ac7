package component

import "github.com/jakecoffman/cp"

// Beam is the cosmetic vacuum beam pose.
type Beam struct {
	Active bool
	Start  cp.Vector
	End    cp.Vector
}

var BeamComponent = NewComponent[Beam]()

// Flash is the cosmetic torch hitbox pose.
type Flash struct {
	Active   bool
	Center   cp.Vector
	Size     cp.Vector
	Rotation float64
}

var FlashComponent = NewComponent[Flash]()
