package component

import "github.com/jakecoffman/cp"

// VacuumTarget is the nearest thing the beam touched this tick.
type VacuumTarget struct {
	Found    bool
	Distance float64
	Point    cp.Vector
}

type Vacuum struct {
	MaxRange        float64
	ConeAngle       float64
	PullForce       float64
	CollectRadius   float64
	PickupMoveSpeed float64
	Offset          cp.Vector

	Active  bool
	Nearest VacuumTarget
}

var VacuumComponent = NewComponent[Vacuum]()
