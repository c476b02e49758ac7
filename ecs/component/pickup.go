package component

import "github.com/jakecoffman/cp"

type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupHealth
)

// Pickup is a collectible. Anchor is the rest position that bobbing
// oscillates around and the vacuum drags.
type Pickup struct {
	Kind         PickupKind
	Value        int
	Anchor       cp.Vector
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Initialized  bool
}

var PickupComponent = NewComponent[Pickup]()
