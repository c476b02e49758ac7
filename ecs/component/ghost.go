package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
)

type GhostState int

const (
	GhostActive GhostState = iota
	GhostDwelling
	GhostStunned
	GhostCapturable
	GhostCaptured
)

func (s GhostState) String() string {
	switch s {
	case GhostActive:
		return "active"
	case GhostDwelling:
		return "dwelling"
	case GhostStunned:
		return "stunned"
	case GhostCapturable:
		return "capturable"
	case GhostCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// Frozen reports whether autonomous steering is suspended.
func (s GhostState) Frozen() bool {
	return s == GhostStunned || s == GhostCapturable || s == GhostCaptured
}

// Ghost holds wander steering tuning and runtime state.
type Ghost struct {
	MoveSpeed      float64
	WaypointRadius float64
	WaitMin        float64
	WaitMax        float64
	RetargetDelay  float64
	LookAhead      float64
	AvoidStrength  float64
	HoverAmplitude float64
	HoverSpeed     float64
	FlipDeadzone   float64
	WallMargin     float64
	FallbackRadius float64

	// Room bounds wander targets; nil means wander around Spawn.
	Room  *common.Rect
	Spawn cp.Vector

	State       GhostState
	Target      cp.Vector
	WaitUntil   float64
	RetargetAt  float64
	HoverPhase  float64
	FacingRight bool
	Initialized bool
}

var GhostComponent = NewComponent[Ghost]()
