package component

import "github.com/jakecoffman/cp"

type TorchPhase int

const (
	TorchIdle TorchPhase = iota
	TorchChanneling
	TorchLocked
)

func (p TorchPhase) String() string {
	switch p {
	case TorchIdle:
		return "idle"
	case TorchChanneling:
		return "channeling"
	case TorchLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Torch is the player's energy-gated melee channel.
type Torch struct {
	HitboxWidth      float64
	HitboxHeight     float64
	Offset           cp.Vector
	DamagePerTick    int
	TickInterval     float64
	MaxEnergy        float64
	DrainRate        float64
	RechargeRate     float64
	MinEnergyToStart float64
	RechargeDelay    float64

	Phase           TorchPhase
	Energy          float64
	TickAccumulator float64
	// RechargeAt gates recharge while Locked; it is only armed on release.
	RechargeAt  float64
	Armed       bool
	PrevPressed bool
	// LastEnergyFraction is the last value pushed to the HUD.
	LastEnergyFraction float64
}

// EnergyFraction returns energy normalised to [0, 1].
func (t *Torch) EnergyFraction() float64 {
	if t.MaxEnergy <= 0 {
		return 0
	}
	return t.Energy / t.MaxEnergy
}

var TorchComponent = NewComponent[Torch]()
