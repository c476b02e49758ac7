package component

import "github.com/jakecoffman/cp"

type Player struct {
	MoveSpeed          float64
	JumpSpeed          float64
	GroundProbeRadius  float64
	GroundProbeOffset  float64
	KnockbackForce     float64
	KnockbackDuration  float64
	InvincibleDuration float64
	RespawnDelay       float64

	// Spawn is where the player reappears after dying.
	Spawn  cp.Vector
	DiedAt float64

	FacingRight bool
	Grounded    bool
	Dead        bool
}

// Facing returns the horizontal unit vector the player faces.
func (p *Player) Facing() cp.Vector {
	if p.FacingRight {
		return cp.Vector{X: 1}
	}
	return cp.Vector{X: -1}
}

var PlayerComponent = NewComponent[Player]()

type Inventory struct {
	Coins int
}

var InventoryComponent = NewComponent[Inventory]()
