package component

import "github.com/jakecoffman/cp"

type Projectile struct {
	Direction cp.Vector
	Speed     float64
	Radius    float64
	Damage    int
}

var ProjectileComponent = NewComponent[Projectile]()

// TTL destroys the entity once the clock passes ExpiresAt.
type TTL struct {
	ExpiresAt float64
}

var TTLComponent = NewComponent[TTL]()
