package component

type Health struct {
	Max     int
	Current int
}

var HealthComponent = NewComponent[Health]()

// ContactDamage hurts the player on overlap. Zero disables it.
type ContactDamage struct {
	Amount int
}

var ContactDamageComponent = NewComponent[ContactDamage]()

// Invulnerable blocks incoming damage until the deadline passes.
type Invulnerable struct {
	Until float64
}

var InvulnerableComponent = NewComponent[Invulnerable]()

// Knockback overrides locomotion until the deadline passes.
type Knockback struct {
	Until float64
}

var KnockbackComponent = NewComponent[Knockback]()
