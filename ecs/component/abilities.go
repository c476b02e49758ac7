package component

type Ability int

const (
	AbilityNone Ability = iota
	AbilityTorch
	AbilityVacuum
)

func (a Ability) String() string {
	switch a {
	case AbilityTorch:
		return "torch"
	case AbilityVacuum:
		return "vacuum"
	default:
		return "none"
	}
}

// AbilityArbiter owns the player's single active ability slot. Whichever
// ability holds the slot keeps it until it releases it.
type AbilityArbiter struct {
	Active Ability
}

// TryAcquire claims the slot for a. It succeeds when the slot is free or
// already held by a.
func (a *AbilityArbiter) TryAcquire(ability Ability) bool {
	if ability == AbilityNone {
		return false
	}
	if a.Active == AbilityNone || a.Active == ability {
		a.Active = ability
		return true
	}
	return false
}

// Release frees the slot if ability holds it.
func (a *AbilityArbiter) Release(ability Ability) {
	if a.Active == ability {
		a.Active = AbilityNone
	}
}

func (a *AbilityArbiter) Holds(ability Ability) bool {
	return ability != AbilityNone && a.Active == ability
}

// Busy reports whether any ability is active.
func (a *AbilityArbiter) Busy() bool {
	return a.Active != AbilityNone
}

var AbilityArbiterComponent = NewComponent[AbilityArbiter]()
