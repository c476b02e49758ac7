package component

// Aim snaps the player's aim to either straight up or horizontal along the
// facing direction. Up is sticky between ExitThreshold and EnterThreshold.
type Aim struct {
	Up             bool
	EnterThreshold float64
	ExitThreshold  float64
}

var AimComponent = NewComponent[Aim]()
