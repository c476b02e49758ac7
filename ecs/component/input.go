package component

// Input is the player intent sampled once per presentation tick. Pressed
// flags are latched until a fixed tick consumes them.
type Input struct {
	MoveX float64
	MoveY float64
	AimX  float64
	AimY  float64

	TorchHeld  bool
	VacuumHeld bool
	JumpHeld   bool

	JumpPressed  bool
	ShootPressed bool
	PausePressed bool
}

var InputComponent = NewComponent[Input]()
