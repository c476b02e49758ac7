package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const stickDeadzone = 0.2

// InputSample is one poll of the input devices. Y points up.
type InputSample struct {
	MoveX, MoveY float64
	AimX, AimY   float64

	TorchHeld  bool
	VacuumHeld bool
	JumpHeld   bool

	JumpPressed  bool
	ShootPressed bool
	PausePressed bool
}

// InputSource polls devices once per presentation tick.
type InputSource interface {
	Sample() InputSample
}

// InputSystem copies the latest sample onto every Input component. Press
// edges are latched so a fixed tick that runs later in the frame still sees
// them; the consumer clears them.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = EbitenInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	sample := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = clampAxis(sample.MoveX)
		input.MoveY = clampAxis(sample.MoveY)
		input.AimX = clampAxis(sample.AimX)
		input.AimY = clampAxis(sample.AimY)
		input.TorchHeld = sample.TorchHeld
		input.VacuumHeld = sample.VacuumHeld
		input.JumpHeld = sample.JumpHeld
		input.JumpPressed = input.JumpPressed || sample.JumpPressed
		input.ShootPressed = input.ShootPressed || sample.ShootPressed
		input.PausePressed = input.PausePressed || sample.PausePressed
	})
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// EbitenInput reads the keyboard and the first standard gamepad.
type EbitenInput struct{}

func (EbitenInput) Sample() InputSample {
	var s InputSample

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.MoveY -= 1
	}
	s.AimX, s.AimY = s.MoveX, s.MoveY

	s.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)
	s.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.TorchHeld = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.VacuumHeld = ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.ShootPressed = inpututil.IsKeyJustPressed(ebiten.KeyL)
	s.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			s.MoveX = lx
		}
		if math.Abs(ly) > stickDeadzone {
			s.MoveY = ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			s.AimX, s.AimY = rx, ry
		} else {
			s.AimX, s.AimY = s.MoveX, s.MoveY
		}

		s.JumpHeld = s.JumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.JumpPressed = s.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.TorchHeld = s.TorchHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		s.VacuumHeld = s.VacuumHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		s.ShootPressed = s.ShootPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		s.PausePressed = s.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return s
}
