package system

import (
	"math"

	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// AimSystem snaps aim to up or horizontal with hysteresis on the vertical
// aim input so it does not flicker near the threshold.
type AimSystem struct{}

func NewAimSystem() *AimSystem {
	return &AimSystem{}
}

func (a *AimSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AimComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, aim *component.Aim, in *component.Input) {
		aim.Up = aimUp(aim, in.AimY)
	})
}

func aimUp(aim *component.Aim, y float64) bool {
	up := math.Max(0, y)
	if aim.Up {
		return up >= aim.ExitThreshold
	}
	return up >= aim.EnterThreshold
}
