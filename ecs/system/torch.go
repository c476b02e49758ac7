package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const energyEpsilon = 1e-9

// TorchSystem runs the torch energy channel and deals periodic damage to
// everything inside the torch hitbox while channeling.
type TorchSystem struct {
	query ecs.SpatialQuery
	hud   HUDSink
}

func NewTorchSystem(query ecs.SpatialQuery, hud HUDSink) *TorchSystem {
	return &TorchSystem{query: query, hud: hud}
}

func (s *TorchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	query := resolveQuery(w, s.query)
	clock := w.Clock()
	ecs.ForEach4(w, component.TorchComponent.Kind(), component.AbilityArbiterComponent.Kind(), component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, t *component.Torch, arb *component.AbilityArbiter, in *component.Input, p *component.Player) {
		pressed := in.TorchHeld && !arb.Holds(component.AbilityVacuum) && !p.Dead
		ticks := stepTorch(t, arb, pressed, clock.Now, clock.Delta)

		flash, hasFlash := ecs.Get(w, e, component.FlashComponent.Kind())
		if t.Phase != component.TorchChanneling {
			if hasFlash {
				flash.Active = false
			}
		} else {
			pos, _ := entityPosition(w, e)
			up := false
			if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
				up = aim.Up
			}
			center, size := torchHitbox(t, pos, p.Facing(), up)
			if hasFlash {
				flash.Active = true
				flash.Center = center
				flash.Size = size
				flash.Rotation = 0
			}
			if ticks > 0 && query != nil {
				for _, target := range query.OverlapBox(center, size, 0, component.LayerGhost|component.LayerEnemy) {
					for range ticks {
						ApplyDamage(w, target, t.DamagePerTick)
					}
				}
			}
		}

		frac := t.EnergyFraction()
		if s.hud != nil && frac != t.LastEnergyFraction {
			s.hud.SetTorchEnergy(frac)
			t.LastEnergyFraction = frac
		}
	})
}

// stepTorch advances the torch state machine by dt and returns how many
// damage ticks fired.
func stepTorch(t *component.Torch, arb *component.AbilityArbiter, pressed bool, now, dt float64) int {
	released := t.PrevPressed && !pressed
	t.PrevPressed = pressed

	if pressed && t.Phase == component.TorchIdle && t.Energy >= t.MinEnergyToStart && arb.TryAcquire(component.AbilityTorch) {
		t.Phase = component.TorchChanneling
		t.TickAccumulator = 0
	}

	switch t.Phase {
	case component.TorchChanneling:
		t.Energy = math.Max(0, t.Energy-t.DrainRate*dt)
		if t.Energy <= energyEpsilon {
			t.Energy = 0
		}
		if !pressed || t.Energy == 0 {
			stopTorch(t, arb, pressed, now)
			return 0
		}
		t.TickAccumulator += dt
		ticks := 0
		for t.TickInterval > 0 && t.TickAccumulator >= t.TickInterval {
			t.TickAccumulator -= t.TickInterval
			ticks++
		}
		return ticks

	case component.TorchLocked:
		if released && !t.Armed {
			t.Armed = true
			t.RechargeAt = now + t.RechargeDelay
		}
		if t.Armed && !pressed && now > t.RechargeAt {
			elapsed := math.Min(dt, now-t.RechargeAt)
			t.Energy = math.Min(t.MaxEnergy, t.Energy+t.RechargeRate*elapsed)
		}
		if t.Energy > 0 {
			t.Phase = component.TorchIdle
			t.Armed = false
		}

	default:
		t.Energy = math.Min(t.MaxEnergy, t.Energy+t.RechargeRate*dt)
	}
	return 0
}

// stopTorch ends a channel. Running dry locks recharge until the button is
// released and the recharge delay has passed; letting go early does not.
func stopTorch(t *component.Torch, arb *component.AbilityArbiter, pressed bool, now float64) {
	arb.Release(component.AbilityTorch)
	t.TickAccumulator = 0
	if t.Energy > 0 {
		t.Phase = component.TorchIdle
		return
	}
	t.Phase = component.TorchLocked
	t.Armed = !pressed
	if t.Armed {
		t.RechargeAt = now + t.RechargeDelay
	}
}

// torchHitbox places the hitbox flush against the player in the aim
// direction. Aiming up swaps the box's width and height.
func torchHitbox(t *component.Torch, pos, facing cp.Vector, up bool) (cp.Vector, cp.Vector) {
	origin := pos.Add(cp.Vector{X: facing.X * t.Offset.X, Y: t.Offset.Y})
	size := cp.Vector{X: t.HitboxWidth, Y: t.HitboxHeight}
	dir := facing
	if up {
		size = cp.Vector{X: t.HitboxHeight, Y: t.HitboxWidth}
		dir = cp.Vector{Y: 1}
		origin = pos.Add(cp.Vector{Y: t.Offset.Y})
	}
	reach := math.Abs(dir.Dot(size)) / 2
	return origin.Add(dir.Mult(reach)), size
}
