package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"pgregory.net/rapid"
)

func TestTorchDrainsToLockout(t *testing.T) {
	torch := newTestTorch()
	arb := &component.AbilityArbiter{}
	const dt = 0.25

	ticks := 0
	for i := 1; i <= 8; i++ {
		ticks += stepTorch(torch, arb, true, float64(i)*dt, dt)
	}
	if torch.Phase != component.TorchChanneling {
		t.Fatalf("expected channeling after 2s, got %v", torch.Phase)
	}
	if !approx(torch.Energy, 1, 1e-9) {
		t.Fatalf("expected energy 1 after 2s, got %v", torch.Energy)
	}
	if ticks != 2 {
		t.Fatalf("expected 2 damage ticks in 2s, got %d", ticks)
	}
	if !arb.Holds(component.AbilityTorch) {
		t.Fatalf("expected torch to hold the ability slot")
	}

	for i := 9; i <= 12; i++ {
		stepTorch(torch, arb, true, float64(i)*dt, dt)
	}
	if torch.Phase != component.TorchLocked || torch.Energy != 0 {
		t.Fatalf("expected locked with no energy after 3s, got %v %v", torch.Phase, torch.Energy)
	}
	if arb.Busy() {
		t.Fatalf("expected ability slot to be released, got %v", arb.Active)
	}

	// Still holding: no recharge no matter how long.
	for i := 13; i <= 40; i++ {
		stepTorch(torch, arb, true, float64(i)*dt, dt)
	}
	if torch.Phase != component.TorchLocked || torch.Energy != 0 {
		t.Fatalf("expected to stay locked while held, got %v %v", torch.Phase, torch.Energy)
	}
}

func TestTorchRechargeWaitsForReleaseAndDelay(t *testing.T) {
	torch := newTestTorch()
	torch.Phase = component.TorchLocked
	torch.Energy = 0
	torch.PrevPressed = true
	arb := &component.AbilityArbiter{}

	// Released at t=0.
	stepTorch(torch, arb, false, 0, 0.2)
	if !torch.Armed || !approx(torch.RechargeAt, 0.6, 1e-12) {
		t.Fatalf("expected recharge armed for t=0.6, got armed=%v at %v", torch.Armed, torch.RechargeAt)
	}

	for i := 1; i <= 13; i++ {
		now := float64(i) * 0.2
		stepTorch(torch, arb, false, now, 0.2)
		if now < 0.55 && (torch.Energy != 0 || torch.Phase != component.TorchLocked) {
			t.Fatalf("recharge started early at t=%v: %v %v", now, torch.Phase, torch.Energy)
		}
	}
	if !approx(torch.Energy, 1, 1e-9) {
		t.Fatalf("expected energy 1 at t=2.6, got %v", torch.Energy)
	}
	if torch.Phase != component.TorchIdle {
		t.Fatalf("expected idle once recharging, got %v", torch.Phase)
	}
}

func TestTorchStartRules(t *testing.T) {
	cases := []struct {
		name      string
		energy    float64
		phase     component.TorchPhase
		held      component.Ability
		wantPhase component.TorchPhase
	}{
		{"starts_with_enough_energy", 3, component.TorchIdle, component.AbilityNone, component.TorchChanneling},
		{"needs_min_energy", 0.5, component.TorchIdle, component.AbilityNone, component.TorchIdle},
		{"exactly_min_energy", 1, component.TorchIdle, component.AbilityNone, component.TorchChanneling},
		{"vacuum_holds_slot", 3, component.TorchIdle, component.AbilityVacuum, component.TorchIdle},
		{"locked_ignores_press", 0, component.TorchLocked, component.AbilityNone, component.TorchLocked},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			torch := newTestTorch()
			torch.Energy = c.energy
			torch.Phase = c.phase
			arb := &component.AbilityArbiter{Active: c.held}
			stepTorch(torch, arb, true, 0.01, 0.01)
			if torch.Phase != c.wantPhase {
				t.Fatalf("expected %v, got %v", c.wantPhase, torch.Phase)
			}
		})
	}
}

func TestTorchVoluntaryStopStaysIdle(t *testing.T) {
	torch := newTestTorch()
	arb := &component.AbilityArbiter{}
	stepTorch(torch, arb, true, 0.25, 0.25)
	stepTorch(torch, arb, true, 0.5, 0.25)
	stepTorch(torch, arb, false, 0.75, 0.25)
	if torch.Phase != component.TorchIdle {
		t.Fatalf("expected idle after release, got %v", torch.Phase)
	}
	if arb.Busy() {
		t.Fatalf("expected slot released")
	}
	before := torch.Energy
	stepTorch(torch, arb, false, 1, 0.25)
	if torch.Energy <= before {
		t.Fatalf("expected immediate recharge after a voluntary stop, got %v -> %v", before, torch.Energy)
	}
}

func TestTorchEnergyStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		torch := newTestTorch()
		torch.Energy = rapid.Float64Range(0, torch.MaxEnergy).Draw(t, "energy")
		arb := &component.AbilityArbiter{}
		now := 0.0
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for range steps {
			dt := rapid.Float64Range(0.001, 0.5).Draw(t, "dt")
			pressed := rapid.Bool().Draw(t, "pressed")
			now += dt
			prev := *torch
			stepTorch(torch, arb, pressed, now, dt)
			if torch.Energy < 0 || torch.Energy > torch.MaxEnergy {
				t.Fatalf("energy %v out of [0, %v]", torch.Energy, torch.MaxEnergy)
			}
			if torch.Energy < prev.Energy && torch.Phase == component.TorchIdle && prev.Phase != component.TorchChanneling && !pressed {
				t.Fatalf("energy drained without channeling: %v -> %v", prev.Energy, torch.Energy)
			}
			if prev.Phase == component.TorchLocked && pressed && torch.Energy > prev.Energy {
				t.Fatalf("locked torch recharged while held")
			}
			if (torch.Phase == component.TorchChanneling) != arb.Holds(component.AbilityTorch) {
				t.Fatalf("phase %v disagrees with arbiter %v", torch.Phase, arb.Active)
			}
		}
	})
}

func TestTorchHitbox(t *testing.T) {
	torch := newTestTorch()
	cases := []struct {
		name       string
		facing     cp.Vector
		up         bool
		wantCenter cp.Vector
		wantSize   cp.Vector
	}{
		{"right", cp.Vector{X: 1}, false, cp.Vector{X: 1.4, Y: 0.1}, cp.Vector{X: 2, Y: 1.2}},
		{"left", cp.Vector{X: -1}, false, cp.Vector{X: -1.4, Y: 0.1}, cp.Vector{X: 2, Y: 1.2}},
		{"up", cp.Vector{X: 1}, true, cp.Vector{X: 0, Y: 1.1}, cp.Vector{X: 1.2, Y: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			center, size := torchHitbox(torch, cp.Vector{}, c.facing, c.up)
			if !approxVec(center, c.wantCenter, 1e-9) || !approxVec(size, c.wantSize, 1e-9) {
				t.Fatalf("expected %v %v, got %v %v", c.wantCenter, c.wantSize, center, size)
			}
		})
	}
}

func TestTorchSystemDamagesGhostInHitbox(t *testing.T) {
	w := newZeroGravityWorld()
	player := newTestPlayer(t, w, cp.Vector{})
	player.torch.TickInterval = 0.25
	hud := &recordingHUD{}
	inBox := newTestGhost(t, w, cp.Vector{X: 1.4}, true)
	behind := newTestGhost(t, w, cp.Vector{X: -1.4}, true)

	player.input.TorchHeld = true
	w.Clock().Advance(0.25)
	NewTorchSystem(nil, hud).Update(w)

	if player.torch.Phase != component.TorchChanneling {
		t.Fatalf("expected channeling, got %v", player.torch.Phase)
	}
	if inBox.health.Current != 2 {
		t.Fatalf("expected ghost in hitbox to take one tick, got health %d", inBox.health.Current)
	}
	if behind.health.Current != 3 {
		t.Fatalf("expected ghost behind the player untouched, got health %d", behind.health.Current)
	}
	flash, _ := ecs.Get(w, player.e, component.FlashComponent.Kind())
	if !flash.Active || !approxVec(flash.Center, cp.Vector{X: 1.4, Y: 0.1}, 1e-9) {
		t.Fatalf("expected flash at hitbox, got %+v", flash)
	}
	if len(hud.energy) != 1 || !approx(hud.energy[0], 2.75/3, 1e-9) {
		t.Fatalf("expected one HUD energy update, got %v", hud.energy)
	}
}

func TestTorchAndVacuumNeverBothActive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := ecs.NewWorld()
		player := newTestPlayer(t, w, cp.Vector{})
		torch := NewTorchSystem(nil, nil)
		vacuum := NewVacuumSystem(nil)

		steps := rapid.IntRange(1, 120).Draw(t, "steps")
		for range steps {
			player.input.TorchHeld = rapid.Bool().Draw(t, "torch")
			player.input.VacuumHeld = rapid.Bool().Draw(t, "vacuum")
			w.Clock().Advance(rapid.Float64Range(0.01, 0.3).Draw(t, "dt"))
			torch.Update(w)
			vacuum.Update(w)

			channeling := player.torch.Phase == component.TorchChanneling
			if channeling && player.vacuum.Active {
				t.Fatalf("torch and vacuum active together")
			}
			if channeling != player.arb.Holds(component.AbilityTorch) {
				t.Fatalf("torch phase %v disagrees with arbiter %v", player.torch.Phase, player.arb.Active)
			}
			if player.vacuum.Active != player.arb.Holds(component.AbilityVacuum) {
				t.Fatalf("vacuum active=%v disagrees with arbiter %v", player.vacuum.Active, player.arb.Active)
			}
		}
	})
}

func TestVacuumTakesOverWhenTorchStops(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w, cp.Vector{})
	torch := NewTorchSystem(nil, nil)
	vacuum := NewVacuumSystem(nil)

	player.input.TorchHeld = true
	player.input.VacuumHeld = true
	w.Clock().Advance(testDT)
	torch.Update(w)
	vacuum.Update(w)
	if player.torch.Phase != component.TorchChanneling || player.vacuum.Active {
		t.Fatalf("expected torch to win the first tick, got torch=%v vacuum=%v", player.torch.Phase, player.vacuum.Active)
	}

	player.input.TorchHeld = false
	w.Clock().Advance(testDT)
	torch.Update(w)
	vacuum.Update(w)
	if player.torch.Phase == component.TorchChanneling || !player.vacuum.Active {
		t.Fatalf("expected vacuum to take over, got torch=%v vacuum=%v", player.torch.Phase, player.vacuum.Active)
	}

	// Torch press is ignored while the vacuum holds the slot.
	player.input.TorchHeld = true
	w.Clock().Advance(testDT)
	torch.Update(w)
	vacuum.Update(w)
	if player.torch.Phase == component.TorchChanneling || !player.vacuum.Active {
		t.Fatalf("expected vacuum to keep the slot, got torch=%v vacuum=%v", player.torch.Phase, player.vacuum.Active)
	}
}
