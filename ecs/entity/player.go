package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

const PlayerPrefab = "player.yaml"

// NewPlayer builds the player at pos.
func NewPlayer(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	e, err := BuildEntity(w, PlayerPrefab)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := SetEntityTransform(w, e, pos); err != nil {
		return 0, fmt.Errorf("player: set transform: %w", err)
	}
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.Spawn = pos
	}
	if err := ecs.Add(w, e, component.BeamComponent.Kind(), &component.Beam{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: add beam: %w", err)
	}
	if err := ecs.Add(w, e, component.FlashComponent.Kind(), &component.Flash{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: add flash: %w", err)
	}
	return e, nil
}

type playerSpec = prefabs.PlayerComponentSpec

func applyPlayerSpec(p *component.Player, spec playerSpec) {
	p.MoveSpeed = orDefault(spec.MoveSpeed, 8)
	p.JumpSpeed = orDefault(spec.JumpSpeed, 12)
	p.GroundProbeRadius = orDefault(spec.GroundProbeRadius, 0.15)
	p.GroundProbeOffset = orDefault(spec.GroundProbeOffset, 0.5)
	p.KnockbackForce = orDefault(spec.KnockbackForce, 5)
	p.KnockbackDuration = orDefault(spec.KnockbackDuration, 0.2)
	p.InvincibleDuration = orDefault(spec.InvincibleDuration, 0.5)
	p.RespawnDelay = orDefault(spec.RespawnDelay, 1.5)
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	p := &component.Player{FacingRight: true}
	applyPlayerSpec(p, spec)
	return ecs.Add(w, e, component.PlayerComponent.Kind(), p)
}

type aimSpec = prefabs.AimComponentSpec

func applyAimSpec(a *component.Aim, spec aimSpec) {
	a.EnterThreshold = orDefault(spec.EnterThreshold, 0.6)
	a.ExitThreshold = orDefault(spec.ExitThreshold, 0.4)
	if a.ExitThreshold > a.EnterThreshold {
		a.ExitThreshold = a.EnterThreshold
	}
}

func addAim(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[aimSpec](raw)
	if err != nil {
		return fmt.Errorf("decode aim spec: %w", err)
	}
	a := &component.Aim{}
	applyAimSpec(a, spec)
	return ecs.Add(w, e, component.AimComponent.Kind(), a)
}

type torchSpec = prefabs.TorchComponentSpec

func applyTorchSpec(t *component.Torch, spec torchSpec) {
	t.HitboxWidth = orDefault(spec.HitboxWidth, 2.0)
	t.HitboxHeight = orDefault(spec.HitboxHeight, 1.2)
	t.Offset = spec.Offset.Vector()
	t.DamagePerTick = spec.DamagePerTick
	if t.DamagePerTick <= 0 {
		t.DamagePerTick = 1
	}
	t.TickInterval = orDefault(spec.TickInterval, 1.0)
	t.MaxEnergy = orDefault(spec.MaxEnergy, 3)
	t.DrainRate = orDefault(spec.DrainRate, 1)
	t.RechargeRate = orDefault(spec.RechargeRate, 0.5)
	t.MinEnergyToStart = orDefault(spec.MinEnergyToStart, 1)
	t.RechargeDelay = orDefault(spec.RechargeDelay, 0.6)
	t.Energy = cp.Clamp(t.Energy, 0, t.MaxEnergy)
}

func addTorch(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[torchSpec](raw)
	if err != nil {
		return fmt.Errorf("decode torch spec: %w", err)
	}
	t := &component.Torch{LastEnergyFraction: -1}
	applyTorchSpec(t, spec)
	t.Energy = t.MaxEnergy
	return ecs.Add(w, e, component.TorchComponent.Kind(), t)
}

type vacuumSpec = prefabs.VacuumComponentSpec

func applyVacuumSpec(v *component.Vacuum, spec vacuumSpec) {
	v.MaxRange = orDefault(spec.MaxRange, 5)
	v.ConeAngle = orDefault(spec.ConeAngle, 40)
	v.PullForce = orDefault(spec.PullForce, 25)
	v.CollectRadius = orDefault(spec.CollectRadius, 0.6)
	v.PickupMoveSpeed = orDefault(spec.PickupMoveSpeed, 12)
	v.Offset = spec.Offset.Vector()
}

func addVacuum(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[vacuumSpec](raw)
	if err != nil {
		return fmt.Errorf("decode vacuum spec: %w", err)
	}
	v := &component.Vacuum{}
	applyVacuumSpec(v, spec)
	return ecs.Add(w, e, component.VacuumComponent.Kind(), v)
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
