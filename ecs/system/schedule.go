package system

import (
	"math/rand"

	"github.com/milk9111/ghostvac/ecs"
)

// FixedSystems is one simulation step. Physics and Rewards are exposed so
// callers can sync bodies after loading and invalidate reward scripts.
type FixedSystems struct {
	Scheduler *ecs.Scheduler
	Physics   *PhysicsSystem
	Rewards   *CaptureRewardSystem
}

// NewFixedSystems builds the fixed-tick schedule. Capture promotion runs
// first so a ghost stunned last tick can be vacuumed this tick; physics runs
// after every system that sets velocities or forces.
func NewFixedSystems(rng *rand.Rand, hud HUDSink) *FixedSystems {
	physics := NewPhysicsSystem()
	rewards := NewCaptureRewardSystem(hud)
	return &FixedSystems{
		Scheduler: ecs.NewScheduler(
			NewCaptureSystem(),
			NewPlayerControllerSystem(nil),
			NewTorchSystem(nil, hud),
			NewVacuumSystem(nil),
			rewards,
			NewGhostSteeringSystem(rng, nil),
			NewPatrollerSystem(nil),
			NewProjectileSystem(nil),
			NewContactDamageSystem(nil, hud),
			NewPickupCollectSystem(nil, hud),
			NewPickupHoverSystem(),
			NewHitFlashSystem(),
			NewRespawnSystem(hud),
			physics,
			NewTTLSystem(),
		),
		Physics: physics,
		Rewards: rewards,
	}
}

// NewPresentationSystems samples input and resolves aim once per frame.
func NewPresentationSystems(source InputSource) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(source),
		NewAimSystem(),
	)
}
