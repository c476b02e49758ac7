package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/ecs/entity"
	"github.com/milk9111/ghostvac/ecs/system"
	"github.com/milk9111/ghostvac/levels"
)

const fixedDT = 1.0 / 60.0

// stats counts what happened during a run. It doubles as the HUD sink.
type stats struct {
	coins     int
	health    int
	lowEnergy int
	energy    float64
}

func (s *stats) SetHealth(current, _ int) { s.health = current }
func (s *stats) SetCoins(coins int)        { s.coins = coins }
func (s *stats) SetTorchEnergy(f float64) {
	if f == 0 && s.energy > 0 {
		s.lowEnergy++
	}
	s.energy = f
}

func main() {
	levelName := flag.String("level", "manor.yaml", "level name in levels/")
	seconds := flag.Float64("seconds", 120, "simulated seconds")
	seed := flag.Int64("seed", 1, "random seed for ghost wandering")
	flag.Parse()

	lvl, err := levels.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	w := ecs.NewWorld()
	player, err := entity.LoadLevel(w, lvl)
	if err != nil {
		log.Fatal(err)
	}

	out := &stats{energy: 1}
	fixed := system.NewFixedSystems(rand.New(rand.NewSource(*seed)), out)
	fixed.Physics.Sync(w)

	aim := system.NewAimSystem()
	start := time.Now()
	ticks := int(*seconds / fixedDT)
	for range ticks {
		autopilot(w, player)
		aim.Update(w)
		w.Clock().Advance(fixedDT)
		fixed.Scheduler.Update(w)
	}

	ghosts := 0
	ecs.ForEach(w, component.GhostComponent.Kind(), func(ecs.Entity, *component.Ghost) { ghosts++ })
	log.Printf("ghostsim: %s seed %d: %d ticks in %s", lvl.Name, *seed, ticks, time.Since(start).Round(time.Millisecond))
	log.Printf("ghostsim: ghosts left %d, coins %d, health %d, torch ran dry %d times", ghosts, out.coins, out.health, out.lowEnergy)
}

// autopilot walks toward the nearest ghost, burns it with the torch and
// vacuums it once it is capturable.
func autopilot(w *ecs.World, player ecs.Entity) {
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	*in = component.Input{}

	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pos := tr.Position()

	var target cp.Vector
	var targetState component.GhostState
	best := math.Inf(1)
	ecs.ForEach2(w, component.GhostComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, g *component.Ghost, gt *component.Transform) {
		if d := pos.Distance(gt.Position()); d < best {
			best, target, targetState = d, gt.Position(), g.State
		}
	})
	if math.IsInf(best, 1) {
		return
	}

	dx := target.X - pos.X
	if math.Abs(dx) > 1.5 {
		in.MoveX = math.Copysign(1, dx)
	}
	if target.Y-pos.Y > 1.5 {
		in.AimY = 1
		in.JumpPressed = true
	}

	switch {
	case targetState == component.GhostCapturable && best < 5:
		in.VacuumHeld = true
	case !targetState.Frozen() && best < 2.5:
		in.TorchHeld = true
	}
	// Face the target before attacking.
	if in.MoveX == 0 && math.Abs(dx) > 0.1 {
		in.MoveX = math.Copysign(0.01, dx)
	}
}
