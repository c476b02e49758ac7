package main

import (
	"fmt"
	"log"
	"math/rand"
	"path"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/ecs/entity"
	"github.com/milk9111/ghostvac/ecs/system"
	"github.com/milk9111/ghostvac/levels"
	"github.com/milk9111/ghostvac/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	fixedDT = 1.0 / 60.0
)

// Config is everything main parses from flags.
type Config struct {
	Level         string
	Seed          int64
	Watch         bool
	Debug         bool
	PixelsPerUnit float64
}

type Game struct {
	world  *ecs.World
	player ecs.Entity

	// presentation runs once per frame before the fixed tick, fixed once per
	// simulation step.
	presentation *ecs.Scheduler
	fixed        *ecs.Scheduler

	render  *system.RenderSystem
	rewards *system.CaptureRewardSystem
	hud     *HUD
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	paused bool
	quit   bool
	debug  bool
}

func NewGame(cfg Config) (*Game, error) {
	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	player, err := entity.LoadLevel(w, lvl)
	if err != nil {
		return nil, err
	}
	hud := NewHUD()
	fixed := system.NewFixedSystems(rand.New(rand.NewSource(cfg.Seed)), hud)
	fixed.Physics.Sync(w)

	g := &Game{
		world:        w,
		player:       player,
		presentation: system.NewPresentationSystems(nil),
		fixed:        fixed.Scheduler,
		render:       system.NewRenderSystem(cfg.PixelsPerUnit),
		rewards:      fixed.Rewards,
		hud:          hud,
		debug:        cfg.Debug,
	}
	g.pauseUI = NewPauseUI(g)
	g.pushHUD()

	if cfg.Watch {
		watcher, err := prefabs.NewWatcher("prefabs", path.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("Game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	log.Printf("Game: level %q seed %d", lvl.Name, cfg.Seed)
	return g, nil
}

// pushHUD seeds the HUD with the player's current values.
func (g *Game) pushHUD() {
	if h, ok := ecs.Get(g.world, g.player, component.HealthComponent.Kind()); ok {
		g.hud.SetHealth(h.Current, h.Max)
	}
	if inv, ok := ecs.Get(g.world, g.player, component.InventoryComponent.Kind()); ok {
		g.hud.SetCoins(inv.Coins)
	}
	if t, ok := ecs.Get(g.world, g.player, component.TorchComponent.Kind()); ok {
		g.hud.SetTorchEnergy(t.EnergyFraction())
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.presentation.Update(g.world)
	if in, ok := ecs.Get(g.world, g.player, component.InputComponent.Kind()); ok && in.PausePressed {
		in.PausePressed = false
		g.paused = !g.paused
	}
	g.drainWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Clock().Advance(fixedDT)
	g.fixed.Update(g.world)
	g.hud.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeScript:
		g.rewards.Invalidate(change.Name)
		log.Printf("Game: reloaded script %s", change.Name)
	default:
		n, err := entity.ApplyTuning(g.world, change.Name)
		if err != nil {
			log.Printf("Game: %v", err)
			return
		}
		log.Printf("Game: retuned %d entities from %s", n, change.Name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		g.render.DrawPhysicsDebug(g.world, screen)
		system.DrawStateDebug(g.world, screen)
	}
	g.hud.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	if err := g.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
