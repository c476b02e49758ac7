package system

import (
	"fmt"
	"log"
	"path"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/prefabs"
)

const defaultCaptureReward = 1

// CaptureRewardSystem pays the player coins for each captured ghost. The
// amount comes from the ghost's tengo reward script, which reads a `ghost`
// map and sets `coins`.
type CaptureRewardSystem struct {
	hud     HUDSink
	scripts map[string]*tengo.Compiled
}

func NewCaptureRewardSystem(hud HUDSink) *CaptureRewardSystem {
	return &CaptureRewardSystem{hud: hud, scripts: make(map[string]*tengo.Compiled)}
}

// Invalidate drops a cached script so the next capture recompiles it.
// Scripts are keyed by file name, so "scripts/a.tengo" and "a.tengo" match.
func (s *CaptureRewardSystem) Invalidate(name string) {
	if s == nil {
		return
	}
	delete(s.scripts, path.Base(name))
}

func (s *CaptureRewardSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range events {
		if evt.Type != EventGhostCaptured {
			continue
		}
		captured, ok := evt.Data.(GhostCaptured)
		if !ok {
			continue
		}
		coins, err := s.reward(captured)
		if err != nil {
			log.Printf("CaptureRewardSystem: reward %q: %v", captured.Reward, err)
			coins = defaultCaptureReward
		}
		inv.Coins += coins
		if s.hud != nil {
			s.hud.SetCoins(inv.Coins)
		}
	}
}

func (s *CaptureRewardSystem) reward(evt GhostCaptured) (int, error) {
	if evt.Reward == "" {
		return defaultCaptureReward, nil
	}

	compiled, err := s.compiled(evt.Reward)
	if err != nil {
		return 0, err
	}
	run := compiled.Clone()
	if err := run.Set("ghost", map[string]any{
		"max_health":   evt.MaxHealth,
		"progress_max": evt.ProgressMax,
		"x":            evt.Position.X,
		"y":            evt.Position.Y,
	}); err != nil {
		return 0, fmt.Errorf("set ghost: %w", err)
	}
	if err := run.Run(); err != nil {
		return 0, fmt.Errorf("run: %w", err)
	}
	if !run.IsDefined("coins") {
		return 0, fmt.Errorf("script does not define coins")
	}
	return max(0, run.Get("coins").Int()), nil
}

func (s *CaptureRewardSystem) compiled(name string) (*tengo.Compiled, error) {
	key := path.Base(name)
	if c, ok := s.scripts[key]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("ghost", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	s.scripts[key] = compiled
	return compiled, nil
}
