package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// EventGhostCaptured is pushed onto the world queue when a ghost is captured.
const EventGhostCaptured = "ghost_captured"

// GhostCaptured is the payload of EventGhostCaptured.
type GhostCaptured struct {
	Entity      ecs.Entity
	Position    cp.Vector
	Reward      string
	MaxHealth   int
	ProgressMax float64
}

// RequestCapturable freezes a ghost and starts the stun that turns into
// Capturable on the next fixed tick. Repeated requests, requests on ghosts
// without a Capture component and requests on dead entities do nothing.
func RequestCapturable(w *ecs.World, e ecs.Entity) {
	g, ok := ecs.Get(w, e, component.GhostComponent.Kind())
	if !ok || g.State.Frozen() {
		return
	}
	c, ok := ecs.Get(w, e, component.CaptureComponent.Kind())
	if !ok {
		return
	}
	g.State = component.GhostStunned
	c.StunnedTick = w.Clock().Tick
	setEntityVelocity(w, e, cp.Vector{})
}

// SetCapturable requests the capturable state when value is true. When value
// is false a stunned or capturable ghost goes back to Active with its
// progress set to reset, clamped to the valid range.
func SetCapturable(w *ecs.World, e ecs.Entity, value bool, reset float64) {
	if value {
		RequestCapturable(w, e)
		return
	}
	g, ok := ecs.Get(w, e, component.GhostComponent.Kind())
	if !ok {
		return
	}
	if g.State != component.GhostStunned && g.State != component.GhostCapturable {
		return
	}
	c, ok := ecs.Get(w, e, component.CaptureComponent.Kind())
	if !ok {
		return
	}
	g.State = component.GhostActive
	c.Progress = cp.Clamp(reset, 0, c.ProgressMax)
	g.RetargetAt = w.Clock().Now
}

// IsCapturable reports whether e is a ghost waiting to be vacuumed.
func IsCapturable(w *ecs.World, e ecs.Entity) bool {
	g, ok := ecs.Get(w, e, component.GhostComponent.Kind())
	return ok && g.State == component.GhostCapturable
}

// ApplyCaptureProgress adds delta to a capturable ghost's progress and
// captures it once the threshold is reached. It reports whether the ghost
// was captured.
func ApplyCaptureProgress(w *ecs.World, e ecs.Entity, delta float64) bool {
	if !IsCapturable(w, e) || delta <= 0 {
		return false
	}
	c, ok := ecs.Get(w, e, component.CaptureComponent.Kind())
	if !ok {
		return false
	}
	c.Progress = cp.Clamp(c.Progress+delta, 0, c.ProgressMax)
	if c.Progress < c.ProgressMax {
		return false
	}
	return CaptureGhost(w, e)
}

// CaptureGhost finishes a capture: it announces the capture and removes the
// ghost. Calling it for a dead entity is a no-op.
func CaptureGhost(w *ecs.World, e ecs.Entity) bool {
	g, ok := ecs.Get(w, e, component.GhostComponent.Kind())
	if !ok {
		return false
	}
	g.State = component.GhostCaptured

	evt := GhostCaptured{Entity: e}
	evt.Position, _ = entityPosition(w, e)
	if c, ok := ecs.Get(w, e, component.CaptureComponent.Kind()); ok {
		evt.Reward = c.Reward
		evt.ProgressMax = c.ProgressMax
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		evt.MaxHealth = h.Max
	}
	w.Events().Push(ecs.Event{Type: EventGhostCaptured, Data: evt})

	log.Printf("CaptureSystem: ghost %v captured at (%.2f, %.2f)", e, evt.Position.X, evt.Position.Y)
	return ecs.DestroyEntity(w, e)
}

// CaptureSystem promotes stunned ghosts to Capturable one tick after the
// stun and keeps frozen ghosts still.
type CaptureSystem struct{}

func NewCaptureSystem() *CaptureSystem {
	return &CaptureSystem{}
}

func (s *CaptureSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	tick := w.Clock().Tick
	ecs.ForEach2(w, component.GhostComponent.Kind(), component.CaptureComponent.Kind(), func(e ecs.Entity, g *component.Ghost, c *component.Capture) {
		switch g.State {
		case component.GhostStunned:
			if tick > c.StunnedTick {
				g.State = component.GhostCapturable
			}
		case component.GhostCapturable:
		default:
			return
		}
		setEntityVelocity(w, e, cp.Vector{})
	})
}
