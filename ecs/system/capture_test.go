package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

func TestRequestCapturableIsIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{}, false)
	w.Clock().Advance(testDT)

	RequestCapturable(w, g.e)
	stunnedAt := g.capture.StunnedTick
	w.Clock().Advance(testDT)
	RequestCapturable(w, g.e)
	if g.ghost.State != component.GhostStunned || g.capture.StunnedTick != stunnedAt {
		t.Fatalf("second request changed the stun: %v tick %d (want %d)", g.ghost.State, g.capture.StunnedTick, stunnedAt)
	}

	NewCaptureSystem().Update(w)
	RequestCapturable(w, g.e)
	if g.ghost.State != component.GhostCapturable {
		t.Fatalf("request on a capturable ghost changed state to %v", g.ghost.State)
	}
}

func TestStunLastsOneTick(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{}, false)
	capture := NewCaptureSystem()

	w.Clock().Advance(testDT)
	RequestCapturable(w, g.e)
	capture.Update(w)
	if g.ghost.State != component.GhostStunned {
		t.Fatalf("expected stunned on the requesting tick, got %v", g.ghost.State)
	}
	if IsCapturable(w, g.e) {
		t.Fatalf("ghost must not be capturable on the requesting tick")
	}

	w.Clock().Advance(testDT)
	capture.Update(w)
	if !IsCapturable(w, g.e) {
		t.Fatalf("expected capturable on the next tick, got %v", g.ghost.State)
	}
}

func TestRequestCapturableWithoutCapture(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{}, false)
	ecs.Remove(w, g.e, component.CaptureComponent.Kind())
	RequestCapturable(w, g.e)
	if g.ghost.State != component.GhostActive {
		t.Fatalf("expected no change without a capture component, got %v", g.ghost.State)
	}

	ecs.DestroyEntity(w, g.e)
	RequestCapturable(w, g.e)
	if CaptureGhost(w, g.e) {
		t.Fatalf("capturing a destroyed ghost should fail")
	}
}

func makeCapturable(t *testing.T, w *ecs.World, g testGhost) {
	t.Helper()
	w.Clock().Advance(testDT)
	SetCapturable(w, g.e, true, 0)
	w.Clock().Advance(testDT)
	NewCaptureSystem().Update(w)
	if !IsCapturable(w, g.e) {
		t.Fatalf("setup: expected capturable, got %v", g.ghost.State)
	}
}

func TestCaptureProgress(t *testing.T) {
	cases := []struct {
		name       string
		steps      []float64
		wantAlive  bool
		wantFinal  float64
		wantEvents int
	}{
		{"below_max", []float64{1, 1}, true, 2, 0},
		{"exactly_max", []float64{2.5, 0.5}, false, 0, 1},
		{"overshoot", []float64{2, 5}, false, 0, 1},
		{"negative_ignored", []float64{1, -4}, true, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			g := newTestGhost(t, w, cp.Vector{X: 1, Y: 2}, false)
			makeCapturable(t, w, g)
			for _, step := range c.steps {
				ApplyCaptureProgress(w, g.e, step)
			}
			if ecs.IsAlive(w, g.e) != c.wantAlive {
				t.Fatalf("expected alive=%v", c.wantAlive)
			}
			if c.wantAlive && g.capture.Progress != c.wantFinal {
				t.Fatalf("expected progress %v, got %v", c.wantFinal, g.capture.Progress)
			}
			events := w.Events().Drain()
			if len(events) != c.wantEvents {
				t.Fatalf("expected %d events, got %d", c.wantEvents, len(events))
			}
			if c.wantEvents == 0 {
				return
			}
			evt, ok := events[0].Data.(GhostCaptured)
			if events[0].Type != EventGhostCaptured || !ok {
				t.Fatalf("unexpected event %+v", events[0])
			}
			if evt.Position != (cp.Vector{X: 1, Y: 2}) || evt.MaxHealth != 3 || evt.ProgressMax != 3 {
				t.Fatalf("unexpected payload %+v", evt)
			}
		})
	}
}

func TestCaptureProgressIgnoredUnlessCapturable(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{}, false)
	if ApplyCaptureProgress(w, g.e, 10) {
		t.Fatalf("active ghost must not be captured")
	}
	if g.capture.Progress != 0 {
		t.Fatalf("progress moved on an active ghost: %v", g.capture.Progress)
	}
}

func TestSetCapturableRoundTrip(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{}, false)
	for i := range 5 {
		makeCapturable(t, w, g)
		ApplyCaptureProgress(w, g.e, 0.5)
		SetCapturable(w, g.e, false, 1.25)
		if g.ghost.State != component.GhostActive {
			t.Fatalf("round %d: expected active, got %v", i, g.ghost.State)
		}
		if g.capture.Progress != 1.25 {
			t.Fatalf("round %d: expected progress 1.25, got %v", i, g.capture.Progress)
		}
	}

	SetCapturable(w, g.e, false, 99)
	if g.capture.Progress != 1.25 {
		t.Fatalf("clearing an active ghost should be a no-op, got %v", g.capture.Progress)
	}
	makeCapturable(t, w, g)
	SetCapturable(w, g.e, false, 99)
	if g.capture.Progress != 3 {
		t.Fatalf("expected reset clamped to 3, got %v", g.capture.Progress)
	}
}

func TestDepletedGhostBecomesCapturable(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{}, false)
	w.Clock().Advance(testDT)

	if !ApplyDamage(w, g.e, 1) || g.ghost.State != component.GhostActive {
		t.Fatalf("expected damage to land on an active ghost")
	}
	if !ApplyDamage(w, g.e, 5) {
		t.Fatalf("expected lethal damage to land")
	}
	if g.health.Current != 0 || g.ghost.State != component.GhostStunned {
		t.Fatalf("expected stunned at zero health, got %v %d", g.ghost.State, g.health.Current)
	}
	cd, _ := ecs.Get(w, g.e, component.ContactDamageComponent.Kind())
	if cd.Amount != 0 {
		t.Fatalf("expected contact damage disabled, got %d", cd.Amount)
	}
	if ApplyDamage(w, g.e, 1) {
		t.Fatalf("frozen ghost should be immune")
	}
	if !ecs.IsAlive(w, g.e) {
		t.Fatalf("depleted ghost should stay alive for capture")
	}
}

func TestCaptureSystemHoldsFrozenGhostsStill(t *testing.T) {
	w := newZeroGravityWorld()
	g := newTestGhost(t, w, cp.Vector{}, true)
	body, _ := dynamicBody(w, g.e)
	makeCapturable(t, w, g)
	body.SetVelocity(3, 1)
	NewCaptureSystem().Update(w)
	if body.Velocity() != (cp.Vector{}) {
		t.Fatalf("expected frozen ghost velocity zeroed, got %v", body.Velocity())
	}
}
