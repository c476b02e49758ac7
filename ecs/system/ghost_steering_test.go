package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"pgregory.net/rapid"
)

func TestAvoidance(t *testing.T) {
	forward := cp.Vector{X: 1}
	cases := []struct {
		name string
		ray  func(origin, dir cp.Vector, maxDistance float64) (ecs.RayHit, bool)
		want cp.Vector
	}{
		{"no_hits", nil, cp.Vector{}},
		{
			name: "forward_hit_halfway",
			ray: func(_, dir cp.Vector, maxDistance float64) (ecs.RayHit, bool) {
				if dir.Y != 0 {
					return ecs.RayHit{}, false
				}
				return ecs.RayHit{Normal: cp.Vector{X: -1}, Distance: maxDistance / 2}, true
			},
			// (normal + 0.2 * perp(forward)) * 0.5
			want: cp.Vector{X: -0.5, Y: 0.1},
		},
		{
			name: "hit_at_probe_end",
			ray: func(_, _ cp.Vector, maxDistance float64) (ecs.RayHit, bool) {
				return ecs.RayHit{Normal: cp.Vector{X: -1}, Distance: maxDistance}, true
			},
			want: cp.Vector{},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := &stubQuery{ray: c.ray}
			got := avoidance(q, cp.Vector{}, forward, 0.8)
			if !approxVec(got, c.want, 1e-9) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if q.rays != 3 {
				t.Fatalf("expected 3 probes, got %d", q.rays)
			}
		})
	}
}

func TestSteerWithoutObstaclesHeadsToTarget(t *testing.T) {
	s := NewGhostSteeringSystem(rand.New(rand.NewSource(7)), nil)
	g := &component.Ghost{
		MoveSpeed:      2,
		WaypointRadius: 0.25,
		RetargetDelay:  4,
		LookAhead:      0.8,
		AvoidStrength:  6,
		FlipDeadzone:   0.3,
		Target:         cp.Vector{X: -5},
		RetargetAt:     10,
		FacingRight:    true,
		Initialized:    true,
	}
	v := s.steer(g, cp.Vector{}, 1, testDT, &stubQuery{})
	if !approxVec(v, cp.Vector{X: -2}, 1e-9) {
		t.Fatalf("expected straight line velocity, got %v", v)
	}
	if g.FacingRight {
		t.Fatalf("expected ghost to face left")
	}

	// Inside the deadzone the facing is kept.
	g.MoveSpeed = 0.1
	g.Target = cp.Vector{X: 5}
	s.steer(g, cp.Vector{}, 1, testDT, &stubQuery{})
	if g.FacingRight {
		t.Fatalf("facing flipped inside the deadzone")
	}
}

func TestSteerArrivalStartsDwell(t *testing.T) {
	s := NewGhostSteeringSystem(rand.New(rand.NewSource(3)), nil)
	room := common.Rect{Max: cp.Vector{X: 10, Y: 6}}
	g := &component.Ghost{
		MoveSpeed:      2,
		WaypointRadius: 0.25,
		WaitMin:        0.5,
		WaitMax:        1,
		RetargetDelay:  4,
		WallMargin:     0.5,
		Room:           &room,
		Target:         cp.Vector{X: 1, Y: 1},
		RetargetAt:     100,
		Initialized:    true,
	}
	v := s.steer(g, cp.Vector{X: 1.1, Y: 1}, 2, testDT, nil)
	if g.State != component.GhostDwelling {
		t.Fatalf("expected dwelling on arrival, got %v", g.State)
	}
	if v != (cp.Vector{}) {
		t.Fatalf("expected only hover while dwelling, got %v", v)
	}
	if g.WaitUntil < 2.5 || g.WaitUntil > 3 {
		t.Fatalf("wait deadline %v outside [2.5, 3]", g.WaitUntil)
	}
	if !approx(g.RetargetAt, g.WaitUntil+4, 1e-9) {
		t.Fatalf("expected retarget deadline after the dwell, got %v", g.RetargetAt)
	}

	s.steer(g, cp.Vector{X: 1.1, Y: 1}, g.WaitUntil-0.01, testDT, nil)
	if g.State != component.GhostDwelling {
		t.Fatalf("dwell ended early")
	}
	v = s.steer(g, cp.Vector{X: 1.1, Y: 1}, g.WaitUntil, testDT, nil)
	if g.State != component.GhostActive || v.Length() == 0 {
		t.Fatalf("expected to move after the dwell, got %v %v", g.State, v)
	}
}

func TestSteerRetargetsOnTimeout(t *testing.T) {
	s := NewGhostSteeringSystem(rand.New(rand.NewSource(5)), nil)
	g := &component.Ghost{
		MoveSpeed:      2,
		WaypointRadius: 0.25,
		RetargetDelay:  4,
		FallbackRadius: 2,
		Spawn:          cp.Vector{X: 20, Y: 20},
		Target:         cp.Vector{X: -50},
		RetargetAt:     3,
		Initialized:    true,
	}
	s.steer(g, cp.Vector{}, 3, testDT, nil)
	if g.Target.Sub(g.Spawn).Length() > 2 {
		t.Fatalf("expected a fresh target near spawn, got %v", g.Target)
	}
}

func TestPickTargetStaysInRoom(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minX := rapid.Float64Range(-50, 50).Draw(t, "minX")
		minY := rapid.Float64Range(-50, 50).Draw(t, "minY")
		w := rapid.Float64Range(0.1, 30).Draw(t, "w")
		h := rapid.Float64Range(0.1, 30).Draw(t, "h")
		margin := rapid.Float64Range(0, 5).Draw(t, "margin")
		seed := rapid.Int64().Draw(t, "seed")

		room := common.Rect{Min: cp.Vector{X: minX, Y: minY}, Max: cp.Vector{X: minX + w, Y: minY + h}}
		s := NewGhostSteeringSystem(rand.New(rand.NewSource(seed)), nil)
		g := &component.Ghost{Room: &room, WallMargin: margin}
		inner := room.Inset(margin)
		for range 20 {
			p := s.pickTarget(g)
			if !inner.Contains(p) {
				t.Fatalf("target %v outside %+v", p, inner)
			}
			if 4*margin <= w && (p.X < room.Min.X+margin-1e-9 || p.X > room.Max.X-margin+1e-9) {
				t.Fatalf("target %v violates the wall margin %v in %+v", p, margin, room)
			}
		}
	})
}

func TestPickTargetFallback(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spawn := cp.Vector{
			X: rapid.Float64Range(-100, 100).Draw(t, "x"),
			Y: rapid.Float64Range(-100, 100).Draw(t, "y"),
		}
		radius := rapid.Float64Range(0, 10).Draw(t, "radius")
		s := NewGhostSteeringSystem(rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))), nil)
		g := &component.Ghost{Spawn: spawn, FallbackRadius: radius}
		if d := s.pickTarget(g).Distance(spawn); d > radius+1e-9 {
			t.Fatalf("target %v from spawn, radius %v", d, radius)
		}
	})
}

func TestGhostSteeringSkipsFrozenGhosts(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{X: 3, Y: 3}, false)
	g.ghost.State = component.GhostCapturable
	w.Clock().Advance(testDT)
	NewGhostSteeringSystem(rand.New(rand.NewSource(1)), &stubQuery{}).Update(w)

	tr, _ := ecs.Get(w, g.e, component.TransformComponent.Kind())
	if tr.Position() != (cp.Vector{X: 3, Y: 3}) || g.ghost.Initialized {
		t.Fatalf("frozen ghost was steered: %v initialized=%v", tr.Position(), g.ghost.Initialized)
	}
}

func TestGhostSteeringInitialises(t *testing.T) {
	w := ecs.NewWorld()
	g := newTestGhost(t, w, cp.Vector{X: 3, Y: 3}, false)
	room := common.Rect{Min: cp.Vector{X: 0, Y: 0}, Max: cp.Vector{X: 8, Y: 6}}
	g.ghost.Room = &room
	w.Clock().Advance(testDT)
	NewGhostSteeringSystem(rand.New(rand.NewSource(1)), &stubQuery{}).Update(w)

	if !g.ghost.Initialized {
		t.Fatalf("expected ghost to be initialised")
	}
	if !room.Inset(g.ghost.WallMargin).Contains(g.ghost.Target) {
		t.Fatalf("initial target %v outside room", g.ghost.Target)
	}
	if !approx(g.ghost.RetargetAt, testDT+g.ghost.RetargetDelay, 1e-9) {
		t.Fatalf("expected retarget deadline %v, got %v", testDT+g.ghost.RetargetDelay, g.ghost.RetargetAt)
	}
}
