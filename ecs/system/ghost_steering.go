package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const (
	avoidProbeAngle   = 20.0
	avoidSideScale    = 0.85
	avoidTangentBlend = 0.2
)

// GhostSteeringSystem wanders ghosts between random waypoints in their room,
// steering around obstacles found by three forward ray probes.
type GhostSteeringSystem struct {
	rng   *rand.Rand
	query ecs.SpatialQuery
}

// NewGhostSteeringSystem uses rng for waypoints, dwell times and hover
// phases. query overrides the world's physics for avoidance probes.
func NewGhostSteeringSystem(rng *rand.Rand, query ecs.SpatialQuery) *GhostSteeringSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &GhostSteeringSystem{rng: rng, query: query}
}

func (s *GhostSteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	query := resolveQuery(w, s.query)
	clock := w.Clock()
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		if g.State.Frozen() {
			return
		}
		pos, ok := entityPosition(w, e)
		if !ok {
			return
		}
		if !g.Initialized {
			s.initGhost(e, g, pos, clock.Now)
		}

		v := s.steer(g, pos, clock.Now, clock.Delta, query)
		setEntityVelocity(w, e, v)
	})
}

func (s *GhostSteeringSystem) initGhost(e ecs.Entity, g *component.Ghost, pos cp.Vector, now float64) {
	if g.Room == nil {
		log.Printf("GhostSteeringSystem: ghost %v has no room, wandering around spawn", e)
		if g.Spawn == (cp.Vector{}) {
			g.Spawn = pos
		}
	}
	g.HoverPhase = s.rng.Float64() * 2 * math.Pi
	g.Target = s.pickTarget(g)
	g.RetargetAt = now + g.RetargetDelay
	g.State = component.GhostActive
	g.Initialized = true
}

// steer advances one tick of wander state and returns the ghost velocity.
func (s *GhostSteeringSystem) steer(g *component.Ghost, pos cp.Vector, now, dt float64, query ecs.SpatialQuery) cp.Vector {
	g.HoverPhase += g.HoverSpeed * dt
	hover := cp.Vector{Y: math.Sin(g.HoverPhase) * g.HoverAmplitude}

	if g.State == component.GhostDwelling {
		if now < g.WaitUntil {
			return hover
		}
		g.State = component.GhostActive
	}

	if pos.DistanceSq(g.Target) <= g.WaypointRadius*g.WaypointRadius || now >= g.RetargetAt {
		g.WaitUntil = now + common.RandomRange(s.rng, g.WaitMin, g.WaitMax)
		g.Target = s.pickTarget(g)
		g.RetargetAt = g.WaitUntil + g.RetargetDelay
		if now < g.WaitUntil {
			g.State = component.GhostDwelling
			return hover
		}
	}

	toTarget := g.Target.Sub(pos)
	if toTarget.LengthSq() == 0 {
		return hover
	}
	forward := toTarget.Normalize()
	desired := forward.Mult(g.MoveSpeed)
	avoid := avoidance(query, pos, forward, g.LookAhead).Mult(g.AvoidStrength)

	v := desired.Add(avoid).Add(hover)
	if math.Abs(v.X) > g.FlipDeadzone {
		g.FacingRight = v.X > 0
	}
	return v
}

// avoidance sums the push away from obstacles hit by the forward probe and
// two probes rotated by +-20 degrees. Closer hits push harder.
func avoidance(query ecs.SpatialQuery, pos, forward cp.Vector, lookAhead float64) cp.Vector {
	if query == nil || lookAhead <= 0 {
		return cp.Vector{}
	}

	probes := [3]struct {
		dir    cp.Vector
		length float64
	}{
		{forward, lookAhead},
		{common.RotateDegrees(forward, avoidProbeAngle), lookAhead * avoidSideScale},
		{common.RotateDegrees(forward, -avoidProbeAngle), lookAhead * avoidSideScale},
	}

	var sum cp.Vector
	for _, probe := range probes {
		hit, ok := query.Raycast(pos, probe.dir, probe.length, component.LayerObstacle)
		if !ok {
			continue
		}
		weight := cp.Clamp01(1 - hit.Distance/probe.length)
		push := hit.Normal.Add(probe.dir.Perp().Mult(avoidTangentBlend))
		sum = sum.Add(push.Mult(weight))
	}
	return sum
}

// pickTarget returns a uniform point in the ghost's room shrunk by the wall
// margin, or a point within FallbackRadius of spawn when there is no room.
func (s *GhostSteeringSystem) pickTarget(g *component.Ghost) cp.Vector {
	if g.Room == nil {
		return g.Spawn.Add(common.RandomInUnitCircle(s.rng).Mult(g.FallbackRadius))
	}
	r := g.Room.Inset(g.WallMargin)
	return cp.Vector{
		X: common.Lerp(r.Min.X, r.Max.X, s.rng.Float64()),
		Y: common.Lerp(r.Min.Y, r.Max.Y, s.rng.Float64()),
	}
}
