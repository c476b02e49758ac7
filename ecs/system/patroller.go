package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

// PatrollerSystem walks patrollers along platforms. At a wall or a ledge
// they stop for TurnPause seconds and then reverse.
type PatrollerSystem struct {
	query ecs.SpatialQuery
}

func NewPatrollerSystem(query ecs.SpatialQuery) *PatrollerSystem {
	return &PatrollerSystem{query: query}
}

func (s *PatrollerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	query := resolveQuery(w, s.query)
	now := w.Clock().Now
	ecs.ForEach(w, component.PatrollerComponent.Kind(), func(e ecs.Entity, pt *component.Patroller) {
		vel := entityVelocity(w, e)
		if pt.Turning {
			if now < pt.TurnAt {
				vel.X = 0
				setEntityVelocity(w, e, vel)
				return
			}
			pt.Turning = false
			pt.MovingRight = !pt.MovingRight
		}

		dir := -1.0
		if pt.MovingRight {
			dir = 1
		}
		pos, _ := entityPosition(w, e)
		if query != nil && patrollerBlocked(query, pt, pos, dir) {
			pt.Turning = true
			pt.TurnAt = now + pt.TurnPause
			vel.X = 0
			setEntityVelocity(w, e, vel)
			return
		}

		vel.X = dir * pt.MoveSpeed
		setEntityVelocity(w, e, vel)
	})
}

// patrollerBlocked reports a wall ahead or missing ground ahead. Ledges only
// count while the patroller is standing on something.
func patrollerBlocked(query ecs.SpatialQuery, pt *component.Patroller, pos cp.Vector, dir float64) bool {
	wallOrigin := pos.Add(cp.Vector{X: dir * pt.WallProbeOffset.X, Y: pt.WallProbeOffset.Y})
	if _, hit := query.Raycast(wallOrigin, cp.Vector{X: dir}, pt.WallProbeLength, component.LayerObstacle); hit {
		return true
	}

	down := cp.Vector{Y: -1}
	footDepth := -pt.GroundProbeOffset.Y + pt.GroundProbeLength
	if _, standing := query.Raycast(pos, down, footDepth, component.LayerObstacle); !standing {
		return false
	}
	ledgeOrigin := pos.Add(cp.Vector{X: dir * pt.GroundProbeOffset.X, Y: pt.GroundProbeOffset.Y})
	_, ground := query.Raycast(ledgeOrigin, down, pt.GroundProbeLength, component.LayerObstacle)
	return !ground
}
