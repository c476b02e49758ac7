package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const minVacuumDistance = 0.001

// VacuumSystem pulls capturable ghosts and pickups inside the vacuum cone
// toward the nozzle and captures ghosts that reach it.
type VacuumSystem struct {
	query ecs.SpatialQuery
}

func NewVacuumSystem(query ecs.SpatialQuery) *VacuumSystem {
	return &VacuumSystem{query: query}
}

func (s *VacuumSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	query := resolveQuery(w, s.query)
	dt := w.Clock().Delta
	ecs.ForEach4(w, component.VacuumComponent.Kind(), component.AbilityArbiterComponent.Kind(), component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, v *component.Vacuum, arb *component.AbilityArbiter, in *component.Input, p *component.Player) {
		v.Nearest = component.VacuumTarget{}
		v.Active = in.VacuumHeld && !p.Dead && arb.TryAcquire(component.AbilityVacuum)
		if !v.Active {
			arb.Release(component.AbilityVacuum)
		}

		pos, _ := entityPosition(w, e)
		up := false
		if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
			up = aim.Up
		}
		origin, aimDir := vacuumNozzle(v, pos, p.Facing(), up)

		if v.Active && query != nil {
			s.pull(w, query, v, origin, aimDir, dt)
		}

		if beam, ok := ecs.Get(w, e, component.BeamComponent.Kind()); ok {
			beam.Active = v.Active
			beam.Start = origin
			beam.End = origin.Add(aimDir.Mult(v.MaxRange))
			if v.Nearest.Found {
				beam.End = v.Nearest.Point
			}
		}
	})
}

func vacuumNozzle(v *component.Vacuum, pos, facing cp.Vector, up bool) (cp.Vector, cp.Vector) {
	if up {
		return pos.Add(cp.Vector{Y: v.Offset.X}), cp.Vector{Y: 1}
	}
	return pos.Add(cp.Vector{X: facing.X * v.Offset.X, Y: v.Offset.Y}), facing
}

func (s *VacuumSystem) pull(w *ecs.World, query ecs.SpatialQuery, v *component.Vacuum, origin, aimDir cp.Vector, dt float64) {
	for _, target := range query.OverlapCircle(origin, v.MaxRange, component.LayerGhost|component.LayerPickup) {
		ghost := ecs.Has(w, target, component.GhostComponent.Kind())
		if ghost && !IsCapturable(w, target) {
			continue
		}
		if !ghost && !ecs.Has(w, target, component.PickupComponent.Kind()) {
			continue
		}

		targetPos, ok := entityPosition(w, target)
		if !ok {
			continue
		}
		toOrigin := origin.Sub(targetPos)
		dist := toOrigin.Length()
		if dist <= minVacuumDistance || dist > v.MaxRange {
			continue
		}
		if common.AngleBetween(aimDir, toOrigin.Neg()) > v.ConeAngle/2 {
			continue
		}
		if _, blocked := query.Raycast(origin, toOrigin.Neg(), dist, component.LayerObstacle); blocked {
			continue
		}

		if ghost && dist <= v.CollectRadius {
			CaptureGhost(w, target)
			continue
		}

		attract(w, target, targetPos, toOrigin, dist, v, dt)
		if ghost {
			if c, ok := ecs.Get(w, target, component.CaptureComponent.Kind()); ok {
				if ApplyCaptureProgress(w, target, c.CaptureRate*dt) {
					continue
				}
			}
		}

		if !v.Nearest.Found || dist < v.Nearest.Distance {
			v.Nearest = component.VacuumTarget{Found: true, Distance: dist, Point: targetPos}
		}
	}
}

// pullMagnitude is never below half of pullForce and reaches the full force
// at the nozzle.
func pullMagnitude(pullForce, dist, maxRange float64) float64 {
	if maxRange <= 0 {
		return pullForce
	}
	return pullForce * (0.5 + 0.5*cp.Clamp01(1-dist/maxRange))
}

// attract pushes a dynamic body toward the nozzle with a force and slides
// anything else toward it at PickupMoveSpeed.
func attract(w *ecs.World, target ecs.Entity, targetPos, toOrigin cp.Vector, dist float64, v *component.Vacuum, dt float64) {
	if body, ok := dynamicBody(w, target); ok {
		force := toOrigin.Mult(1 / dist).Mult(pullMagnitude(v.PullForce, dist, v.MaxRange))
		body.ApplyForceAtWorldPoint(force, targetPos)
		return
	}
	setEntityPosition(w, target, common.MoveTowards(targetPos, targetPos.Add(toOrigin), v.PickupMoveSpeed*dt))
}
