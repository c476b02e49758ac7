package system

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.1
)

var (
	debugTargetColor = color.RGBA{R: 0xff, G: 0x60, B: 0xd0, A: 0xc0}
	debugRoomColor   = color.RGBA{R: 0x60, G: 0x80, B: 0xff, A: 0x80}
)

// DrawPhysicsDebug outlines every shape in the space plus each ghost's room
// and current wander target.
func (r *RenderSystem) DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	cp.DrawSpace(pw.Space(), &physicsDebugDrawer{screen: screen, render: r})

	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		if g.Room != nil {
			x0, y0 := r.toScreen(screen, cp.Vector{X: g.Room.Min.X, Y: g.Room.Max.Y})
			x1, y1 := r.toScreen(screen, cp.Vector{X: g.Room.Max.X, Y: g.Room.Min.Y})
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, debugRoomColor, false)
		}
		pos, ok := entityPosition(w, e)
		if !ok || g.State.Frozen() {
			return
		}
		x0, y0 := r.toScreen(screen, pos)
		x1, y1 := r.toScreen(screen, g.Target)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, debugTargetColor, false)
	})
}

// DrawStateDebug prints the player's ability state and every ghost's state.
func DrawStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	var b strings.Builder
	if player, ok := playerEntity(w); ok {
		if arb, ok := ecs.Get(w, player, component.AbilityArbiterComponent.Kind()); ok {
			fmt.Fprintf(&b, "Ability: %s\n", arb.Active)
		}
		if t, ok := ecs.Get(w, player, component.TorchComponent.Kind()); ok {
			fmt.Fprintf(&b, "Torch: %s %.2f/%.2f\n", t.Phase, t.Energy, t.MaxEnergy)
		}
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
			fmt.Fprintf(&b, "Grounded: %v\n", p.Grounded)
		}
	}
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, g *component.Ghost) {
		progress := ""
		if c, ok := ecs.Get(w, e, component.CaptureComponent.Kind()); ok && g.State == component.GhostCapturable {
			progress = fmt.Sprintf(" %.1f/%.1f", c.Progress, c.ProgressMax)
		}
		fmt.Fprintf(&b, "Ghost %v: %s%s\n", e, g.State, progress)
	})
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 60)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	render *RenderSystem
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 0.9, G: 0.9, B: 0.2, A: 0.6}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.render.toScreen(d.screen, a)
	x2, y2 := d.render.toScreen(d.screen, b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clampUnit(c.R) * 255),
		G: uint8(clampUnit(c.G) * 255),
		B: uint8(clampUnit(c.B) * 255),
		A: uint8(clampUnit(c.A) * 255),
	}
}

func clampUnit(v float32) float32 {
	return max(0, min(1, v))
}
