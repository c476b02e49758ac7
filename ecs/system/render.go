package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

var (
	beamColor       = color.RGBA{R: 0x9e, G: 0xf0, B: 0xff, A: 0x90}
	flashColor      = color.RGBA{R: 0xff, G: 0xa4, B: 0x3a, A: 0x80}
	capturableColor = color.RGBA{R: 0x7d, G: 0xff, B: 0xb0, A: 0xff}
	stunnedColor    = color.RGBA{R: 0xff, G: 0xf0, B: 0x80, A: 0xff}
	flashWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// RenderSystem draws flat placeholder shapes for every Visual. The camera
// centres on the player; world y points up so it is flipped on screen.
type RenderSystem struct {
	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit float64

	camera    cp.Vector
	cameraSet bool
}

const cameraFollow = 0.15

func NewRenderSystem(pixelsPerUnit float64) *RenderSystem {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 48
	}
	return &RenderSystem{PixelsPerUnit: pixelsPerUnit}
}

func (r *RenderSystem) toScreen(screen *ebiten.Image, p cp.Vector) (float32, float32) {
	b := screen.Bounds()
	x := (p.X-r.camera.X)*r.PixelsPerUnit + float64(b.Dx())/2
	y := -(p.Y-r.camera.Y)*r.PixelsPerUnit + float64(b.Dy())/2
	return float32(x), float32(y)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if player, ok := playerEntity(w); ok {
		if pos, ok := entityPosition(w, player); ok {
			if !r.cameraSet {
				r.camera = pos
				r.cameraSet = true
			}
			r.camera.X = common.Lerp(r.camera.X, pos.X, cameraFollow)
			r.camera.Y = common.Lerp(r.camera.Y, pos.Y, cameraFollow)
		}
	}

	type drawable struct {
		e ecs.Entity
		v *component.Visual
		t *component.Transform
	}
	var items []drawable
	ecs.ForEach2(w, component.VisualComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, v *component.Visual, t *component.Transform) {
		if v.Hidden {
			return
		}
		items = append(items, drawable{e: e, v: v, t: t})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].v.Layer != items[j].v.Layer {
			return items[i].v.Layer < items[j].v.Layer
		}
		return items[i].e < items[j].e
	})

	for _, it := range items {
		clr := it.v.Color
		if g, ok := ecs.Get(w, it.e, component.GhostComponent.Kind()); ok {
			switch g.State {
			case component.GhostStunned:
				clr = stunnedColor
			case component.GhostCapturable:
				clr = capturableColor
			}
		}
		if hf, ok := ecs.Get(w, it.e, component.HitFlashComponent.Kind()); ok && hf.On {
			clr = flashWhite
		}
		x, y := r.toScreen(screen, it.t.Position())
		if it.v.Radius > 0 {
			vector.DrawFilledCircle(screen, x, y, float32(it.v.Radius*r.PixelsPerUnit), clr, true)
			continue
		}
		width := float32(it.v.Width * r.PixelsPerUnit)
		height := float32(it.v.Height * r.PixelsPerUnit)
		vector.FillRect(screen, x-width/2, y-height/2, width, height, clr, false)
	}

	r.drawEffects(w, screen)
}

func (r *RenderSystem) drawEffects(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.BeamComponent.Kind(), func(e ecs.Entity, beam *component.Beam) {
		if !beam.Active {
			return
		}
		x0, y0 := r.toScreen(screen, beam.Start)
		x1, y1 := r.toScreen(screen, beam.End)
		vector.StrokeLine(screen, x0, y0, x1, y1, 6, beamColor, true)
	})
	ecs.ForEach(w, component.FlashComponent.Kind(), func(e ecs.Entity, flash *component.Flash) {
		if !flash.Active {
			return
		}
		x, y := r.toScreen(screen, flash.Center)
		width := float32(flash.Size.X * r.PixelsPerUnit)
		height := float32(flash.Size.Y * r.PixelsPerUnit)
		vector.FillRect(screen, x-width/2, y-height/2, width, height, flashColor, false)
	})
}
