package entity

import (
	"fmt"
	"image/color"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/common"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
	"github.com/milk9111/ghostvac/levels"
)

var wallColor = color.RGBA{R: 0x3a, G: 0x34, B: 0x4a, A: 0xff}

// NewWall adds a static obstacle box spanning lo..hi.
func NewWall(w *ecs.World, lo, hi cp.Vector) (ecs.Entity, error) {
	size := hi.Sub(lo)
	if size.X <= 0 || size.Y <= 0 {
		return 0, fmt.Errorf("wall: empty bounds %v..%v", lo, hi)
	}
	center := lo.Add(hi).Mult(0.5)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("wall: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("wall: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:     component.BodyStatic,
		Width:    size.X,
		Height:   size.Y,
		Friction: 0.9,
		Layer:    component.LayerObstacle,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("wall: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.VisualComponent.Kind(), &component.Visual{Color: wallColor, Width: size.X, Height: size.Y}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("wall: add visual: %w", err)
	}
	return e, nil
}

func vec(v levels.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// LoadLevel populates w with the level's walls and spawns and returns the
// player entity.
func LoadLevel(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: missing world or level")
	}

	for i, wall := range lvl.Walls {
		if _, err := NewWall(w, vec(wall.Min), vec(wall.Max)); err != nil {
			return 0, fmt.Errorf("load level %q: wall %d: %w", lvl.Name, i, err)
		}
	}

	var player ecs.Entity
	for i, spawn := range lvl.Spawns {
		pos := vec(spawn.At)
		var err error
		switch spawn.Type {
		case "player":
			player, err = NewPlayer(w, pos)
		case "ghost":
			var room *common.Rect
			if spawn.Room != "" {
				r, ok := lvl.Room(spawn.Room)
				if !ok {
					return 0, fmt.Errorf("load level %q: spawn %d: unknown room %q", lvl.Name, i, spawn.Room)
				}
				room = &common.Rect{Min: vec(r.Min), Max: vec(r.Max)}
			}
			_, err = NewGhost(w, pos, room)
		case "patroller":
			_, err = NewPatroller(w, pos)
		case "coin":
			_, err = NewCoin(w, pos)
		case "health":
			_, err = NewHealthPickup(w, pos)
		default:
			err = fmt.Errorf("unknown spawn type %q", spawn.Type)
		}
		if err != nil {
			return 0, fmt.Errorf("load level %q: spawn %d: %w", lvl.Name, i, err)
		}
	}

	if !player.Valid() {
		return 0, fmt.Errorf("load level %q: no player spawn", lvl.Name)
	}
	log.Printf("Level: loaded %q (%d walls, %d spawns)", lvl.Name, len(lvl.Walls), len(lvl.Spawns))
	return player, nil
}
