package ecs

import (
	"github.com/milk9111/ghostvac/ecs/component"
)

// World owns entities, their component stores and the shared simulation
// singletons (clock, event queue, physics).
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
	clock    Clock

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new live entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e, its components and any physics it owns. It reports
// false when e was already dead, so repeated destroys are harmless.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	if w.physicsWorld != nil {
		w.physicsWorld.RemoveEntity(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in ascending slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the simulation clock shared by all systems.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
