package ecs

import "github.com/milk9111/ghostvac/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if store, ok := w.stores[kind.ID()]; ok {
		typed, _ := store.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	store := newSparseSet[T]()
	w.stores[kind.ID()] = store
	return store
}

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

// Get returns the component of the given kind attached to e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	store := storeFor(w, kind, false)
	if store == nil {
		return nil, false
	}
	return store.get(e)
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	store := storeFor(w, kind, false)
	if store == nil {
		return false
	}
	return store.remove(e.id())
}

// First returns the first live entity carrying the given kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	store := storeFor(w, kind, false)
	if store == nil {
		return 0, false
	}
	for _, e := range store.dense {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}
