package ecs

import "github.com/milk9111/ghostvac/ecs/component"

// ForEach visits every entity with a component of kind a. The callback may
// add, remove or destroy freely; entities removed mid-iteration are skipped.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil {
		return
	}
	for _, e := range sa.snapshot() {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, a, func(e Entity, va *A) {
		vb, ok := Get(w, e, b)
		if !ok {
			return
		}
		fn(e, va, vb)
	})
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		vc, ok := Get(w, e, c)
		if !ok {
			return
		}
		fn(e, va, vb, vc)
	})
}

// ForEach4 visits entities carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		vd, ok := Get(w, e, d)
		if !ok {
			return
		}
		fn(e, va, vb, vc, vd)
	})
}
