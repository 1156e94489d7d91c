package ecs

import "github.com/milk9111/platformer/ecs/component"

// ForEach calls fn for every entity holding kind. Iteration runs over a copy
// of the entity list, so fn may add, remove or destroy freely; entities that
// lose the component before their turn are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, e := range s.Entities() {
		v, ok := s.Get(e)
		if !ok || !w.entities.isAlive(e) {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa, sb).Entities() {
		a, ok := sa.Get(e)
		if !ok {
			continue
		}
		b, ok := sb.Get(e)
		if !ok || !w.entities.isAlive(e) {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range sa.Entities() {
		a, ok := sa.Get(e)
		if !ok {
			continue
		}
		b, ok := sb.Get(e)
		if !ok {
			continue
		}
		c, ok := sc.Get(e)
		if !ok || !w.entities.isAlive(e) {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeFor(w, kd, false)
	if sd == nil || fn == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := sd.Get(e); ok {
			fn(e, a, b, c, d)
		}
	})
}

type sized interface {
	Len() int
	Entities() []Entity
}

func smallest(a, b sized) sized {
	if a.Len() <= b.Len() {
		return a
	}
	return b
}
