package ecs

// componentStore is the type-erased view the world keeps of every sparse set,
// used when an entity is destroyed.
type componentStore interface {
	remove(e Entity) bool
	has(e Entity) bool
}

// SparseSet is a cache-friendly storage for components keyed by Entity id.
// The sparse index stores dense position + 1 so the zero value means absent.
type SparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func newSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	pos := s.sparse[id-1] - 1
	if pos < 0 || pos >= len(s.dense) || s.dense[pos] != e {
		return 0, false
	}
	return pos, true
}

// Has returns true if e has a value in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the value stored for e.
func (s *SparseSet[T]) Get(e Entity) (*T, bool) {
	pos, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[pos], true
}

// Set inserts or replaces the value for e.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	if pos, ok := s.index(e); ok {
		s.values[pos] = v
		return
	}
	id := int(e.id())
	if id <= 0 {
		return
	}
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, 0)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

// Remove deletes the value for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	pos, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[pos] = moved
	s.values[pos] = s.values[last]
	s.sparse[moved.id()-1] = pos + 1

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[e.id()-1] = 0
	return true
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns a copy of the dense entity list, safe to hold while the set
// is mutated.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.dense...)
}

func (s *SparseSet[T]) remove(e Entity) bool { return s.Remove(e) }
func (s *SparseSet[T]) has(e Entity) bool    { return s.Has(e) }
