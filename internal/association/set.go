package association

import "github.com/mesh-intelligence/extents/internal/extent"

// set is an insertion-ordered, duplicate-free collection. Association
// collections stay small, so membership is a linear scan.
type set[T extent.Member] struct {
	items []T
}

func (s *set[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *set[T]) has(v T) bool {
	if s == nil {
		return false
	}
	for _, it := range s.items {
		if it == v {
			return true
		}
	}
	return false
}

// sameID returns a member other than v that carries v's identifier.
func (s *set[T]) sameID(v T) (T, bool) {
	if s != nil {
		for _, it := range s.items {
			if it != v && it.ID() == v.ID() {
				return it, true
			}
		}
	}
	var zero T
	return zero, false
}

func (s *set[T]) add(v T) {
	if !s.has(v) {
		s.items = append(s.items, v)
	}
}

func (s *set[T]) remove(v T) bool {
	if s == nil {
		return false
	}
	for i, it := range s.items {
		if it == v {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *set[T]) first() (T, bool) {
	if s.len() == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

func (s *set[T]) snapshot() []T {
	out := make([]T, s.len())
	if s != nil {
		copy(out, s.items)
	}
	return out
}
