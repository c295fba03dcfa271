// Package extent keeps the ordered in-memory collection of every live
// instance of one entity type.
//
// A Registry is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package extent

import (
	"fmt"

	"github.com/mesh-intelligence/extents/pkg/types"
)

// Member is the constraint for registry elements: a comparable entity,
// normally a pointer to one of the types in pkg/types.
type Member interface {
	comparable
	types.Entity
}

// Policy configures identifier handling for one extent.
type Policy struct {
	// UniqueIDs rejects a second entity with an identifier already present.
	UniqueIDs bool
}

// Registry is an ordered collection of one entity type. Insertion order is
// preserved so that persistence round-trips are deterministic.
type Registry[T Member] struct {
	name   string
	policy Policy
	items  []T
}

// New returns an empty registry. name is used in error messages and as the
// default persistence resource.
func New[T Member](name string, policy Policy) *Registry[T] {
	return &Registry[T]{name: name, policy: policy}
}

// Name returns the extent name given to New.
func (r *Registry[T]) Name() string { return r.name }

// Policy returns the identifier policy.
func (r *Registry[T]) Policy() Policy { return r.policy }

// Register appends e. It returns ErrNilEntity for a nil entity and
// ErrDuplicateID when the policy requires unique identifiers and one is
// already present. The registry is unchanged on error. Registering the same
// reference twice is rejected the same way regardless of policy.
func (r *Registry[T]) Register(e T) error {
	var zero T
	if e == zero {
		return fmt.Errorf("registering in %s: %w", r.name, types.ErrNilEntity)
	}
	for _, it := range r.items {
		if it == e || (r.policy.UniqueIDs && it.ID() == e.ID()) {
			return fmt.Errorf("registering %s %d: %w", r.name, e.ID(), types.ErrDuplicateID)
		}
	}
	r.items = append(r.items, e)
	return nil
}

// Unregister removes e by reference. It reports whether e was present.
func (r *Registry[T]) Unregister(e T) bool {
	for i, it := range r.items {
		if it == e {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// UnregisterID removes every entity with the given identifier and reports
// whether any was present.
func (r *Registry[T]) UnregisterID(id int) bool {
	kept := r.items[:0]
	removed := false
	for _, it := range r.items {
		if it.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	clear(r.items[len(kept):])
	r.items = kept
	return removed
}

// Get returns the first entity with the given identifier.
func (r *Registry[T]) Get(id int) (T, bool) {
	for _, it := range r.items {
		if it.ID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether e is registered by reference.
func (r *Registry[T]) Contains(e T) bool {
	for _, it := range r.items {
		if it == e {
			return true
		}
	}
	return false
}

// All returns the entities in insertion order. The slice is a copy; changing
// it does not affect the registry.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of registered entities.
func (r *Registry[T]) Len() int { return len(r.items) }

// Clear empties the registry.
func (r *Registry[T]) Clear() {
	clear(r.items)
	r.items = nil
}

// Replace swaps the contents for items, applying the same checks as
// Register. On error the registry keeps its previous contents.
func (r *Registry[T]) Replace(items []T) error {
	next := New[T](r.name, r.policy)
	for _, it := range items {
		if err := next.Register(it); err != nil {
			return err
		}
	}
	r.items = next.items
	return nil
}
