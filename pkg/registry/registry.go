// Package registry provides the ordered, append-only container used to hold
// registered test functions and test units.
package registry

import "iter"

// DefaultCapacity is the default maximum number of items a registry accepts.
const DefaultCapacity = 256

// Unbounded is a capacity value that lets a registry grow without limit.
// Any non-positive capacity behaves the same way.
const Unbounded = 0

// Registry is an ordered list of items with an optional capacity limit.
// Items are iterated in insertion order and are never removed.
// A Registry is not safe for concurrent use.
type Registry[T any] struct {
	items    []T
	capacity int
}

// New creates an empty registry holding at most capacity items.
// A non-positive capacity means the registry is unbounded.
func New[T any](capacity int) *Registry[T] {
	if capacity < 0 {
		capacity = Unbounded
	}
	return &Registry[T]{capacity: capacity}
}

// Add appends item to the registry.
// It returns false without modifying the registry when it is full.
func (r *Registry[T]) Add(item T) bool {
	if r.Full() {
		return false
	}
	r.items = append(r.items, item)
	return true
}

// Full reports whether the registry has reached its capacity.
func (r *Registry[T]) Full() bool {
	return r.capacity != Unbounded && len(r.items) >= r.capacity
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Cap returns the capacity limit, or Unbounded.
func (r *Registry[T]) Cap() int {
	return r.capacity
}

// All returns an iterator over the items in insertion order.
func (r *Registry[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range r.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Items returns a copy of all registered items.
func (r *Registry[T]) Items() []T {
	result := make([]T, len(r.items))
	copy(result, r.items)
	return result
}
