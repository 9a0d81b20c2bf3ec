package mapz

import (
	"cmp"
	"maps"
	"slices"
)

// Set implements a very basic generic set.
type Set[T comparable] struct {
	values map[T]struct{}
}

// NewSet returns a new set, optionally populated with the given items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{values: make(map[T]struct{}, len(items))}
	s.Extend(items)
	return s
}

// Has returns true if the set contains the given value.
func (s *Set[T]) Has(value T) bool {
	_, ok := s.values[value]
	return ok
}

// Add adds the given value to the set and returns true. If the value is already
// present, returns false.
func (s *Set[T]) Add(value T) bool {
	if s.Has(value) {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

// Extend adds all the values to the set.
func (s *Set[T]) Extend(values []T) {
	for _, value := range values {
		s.values[value] = struct{}{}
	}
}

// Merge adds all the values of the other set to this set.
func (s *Set[T]) Merge(other *Set[T]) {
	maps.Copy(s.values, other.values)
}

// Len returns the length of the set.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// SortedSlice returns the values of an ordered set in ascending order.
func SortedSlice[T cmp.Ordered](s *Set[T]) []T {
	return slices.Sorted(maps.Keys(s.values))
}
