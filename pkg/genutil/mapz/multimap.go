package mapz

import "slices"

// MultiMap represents a map that can contain 1 or more values for each key.
//
// Both the keys and the values under each key are kept in insertion order.
// The zero value is an empty map ready to use.
type MultiMap[T comparable, Q any] struct {
	items map[T][]Q
	order []T
}

// Add inserts the value into the map at the given key.
//
// If there exists an existing value, then this value is appended
// *without comparison*. Put another way, a value can be added twice, if this
// method is called twice for the same value.
func (mm *MultiMap[T, Q]) Add(key T, item Q) {
	if mm.items == nil {
		mm.items = map[T][]Q{}
	}

	if _, ok := mm.items[key]; !ok {
		mm.items[key] = []Q{}
		mm.order = append(mm.order, key)
	}

	mm.items[key] = append(mm.items[key], item)
}

// Has returns true if the key is found in the map.
func (mm *MultiMap[T, Q]) Has(key T) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values stored in the map for the provided key and whether
// the key existed.
//
// If the key does not exist, an empty slice is returned.
func (mm *MultiMap[T, Q]) Get(key T) ([]Q, bool) {
	found, ok := mm.items[key]
	if !ok {
		return []Q{}, false
	}

	return found, true
}

// IsEmpty returns true if the map is currently empty.
func (mm *MultiMap[T, Q]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the length of the map, e.g. the number of *keys* present.
func (mm *MultiMap[T, Q]) Len() int { return len(mm.items) }

// Keys returns the keys of the map, in the order they were first added.
func (mm *MultiMap[T, Q]) Keys() []T { return slices.Clone(mm.order) }

// Clone returns a clone of the map. The value slices are copied, so appending
// to either map does not affect the other.
func (mm *MultiMap[T, Q]) Clone() *MultiMap[T, Q] {
	cloned := make(map[T][]Q, len(mm.items))
	for key, values := range mm.items {
		cloned[key] = slices.Clone(values)
	}

	return &MultiMap[T, Q]{
		items: cloned,
		order: slices.Clone(mm.order),
	}
}

// CountOf returns the number of values stored for the given key.
func (mm *MultiMap[T, Q]) CountOf(key T) int {
	return len(mm.items[key])
}
