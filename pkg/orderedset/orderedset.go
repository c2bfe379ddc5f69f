package orderedset

import "iter"

// Set is an insertion-ordered collection of unique items.
// Membership and position lookups are O(1) through a backing index map.
//
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	items []T
	index map[T]int // item -> position in items
}

// New creates a set holding items in order. Duplicates after the first
// occurrence are dropped.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		items: make([]T, 0, len(items)),
		index: make(map[T]int, len(items)),
	}
	s.AppendAll(items...)
	return s
}

// WithCapacity creates an empty set with room for n items.
func WithCapacity[T comparable](n int) *Set[T] {
	return &Set[T]{
		items: make([]T, 0, n),
		index: make(map[T]int, n),
	}
}

// Len returns the number of items in the set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Append adds item at the end. Returns false if the item was already present,
// in which case the set is unchanged.
func (s *Set[T]) Append(item T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// AppendAll appends every item not already present and returns how many were added.
func (s *Set[T]) AppendAll(items ...T) int {
	added := 0
	for _, item := range items {
		if s.Append(item) {
			added++
		}
	}
	return added
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Index returns the position of item, or -1 if it is not in the set.
func (s *Set[T]) Index(item T) int {
	if s == nil {
		return -1
	}
	if i, ok := s.index[item]; ok {
		return i
	}
	return -1
}

// At returns the item at position i. It panics if i is out of range.
func (s *Set[T]) At(i int) T {
	return s.items[i]
}

// Items returns a copy of the items in order.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates over positions and items in order.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s == nil {
			return
		}
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// RemoveMatching removes every item contained in drop, keeping the relative
// order of the remaining items. Returns the number of items removed.
func (s *Set[T]) RemoveMatching(drop map[T]struct{}) int {
	if len(drop) == 0 {
		return 0
	}
	return s.RemoveFunc(func(item T) bool {
		_, ok := drop[item]
		return ok
	})
}

// RemoveFunc removes every item for which fn returns true, keeping the
// relative order of the remaining items. Returns the number of items removed.
func (s *Set[T]) RemoveFunc(fn func(T) bool) int {
	if s == nil {
		return 0
	}
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if fn(item) {
			delete(s.index, item)
			removed++
			continue
		}
		s.index[item] = len(kept)
		kept = append(kept, item)
	}
	// Clear the tail so removed items can be collected.
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	return removed
}

// Clear removes all items.
func (s *Set[T]) Clear() {
	s.items = s.items[:0]
	s.index = make(map[T]int)
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return New[T]()
	}
	c := &Set[T]{
		items: make([]T, len(s.items)),
		index: make(map[T]int, len(s.index)),
	}
	copy(c.items, s.items)
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}

// Equal reports whether both sets hold the same items in the same order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.items[i] != other.items[i] {
			return false
		}
	}
	return true
}
