package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Set is an insertion ordered collection of unique elements.
// Equality ignores the order, iteration follows it.
// A nil *Set reads as the empty set.
type Set[T comparable] struct {
	index map[T]struct{}
	items []T
}

func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		index: make(map[T]struct{}, len(items)),
		items: make([]T, 0, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether the set changed.
func (s *Set[T]) Add(item T) bool {
	if s.index == nil {
		s.index = map[T]struct{}{}
	}
	if _, exists := s.index[item]; exists {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *Set[T]) Remove(item T) bool {
	if !s.Contains(item) {
		return false
	}
	delete(s.index, item)
	s.items = slices.DeleteFunc(s.items, func(e T) bool { return e == item })
	return true
}

func (s *Set[T]) Contains(item T) bool {
	if s == nil {
		return false
	}
	_, exists := s.index[item]
	return exists
}

func (s *Set[T]) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Set[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Items returns a copy of the elements in insertion order.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Each calls fn for every element in insertion order until fn returns false.
func (s *Set[T]) Each(fn func(item T) bool) {
	if s == nil {
		return
	}
	for _, item := range s.items {
		if !fn(item) {
			return
		}
	}
}

// Intersection returns the elements of s which are also in other, in the order of s.
// A nil other yields the empty set.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := New[T]()
	if other == nil {
		return result
	}
	s.Each(func(item T) bool {
		if other.Contains(item) {
			result.Add(item)
		}
		return true
	})
	return result
}

func (s *Set[T]) IsEmptyIntersection(other *Set[T]) bool {
	if other == nil {
		return true
	}
	disjoint := true
	s.Each(func(item T) bool {
		if other.Contains(item) {
			disjoint = false
		}
		return disjoint
	})
	return disjoint
}

// ContainsAll reports whether other is a subset of s.
func (s *Set[T]) ContainsAll(other *Set[T]) bool {
	all := true
	other.Each(func(item T) bool {
		if !s.Contains(item) {
			all = false
		}
		return all
	})
	return all
}

// StrictlyContains reports whether s is a proper superset of other.
func (s *Set[T]) StrictlyContains(other *Set[T]) bool {
	return s.Size() > other.Size() && s.ContainsAll(other)
}

func (s *Set[T]) Equals(other *Set[T]) bool {
	return s.Size() == other.Size() && s.ContainsAll(other)
}

func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return New[T]()
	}
	return New(s.items...)
}

// Union returns a new set holding the elements of s followed by the new elements of other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := s.Clone()
	other.Each(func(item T) bool {
		result.Add(item)
		return true
	})
	return result
}

// Difference returns the elements of s which are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := New[T]()
	s.Each(func(item T) bool {
		if !other.Contains(item) {
			result.Add(item)
		}
		return true
	})
	return result
}

func (s *Set[T]) String() string {
	parts := make([]string, 0, s.Size())
	s.Each(func(item T) bool {
		parts = append(parts, fmt.Sprint(item))
		return true
	})
	return "{" + strings.Join(parts, ", ") + "}"
}
