package set

import (
	"strings"
)

// Family is an ordered collection of sets which are unique by content.
type Family[T comparable] struct {
	sets []*Set[T]
}

func NewFamily[T comparable](sets ...*Set[T]) *Family[T] {
	f := &Family[T]{}
	for _, s := range sets {
		f.Add(s)
	}
	return f
}

// Add appends a copy of s unless an equal set is already a member.
// Unlike the read operations Add needs a non-nil receiver, it panics on a nil *Family.
func (f *Family[T]) Add(s *Set[T]) bool {
	if f == nil {
		panic("set: Add on nil *Family")
	}
	if f.Contains(s) {
		return false
	}
	f.sets = append(f.sets, s.Clone())
	return true
}

// Get returns the i-th member. It panics if i is out of range.
func (f *Family[T]) Get(i int) *Set[T] {
	return f.sets[i]
}

func (f *Family[T]) Size() int {
	if f == nil {
		return 0
	}
	return len(f.sets)
}

// Sets returns the members in insertion order.
func (f *Family[T]) Sets() []*Set[T] {
	if f == nil {
		return nil
	}
	return append([]*Set[T]{}, f.sets...)
}

func (f *Family[T]) Contains(s *Set[T]) bool {
	return f.indexOf(s) >= 0
}

func (f *Family[T]) indexOf(s *Set[T]) int {
	if f == nil {
		return -1
	}
	for i, member := range f.sets {
		if member.Equals(s) {
			return i
		}
	}
	return -1
}

// FindEmptyIntersection returns a copy of the first member, in insertion order,
// which shares no element with target. If there is none the empty set is returned.
func (f *Family[T]) FindEmptyIntersection(target *Set[T]) *Set[T] {
	if f != nil {
		for _, member := range f.sets {
			if member.IsEmptyIntersection(target) {
				return member.Clone()
			}
		}
	}
	return New[T]()
}

// Equals compares the members regardless of their order.
func (f *Family[T]) Equals(other *Family[T]) bool {
	if f.Size() != other.Size() {
		return false
	}
	for _, member := range other.Sets() {
		if !f.Contains(member) {
			return false
		}
	}
	return true
}

func (f *Family[T]) String() string {
	parts := make([]string, 0, f.Size())
	for _, s := range f.Sets() {
		parts = append(parts, s.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
