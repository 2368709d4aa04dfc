package reducer

import (
	"github.com/rmohr/hittingset/pkg/set"
	"github.com/sirupsen/logrus"
)

// FamilyReducer removes redundant conflict sets from a family.
type FamilyReducer[T comparable] struct {
	family *set.Family[T]
	// Removed holds the conflict sets dropped by the last call to Reduce, in family order.
	Removed []*set.Set[T]
}

func NewFamilyReducer[T comparable](family *set.Family[T]) *FamilyReducer[T] {
	if family == nil {
		family = set.NewFamily[T]()
	}
	return &FamilyReducer[T]{family: family}
}

// Reduce returns a new family without the members which strictly contain another member.
// Members keep their relative order. The reduced family has the same minimal hitting sets.
func (r *FamilyReducer[T]) Reduce() *set.Family[T] {
	r.Removed = nil
	reduced := set.NewFamily[T]()
	for _, candidate := range r.family.Sets() {
		if by := r.subsumedBy(candidate); by != nil {
			logrus.Debugf("dropping %v because it contains %v", candidate, by)
			r.Removed = append(r.Removed, candidate)
			continue
		}
		reduced.Add(candidate)
	}
	return reduced
}

func (r *FamilyReducer[T]) subsumedBy(candidate *set.Set[T]) *set.Set[T] {
	for _, other := range r.family.Sets() {
		if candidate.StrictlyContains(other) {
			return other
		}
	}
	return nil
}

// Essential returns the elements which are part of every hitting set of the family, which are
// the elements of its singleton members.
func (r *FamilyReducer[T]) Essential() *set.Set[T] {
	essential := set.New[T]()
	for _, member := range r.family.Sets() {
		if member.Size() == 1 {
			essential = essential.Union(member)
		}
	}
	return essential
}

// Reduce is a shortcut for NewFamilyReducer(family).Reduce().
func Reduce[T comparable](family *set.Family[T]) *set.Family[T] {
	return NewFamilyReducer(family).Reduce()
}
