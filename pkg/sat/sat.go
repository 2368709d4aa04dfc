package sat

import (
	"github.com/crillab/gophersat/bf"
	"github.com/pkg/errors"
	"github.com/rmohr/hittingset/pkg/hittingset"
	"github.com/rmohr/hittingset/pkg/set"
	"github.com/sirupsen/logrus"
)

// ErrEmptyConflict is returned for families with an empty member, which no set can hit.
var ErrEmptyConflict = errors.New("family contains an empty conflict set")

// Report is the outcome of checking a list of candidate solutions against a family.
type Report[T comparable] struct {
	// Valid holds the candidates which are minimal hitting sets.
	Valid []*set.Set[T]
	// NotHitting holds the candidates which miss at least one conflict set.
	NotHitting []*set.Set[T]
	// NotMinimal holds the candidates which hit every conflict set but have a hitting proper subset.
	NotMinimal []*set.Set[T]
	// Missing holds minimal hitting sets which are not among the candidates.
	Missing []*set.Set[T]
}

// Ok reports whether the candidates are exactly the minimal hitting sets of the family.
func (r *Report[T]) Ok() bool {
	return len(r.NotHitting) == 0 && len(r.NotMinimal) == 0 && len(r.Missing) == 0
}

// Verify classifies the candidates and searches the minimal hitting sets missing from them.
// The search enumerates models of the CNF formula requiring every conflict set to be hit,
// while every known minimal hitting set is blocked together with its supersets. Each model is
// shrunk to a minimal hitting set before it is blocked in turn.
func Verify[T comparable](family *set.Family[T], candidates []*set.Set[T]) (*Report[T], error) {
	if family == nil {
		family = set.NewFamily[T]()
	}
	report := &Report[T]{}
	for _, member := range family.Sets() {
		if member.IsEmpty() {
			return nil, ErrEmptyConflict
		}
	}

	known := set.NewFamily[T]()
	for _, candidate := range candidates {
		switch {
		case !hittingset.IsHittingSet(family, candidate):
			report.NotHitting = append(report.NotHitting, candidate)
		case !hittingset.IsMinimalHittingSet(family, candidate):
			report.NotMinimal = append(report.NotMinimal, candidate)
		default:
			if known.Add(candidate) {
				report.Valid = append(report.Valid, candidate)
			}
		}
	}

	// the empty family has no conflict to hit, no hitting sets are reported for it
	if family.Size() == 0 {
		return report, nil
	}

	e := newEncoder[T]()
	ands := e.hits(family)
	for _, s := range known.Sets() {
		ands = append(ands, e.block(s))
	}
	for {
		model := bf.Solve(bf.And(ands...))
		if model == nil {
			break
		}
		found := hittingset.Minimize(family, e.decode(model))
		if known.Contains(found) {
			return nil, errors.Errorf("solver returned the blocked hitting set %v", found)
		}
		logrus.Debugf("Found missing minimal hitting set %v", found)
		known.Add(found)
		report.Missing = append(report.Missing, found)
		ands = append(ands, e.block(found))
	}
	logrus.Debugf("Checked %d candidates: %d valid, %d not hitting, %d not minimal, %d missing",
		len(candidates), len(report.Valid), len(report.NotHitting), len(report.NotMinimal), len(report.Missing))
	return report, nil
}

// Complete returns the valid candidates followed by the minimal hitting sets missing from them.
func Complete[T comparable](family *set.Family[T], candidates *set.Family[T]) (*set.Family[T], error) {
	report, err := Verify(family, candidates.Sets())
	if err != nil {
		return nil, err
	}
	if len(report.NotHitting)+len(report.NotMinimal) > 0 {
		logrus.Warnf("Dropping %d candidates which are no minimal hitting sets", len(report.NotHitting)+len(report.NotMinimal))
	}
	if len(report.Missing) > 0 {
		logrus.Infof("Adding %d minimal hitting sets missed by the HS-tree", len(report.Missing))
	}
	return set.NewFamily(append(report.Valid, report.Missing...)...), nil
}

// MinimalHittingSets enumerates all minimal hitting sets of family with the SAT solver.
func MinimalHittingSets[T comparable](family *set.Family[T]) (*set.Family[T], error) {
	return Complete(family, nil)
}
