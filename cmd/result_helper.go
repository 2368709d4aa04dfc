package main

import (
	"strings"

	"github.com/rmohr/hittingset/pkg/api"
	"github.com/rmohr/hittingset/pkg/hittingset"
	"github.com/rmohr/hittingset/pkg/problem"
	"github.com/rmohr/hittingset/pkg/sat"
	"github.com/rmohr/hittingset/pkg/set"
)

func toResult(name string, solutions *set.Family[string], stats *hittingset.Stats, report *sat.Report[string]) *api.Result {
	result := &api.Result{
		Name:        name,
		HittingSets: problem.FromFamily(solutions),
	}
	if stats != nil {
		result.Stats = problem.ToStats(*stats)
	}
	if report != nil {
		result.Verification = problem.ToVerification(report)
	}
	return result
}

// toConflicts keeps the order of the family, the solver depends on it.
func toConflicts(family *set.Family[string]) [][]string {
	conflicts := [][]string{}
	for _, s := range family.Sets() {
		conflicts = append(conflicts, s.Items())
	}
	return conflicts
}

// parseElements splits a comma separated list of elements. Blank entries are ignored, so an
// empty string denotes the empty set.
func parseElements(list string) []string {
	elements := []string{}
	for _, e := range strings.Split(list, ",") {
		if e = strings.TrimSpace(e); e != "" {
			elements = append(elements, e)
		}
	}
	return elements
}
