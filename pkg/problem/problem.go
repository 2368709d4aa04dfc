package problem

import (
	"fmt"
	"os"

	"github.com/rmohr/hittingset/pkg/api"
	"github.com/rmohr/hittingset/pkg/hittingset"
	"github.com/rmohr/hittingset/pkg/sat"
	"github.com/rmohr/hittingset/pkg/set"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"
)

func LoadProblemFile(file string) (*api.Problem, error) {
	problemfile, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	problem := &api.Problem{}
	err = yaml.Unmarshal(problemfile, problem)
	if err != nil {
		return nil, fmt.Errorf("failed to parse problem file %s: %v", file, err)
	}
	return problem, nil
}

func WriteProblemFile(file string, problem *api.Problem) error {
	data, err := yaml.Marshal(problem)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0660)
}

// ToFamily converts the conflicts of a problem into a family. Empty conflict sets can't be hit
// and are rejected. Duplicate conflict sets are dropped.
func ToFamily(problem *api.Problem) (*set.Family[string], error) {
	family := set.NewFamily[string]()
	for i, conflict := range problem.Conflicts {
		if len(conflict) == 0 {
			return nil, fmt.Errorf("conflict set %d of problem %q is empty and can't be hit", i, problem.Name)
		}
		if !family.Add(set.New(conflict...)) {
			logrus.Warnf("Ignoring duplicate conflict set %v at position %d.", conflict, i)
		}
	}
	return family, nil
}

// FromFamily converts a family into sorted lists of elements. The lists themselves are sorted
// as well, so the output does not depend on the order the sets were found in.
func FromFamily(family *set.Family[string]) [][]string {
	return fromSets(family.Sets())
}

func fromSets(sets []*set.Set[string]) [][]string {
	result := [][]string{}
	for _, s := range sets {
		items := s.Items()
		slices.Sort(items)
		result = append(result, items)
	}
	slices.SortFunc(result, func(a, b []string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})
	return result
}

// ToVerification converts a SAT report into its document form.
func ToVerification(report *sat.Report[string]) *api.Verification {
	return &api.Verification{
		Ok:         report.Ok(),
		NotHitting: nilIfEmpty(fromSets(report.NotHitting)),
		NotMinimal: nilIfEmpty(fromSets(report.NotMinimal)),
		Missing:    nilIfEmpty(fromSets(report.Missing)),
	}
}

// ToStats converts solver statistics into their document form.
func ToStats(stats hittingset.Stats) *api.Stats {
	return &api.Stats{
		Nodes:          stats.Nodes,
		ReusedByPath:   stats.ReusedByPath,
		ReusedAsClosed: stats.ReusedAsClosed,
		ReusedByLabel:  stats.ReusedByLabel,
		Closed:         stats.Closed,
		Prunes:         stats.Prunes,
		RemovedNodes:   stats.RemovedNodes,
		RemovedArcs:    stats.RemovedArcs,
	}
}

func nilIfEmpty(sets [][]string) [][]string {
	if len(sets) == 0 {
		return nil
	}
	return sets
}

func WriteResultFile(file string, result *api.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	if file == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(file, data, 0660)
}

func LoadResultFile(file string) (*api.Result, error) {
	resultfile, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	result := &api.Result{}
	err = yaml.Unmarshal(resultfile, result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse result file %s: %v", file, err)
	}
	return result, nil
}

// ToSets converts element lists into sets, keeping their order.
func ToSets(lists [][]string) []*set.Set[string] {
	var sets []*set.Set[string]
	for _, l := range lists {
		sets = append(sets, set.New(l...))
	}
	return sets
}
