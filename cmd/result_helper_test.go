package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/hittingset/pkg/api"
	"github.com/rmohr/hittingset/pkg/hittingset"
	"github.com/rmohr/hittingset/pkg/problem"
	"github.com/rmohr/hittingset/pkg/sat"
	"github.com/rmohr/hittingset/pkg/search"
	"github.com/rmohr/hittingset/pkg/set"
)

func TestBaseCase(t *testing.T) {
	g := NewGomegaWithT(t)

	expected := &api.Result{
		Name:        "",
		HittingSets: [][]string{},
	}
	g.Expect(toResult("", set.NewFamily[string](), nil, nil)).Should(Equal(expected))
}

func TestResultWithStatsAndVerification(t *testing.T) {
	g := NewGomegaWithT(t)
	family := set.NewFamily(set.New("b", "a"), set.New("c", "a"))
	stats := &hittingset.Stats{Nodes: 3, Closed: 2}
	report := &sat.Report[string]{Valid: []*set.Set[string]{set.New("a")}}

	result := toResult("test", set.NewFamily(set.New("c", "b"), set.New("a")), stats, report)
	g.Expect(result.HittingSets).Should(Equal([][]string{{"a"}, {"b", "c"}}))
	g.Expect(result.Stats).Should(Equal(&api.Stats{Nodes: 3, Closed: 2}))
	g.Expect(result.Verification).Should(Equal(&api.Verification{Ok: true}))
	g.Expect(toConflicts(family)).Should(Equal([][]string{{"b", "a"}, {"c", "a"}}))
}

func TestParseElements(t *testing.T) {
	g := NewGomegaWithT(t)

	g.Expect(parseElements("")).Should(BeEmpty())
	g.Expect(parseElements("a")).Should(Equal([]string{"a"}))
	g.Expect(parseElements(" b, a ,,c")).Should(Equal([]string{"b", "a", "c"}))
}

func TestPathThroughTree(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "problem.yaml")
	g.Expect(problem.NewProblemInit("greiner", file).Init()).To(Succeed())

	solver, err := solve(file)
	g.Expect(err).ToNot(HaveOccurred())
	tree := solver.Tree()

	root, err := findNode(tree, "")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(root).Should(Equal(tree.Root))
	leaf, err := findNode(tree, "b,a")
	g.Expect(err).ToNot(HaveOccurred())

	path, err := search.ShortestPath(tree.Graph, root, leaf)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(path).Should(HaveLen(3))
	g.Expect(path[0]).Should(Equal(root))
	g.Expect(path[2]).Should(Equal(leaf))

	_, err = findNode(tree, "x")
	g.Expect(err).Should(MatchError(ContainSubstring("no node with path set {x}")))
}

func TestSolveMissingProblem(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := solve(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(os.IsNotExist(err)).Should(BeTrue())
}
