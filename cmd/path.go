package main

import (
	"fmt"

	"github.com/rmohr/hittingset/pkg/graph"
	"github.com/rmohr/hittingset/pkg/hittingset"
	"github.com/rmohr/hittingset/pkg/search"
	"github.com/rmohr/hittingset/pkg/set"
	"github.com/spf13/cobra"
)

type pathOpts struct {
	in   string
	from string
	to   string
}

var pathopts = pathOpts{}

func NewPathCmd() *cobra.Command {

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "print the shortest path between two nodes of the HS-tree",
		Long: `builds the HS-tree of the problem and prints the shortest path between the nodes labelled with the
given path sets. Path sets are comma separated lists of elements, the empty list selects the root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := solve(pathopts.in)
			if err != nil {
				return err
			}
			tree := solver.Tree()
			from, err := findNode(tree, pathopts.from)
			if err != nil {
				return err
			}
			to, err := findNode(tree, pathopts.to)
			if err != nil {
				return err
			}
			path, err := search.ShortestPath(tree.Graph, from, to)
			if err != nil {
				return err
			}
			if len(path) == 0 {
				return fmt.Errorf("node {%s} is not reachable from node {%s}", pathopts.to, pathopts.from)
			}
			for _, v := range path {
				node, err := tree.Value(v)
				if err != nil {
					return err
				}
				fmt.Printf("%v: %v\n", v, node)
			}
			return nil
		},
	}

	pathCmd.Flags().StringVarP(&pathopts.in, "input", "i", "problem.yaml", "problem file with the conflict sets")
	pathCmd.Flags().StringVar(&pathopts.from, "from", "", "path set of the first node")
	pathCmd.Flags().StringVar(&pathopts.to, "to", "", "path set of the last node")
	return pathCmd
}

func findNode(tree *hittingset.Tree[string], list string) (graph.Vertex, error) {
	v, found := tree.Find(set.New(parseElements(list)...))
	if !found {
		return graph.NoVertex, fmt.Errorf("the HS-tree has no node with path set {%s}", list)
	}
	return v, nil
}
