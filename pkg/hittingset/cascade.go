package hittingset

import (
	"github.com/rmohr/hittingset/pkg/graph"
)

// cascade collects the arcs cut off by a prune together with every node which lost its
// last incoming arc on the way, recursively.
type cascade[T comparable] struct {
	tree      *Tree[T]
	arcs      []graph.Arc
	arcSet    map[graph.Arc]struct{}
	vertices  []graph.Vertex
	vertexSet map[graph.Vertex]struct{}
}

func newCascade[T comparable](tree *Tree[T]) *cascade[T] {
	return &cascade[T]{
		tree:      tree,
		arcSet:    map[graph.Arc]struct{}{},
		vertexSet: map[graph.Vertex]struct{}{},
	}
}

// run detaches the given arcs from their targets. Targets left without incoming arcs are
// collected and their outgoing arcs are processed the same way. Nothing is removed from
// the tree yet.
func (c *cascade[T]) run(arcs []graph.Arc) error {
	for _, a := range arcs {
		if _, seen := c.arcSet[a]; !seen {
			c.arcSet[a] = struct{}{}
			c.arcs = append(c.arcs, a)
		}
		target, err := c.tree.Target(a)
		if err != nil {
			return err
		}
		if target.IsNone() {
			continue
		}
		if err := c.tree.SetTarget(a, graph.NoVertex); err != nil {
			return err
		}
		in, err := c.tree.InArcs(target)
		if err != nil {
			return err
		}
		if len(in) > 0 {
			continue
		}
		if _, seen := c.vertexSet[target]; seen {
			continue
		}
		c.vertexSet[target] = struct{}{}
		c.vertices = append(c.vertices, target)
		out, err := c.tree.OutArcs(target)
		if err != nil {
			return err
		}
		if err := c.run(out); err != nil {
			return err
		}
	}
	return nil
}
