package hittingset

import (
	"fmt"

	"github.com/rmohr/hittingset/pkg/graph"
	"github.com/rmohr/hittingset/pkg/set"
)

type State int

const (
	// Open nodes carry a conflict set and get expanded.
	Open State = iota
	// Closed nodes have a path set hitting every conflict set.
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Node is the payload of a tree vertex.
type Node[T comparable] struct {
	// Conflict is the conflict set labelling the node, nil for closed nodes.
	Conflict *set.Set[T]
	// Path holds the arc labels on the way from the root.
	Path  *set.Set[T]
	State State
}

func (n *Node[T]) String() string {
	if n.State == Closed {
		return fmt.Sprintf("%v (closed)", n.Path)
	}
	return fmt.Sprintf("%v -> %v", n.Path, n.Conflict)
}

// Tree is the HS-tree. Thanks to node reuse it is in general a DAG. Arcs are labelled with
// the element they add to the path set.
type Tree[T comparable] struct {
	*graph.Graph[*Node[T], T]
	Root graph.Vertex
}

func newTree[T comparable]() *Tree[T] {
	return &Tree[T]{Graph: graph.New[*Node[T], T]()}
}

// Find returns the first live node whose path set equals path.
func (t *Tree[T]) Find(path *set.Set[T]) (graph.Vertex, bool) {
	for _, v := range t.Vertices() {
		node, err := t.Value(v)
		if err == nil && node.Path.Equals(path) {
			return v, true
		}
	}
	return graph.NoVertex, false
}

// ClosedPaths returns the path sets of all closed nodes in tree order, as they are.
func (t *Tree[T]) ClosedPaths() []*set.Set[T] {
	var paths []*set.Set[T]
	for _, v := range t.Vertices() {
		node, err := t.Value(v)
		if err == nil && node.State == Closed {
			paths = append(paths, node.Path.Clone())
		}
	}
	return paths
}
