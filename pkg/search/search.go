package search

import (
	"github.com/rmohr/hittingset/pkg/graph"
	"golang.org/x/exp/slices"
)

type state int

const (
	unvisited state = iota
	visited
	expanded
)

// ShortestPath returns the vertices of a shortest unweighted path from source to target,
// both included. The result is empty if target can't be reached and holds only source if
// both are the same vertex.
func ShortestPath[V any, L any](g *graph.Graph[V, L], source, target graph.Vertex) ([]graph.Vertex, error) {
	for _, v := range []graph.Vertex{source, target} {
		if _, err := g.Value(v); err != nil {
			return nil, err
		}
	}
	if source == target {
		return []graph.Vertex{source}, nil
	}

	states := map[graph.Vertex]state{source: visited}
	parents := map[graph.Vertex]graph.Vertex{}
	queue := []graph.Vertex{source}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		out, err := g.OutArcs(next)
		if err != nil {
			return nil, err
		}
		for _, a := range out {
			child, err := g.Target(a)
			if err != nil {
				return nil, err
			}
			if child.IsNone() || states[child] != unvisited {
				continue
			}
			states[child] = visited
			parents[child] = next
			if child == target {
				return backtrack(parents, source, target), nil
			}
			queue = append(queue, child)
		}
		states[next] = expanded
	}
	return []graph.Vertex{}, nil
}

func backtrack(parents map[graph.Vertex]graph.Vertex, source, target graph.Vertex) []graph.Vertex {
	path := []graph.Vertex{target}
	for current := target; current != source; {
		current = parents[current]
		path = append(path, current)
	}
	slices.Reverse(path)
	return path
}
