package hittingset

import (
	"github.com/rmohr/hittingset/pkg/graph"
	"golang.org/x/exp/slices"
)

// workQueue is the FIFO of open nodes waiting for expansion.
type workQueue struct {
	items []graph.Vertex
}

func (q *workQueue) push(v graph.Vertex) {
	q.items = append(q.items, v)
}

// pop returns the oldest entry which is still live. Entries failing live are dropped.
func (q *workQueue) pop(live func(graph.Vertex) bool) (graph.Vertex, bool) {
	for len(q.items) > 0 {
		next := q.items[0]
		q.items = q.items[1:]
		if live(next) {
			return next, true
		}
	}
	return graph.NoVertex, false
}

// evict drops every queued entry contained in removed.
func (q *workQueue) evict(removed map[graph.Vertex]struct{}) {
	q.items = slices.DeleteFunc(q.items, func(v graph.Vertex) bool {
		_, gone := removed[v]
		return gone
	})
}
