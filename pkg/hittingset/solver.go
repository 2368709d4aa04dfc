package hittingset

import (
	"github.com/rmohr/hittingset/pkg/graph"
	"github.com/rmohr/hittingset/pkg/set"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Stats counts the decisions taken while growing the tree.
type Stats struct {
	Nodes          int `json:"nodes"`
	ReusedByPath   int `json:"reusedByPath"`
	ReusedAsClosed int `json:"reusedAsClosed"`
	ReusedByLabel  int `json:"reusedByLabel"`
	Closed         int `json:"closed"`
	Prunes         int `json:"prunes"`
	RemovedNodes   int `json:"removedNodes"`
	RemovedArcs    int `json:"removedArcs"`
}

// Solver computes the minimal hitting sets of a family of conflict sets with Reiter's HS-tree.
// A Solver is not safe for concurrent use.
type Solver[T comparable] struct {
	family *set.Family[T]
	tree   *Tree[T]
	queue  *workQueue
	Stats  Stats
}

func NewSolver[T comparable]() *Solver[T] {
	return &Solver[T]{}
}

// Solve is a shortcut for NewSolver[T]().Solve(family).
func Solve[T comparable](family *set.Family[T]) (*set.Family[T], error) {
	return NewSolver[T]().Solve(family)
}

// Tree returns the tree built by the last call to Solve.
func (s *Solver[T]) Tree() *Tree[T] {
	return s.tree
}

// Solve returns all minimal hitting sets of family. The family is not modified.
// An error means that the tree got into an inconsistent state and is never caused by the input.
func (s *Solver[T]) Solve(family *set.Family[T]) (*set.Family[T], error) {
	if family == nil {
		family = set.NewFamily[T]()
	}
	s.family = family
	s.tree = newTree[T]()
	s.queue = &workQueue{}
	s.Stats = Stats{}

	s.tree.Root = s.addNode(family.FindEmptyIntersection(set.New[T]()), set.New[T](), Open)
	s.queue.push(s.tree.Root)

	for {
		n, ok := s.queue.pop(s.tree.Contains)
		if !ok {
			break
		}
		if err := s.expand(n); err != nil {
			return nil, err
		}
	}

	result, err := s.collect()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("HS-tree finished with %d nodes and %d minimal hitting sets: %+v", s.tree.NumVertices(), result.Size(), s.Stats)
	return result, nil
}

// expand creates one arc per element of the conflict set of n and finds a target for each of them.
func (s *Solver[T]) expand(n graph.Vertex) error {
	node, err := s.tree.Value(n)
	if err != nil {
		return err
	}

	var pending []graph.Arc
	for _, e := range node.Conflict.Items() {
		a, err := s.tree.Connect(n, graph.NoVertex, e)
		if err != nil {
			return err
		}
		pending = append(pending, a)
	}

	for len(pending) > 0 {
		a := pending[0]
		pending = pending[1:]

		e, err := s.tree.Label(a)
		if err != nil {
			return err
		}
		h := node.Path.Clone()
		h.Add(e)

		reused, err := s.reuse(a, h)
		if err != nil {
			return err
		}
		if reused {
			continue
		}

		removedArcs, err := s.grow(a, h)
		if err != nil {
			return err
		}
		if len(removedArcs) > 0 {
			pending = slices.DeleteFunc(pending, func(p graph.Arc) bool {
				_, gone := removedArcs[p]
				return gone
			})
		}
	}
	return nil
}

// reuse links a to an existing part of the tree if possible. The first node, in tree order,
// matching any of the three rules wins.
func (s *Solver[T]) reuse(a graph.Arc, h *set.Set[T]) (bool, error) {
	for _, v := range s.tree.Vertices() {
		node, err := s.tree.Value(v)
		if err != nil {
			return false, err
		}
		switch {
		case node.Path.Equals(h):
			logrus.Debugf("Reusing node %v for %v", v, h)
			s.Stats.ReusedByPath++
			return true, s.tree.SetTarget(a, v)
		case node.State == Closed && h.ContainsAll(node.Path):
			logrus.Debugf("Closing %v, it contains the hitting set %v", h, node.Path)
			s.Stats.ReusedAsClosed++
			return true, s.tree.SetTarget(a, graph.NoVertex)
		case node.State == Open && node.Conflict.IsEmptyIntersection(h):
			logrus.Debugf("Reusing conflict set %v of node %v for %v", node.Conflict, v, h)
			s.Stats.ReusedByLabel++
			m := s.addNode(node.Conflict.Clone(), h, Open)
			s.queue.push(m)
			return true, s.tree.SetTarget(a, m)
		}
	}
	return false, nil
}

// grow handles an arc which could not be linked to existing nodes. It either closes a new
// node, prunes the tree with the conflict set found for h, or enqueues a new open node.
// The arcs removed by a prune are returned.
func (s *Solver[T]) grow(a graph.Arc, h *set.Set[T]) (map[graph.Arc]struct{}, error) {
	conflict := s.family.FindEmptyIntersection(h)
	if conflict.IsEmpty() {
		s.Stats.Closed++
		m := s.addNode(nil, h, Closed)
		return nil, s.tree.SetTarget(a, m)
	}

	target, found, err := s.pruneTarget(conflict)
	if err != nil {
		return nil, err
	}
	if found {
		// the candidate node for h is dropped, its arc stays without target
		return s.prune(target, conflict)
	}

	m := s.addNode(conflict, h, Open)
	s.queue.push(m)
	return nil, s.tree.SetTarget(a, m)
}

// pruneTarget finds the first open node whose conflict set is a proper superset of conflict.
func (s *Solver[T]) pruneTarget(conflict *set.Set[T]) (graph.Vertex, bool, error) {
	for _, v := range s.tree.Vertices() {
		node, err := s.tree.Value(v)
		if err != nil {
			return graph.NoVertex, false, err
		}
		if node.State == Open && node.Conflict.StrictlyContains(conflict) {
			return v, true, nil
		}
	}
	return graph.NoVertex, false, nil
}

// prune relabels target with conflict and removes every subtree hanging off an arc whose
// element is not part of the new conflict set. Removed nodes leave the queue in the same step.
func (s *Solver[T]) prune(target graph.Vertex, conflict *set.Set[T]) (map[graph.Arc]struct{}, error) {
	node, err := s.tree.Value(target)
	if err != nil {
		return nil, err
	}
	dropped := node.Conflict.Difference(conflict)
	logrus.Debugf("Pruning node %v: %v becomes %v", target, node.Conflict, conflict)
	node.Conflict = conflict.Clone()
	s.Stats.Prunes++

	out, err := s.tree.OutArcs(target)
	if err != nil {
		return nil, err
	}
	var cut []graph.Arc
	for _, a := range out {
		e, err := s.tree.Label(a)
		if err != nil {
			return nil, err
		}
		if dropped.Contains(e) {
			if err := s.tree.SetSource(a, graph.NoVertex); err != nil {
				return nil, err
			}
			cut = append(cut, a)
		}
	}

	c := newCascade(s.tree)
	if err := c.run(cut); err != nil {
		return nil, err
	}
	if err := s.tree.RemoveArcs(c.arcs...); err != nil {
		return nil, err
	}
	if err := s.tree.RemoveVertices(c.vertices...); err != nil {
		return nil, err
	}
	s.queue.evict(c.vertexSet)
	s.Stats.RemovedArcs += len(c.arcs)
	s.Stats.RemovedNodes += len(c.vertices)
	if len(c.vertices) > 0 {
		logrus.Debugf("Pruning removed %d nodes and %d arcs", len(c.vertices), len(c.arcs))
	}
	return c.arcSet, nil
}

// collect returns the path sets of the closed nodes. Every path set is shrunk to a minimal
// hitting set first, so members subsumed by another member can't show up.
func (s *Solver[T]) collect() (*set.Family[T], error) {
	result := set.NewFamily[T]()
	for _, v := range s.tree.Vertices() {
		node, err := s.tree.Value(v)
		if err != nil {
			return nil, err
		}
		if node.State != Closed {
			continue
		}
		minimal := Minimize(s.family, node.Path)
		if !minimal.Equals(node.Path) {
			logrus.Debugf("Closed node %v holds %v which is not minimal, reporting %v", v, node.Path, minimal)
		}
		result.Add(minimal)
	}
	return result, nil
}

func (s *Solver[T]) addNode(conflict, path *set.Set[T], state State) graph.Vertex {
	s.Stats.Nodes++
	return s.tree.AddVertex(&Node[T]{Conflict: conflict, Path: path, State: state})
}

// Minimize removes elements from candidate, in order, as long as the remainder still hits
// every member of family. The result is a new set.
func Minimize[T comparable](family *set.Family[T], candidate *set.Set[T]) *set.Set[T] {
	result := candidate.Clone()
	for _, e := range candidate.Items() {
		result.Remove(e)
		if !family.FindEmptyIntersection(result).IsEmpty() {
			result.Add(e)
		}
	}
	// re-adding moved elements to the end, restore the original order
	return candidate.Intersection(result)
}

// IsHittingSet reports whether candidate shares an element with every member of family.
func IsHittingSet[T comparable](family *set.Family[T], candidate *set.Set[T]) bool {
	for _, member := range family.Sets() {
		if member.IsEmptyIntersection(candidate) {
			return false
		}
	}
	return true
}

// IsMinimalHittingSet reports whether candidate is a hitting set of family and none of its
// proper subsets is.
func IsMinimalHittingSet[T comparable](family *set.Family[T], candidate *set.Set[T]) bool {
	if !IsHittingSet(family, candidate) {
		return false
	}
	for _, e := range candidate.Items() {
		smaller := candidate.Clone()
		smaller.Remove(e)
		if IsHittingSet(family, smaller) {
			return false
		}
	}
	return true
}
