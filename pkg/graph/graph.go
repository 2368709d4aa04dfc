/*
Package graph provides the directed graph the hitting set solver grows its search tree in.

Vertices and arcs live in an arena owned by the graph and are addressed by handles. A handle
remembers the graph which created it, so mixing elements of different graphs is rejected with
ErrInvalidReference instead of silently corrupting the adjacency lists.
*/
package graph

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var graphCounter atomic.Uint64

// Vertex is a handle of a vertex. The zero value is NoVertex.
type Vertex struct {
	graph uint64
	id    int
}

// NoVertex is used as arc endpoint to express that the arc is not connected.
var NoVertex = Vertex{}

func (v Vertex) IsNone() bool {
	return v.graph == 0
}

// ID is the sequential id of the vertex within its graph. Ids are never reused.
func (v Vertex) ID() int {
	return v.id
}

func (v Vertex) String() string {
	if v.IsNone() {
		return "v<none>"
	}
	return fmt.Sprintf("v%d", v.id)
}

// Arc is a handle of an arc.
type Arc struct {
	graph uint64
	id    int
}

func (a Arc) ID() int {
	return a.id
}

func (a Arc) String() string {
	return fmt.Sprintf("a%d", a.id)
}

type vertexEntry[V any] struct {
	value   V
	in      []Arc
	out     []Arc
	removed bool
}

type arcEntry[L any] struct {
	label   L
	source  Vertex
	target  Vertex
	removed bool
}

// Graph is a directed graph with a value of type V on every vertex and a label of type L
// on every arc. It is not safe for concurrent mutation.
type Graph[V any, L any] struct {
	id       uint64
	vertices []*vertexEntry[V]
	arcs     []*arcEntry[L]
	// live elements in insertion order
	liveVertices []Vertex
	liveArcs     []Arc
}

func New[V any, L any]() *Graph[V, L] {
	return &Graph[V, L]{
		id: graphCounter.Add(1),
	}
}

func (g *Graph[V, L]) AddVertex(value V) Vertex {
	v := Vertex{graph: g.id, id: len(g.vertices)}
	g.vertices = append(g.vertices, &vertexEntry[V]{value: value})
	g.liveVertices = append(g.liveVertices, v)
	return v
}

// AddArc creates an arc without endpoints.
func (g *Graph[V, L]) AddArc(label L) Arc {
	a := Arc{graph: g.id, id: len(g.arcs)}
	g.arcs = append(g.arcs, &arcEntry[L]{label: label})
	g.liveArcs = append(g.liveArcs, a)
	return a
}

// Connect creates an arc from source to target. Either endpoint may be NoVertex.
func (g *Graph[V, L]) Connect(source, target Vertex, label L) (Arc, error) {
	for _, v := range []Vertex{source, target} {
		if v.IsNone() {
			continue
		}
		if _, err := g.vertex(v); err != nil {
			return Arc{}, err
		}
	}
	a := g.AddArc(label)
	g.attachSource(a, source)
	g.attachTarget(a, target)
	return a, nil
}

func (g *Graph[V, L]) NumVertices() int {
	return len(g.liveVertices)
}

func (g *Graph[V, L]) NumArcs() int {
	return len(g.liveArcs)
}

// VertexAt returns the i-th live vertex in insertion order.
func (g *Graph[V, L]) VertexAt(i int) (Vertex, error) {
	if i < 0 || i >= len(g.liveVertices) {
		return NoVertex, errors.Wrapf(ErrOutOfRange, "vertex %d of %d", i, len(g.liveVertices))
	}
	return g.liveVertices[i], nil
}

// ArcAt returns the i-th live arc in insertion order.
func (g *Graph[V, L]) ArcAt(i int) (Arc, error) {
	if i < 0 || i >= len(g.liveArcs) {
		return Arc{}, errors.Wrapf(ErrOutOfRange, "arc %d of %d", i, len(g.liveArcs))
	}
	return g.liveArcs[i], nil
}

// Vertices returns all live vertices in insertion order.
func (g *Graph[V, L]) Vertices() []Vertex {
	return slices.Clone(g.liveVertices)
}

// Arcs returns all live arcs in insertion order.
func (g *Graph[V, L]) Arcs() []Arc {
	return slices.Clone(g.liveArcs)
}

// Contains reports whether v is a live vertex of this graph.
func (g *Graph[V, L]) Contains(v Vertex) bool {
	_, err := g.vertex(v)
	return err == nil
}

// ContainsArc reports whether a is a live arc of this graph.
func (g *Graph[V, L]) ContainsArc(a Arc) bool {
	_, err := g.arc(a)
	return err == nil
}

func (g *Graph[V, L]) Value(v Vertex) (V, error) {
	e, err := g.vertex(v)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.value, nil
}

func (g *Graph[V, L]) SetValue(v Vertex, value V) error {
	e, err := g.vertex(v)
	if err != nil {
		return err
	}
	e.value = value
	return nil
}

func (g *Graph[V, L]) Label(a Arc) (L, error) {
	e, err := g.arc(a)
	if err != nil {
		var zero L
		return zero, err
	}
	return e.label, nil
}

func (g *Graph[V, L]) SetLabel(a Arc, label L) error {
	e, err := g.arc(a)
	if err != nil {
		return err
	}
	e.label = label
	return nil
}

func (g *Graph[V, L]) Source(a Arc) (Vertex, error) {
	e, err := g.arc(a)
	if err != nil {
		return NoVertex, err
	}
	return e.source, nil
}

func (g *Graph[V, L]) Target(a Arc) (Vertex, error) {
	e, err := g.arc(a)
	if err != nil {
		return NoVertex, err
	}
	return e.target, nil
}

// SetSource moves the tail of a to source. NoVertex only detaches the arc.
func (g *Graph[V, L]) SetSource(a Arc, source Vertex) error {
	if err := g.checkEndpoint(a, source); err != nil {
		return err
	}
	g.detachSource(a)
	g.attachSource(a, source)
	return nil
}

// SetTarget moves the head of a to target. NoVertex only detaches the arc.
func (g *Graph[V, L]) SetTarget(a Arc, target Vertex) error {
	if err := g.checkEndpoint(a, target); err != nil {
		return err
	}
	g.detachTarget(a)
	g.attachTarget(a, target)
	return nil
}

// InArcs returns a copy of the arcs pointing to v.
func (g *Graph[V, L]) InArcs(v Vertex) ([]Arc, error) {
	e, err := g.vertex(v)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.in), nil
}

// OutArcs returns a copy of the arcs leaving v.
func (g *Graph[V, L]) OutArcs(v Vertex) ([]Arc, error) {
	e, err := g.vertex(v)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.out), nil
}

// IsAdjacent reports whether an arc leads from source to target.
func (g *Graph[V, L]) IsAdjacent(source, target Vertex) (bool, error) {
	e, err := g.vertex(source)
	if err != nil {
		return false, err
	}
	if _, err := g.vertex(target); err != nil {
		return false, err
	}
	for _, a := range e.out {
		if g.arcs[a.id].target == target {
			return true, nil
		}
	}
	return false, nil
}

// RemoveVertices removes all given vertices. Arcs touching them stay in the graph
// but lose the corresponding endpoint. Nothing is removed if any handle is invalid.
func (g *Graph[V, L]) RemoveVertices(vertices ...Vertex) error {
	for _, v := range vertices {
		if _, err := g.vertex(v); err != nil {
			return err
		}
	}
	removed := map[Vertex]struct{}{}
	for _, v := range vertices {
		if _, done := removed[v]; done {
			continue
		}
		removed[v] = struct{}{}
		e := g.vertices[v.id]
		for _, a := range slices.Clone(e.in) {
			g.detachTarget(a)
		}
		for _, a := range slices.Clone(e.out) {
			g.detachSource(a)
		}
		e.removed = true
	}
	g.liveVertices = slices.DeleteFunc(g.liveVertices, func(v Vertex) bool {
		_, gone := removed[v]
		return gone
	})
	return nil
}

// RemoveArcs removes all given arcs and detaches them from their endpoints.
// Nothing is removed if any handle is invalid.
func (g *Graph[V, L]) RemoveArcs(arcs ...Arc) error {
	for _, a := range arcs {
		if _, err := g.arc(a); err != nil {
			return err
		}
	}
	removed := map[Arc]struct{}{}
	for _, a := range arcs {
		if _, done := removed[a]; done {
			continue
		}
		removed[a] = struct{}{}
		g.detachSource(a)
		g.detachTarget(a)
		g.arcs[a.id].removed = true
	}
	g.liveArcs = slices.DeleteFunc(g.liveArcs, func(a Arc) bool {
		_, gone := removed[a]
		return gone
	})
	return nil
}

func (g *Graph[V, L]) vertex(v Vertex) (*vertexEntry[V], error) {
	if v.graph != g.id {
		return nil, errors.Wrapf(ErrInvalidReference, "vertex %v of graph %d used with graph %d", v, v.graph, g.id)
	}
	if v.id < 0 || v.id >= len(g.vertices) {
		return nil, errors.Wrapf(ErrOutOfRange, "vertex %v", v)
	}
	e := g.vertices[v.id]
	if e.removed {
		return nil, errors.Wrapf(ErrRemoved, "vertex %v", v)
	}
	return e, nil
}

func (g *Graph[V, L]) arc(a Arc) (*arcEntry[L], error) {
	if a.graph != g.id {
		return nil, errors.Wrapf(ErrInvalidReference, "arc %v of graph %d used with graph %d", a, a.graph, g.id)
	}
	if a.id < 0 || a.id >= len(g.arcs) {
		return nil, errors.Wrapf(ErrOutOfRange, "arc %v", a)
	}
	e := g.arcs[a.id]
	if e.removed {
		return nil, errors.Wrapf(ErrRemoved, "arc %v", a)
	}
	return e, nil
}

func (g *Graph[V, L]) checkEndpoint(a Arc, v Vertex) error {
	if _, err := g.arc(a); err != nil {
		return err
	}
	if v.IsNone() {
		return nil
	}
	_, err := g.vertex(v)
	return err
}

func (g *Graph[V, L]) attachSource(a Arc, v Vertex) {
	g.arcs[a.id].source = v
	if !v.IsNone() {
		e := g.vertices[v.id]
		e.out = append(e.out, a)
	}
}

func (g *Graph[V, L]) attachTarget(a Arc, v Vertex) {
	g.arcs[a.id].target = v
	if !v.IsNone() {
		e := g.vertices[v.id]
		e.in = append(e.in, a)
	}
}

func (g *Graph[V, L]) detachSource(a Arc) {
	e := g.arcs[a.id]
	if !e.source.IsNone() {
		v := g.vertices[e.source.id]
		v.out = removeArc(v.out, a)
	}
	e.source = NoVertex
}

func (g *Graph[V, L]) detachTarget(a Arc) {
	e := g.arcs[a.id]
	if !e.target.IsNone() {
		v := g.vertices[e.target.id]
		v.in = removeArc(v.in, a)
	}
	e.target = NoVertex
}

func removeArc(arcs []Arc, a Arc) []Arc {
	if i := slices.Index(arcs, a); i >= 0 {
		return slices.Delete(arcs, i, i+1)
	}
	return arcs
}
