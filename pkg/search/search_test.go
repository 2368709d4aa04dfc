package search

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/hittingset/pkg/graph"
)

func diamond() (*graph.Graph[string, string], map[string]graph.Vertex) {
	g := graph.New[string, string]()
	v := map[string]graph.Vertex{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		v[name] = g.AddVertex(name)
	}
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"d", "e"}, {"a", "e"}, {"e", "a"}} {
		if _, err := g.Connect(v[e[0]], v[e[1]], e[0]+e[1]); err != nil {
			panic(err)
		}
	}
	return g, v
}

func TestShortestPath(t *testing.T) {
	gr, v := diamond()
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{name: "should find direct neighbour", from: "a", to: "b", want: []string{"a", "b"}},
		{name: "should prefer the shorter route", from: "a", to: "e", want: []string{"a", "e"}},
		{name: "should find the first shortest route", from: "a", to: "d", want: []string{"a", "b", "d"}},
		{name: "should follow cycles", from: "d", to: "c", want: []string{"d", "e", "a", "c"}},
		{name: "should return the source for itself", from: "c", to: "c", want: []string{"c"}},
		{name: "should return nothing for unreachable vertices", from: "a", to: "f", want: []string{}},
		{name: "should respect arc direction", from: "d", to: "b", want: []string{"d", "e", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			path, err := ShortestPath(gr, v[tt.from], v[tt.to])
			g.Expect(err).ToNot(HaveOccurred())
			names := []string{}
			for _, p := range path {
				name, err := gr.Value(p)
				g.Expect(err).ToNot(HaveOccurred())
				names = append(names, name)
			}
			g.Expect(names).To(Equal(tt.want))
		})
	}
}

func TestShortestPathRejectsForeignVertices(t *testing.T) {
	g := NewGomegaWithT(t)
	gr, v := diamond()
	other := graph.New[string, string]()
	foreign := other.AddVertex("x")

	_, err := ShortestPath(gr, v["a"], foreign)
	g.Expect(err).To(MatchError(graph.ErrInvalidReference))
}

func TestShortestPathRejectsRemovedVertices(t *testing.T) {
	g := NewGomegaWithT(t)
	gr, v := diamond()
	g.Expect(gr.RemoveVertices(v["e"])).To(Succeed())

	_, err := ShortestPath(gr, v["e"], v["a"])
	g.Expect(err).To(MatchError(graph.ErrRemoved))

	path, err := ShortestPath(gr, v["d"], v["a"])
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(path).To(BeEmpty())
}

func TestShortestPathAlongChain(t *testing.T) {
	g := NewGomegaWithT(t)
	gr := graph.New[int, int]()
	var chain []graph.Vertex
	for i := 0; i < 6; i++ {
		chain = append(chain, gr.AddVertex(i))
		if i > 0 {
			_, err := gr.Connect(chain[i-1], chain[i], i)
			g.Expect(err).ToNot(HaveOccurred())
		}
	}

	path, err := ShortestPath(gr, chain[0], chain[5])
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(path).To(Equal(chain))

	path, err = ShortestPath(gr, chain[1], chain[4])
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(path).To(Equal(chain[1:5]))
}
