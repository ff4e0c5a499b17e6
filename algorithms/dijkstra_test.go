package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arfaz/pairheap/graph"
)

// wikipediaGraph builds the six-node example used on Wikipedia's
// Dijkstra's-algorithm page, also used in original_source/src/tests.rs.
func wikipediaGraph() *graph.Graph[int] {
	g := graph.New[int]()
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 2, 9)
	g.AddEdge(0, 5, 14)
	g.AddEdge(1, 2, 10)
	g.AddEdge(1, 3, 15)
	g.AddEdge(2, 3, 11)
	g.AddEdge(2, 5, 2)
	g.AddEdge(3, 4, 6)
	g.AddEdge(5, 4, 9)
	return g
}

func TestSSSPDijkstraFindsShortestPath(t *testing.T) {
	g := wikipediaGraph()
	results := SSSPDijkstra(g, 0, []int{4})

	assert.Len(t, results, 1)
	got := results[0]
	assert.True(t, got.Feasible)
	assert.Equal(t, 20, got.Distance)
	assert.Equal(t, []int{0, 2, 5, 4}, got.Path)
}

func TestSSSPDijkstraLazyGetMatchesEager(t *testing.T) {
	g := wikipediaGraph()
	lazy := SSSPDijkstraLazy(g, 0)

	got := lazy.Get(4)
	assert.True(t, got.Feasible)
	assert.Equal(t, 20, got.Distance)
	assert.Equal(t, []int{0, 2, 5, 4}, got.Path)

	assert.Equal(t, 0, lazy.Get(0).Distance)
	assert.Equal(t, []int{0}, lazy.Get(0).Path)
}

func TestSSSPDijkstraLazyGetAllSharesPrefixesAndMatchesGet(t *testing.T) {
	g := wikipediaGraph()
	lazy := SSSPDijkstraLazy(g, 0)

	all := lazy.GetAll()
	assert.Len(t, all, g.NodeCount())

	for id := 0; id < g.NodeCount(); id++ {
		want := lazy.Get(id)
		got := all[id]
		assert.Equal(t, want.Feasible, got.Feasible, "node %d", id)
		if want.Feasible {
			assert.Equal(t, want.Distance, got.Distance, "node %d", id)
			assert.Equal(t, want.Path, got.Path, "node %d", id)
		}
	}
}

func TestSSSPDijkstraInfeasibleWhenDisconnected(t *testing.T) {
	g := wikipediaGraph()
	g.AddEdge(6, 7, 1)
	g.AddEdge(7, 8, 1)

	results := SSSPDijkstra(g, 0, []int{6, 7, 8})
	for _, r := range results {
		assert.False(t, r.Feasible)
		assert.Empty(t, r.Path)
	}
}

func TestSSSPDijkstraSourceToItself(t *testing.T) {
	g := wikipediaGraph()
	results := SSSPDijkstra(g, 0, []int{0})
	assert.True(t, results[0].Feasible)
	assert.Equal(t, 0, results[0].Distance)
	assert.Equal(t, []int{0}, results[0].Path)
}
