package graph

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := New[int]()
	g.AddEdge(1, 1, 5)

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Neighbors(1))
}

func TestAddEdgeCountsHalfEdges(t *testing.T) {
	g := New[int]()
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 2, 9)

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
	assert.Len(t, g.Neighbors(0), 2)
	assert.Len(t, g.Neighbors(1), 1)
}

func TestAddEdgeAllowsParallelEdges(t *testing.T) {
	g := New[int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 2)

	assert.Len(t, g.Neighbors(0), 2)
	assert.Equal(t, 1, g.Neighbors(0)[0].Weight)
	assert.Equal(t, 2, g.Neighbors(0)[1].Weight)
}

func TestNeighborsOrderIsInsertionOrder(t *testing.T) {
	g := New[int]()
	g.AddEdge(0, 3, 1)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 3)

	want := []int{3, 1, 2}
	got := make([]int, 0, 3)
	for _, e := range g.Neighbors(0) {
		got = append(got, e.To)
	}
	assert.Equal(t, want, got)
}

func TestWriteEdgeListEmitsEveryHalfEdgeOnce(t *testing.T) {
	g := New[int]()
	g.AddEdge(0, 1, 7)
	g.AddEdge(1, 2, 3)

	var buf bytes.Buffer
	assert.NoError(t, g.WriteEdgeList(&buf))

	scanner := bufio.NewScanner(&buf)
	var lines int
	for scanner.Scan() {
		line := scanner.Text()
		assert.True(t, strings.Contains(line, "{'weight':"))
		lines++
	}
	assert.Equal(t, g.EdgeCount(), lines)
}

func TestWithCapacity(t *testing.T) {
	g := WithCapacity[float64](10)
	assert.Equal(t, 0, g.NodeCount())
	g.AddEdge(0, 1, 1.5)
	assert.Equal(t, 1.5, g.Neighbors(1)[0].Weight)
}
