// Package graph implements an undirected weighted adjacency container
// keyed by dense non-negative integer node ids. It knows nothing about
// the pairheap package; algorithms built on top of both live in
// github.com/arfaz/pairheap/algorithms.
package graph

// HalfEdge is one directed arc of an undirected edge: the neighbor id
// and the weight of the edge reaching it.
type HalfEdge[W Weight] struct {
	To     int
	Weight W
}

// Graph is an undirected, weighted graph over dense node ids. Adding
// edge (u, v, w) appends (v, w) to u's adjacency list and (u, w) to v's,
// two independent half-edges. Self-loops are rejected; parallel edges
// are allowed and traversed independently.
type Graph[W Weight] struct {
	adj     map[int][]HalfEdge[W]
	edgeCnt int
}

// New creates an empty graph.
func New[W Weight]() *Graph[W] {
	return &Graph[W]{adj: make(map[int][]HalfEdge[W])}
}

// WithCapacity creates an empty graph, sizing the backing adjacency map
// for n distinct node ids up front.
func WithCapacity[W Weight](n int) *Graph[W] {
	return &Graph[W]{adj: make(map[int][]HalfEdge[W], n)}
}

// NodeCount returns the number of distinct node ids with at least one
// incident edge.
func (g *Graph[W]) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of half-edges recorded so far. A rejected
// self-loop does not increment this counter, unlike the original Rust
// source this module is grounded on, which bumps its edge counter
// unconditionally even when the self-loop guard skips both insertions.
func (g *Graph[W]) EdgeCount() int { return g.edgeCnt }

// AddEdge inserts (v, w) into u's adjacency list and (u, w) into v's.
// Self-loops (u == v) are silently rejected; duplicate edges between the
// same pair of nodes are permitted and coexist.
func (g *Graph[W]) AddEdge(u, v int, w W) {
	if u == v {
		return
	}
	g.adj[u] = append(g.adj[u], HalfEdge[W]{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], HalfEdge[W]{To: u, Weight: w})
	g.edgeCnt += 2
}

// Neighbors returns u's half-edges in the order they were added. Callers
// must not rely on this order for algorithmic correctness, only for
// determinism of iteration.
func (g *Graph[W]) Neighbors(u int) []HalfEdge[W] {
	return g.adj[u]
}
