// Package algorithms implements Dijkstra's single-source shortest paths
// and Prim's minimum spanning tree on top of github.com/arfaz/pairheap
// and github.com/arfaz/pairheap/graph. Neither graph nor pairheap knows
// about this package; it is the only one that imports both.
package algorithms

import "github.com/arfaz/pairheap/graph"

// ShortestPath is the result of a shortest-path query from Source to
// Dest. Distance and Path are meaningful only when Feasible is true;
// callers must check Feasible before trusting either.
type ShortestPath[W graph.Weight] struct {
	Source   int
	Dest     int
	Feasible bool
	Distance W
	Path     []int
}

// dijNode is the per-node working state kept while running Dijkstra.
type dijNode[W graph.Weight] struct {
	pred     int
	distance W
	hops     int
	visited  bool
	feasible bool
}
