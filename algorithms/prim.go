package algorithms

import (
	"github.com/arfaz/pairheap"
	"github.com/arfaz/pairheap/graph"
)

type primNode[W graph.Weight] struct {
	parent    int
	hasParent bool
	distance  W
	handle    pairheap.Handle[int, W]
}

// MSTPrim grows a minimum spanning tree from source using Prim's
// algorithm with handle-based decrease-priority, ported from
// original_source/src/graph.rs's mst_prim. It returns the tree as its
// own Graph plus the tree's total weight. If the component containing
// source has k reachable nodes, the returned graph records exactly k-1
// undirected tree edges (2(k-1) half-edges via EdgeCount); nodes outside
// that component are absent from it entirely.
//
// Unlike runDijkstra's lazy reinsertion, Prim tracks one live handle per
// unsettled node so DecreasePriority can update that node's key in
// place rather than leaving stale heap entries to filter out on pop.
func MSTPrim[W graph.Weight](g *graph.Graph[W], source int) (*graph.Graph[W], W) {
	n := g.NodeCount()
	tree := graph.WithCapacity[W](n)
	total := graph.ZeroWeight[W]()

	if source < 0 || source >= n {
		return tree, total
	}

	nodes := make([]primNode[W], n)
	h := pairheap.New[int, W](func(a, b W) bool { return a < b })

	for i := range nodes {
		nodes[i].parent = -1
		if i == source {
			nodes[i].distance = graph.ZeroWeight[W]()
		} else {
			nodes[i].distance = graph.MaxWeight[W]()
		}
		nodes[i].handle = h.Insert(i, nodes[i].distance)
	}

	for !h.IsEmpty() {
		u, d, ok := h.DeleteMin()
		if !ok {
			break
		}
		h.Invalidate(nodes[u].handle)

		if nodes[u].hasParent {
			tree.AddEdge(nodes[u].parent, u, d)
			total += d
		} else if u != source {
			// u was never reached from source: it sits in its own
			// component and has no tree edge to relax neighbors through.
			continue
		}

		for _, e := range g.Neighbors(u) {
			v := e.To
			if !nodes[v].handle.Live() {
				continue
			}
			if e.Weight < nodes[v].distance {
				nodes[v].distance = e.Weight
				nodes[v].parent = u
				nodes[v].hasParent = true
				h.DecreasePriority(nodes[v].handle, e.Weight)
			}
		}
	}

	return tree, total
}
