package algorithms

import (
	"github.com/arfaz/pairheap"
	"github.com/arfaz/pairheap/graph"
)

// SSSPDijkstra finds shortest paths from source to every id in dest and
// assembles a ShortestPath per destination eagerly. Prefer
// SSSPDijkstraLazy when the caller only needs a handful of destinations
// out of a large graph, or wants to defer path reconstruction.
func SSSPDijkstra[W graph.Weight](g *graph.Graph[W], source int, dest []int) []ShortestPath[W] {
	nodes := runDijkstra(g, source)
	result := make([]ShortestPath[W], 0, len(dest))
	for _, d := range dest {
		result = append(result, traversePath(source, d, nodes))
	}
	return result
}

// LazyResult holds Dijkstra's raw per-node state so callers can
// reconstruct paths on demand instead of paying for every destination
// up front.
type LazyResult[W graph.Weight] struct {
	source int
	nodes  []dijNode[W]
}

// SSSPDijkstraLazy runs Dijkstra once from source and returns the
// intermediate state for later path reconstruction via Get/GetList/GetAll.
func SSSPDijkstraLazy[W graph.Weight](g *graph.Graph[W], source int) *LazyResult[W] {
	return &LazyResult[W]{source: source, nodes: runDijkstra(g, source)}
}

// Get reconstructs the shortest path to id. Feasible is false, Distance
// is unspecified, and Path is empty when id is unreachable from the
// source.
func (r *LazyResult[W]) Get(id int) ShortestPath[W] {
	return traversePath(r.source, id, r.nodes)
}

// GetList reconstructs the shortest path to each id in ids.
func (r *LazyResult[W]) GetList(ids []int) []ShortestPath[W] {
	result := make([]ShortestPath[W], 0, len(ids))
	for _, id := range ids {
		result = append(result, traversePath(r.source, id, r.nodes))
	}
	return result
}

// GetAll reconstructs the shortest path to every node id
// 0..NodeCount-1 (unreachable ids come back with Feasible false),
// sharing path prefixes between destinations to avoid quadratic
// reconstruction: ids are resolved in ascending order, so whenever a
// destination's immediate predecessor has a strictly smaller id it has
// already been resolved this call, and its finished Path slice is
// reused as a prefix instead of walking raw predecessors back to the
// source again.
func (r *LazyResult[W]) GetAll() []ShortestPath[W] {
	n := len(r.nodes)
	result := make([]ShortestPath[W], n)

	for id := 0; id < n; id++ {
		end := &r.nodes[id]
		switch {
		case !end.feasible:
			result[id] = infeasiblePath[W](r.source, id)
		case id == r.source:
			result[id] = ShortestPath[W]{
				Source: r.source, Dest: id, Feasible: true,
				Distance: end.distance, Path: []int{id},
			}
		case end.pred < id && result[end.pred].Feasible:
			prefix := result[end.pred].Path
			path := make([]int, len(prefix)+1)
			copy(path, prefix)
			path[len(prefix)] = id
			result[id] = ShortestPath[W]{
				Source: r.source, Dest: id, Feasible: true,
				Distance: end.distance, Path: path,
			}
		default:
			result[id] = traversePath(r.source, id, r.nodes)
		}
	}

	return result
}

// runDijkstra runs the lazy-reinsertion variant of Dijkstra from source
// over g and returns the finalized per-node state, indexed by node id
// 0..NodeCount-1, ported from original_source/src/graph.rs's dijkstra.
// Duplicate heap entries for an already-visited node are discarded when
// popped rather than avoided on insertion, tolerating staleness instead
// of tracking a handle per node (Prim, by contrast, needs handles; see
// prim.go).
func runDijkstra[W graph.Weight](g *graph.Graph[W], source int) []dijNode[W] {
	n := g.NodeCount()
	nodes := make([]dijNode[W], n)
	for i := range nodes {
		nodes[i].distance = graph.MaxWeight[W]()
	}
	if source < 0 || source >= n {
		return nodes
	}
	nodes[source].distance = graph.ZeroWeight[W]()
	nodes[source].feasible = true

	type entry struct {
		id   int
		dist W
	}
	h := pairheap.New[entry, W](func(a, b W) bool { return a < b })
	h.Insert(entry{id: source, dist: graph.ZeroWeight[W]()}, graph.ZeroWeight[W]())

	for !h.IsEmpty() {
		top, d, _ := h.DeleteMin()
		u := top.id
		if nodes[u].visited {
			continue
		}
		nodes[u].visited = true

		hops := nodes[u].hops
		for _, e := range g.Neighbors(u) {
			v := e.To
			if nodes[v].visited {
				continue
			}
			alt := d + e.Weight
			if !nodes[v].feasible || alt < nodes[v].distance {
				nodes[v].distance = alt
				nodes[v].pred = u
				nodes[v].hops = hops + 1
				nodes[v].feasible = true
				h.Insert(entry{id: v, dist: alt}, alt)
			}
		}
	}

	return nodes
}

func traversePath[W graph.Weight](source, dest int, nodes []dijNode[W]) ShortestPath[W] {
	if dest < 0 || dest >= len(nodes) || !nodes[dest].feasible {
		return infeasiblePath[W](source, dest)
	}

	end := &nodes[dest]
	expected := end.hops + 1
	path := make([]int, 0, expected)
	path = append(path, dest)
	next := end.pred

	for len(path) < expected {
		path = append([]int{next}, path...)
		next = nodes[next].pred
	}

	return ShortestPath[W]{
		Source: source, Dest: dest, Feasible: true,
		Distance: end.distance, Path: path,
	}
}

func infeasiblePath[W graph.Weight](source, dest int) ShortestPath[W] {
	return ShortestPath[W]{Source: source, Dest: dest, Feasible: false}
}
