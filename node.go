package pairheap

// node is a single element of the pairing heap's multiway tree. The
// sibling list is doubly linked so DecreasePriority can splice a node out
// of its parent's child list in O(1) without scanning for its predecessor.
type node[K, P any] struct {
	key      K
	priority P

	parent      *node[K, P]
	firstChild  *node[K, P]
	nextSibling *node[K, P]
	prevSibling *node[K, P]

	// generation is bumped whenever the node leaves the heap (DeleteMin)
	// or is explicitly invalidated. A Handle captures the generation it
	// observed at Insert time; a mismatch means the handle is dead.
	generation uint64
}

// clearLinks resets every linking pointer on a node. Used before a node is
// melded into a new position, or before it is returned to the pool.
func clearLinks[K, P any](n *node[K, P]) {
	n.parent = nil
	n.firstChild = nil
	n.nextSibling = nil
	n.prevSibling = nil
}

// Handle is an opaque, copyable reference to a node inserted into a Heap.
// It stays live across arbitrary heap mutations except for the DeleteMin
// that returns its node, or an explicit Invalidate.
type Handle[K, P any] struct {
	n   *node[K, P]
	gen uint64
}

// Live reports whether the handle still refers to a node reachable from
// the heap's root. A handle for a node removed by DeleteMin, or passed to
// Invalidate, reports false.
func (h Handle[K, P]) Live() bool {
	return h.n != nil && h.n.generation == h.gen
}
