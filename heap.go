// Package pairheap implements an addressable min-pairing heap: a
// heap-ordered multiway tree with amortized O(1) Insert/Merge and
// amortized O(log n) DeleteMin/DecreasePriority. Handles returned by
// Insert stay valid across arbitrary subsequent mutations, except for
// the handle belonging to the node DeleteMin just removed, or a handle
// an explicit Invalidate call retired.
//
// A Heap is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package pairheap

// Heap is a min-pairing heap over keys K ordered by priorities P, using
// the caller-supplied strict-less comparator.
type Heap[K, P any] struct {
	root *node[K, P]
	less func(a, b P) bool
	size int
	pool pool[*node[K, P]]
}

// New creates an empty heap ordered by less (a strict less-than over
// priorities; swap operand order to get a max-heap).
func New[K, P any](less func(a, b P) bool, opts ...Option) *Heap[K, P] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Heap[K, P]{
		less: less,
		pool: newPool(cfg.usePool, func() *node[K, P] { return &node[K, P]{} }, clearLinks[K, P]),
	}
}

// Len returns the number of elements currently in the heap.
func (h *Heap[K, P]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[K, P]) IsEmpty() bool { return h.size == 0 }

// FindMin returns the root's key and priority without removing it. ok is
// false when the heap is empty.
func (h *Heap[K, P]) FindMin() (key K, priority P, ok bool) {
	if h.root == nil {
		return key, priority, false
	}
	return h.root.key, h.root.priority, true
}

// Insert adds key with the given priority and returns a handle that
// stays live until the node is popped or explicitly invalidated.
func (h *Heap[K, P]) Insert(key K, priority P) Handle[K, P] {
	n := h.pool.Get()
	n.key = key
	n.priority = priority
	h.root = h.meld(n, h.root)
	h.size++
	return Handle[K, P]{n: n, gen: n.generation}
}

// Merge folds other into h. other is left empty; its elements and size
// move into h.
func (h *Heap[K, P]) Merge(other *Heap[K, P]) {
	if other == nil || other == h {
		return
	}
	h.root = h.meld(other.root, h.root)
	h.size += other.size
	other.root = nil
	other.size = 0
}

// meld links two heap-ordered trees (either may be nil) and returns the
// new root. On a priority tie, root (the receiver-side tree) wins over
// new, so Insert/Merge are deterministic.
func (h *Heap[K, P]) meld(new, root *node[K, P]) *node[K, P] {
	if root == nil {
		return new
	}
	if new == nil {
		return root
	}

	var winner, loser *node[K, P]
	if h.less(new.priority, root.priority) {
		winner, loser = new, root
	} else {
		winner, loser = root, new
	}

	if winner.firstChild != nil {
		winner.firstChild.prevSibling = loser
	}
	loser.nextSibling = winner.firstChild
	loser.prevSibling = nil
	loser.parent = winner
	winner.firstChild = loser
	return winner
}

// DeleteMin removes and returns the root's key and priority. ok is false
// when the heap is empty. The handle that referenced the removed node
// becomes dead; every other live handle remains live.
func (h *Heap[K, P]) DeleteMin() (key K, priority P, ok bool) {
	if h.root == nil {
		return key, priority, false
	}

	removed := h.root
	h.root = h.pairChildren(removed.firstChild)
	h.size--

	key, priority = removed.key, removed.priority
	removed.generation++
	clearLinks(removed)
	h.pool.Put(removed)
	return key, priority, true
}

// pairChildren runs the two-pass pairing scheme over a sibling list:
// left-to-right, meld adjacent pairs; then fold the resulting sequence
// right-to-left. Implemented iteratively with an explicit slice instead
// of recursion so a node with a long sibling list (worst-case pairing
// heaps admit a linear spine) never risks the call stack.
func (h *Heap[K, P]) pairChildren(first *node[K, P]) *node[K, P] {
	if first == nil {
		return nil
	}

	var melded []*node[K, P]
	cur := first
	for cur != nil {
		a := cur
		b := a.nextSibling
		var next *node[K, P]
		if b != nil {
			next = b.nextSibling
		}

		a.parent, a.nextSibling, a.prevSibling = nil, nil, nil
		if b != nil {
			b.parent, b.nextSibling, b.prevSibling = nil, nil, nil
		}
		melded = append(melded, h.meld(a, b))
		cur = next
	}

	acc := melded[len(melded)-1]
	for i := len(melded) - 2; i >= 0; i-- {
		acc = h.meld(acc, melded[i])
	}
	return acc
}

// DecreasePriority lowers handle's priority to newPriority. If handle is
// dead, or newPriority is not less-or-equal to the node's current
// priority under the heap's comparator, this is a no-op and
// DecreasePriority returns false (the public contract rejects increases
// outright rather than silently honoring them on some code paths only).
func (h *Heap[K, P]) DecreasePriority(handle Handle[K, P], newPriority P) bool {
	if !handle.Live() {
		return false
	}
	n := handle.n
	if h.less(n.priority, newPriority) {
		return false
	}
	n.priority = newPriority

	if n == h.root {
		return true
	}
	if n.parent != nil && !h.less(newPriority, n.parent.priority) {
		// Still heap-ordered relative to its parent: nothing to cut.
		return true
	}

	h.cut(n)
	h.root = h.meld(n, h.root)
	return true
}

// cut splices n out of its parent's child list, leaving n's own links
// (parent/nextSibling/prevSibling) cleared.
func (h *Heap[K, P]) cut(n *node[K, P]) {
	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else if n.parent != nil {
		n.parent.firstChild = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	}
	n.parent, n.nextSibling, n.prevSibling = nil, nil, nil
}

// Invalidate explicitly retires handle: it reports dead afterward and is
// ignored by DecreasePriority. The node itself is untouched and stays in
// the heap; Invalidate only affects this handle's ability to reach it.
func (h *Heap[K, P]) Invalidate(handle Handle[K, P]) {
	if handle.Live() {
		handle.n.generation++
	}
}

// find performs an iterative, stack-based traversal of the tree rooted
// at start looking for a node whose key matches via equal.
func (h *Heap[K, P]) find(start *node[K, P], key K, equal func(a, b K) bool) *node[K, P] {
	if start == nil {
		return nil
	}
	stack := []*node[K, P]{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if equal(n.key, key) {
			return n
		}
		for c := n.firstChild; c != nil; c = c.nextSibling {
			stack = append(stack, c)
		}
	}
	return nil
}

// Clone returns a deep copy of the heap. Keys and priorities are
// deep-copied via deepcopy.Copy, matching the teacher's Clone methods;
// handles issued against the original heap are not valid against the
// clone, since every node in the clone is a fresh allocation with its
// own generation sequence.
func (h *Heap[K, P]) Clone() *Heap[K, P] {
	clone := &Heap[K, P]{
		less: h.less,
		size: h.size,
		pool: newDefaultPool(func() *node[K, P] { return &node[K, P]{} }, clearLinks[K, P]),
	}
	clone.root = cloneSubtree[K, P](h.root, nil)
	return clone
}
