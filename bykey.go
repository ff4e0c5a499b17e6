package pairheap

import "golang.org/x/exp/constraints"

// Number is the numeric constraint accepted by DecreasePrioByKey's delta
// argument, the same Integer|Float pairing the teacher's radix heap
// uses for its unsigned-priority constraint, widened to cover signed and
// floating priorities since delta subtraction has no unsigned-only
// requirement here.
type Number interface {
	constraints.Integer | constraints.Float
}

// DecreasePrioByKey is a convenience for callers that track keys instead
// of handles: it walks the tree (order unspecified, first match under
// equal wins) for a node whose key matches, subtracts delta from that
// node's current priority, and applies DecreasePriority with the result.
// Not asymptotically competitive with handle-based update; prefer the
// Handle returned by Insert whenever one can be retained.
func DecreasePrioByKey[K any, P Number](h *Heap[K, P], key K, delta P, equal func(a, b K) bool) bool {
	n := h.find(h.root, key, equal)
	if n == nil {
		return false
	}
	return h.DecreasePriority(Handle[K, P]{n: n, gen: n.generation}, n.priority-delta)
}
