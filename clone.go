package pairheap

import "github.com/mohae/deepcopy"

// cloneFrame pairs a source subtree with the already-cloned parent it
// must be attached under once the worklist processes it.
type cloneFrame[K, P any] struct {
	src    *node[K, P]
	parent *node[K, P]
}

// cloneSubtree deep-copies the sibling chain rooted at src and re-parents
// the copies under parent (nil for the heap root). Walked iteratively
// with an explicit work stack so a pairing heap's worst-case linear
// spine can't blow the call stack, mirroring the drop-discipline the
// original Rust source's Drop impl uses for node deallocation.
func cloneSubtree[K, P any](src, parent *node[K, P]) *node[K, P] {
	if src == nil {
		return nil
	}

	first := cloneChain[K, P](src, parent, nil)
	return first
}

// cloneChain clones the sibling chain starting at src, parents each copy
// under parent, and, if work is non-nil, pushes grandchild subtrees
// onto it instead of recursing. When work is nil (only the top-level
// call from cloneSubtree passes nil) it drives its own local stack so a
// single call finishes the whole subtree.
func cloneChain[K, P any](src, parent *node[K, P], work *[]cloneFrame[K, P]) *node[K, P] {
	ownStack := work == nil
	var stack []cloneFrame[K, P]
	if ownStack {
		work = &stack
	}

	first := cloneSiblings(src, parent, work)

	if ownStack {
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			f.parent.firstChild = cloneSiblings(f.src, f.parent, &stack)
		}
	}

	return first
}

// cloneSiblings clones one sibling list (no descent into children beyond
// queuing them onto work) and returns the head of the cloned list.
func cloneSiblings[K, P any](src, parent *node[K, P], work *[]cloneFrame[K, P]) *node[K, P] {
	var first, prev *node[K, P]
	for s := src; s != nil; s = s.nextSibling {
		c := &node[K, P]{
			key:      deepcopy.Copy(s.key).(K),
			priority: deepcopy.Copy(s.priority).(P),
			parent:   parent,
		}
		if prev != nil {
			prev.nextSibling = c
			c.prevSibling = prev
		} else {
			first = c
		}
		prev = c
		if s.firstChild != nil {
			*work = append(*work, cloneFrame[K, P]{src: s.firstChild, parent: c})
		}
	}
	return first
}
