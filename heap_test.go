package pairheap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func less(a, b int) bool { return a < b }

func TestDrainOrdering(t *testing.T) {
	h := New[int, int](less)
	for _, p := range []int{5, 1, 4, 2, 3} {
		h.Insert(p, p)
	}

	var got []int
	for !h.IsEmpty() {
		_, p, ok := h.DeleteMin()
		assert.True(t, ok)
		got = append(got, p)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	_, _, ok := h.DeleteMin()
	assert.False(t, ok)
}

func TestDecreasePriorityReorder(t *testing.T) {
	h := New[int, int](less)
	handles := make(map[int]Handle[int, int])
	for i := 1; i <= 10; i++ {
		handles[i] = h.Insert(i, i)
	}

	_, _, ok := h.DeleteMin()
	assert.True(t, ok)

	eq := func(a, b int) bool { return a == b }
	assert.True(t, DecreasePrioByKey(h, 8, 4, eq))
	assert.True(t, DecreasePrioByKey(h, 6, 3, eq))
	assert.True(t, DecreasePrioByKey(h, 9, 3, eq))
	assert.True(t, DecreasePrioByKey(h, 10, 2, eq))

	var keys, prios []int
	for !h.IsEmpty() {
		k, p, ok := h.DeleteMin()
		assert.True(t, ok)
		keys = append(keys, k)
		prios = append(prios, p)
	}

	assert.Equal(t, []int{2, 6, 3, 8, 4, 5, 9, 7, 10}, keys)
	assert.Equal(t, []int{2, 3, 3, 4, 4, 5, 6, 7, 8}, prios)
	_ = handles
}

func TestMergeAdditivity(t *testing.T) {
	a := New[int, int](less)
	for i := 1; i <= 10; i++ {
		a.Insert(i, i)
	}
	b := New[int, int](less)
	for i := 11; i <= 20; i++ {
		b.Insert(i, i)
	}

	wantLen := a.Len() + b.Len()
	a.Merge(b)

	assert.Equal(t, 20, a.Len())
	assert.Equal(t, wantLen, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())

	_, minPrio, ok := a.FindMin()
	assert.True(t, ok)
	assert.Equal(t, 1, minPrio)

	var drained []int
	for !a.IsEmpty() {
		_, p, _ := a.DeleteMin()
		drained = append(drained, p)
	}
	assert.True(t, sort.IntsAreSorted(drained))
	assert.Len(t, drained, 20)
}

func TestHandleStability(t *testing.T) {
	h := New[string, int](less)
	ha := h.Insert("a", 5)
	hb := h.Insert("b", 3)
	hc := h.Insert("c", 8)

	assert.True(t, ha.Live())
	assert.True(t, hb.Live())
	assert.True(t, hc.Live())

	k, p, ok := h.DeleteMin()
	assert.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 3, p)

	assert.False(t, hb.Live())
	assert.True(t, ha.Live())
	assert.True(t, hc.Live())

	assert.True(t, h.DecreasePriority(hc, 1))
	_, p2, _ := h.FindMin()
	assert.Equal(t, 1, p2)
	assert.True(t, ha.Live())
}

func TestDecreasePriorityRejectsIncrease(t *testing.T) {
	h := New[string, int](less)
	ha := h.Insert("a", 5)
	h.Insert("b", 1)

	assert.False(t, h.DecreasePriority(ha, 9))
	_, p, _ := h.FindMin()
	assert.Equal(t, 1, p)
}

func TestDecreasePriorityOnDeadHandleNoops(t *testing.T) {
	h := New[int, int](less)
	ha := h.Insert(1, 5)
	h.Invalidate(ha)

	assert.False(t, ha.Live())
	assert.False(t, h.DecreasePriority(ha, 0))
}

func TestFindMinEmptyHeap(t *testing.T) {
	h := New[int, int](less)
	_, _, ok := h.FindMin()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.IsEmpty())
}

func TestCloneIndependence(t *testing.T) {
	h := New[int, int](less)
	h.Insert(5, 5)
	h.Insert(2, 2)
	h.Insert(8, 8)

	clone := h.Clone()
	assert.Equal(t, h.Len(), clone.Len())

	h.Insert(0, 0)
	assert.NotEqual(t, h.Len(), clone.Len())

	_, p, ok := clone.FindMin()
	assert.True(t, ok)
	assert.Equal(t, 2, p)

	var drained []int
	for !clone.IsEmpty() {
		_, p, _ := clone.DeleteMin()
		drained = append(drained, p)
	}
	assert.Equal(t, []int{2, 5, 8}, drained)
}

func TestRandomOpsPreserveHeapOrder(t *testing.T) {
	h := New[int, int](less)
	var handles []Handle[int, int]
	for i := 0; i < 200; i++ {
		handles = append(handles, h.Insert(i, (i*37)%101))
	}

	for i := 0; i < 50; i++ {
		h.DecreasePriority(handles[i], -1-i)
	}

	var prev int
	first := true
	for !h.IsEmpty() {
		_, p, ok := h.DeleteMin()
		assert.True(t, ok)
		if !first {
			assert.LessOrEqual(t, prev, p)
		}
		prev, first = p, false
	}
}

func TestWithPoolOptionReusesNodes(t *testing.T) {
	h := New[int, int](less, WithPool())
	for i := 0; i < 32; i++ {
		h.Insert(i, i)
	}
	for i := 0; i < 16; i++ {
		_, _, ok := h.DeleteMin()
		assert.True(t, ok)
	}
	for i := 100; i < 116; i++ {
		h.Insert(i, i)
	}

	var drained []int
	for !h.IsEmpty() {
		_, p, _ := h.DeleteMin()
		drained = append(drained, p)
	}
	assert.True(t, sort.IntsAreSorted(drained))
	assert.Len(t, drained, 32)
}
