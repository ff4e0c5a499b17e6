package pairheap

import "sync"

// pool supplies *node[K,P] values for Insert and reclaims them after
// DeleteMin. Every value Get returns has already been passed through the
// pool's reset function, so Insert never needs a separate clear step
// before writing a node's key and priority.
type pool[T any] interface {
	Get() T
	Put(n T)
}

// defaultPool invokes the constructor for every Get and drops whatever is
// Put back. This is the default pool heap nodes use.
type defaultPool[T any] struct {
	constructor func() T
	reset       func(T)
}

func (p *defaultPool[T]) Get() T {
	n := p.constructor()
	p.reset(n)
	return n
}

func (p *defaultPool[T]) Put(T) {}

// syncPool recycles nodes through a sync.Pool, trading a small amount of
// bookkeeping for fewer allocations under heavy Insert/DeleteMin churn.
// reset runs on every Get, not every Put, so a node coming straight from
// the pool's New path is reset exactly the same way as one returning
// from a prior DeleteMin.
type syncPool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

func (p *syncPool[T]) Get() T {
	n := p.pool.Get().(T)
	p.reset(n)
	return n
}

func (p *syncPool[T]) Put(n T) { p.pool.Put(n) }

func newDefaultPool[T any](constructor func() T, reset func(T)) pool[T] {
	return &defaultPool[T]{constructor: constructor, reset: reset}
}

func newSyncPool[T any](constructor func() T, reset func(T)) pool[T] {
	return &syncPool[T]{
		pool:  sync.Pool{New: func() any { return constructor() }},
		reset: reset,
	}
}

func newPool[T any](usePool bool, constructor func() T, reset func(T)) pool[T] {
	if usePool {
		return newSyncPool(constructor, reset)
	}
	return newDefaultPool(constructor, reset)
}
