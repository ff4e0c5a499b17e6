package pairheap

// Option configures a Heap at construction time.
type Option func(*config)

type config struct {
	usePool bool
}

// WithPool switches node allocation to a sync.Pool-backed allocator
// instead of allocating a fresh node on every Insert. Worthwhile when a
// heap churns through many Insert/DeleteMin cycles, as Dijkstra's lazy
// re-insertion does.
func WithPool() Option {
	return func(c *config) { c.usePool = true }
}
