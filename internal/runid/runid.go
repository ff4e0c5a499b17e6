// Package runid tags benchmark runs so output from concurrent or
// repeated invocations of cmd/pheapbench can be told apart in logs, even
// when several pheapbench processes on different machines write to the
// same aggregated log stream.
package runid

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface that details a structure
// that can generate unique IDs.
type Generator interface{ Next() string }

// SequentialGenerator tags runs with a fixed prefix and a zero-padded,
// monotonically increasing counter (e.g. "bench-0007"), so a human
// scanning interleaved log lines from a single pheapbench process can
// tell run order at a glance without decoding a UUID. The counter is
// updated atomically so a Generator can be shared across goroutines
// benchmarking several algorithms concurrently.
type SequentialGenerator struct {
	Prefix string
	Width  int
	next   atomic.Int64
}

// Next returns the next sequential run tag as Prefix + zero-padded
// counter, starting at 0.
func (g *SequentialGenerator) Next() string {
	n := g.next.Add(1) - 1
	return fmt.Sprintf("%s%0*d", g.Prefix, g.Width, n)
}

// HostUUIDGenerator prefixes a random UUIDv4 with the local hostname, so
// once several pheapbench processes ship their logs to one place, a run
// tag alone identifies which machine produced it without cross-referencing
// a separate log source field. Hostname lookup failures fall back to
// "unknown-host" rather than erroring, since a degraded tag is still more
// useful than aborting the benchmark over it.
type HostUUIDGenerator struct{}

// Next returns "<hostname>-<uuid>".
func (g *HostUUIDGenerator) Next() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown-host"
	}
	return host + "-" + uuid.New().String()
}
