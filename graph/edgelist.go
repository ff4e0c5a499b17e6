package graph

import (
	"fmt"
	"io"
)

// WriteEdgeList writes one line per recorded half-edge in the form
// "u v {'weight': w}\n", following the networkx edge-list convention the
// original Rust source's write_edgelist uses. Iteration order is
// unspecified beyond every half-edge appearing exactly once.
func (g *Graph[W]) WriteEdgeList(w io.Writer) error {
	for u, edges := range g.adj {
		for _, e := range edges {
			if _, err := fmt.Fprintf(w, "%d %d {'weight': %v}\n", u, e.To, e.Weight); err != nil {
				return err
			}
		}
	}
	return nil
}
