// Package dimacs reads the DIMACS shortest-path/MST challenge edge
// format used by the 9th DIMACS Implementation Challenge graphs:
//
//	c comments...
//	p sp <n_nodes> <n_edges>
//	a <u> <v> <w>
//
// It is consumed only by cmd/pheapbench; it is not part of the public
// library surface.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arfaz/pairheap/graph"
)

// Header is the node/edge count declared by the file's "p" line.
type Header struct {
	Nodes int
	Edges int
}

// Load reads a DIMACS edge list from r into a graph.Graph[uint32],
// converting the format's 1-based node ids to the 0-based ids the rest
// of this module uses. Ported from original_source/examples/mst.rs and
// dijkstra.rs, which both scan the first seven lines for the "p" header
// before reading "a" lines for the rest of the file.
func Load(r io.Reader) (*graph.Graph[uint32], Header, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var hdr Header
	var g *graph.Graph[uint32]
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 4 {
				return nil, hdr, fmt.Errorf("dimacs: malformed p line %d: %q", lineNo, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, hdr, fmt.Errorf("dimacs: bad node count on line %d: %w", lineNo, err)
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, hdr, fmt.Errorf("dimacs: bad edge count on line %d: %w", lineNo, err)
			}
			hdr = Header{Nodes: n, Edges: m}
			g = graph.WithCapacity[uint32](n)
		case "a":
			if g == nil {
				return nil, hdr, fmt.Errorf("dimacs: edge line %d precedes p line", lineNo)
			}
			u, v, w, err := parseEdgeLine(fields)
			if err != nil {
				return nil, hdr, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			g.AddEdge(u, v, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, hdr, err
	}
	if g == nil {
		return nil, hdr, fmt.Errorf("dimacs: no p line found")
	}
	return g, hdr, nil
}

func parseEdgeLine(fields []string) (u, v int, w uint32, err error) {
	if len(fields) < 4 {
		return 0, 0, 0, fmt.Errorf("malformed a line %q", strings.Join(fields, " "))
	}
	node1, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	node2, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, err
	}
	weight, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return 0, 0, 0, err
	}
	return node1 - 1, node2 - 1, uint32(weight), nil
}
