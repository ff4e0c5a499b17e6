// Command pheapbench times repeated runs of Dijkstra or Prim over a
// DIMACS edge-list file, mirroring the run_exp! timing loop in
// original_source/examples/mst.rs and dijkstra.rs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/arfaz/pairheap/algorithms"
	"github.com/arfaz/pairheap/internal/dimacs"
	"github.com/arfaz/pairheap/internal/runid"
)

func main() {
	file := flag.String("file", "", "path to a DIMACS edge-list file")
	algo := flag.String("algo", "prim", "algorithm to benchmark: prim | dijkstra")
	runs := flag.Int("runs", 5, "number of timed runs")
	source := flag.Int("source", 0, "source node id (0-based)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "pheapbench: -file is required")
		os.Exit(1)
	}

	var gen runid.Generator = &runid.HostUUIDGenerator{}
	runID := gen.Next()
	log.Printf("run %s: loading %s", runID, *file)

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("run %s: %v", runID, err)
	}
	defer f.Close()

	g, hdr, err := dimacs.Load(f)
	if err != nil {
		log.Fatalf("run %s: %v", runID, err)
	}
	log.Printf("run %s: loaded graph, %d nodes declared, %d edges declared, %d half-edges recorded",
		runID, hdr.Nodes, hdr.Edges, g.EdgeCount())

	var exec func()
	switch *algo {
	case "prim":
		exec = func() { algorithms.MSTPrim(g, *source) }
	case "dijkstra":
		exec = func() { algorithms.SSSPDijkstraLazy(g, *source) }
	default:
		fmt.Fprintf(os.Stderr, "pheapbench: unknown -algo %q (want prim or dijkstra)\n", *algo)
		os.Exit(1)
	}

	runExperiment(runID, *runs, exec)
}

// runExperiment times *runs* back-to-back invocations of exec and
// reports per-run and average wall time, following run_exp! from
// original_source/examples/mst.rs.
func runExperiment(runID string, runs int, exec func()) {
	durations := make([]time.Duration, 0, runs)
	for i := 0; i < runs; i++ {
		fmt.Printf("> run %s %d/%d\n", runID, i+1, runs)
		start := time.Now()
		exec()
		elapsed := time.Since(start)
		fmt.Printf("> time taken: %s\n", elapsed)
		durations = append(durations, elapsed)
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	fmt.Printf("average time: %s\n", total/time.Duration(runs))
}
