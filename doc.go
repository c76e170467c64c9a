// Package attnbench analyzes benchmark results for three attention kernel
// variants (naive, shared-memory tiled, and flash) and turns a raw sweep
// of timing rows into comparative charts, a speedup table, a theoretical
// memory projection and summary documents.
//
// The pipeline is load → project → assemble. A results table is loaded
// into an immutable RecordStore; three pure projections derive scaling
// series, naive-relative speedups and an analytic memory footprint model;
// the assembler renders three PNG charts plus a JSON summary and a
// Markdown report into an output directory.
//
// Example usage:
//
//	a, err := attnbench.NewAnalyzer(attnbench.Options{
//		CSVPath:   "results.csv",
//		OutputDir: "analysis",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := a.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// The kernels themselves are out of scope: this package only consumes
// their recorded performance numbers.
package attnbench
