// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command analyze ingests an attention benchmark results CSV and writes
// the scaling, speedup and memory charts plus the summary and report
// documents into the output directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/LynnColeArt/attnbench"
)

func main() {
	var (
		csvPath   = flag.String("csv", "", "Path to results CSV (required)")
		outputDir = flag.String("output", attnbench.DefaultOutputDir, "Output directory")
		batchSize = flag.Int("batch-size", attnbench.DefaultSlice.BatchSize, "Analysis slice batch size")
		numHeads  = flag.Int("num-heads", attnbench.DefaultSlice.NumHeads, "Analysis slice head count")
		headDim   = flag.Int("head-dim", attnbench.DefaultSlice.HeadDim, "Analysis slice head dimension")
		verbose   = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: analyze -csv <results.csv> [-output <dir>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	analyzer, err := attnbench.NewAnalyzer(attnbench.Options{
		CSVPath:   *csvPath,
		OutputDir: *outputDir,
		Slice: attnbench.SliceConfig{
			BatchSize: *batchSize,
			NumHeads:  *numHeads,
			HeadDim:   *headDim,
		},
		Log: log,
	})
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := analyzer.Run(); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}
