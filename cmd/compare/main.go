// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command compare diffs two summary.json artifacts (baseline vs current)
// and reports per-variant performance movement. Exits non-zero when any
// variant regressed beyond the threshold or disappeared entirely.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/perf/benchunit"

	"github.com/LynnColeArt/attnbench"
)

type comparison struct {
	Variant string
	Status  string // "PASS", "FASTER", "SLOWER", "MISSING"

	BaselineLatencyMS float64
	CurrentLatencyMS  float64
	SpeedupFactor     float64

	BaselineTFLOPS float64
	CurrentTFLOPS  float64

	Message string
}

func main() {
	var (
		baselineFile = flag.String("baseline", "baseline/summary.json", "Baseline summary file")
		currentFile  = flag.String("current", "analysis/summary.json", "Current summary file")
		perfRegress  = flag.Float64("perf-regress", 1.1, "Latency regression threshold (1.1 = 10% slower)")
	)
	flag.Parse()

	baseline, err := loadSummary(*baselineFile)
	if err != nil {
		logrus.Fatalf("Failed to load baseline: %v", err)
	}
	current, err := loadSummary(*currentFile)
	if err != nil {
		logrus.Fatalf("Failed to load current summary: %v", err)
	}

	comparisons := compareSummaries(baseline, current, *perfRegress)
	printSummary(baseline, current, comparisons)

	for _, comp := range comparisons {
		if comp.Status == "MISSING" || comp.Status == "SLOWER" {
			os.Exit(1)
		}
	}
}

func loadSummary(filename string) (attnbench.Summary, error) {
	var summary attnbench.Summary
	data, err := os.ReadFile(filename)
	if err != nil {
		return summary, err
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("parse %s: %w", filename, err)
	}
	return summary, nil
}

func compareSummaries(baseline, current attnbench.Summary, perfRegress float64) []comparison {
	comparisons := make([]comparison, 0, len(baseline.Implementations))

	for _, variant := range baseline.Implementations {
		base := baseline.BestPerformance[variant]
		comp := comparison{
			Variant:           variant,
			BaselineLatencyMS: base.MinLatencyMS,
			BaselineTFLOPS:    base.MaxTFLOPS,
		}

		curr, exists := current.BestPerformance[variant]
		if !exists {
			comp.Status = "MISSING"
			comp.Message = "variant absent from current results"
			comparisons = append(comparisons, comp)
			continue
		}

		comp.CurrentLatencyMS = curr.MinLatencyMS
		comp.CurrentTFLOPS = curr.MaxTFLOPS
		if curr.MinLatencyMS > 0 {
			comp.SpeedupFactor = base.MinLatencyMS / curr.MinLatencyMS
		}

		switch {
		case comp.SpeedupFactor > 0 && comp.SpeedupFactor < 1.0/perfRegress:
			comp.Status = "SLOWER"
			comp.Message = fmt.Sprintf("latency regression: %.2fx slower", 1.0/comp.SpeedupFactor)
		case comp.SpeedupFactor > 1.2:
			comp.Status = "FASTER"
			comp.Message = fmt.Sprintf("latency improvement: %.2fx faster", comp.SpeedupFactor)
		default:
			comp.Status = "PASS"
		}

		comparisons = append(comparisons, comp)
	}

	return comparisons
}

func printSummary(baseline, current attnbench.Summary, comparisons []comparison) {
	fmt.Println("=== Attention Benchmark Comparison ===")
	fmt.Println()
	fmt.Printf("Baseline configurations: %d\n", baseline.ConfigurationsTested)
	fmt.Printf("Current configurations:  %d\n", current.ConfigurationsTested)
	fmt.Println()

	statusCount := make(map[string]int)
	for _, comp := range comparisons {
		statusCount[comp.Status]++
	}
	fmt.Printf("Variants compared: %d\n", len(comparisons))
	fmt.Printf("  PASS:    %d\n", statusCount["PASS"])
	fmt.Printf("  FASTER:  %d\n", statusCount["FASTER"])
	fmt.Printf("  SLOWER:  %d\n", statusCount["SLOWER"])
	fmt.Printf("  MISSING: %d\n", statusCount["MISSING"])
	fmt.Println()

	fmt.Printf("%-16s %-8s %12s %12s %8s %12s %12s\n",
		"Variant", "Status", "Base (ms)", "Curr (ms)", "Speedup", "Base FLOPS", "Curr FLOPS")
	fmt.Println(strings.Repeat("-", 86))

	for _, comp := range comparisons {
		fmt.Printf("%-16s %-8s %12.3f %12.3f %8.2f %12s %12s\n",
			comp.Variant,
			comp.Status,
			comp.BaselineLatencyMS,
			comp.CurrentLatencyMS,
			comp.SpeedupFactor,
			benchunit.Scale(comp.BaselineTFLOPS*1e12, benchunit.Decimal),
			benchunit.Scale(comp.CurrentTFLOPS*1e12, benchunit.Decimal))
	}

	var notes []string
	for _, comp := range comparisons {
		if comp.Message != "" {
			notes = append(notes, fmt.Sprintf("%s: %s", comp.Variant, comp.Message))
		}
	}
	if len(notes) > 0 {
		fmt.Println()
		for _, n := range notes {
			fmt.Println(n)
		}
	}
}
