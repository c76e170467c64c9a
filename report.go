package attnbench

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteSummary writes the machine-readable summary. Marshaling is
// deterministic (struct field order plus Go's sorted map keys), so
// rerunning on the same input yields byte-identical output.
func WriteSummary(summary Summary, path string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return NewWriteError("WriteSummary", "failed to marshal summary", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewWriteError("WriteSummary", fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}

// keyInsights are static boilerplate, NOT conclusions computed from the
// data. They restate the well-known asymptotic story the benchmark is
// designed to illustrate. Do not turn these into derived claims.
var keyInsights = []string{
	"**Flash Attention** shows superior memory efficiency at long sequences",
	"**Shared Memory** optimization provides consistent speedup over naive",
	"Scaling is O(N²) for standard attention, O(N) for Flash Attention",
}

// WriteReport writes the human-readable narrative report.
func WriteReport(summary Summary, shape SliceConfig, host HostInfo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewWriteError("WriteReport", fmt.Sprintf("cannot create %s", path), err)
	}
	defer f.Close()

	w := func(format string, args ...interface{}) {
		fmt.Fprintf(f, format, args...)
	}

	w("# Attention Benchmark Results\n\n")
	w("Total configurations tested: %d\n\n", summary.ConfigurationsTested)

	w("## Best Performance by Implementation\n\n")
	for _, impl := range summary.Implementations {
		perf := summary.BestPerformance[impl]
		w("### %s\n", capitalize(impl))
		w("- Max TFLOPS: %.3f\n", perf.MaxTFLOPS)
		w("- Max Bandwidth: %.2f GB/s\n", perf.MaxBandwidthGBPS)
		w("- Min Latency: %.3f ms\n\n", perf.MinLatencyMS)
	}

	w("## Kernel Arithmetic Model\n\n")
	w("Theoretical characteristics for the B=%d, H=%d, D=%d analysis slice:\n\n",
		shape.BatchSize, shape.NumHeads, shape.HeadDim)
	w("| Seq Len | GFLOPs | Intensity (FLOP/B) | Regime |\n")
	w("|--------:|-------:|-------------------:|--------|\n")
	for _, s := range MemorySeqLens {
		regime := "compute-bound"
		if IsMemoryBound(shape, s) {
			regime = "memory-bound"
		}
		w("| %d | %.2f | %.2f | %s |\n",
			s, AttentionFLOPs(shape, s)/1e9, ArithmeticIntensity(shape, s), regime)
	}
	w("\n")

	w("## Key Insights\n\n")
	for i, insight := range keyInsights {
		w("%d. %s\n", i+1, insight)
	}
	w("\n")

	w("## Analysis Environment\n\n")
	w("- Host: %s/%s, %d logical CPUs\n", host.OS, host.Arch, host.NumCPU)
	w("- SIMD: %s\n", host.FeatureString())

	return nil
}

// capitalize uppercases the first byte, matching the report's section
// headings ("Naive", "Shared", "Flash").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
