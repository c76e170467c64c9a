// Package attnbench configuration constants
package attnbench

// SliceConfig fixes all problem-size coordinates except sequence length,
// so scaling and speedup analyses vary a single axis.
type SliceConfig struct {
	BatchSize int
	NumHeads  int
	HeadDim   int
}

// DefaultSlice is the standard analysis slice used by the benchmark sweep.
// Kept as a value rather than inline literals so it can be overridden per run.
var DefaultSlice = SliceConfig{
	BatchSize: 1,
	NumHeads:  8,
	HeadDim:   64,
}

// MemorySeqLens is the fixed sweep of sequence lengths used for the
// theoretical memory projection. Independent of measured data.
var MemorySeqLens = []int{128, 256, 512, 1024, 2048, 4096, 8192}

// Element and unit constants
const (
	// Bytes per tensor element (float32 kernels)
	BytesPerElement = 4

	// Bytes per MiB, the unit used in memory projections
	BytesPerMB = 1 << 20

	// Arithmetic intensity below this is considered memory-bound
	MemoryBoundThreshold = 10.0
)

// Output artifact filenames, written into the analysis output directory
const (
	ScalingChartFile = "scaling_analysis.png"
	SpeedupChartFile = "speedup_comparison.png"
	MemoryChartFile  = "memory_scaling.png"
	SummaryFile      = "summary.json"
	ReportFile       = "REPORT.md"
)

// DefaultOutputDir is where artifacts land when no directory is given
const DefaultOutputDir = "analysis"
