package attnbench

import "sort"

// Metric selects which measured quantity a scaling series tracks.
type Metric int

const (
	// MetricLatency is wall-clock time in milliseconds
	MetricLatency Metric = iota
	// MetricTFLOPS is achieved compute throughput
	MetricTFLOPS
	// MetricBandwidth is achieved memory bandwidth in GB/s
	MetricBandwidth
)

// AllMetrics lists the scaling metrics in panel order
var AllMetrics = []Metric{MetricLatency, MetricTFLOPS, MetricBandwidth}

// String returns the metric name
func (m Metric) String() string {
	switch m {
	case MetricLatency:
		return "latency"
	case MetricTFLOPS:
		return "tflops"
	case MetricBandwidth:
		return "bandwidth"
	default:
		return "unknown"
	}
}

// AxisLabel returns the y-axis label used when charting the metric
func (m Metric) AxisLabel() string {
	switch m {
	case MetricLatency:
		return "Latency (ms)"
	case MetricTFLOPS:
		return "TFLOPS"
	case MetricBandwidth:
		return "Bandwidth (GB/s)"
	default:
		return ""
	}
}

// valueOf extracts the metric from a record
func (m Metric) valueOf(r BenchmarkRecord) float64 {
	switch m {
	case MetricLatency:
		return r.TimeMS
	case MetricTFLOPS:
		return r.TFLOPS
	case MetricBandwidth:
		return r.BandwidthGBPS
	default:
		return 0
	}
}

// ScalingPoint is one (sequence length, metric value) sample.
type ScalingPoint struct {
	SeqLen int
	Value  float64
}

// ScalingSeries is a variant's metric samples ordered by ascending
// sequence length. Missing measurements are simply absent; no
// interpolation or smoothing is applied.
type ScalingSeries []ScalingPoint

// ScalingResult holds one series per metric per variant. Variants with no
// records on the slice have empty series.
type ScalingResult map[Metric]map[AttentionType]ScalingSeries

// Scaling projects per-variant metric series over sequence length, holding
// the other problem-size coordinates fixed at the given slice. Pure: the
// store is never modified.
func Scaling(store *RecordStore, slice SliceConfig) ScalingResult {
	subset := store.FilterShape(slice)

	result := make(ScalingResult, len(AllMetrics))
	for _, m := range AllMetrics {
		result[m] = make(map[AttentionType]ScalingSeries, len(AllAttentionTypes))
	}

	for _, t := range AllAttentionTypes {
		recs := subset.FilterType(t).Records()
		sorted := make([]BenchmarkRecord, len(recs))
		copy(sorted, recs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SeqLen < sorted[j].SeqLen
		})

		for _, m := range AllMetrics {
			series := make(ScalingSeries, 0, len(sorted))
			for _, r := range sorted {
				series = append(series, ScalingPoint{SeqLen: r.SeqLen, Value: m.valueOf(r)})
			}
			result[m][t] = series
		}
	}

	return result
}
