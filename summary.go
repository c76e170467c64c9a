package attnbench

// BestPerformance holds the best-of values for one kernel variant across
// every configuration it was measured at, not just the analysis slice.
type BestPerformance struct {
	MaxTFLOPS        float64 `json:"max_tflops"`
	MaxBandwidthGBPS float64 `json:"max_bandwidth_gbps"`
	MinLatencyMS     float64 `json:"min_latency_ms"`
}

// Summary is the machine-readable digest of a benchmark table. It is
// recomputed fresh on every run; there is no persisted state.
type Summary struct {
	ConfigurationsTested int                        `json:"configurations_tested"`
	Implementations      []string                   `json:"implementations"`
	BestPerformance      map[string]BestPerformance `json:"best_performance"`
}

// Summarize aggregates best-of metrics per variant. Variants absent from
// the store are absent from the summary, never present with zero values.
func Summarize(store *RecordStore) Summary {
	summary := Summary{
		ConfigurationsTested: store.Len(),
		Implementations:      make([]string, 0),
		BestPerformance:      make(map[string]BestPerformance),
	}

	groups := store.GroupByType()
	for _, t := range store.Variants() {
		summary.Implementations = append(summary.Implementations, t.String())

		recs := groups[t].Records()
		best := BestPerformance{
			MaxTFLOPS:        recs[0].TFLOPS,
			MaxBandwidthGBPS: recs[0].BandwidthGBPS,
			MinLatencyMS:     recs[0].TimeMS,
		}
		for _, r := range recs[1:] {
			if r.TFLOPS > best.MaxTFLOPS {
				best.MaxTFLOPS = r.TFLOPS
			}
			if r.BandwidthGBPS > best.MaxBandwidthGBPS {
				best.MaxBandwidthGBPS = r.BandwidthGBPS
			}
			if r.TimeMS < best.MinLatencyMS {
				best.MinLatencyMS = r.TimeMS
			}
		}
		summary.BestPerformance[t.String()] = best
	}

	return summary
}
