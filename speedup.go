package attnbench

// SpeedupRow compares the optimized variants against the naive baseline at
// one sequence length. A ratio above 1 means faster than naive.
//
// A ratio of exactly 0 is a sentinel meaning "no data": either the naive
// baseline or the variant itself has no record at this sequence length.
// This mirrors the documented behavior of the original sweep tooling; it
// is deliberately not distinguished from a measured zero, which cannot
// occur because latencies are validated as positive at load time.
type SpeedupRow struct {
	SeqLen        int
	SharedSpeedup float64
	FlashSpeedup  float64
}

// SpeedupTable holds one row per distinct sequence length on the analysis
// slice, ascending.
type SpeedupTable []SpeedupRow

// Speedup computes naive-relative latency ratios on the given slice. The
// row set is the union of the slice's distinct sequence lengths, not just
// those with naive data; rows without a naive baseline carry the zero
// sentinel for both variants. Never faults on missing or zero data.
func Speedup(store *RecordStore, slice SliceConfig) SpeedupTable {
	subset := store.FilterShape(slice)

	table := make(SpeedupTable, 0)
	for _, seqLen := range subset.SeqLens() {
		row := SpeedupRow{SeqLen: seqLen}

		naive, haveNaive := subset.FirstAt(Naive, seqLen)
		if haveNaive {
			if shared, ok := subset.FirstAt(Shared, seqLen); ok && shared.TimeMS > 0 {
				row.SharedSpeedup = naive.TimeMS / shared.TimeMS
			}
			if flash, ok := subset.FirstAt(Flash, seqLen); ok && flash.TimeMS > 0 {
				row.FlashSpeedup = naive.TimeMS / flash.TimeMS
			}
		}

		table = append(table, row)
	}
	return table
}
