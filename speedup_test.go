package attnbench

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedupRatios(t *testing.T) {
	table := Speedup(sweepStore(), DefaultSlice)
	require.Len(t, table, 3)

	assert.Equal(t, SpeedupRow{SeqLen: 128, SharedSpeedup: 1.0 / 0.6, FlashSpeedup: 1.0 / 0.4}, table[0])
	assert.Equal(t, SpeedupRow{SeqLen: 256, SharedSpeedup: 2.0, FlashSpeedup: 5.0}, table[1])
	assert.Equal(t, SpeedupRow{SeqLen: 512, SharedSpeedup: 2.0, FlashSpeedup: 8.0}, table[2])
}

func TestSpeedupAscendingSeqLen(t *testing.T) {
	table := Speedup(sweepStore(), DefaultSlice)
	assert.True(t, sort.SliceIsSorted(table, func(i, j int) bool {
		return table[i].SeqLen < table[j].SeqLen
	}))
}

func TestSpeedupZeroSentinel(t *testing.T) {
	tests := []struct {
		name    string
		records []BenchmarkRecord
		want    []SpeedupRow
	}{
		{
			name: "Missing_Variant",
			records: []BenchmarkRecord{
				rec(Naive, 128, 1.0, 0.5, 50),
				rec(Shared, 128, 0.5, 1.0, 100),
				// no flash at 128
			},
			want: []SpeedupRow{{SeqLen: 128, SharedSpeedup: 2.0, FlashSpeedup: 0}},
		},
		{
			name: "Missing_Naive_Baseline",
			records: []BenchmarkRecord{
				// seq_len 256 exists on the slice but only for optimized variants
				rec(Shared, 256, 0.5, 1.0, 100),
				rec(Flash, 256, 0.2, 2.0, 200),
			},
			want: []SpeedupRow{{SeqLen: 256, SharedSpeedup: 0, FlashSpeedup: 0}},
		},
		{
			name: "Union_Of_Slice_SeqLens",
			records: []BenchmarkRecord{
				rec(Naive, 128, 1.0, 0.5, 50),
				rec(Shared, 128, 0.5, 1.0, 100),
				rec(Flash, 512, 0.2, 2.0, 200), // no naive at 512
			},
			want: []SpeedupRow{
				{SeqLen: 128, SharedSpeedup: 2.0, FlashSpeedup: 0},
				{SeqLen: 512, SharedSpeedup: 0, FlashSpeedup: 0},
			},
		},
		{
			name:    "Empty_Store",
			records: nil,
			want:    []SpeedupRow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Speedup(NewRecordStore(tt.records), DefaultSlice)
			assert.Equal(t, SpeedupTable(tt.want), table)
		})
	}
}

func TestSpeedupZeroVariantTimeNoDivisionFault(t *testing.T) {
	// A zero latency cannot come through LoadCSV, but the projection must
	// still not fault if handed one directly: the sentinel applies.
	records := []BenchmarkRecord{
		rec(Naive, 128, 1.0, 0.5, 50),
		rec(Shared, 128, 0.0, 1.0, 100),
	}
	table := Speedup(NewRecordStore(records), DefaultSlice)
	require.Len(t, table, 1)
	assert.Equal(t, 0.0, table[0].SharedSpeedup)
}

func TestSpeedupDuplicateUsesFirstMatch(t *testing.T) {
	records := []BenchmarkRecord{
		rec(Naive, 128, 4.0, 0.5, 50),
		rec(Naive, 128, 1.0, 0.5, 50), // duplicate, ignored
		rec(Flash, 128, 2.0, 2.0, 200),
	}
	table := Speedup(NewRecordStore(records), DefaultSlice)
	require.Len(t, table, 1)
	assert.Equal(t, 2.0, table[0].FlashSpeedup)
}

func TestSpeedupIgnoresOffSliceRecords(t *testing.T) {
	records := []BenchmarkRecord{
		rec(Naive, 128, 1.0, 0.5, 50),
		rec(Flash, 128, 0.5, 2.0, 200),
		offSliceRec(Naive, 2048, 50.0),
	}
	table := Speedup(NewRecordStore(records), DefaultSlice)
	require.Len(t, table, 1)
	assert.Equal(t, 128, table[0].SeqLen)
}
