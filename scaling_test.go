package attnbench

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalingSortedBySeqLen(t *testing.T) {
	result := Scaling(sweepStore(), DefaultSlice)

	for _, m := range AllMetrics {
		for _, v := range AllAttentionTypes {
			series := result[m][v]
			sorted := sort.SliceIsSorted(series, func(i, j int) bool {
				return series[i].SeqLen < series[j].SeqLen
			})
			assert.True(t, sorted, "%s/%s series not sorted", m, v)
		}
	}
}

func TestScalingValues(t *testing.T) {
	result := Scaling(sweepStore(), DefaultSlice)

	latency := result[MetricLatency][Naive]
	require.Len(t, latency, 3)
	assert.Equal(t, ScalingPoint{SeqLen: 128, Value: 1.0}, latency[0])
	assert.Equal(t, ScalingPoint{SeqLen: 256, Value: 3.0}, latency[1])
	assert.Equal(t, ScalingPoint{SeqLen: 512, Value: 8.0}, latency[2])

	tflops := result[MetricTFLOPS][Flash]
	require.Len(t, tflops, 3)
	assert.Equal(t, 4.0, tflops[2].Value)

	bandwidth := result[MetricBandwidth][Shared]
	require.Len(t, bandwidth, 3)
	assert.Equal(t, 150.0, bandwidth[1].Value)
}

func TestScalingConfinedToSlice(t *testing.T) {
	// The off-slice seq_len=1024 record must not leak into any series.
	result := Scaling(sweepStore(), DefaultSlice)
	for _, m := range AllMetrics {
		for _, v := range AllAttentionTypes {
			for _, pt := range result[m][v] {
				assert.NotEqual(t, 1024, pt.SeqLen, "%s/%s contains off-slice point", m, v)
			}
		}
	}
}

func TestScalingMissingPointsAbsent(t *testing.T) {
	// Flash has no 256 measurement; its series simply skips it.
	store := NewRecordStore([]BenchmarkRecord{
		rec(Naive, 128, 1.0, 0.5, 50),
		rec(Naive, 256, 3.0, 0.6, 60),
		rec(Flash, 128, 0.4, 2.0, 200),
		rec(Flash, 512, 1.0, 4.0, 400),
	})
	result := Scaling(store, DefaultSlice)

	flash := result[MetricLatency][Flash]
	require.Len(t, flash, 2)
	assert.Equal(t, 128, flash[0].SeqLen)
	assert.Equal(t, 512, flash[1].SeqLen)

	// Shared has no data at all on the slice: empty series, no error.
	assert.Empty(t, result[MetricLatency][Shared])
}

func TestScalingEmptySlice(t *testing.T) {
	// A slice matching nothing yields empty series for every variant.
	result := Scaling(sweepStore(), SliceConfig{BatchSize: 64, NumHeads: 64, HeadDim: 256})
	for _, m := range AllMetrics {
		for _, v := range AllAttentionTypes {
			assert.Empty(t, result[m][v])
		}
	}
}

func TestScalingPure(t *testing.T) {
	store := sweepStore()
	before := make([]BenchmarkRecord, store.Len())
	copy(before, store.Records())

	_ = Scaling(store, DefaultSlice)

	assert.Equal(t, before, store.Records())
}
