package attnbench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SummaryFile)

	summary := Summarize(sweepStore())
	require.NoError(t, WriteSummary(summary, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, summary, decoded)

	// The contract keys are spelled exactly as documented.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"configurations_tested", "implementations", "best_performance"} {
		_, ok := raw[key]
		assert.True(t, ok, "missing key %q", key)
	}
}

func TestWriteSummaryIdempotent(t *testing.T) {
	dir := t.TempDir()
	summary := Summarize(sweepStore())

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, WriteSummary(summary, first))
	require.NoError(t, WriteSummary(summary, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "summary output must be byte-identical across runs")
}

func TestWriteReportSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ReportFile)

	summary := Summarize(sweepStore())
	require.NoError(t, WriteReport(summary, DefaultSlice, CollectHostInfo(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)

	for _, want := range []string{
		"# Attention Benchmark Results",
		"Total configurations tested: 10",
		"## Best Performance by Implementation",
		"### Naive",
		"### Shared",
		"### Flash",
		"## Kernel Arithmetic Model",
		"## Key Insights",
		"## Analysis Environment",
	} {
		assert.Contains(t, report, want)
	}

	// The insight list is fixed boilerplate and appears verbatim.
	for _, insight := range keyInsights {
		assert.Contains(t, report, insight)
	}
}

func TestWriteReportOmitsAbsentVariants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ReportFile)

	store := NewRecordStore([]BenchmarkRecord{rec(Naive, 128, 1.0, 0.5, 50)})
	require.NoError(t, WriteReport(Summarize(store), DefaultSlice, CollectHostInfo(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "### Naive")
	assert.NotContains(t, report, "### Flash")
	assert.NotContains(t, report, "### Shared")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Naive", capitalize("naive"))
	assert.Equal(t, "Flash", capitalize("flash"))
	assert.Equal(t, "", capitalize(""))
	assert.True(t, strings.HasPrefix(capitalize("shared"), "S"))
}
