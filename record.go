package attnbench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// AttentionType identifies one of the benchmarked kernel variants.
type AttentionType int

const (
	// Naive is the unoptimized baseline kernel
	Naive AttentionType = iota
	// Shared is the shared-memory tiled kernel
	Shared
	// Flash is the memory-efficient (online softmax) kernel
	Flash
)

// AllAttentionTypes lists the variants in canonical order. Chart series,
// summary sections and speedup columns all follow this order.
var AllAttentionTypes = []AttentionType{Naive, Shared, Flash}

// String returns the attention type as it appears in the results table
func (t AttentionType) String() string {
	switch t {
	case Naive:
		return "naive"
	case Shared:
		return "shared"
	case Flash:
		return "flash"
	default:
		return "unknown"
	}
}

// DisplayName returns the capitalized label used in charts and reports
func (t AttentionType) DisplayName() string {
	switch t {
	case Naive:
		return "Naive"
	case Shared:
		return "Shared Memory"
	case Flash:
		return "Flash Attention"
	default:
		return "Unknown"
	}
}

// ParseAttentionType maps a table cell to an AttentionType
func ParseAttentionType(s string) (AttentionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive":
		return Naive, nil
	case "shared":
		return Shared, nil
	case "flash":
		return Flash, nil
	}
	return 0, NewInvalidArgError("ParseAttentionType",
		fmt.Sprintf("unknown attention type %q", s))
}

// BenchmarkRecord is one measured kernel run at a fixed problem size.
type BenchmarkRecord struct {
	AttentionType AttentionType
	BatchSize     int
	NumHeads      int
	HeadDim       int
	SeqLen        int
	TimeMS        float64 // wall-clock latency
	TFLOPS        float64 // achieved compute throughput
	BandwidthGBPS float64 // achieved memory bandwidth
}

// MatchesSlice reports whether the record sits on the given analysis slice
func (r BenchmarkRecord) MatchesSlice(s SliceConfig) bool {
	return r.BatchSize == s.BatchSize &&
		r.NumHeads == s.NumHeads &&
		r.HeadDim == s.HeadDim
}

// RecordStore is an immutable collection of benchmark records. Filter and
// GroupByType produce new views over shared backing data, so a single
// loaded store is safe to hand to all projections without copying.
type RecordStore struct {
	records []BenchmarkRecord
}

// requiredColumns are the header names the input table must carry,
// matching the field list of BenchmarkRecord.
var requiredColumns = []string{
	"attention_type",
	"batch_size",
	"num_heads",
	"head_dim",
	"seq_len",
	"time_ms",
	"tflops",
	"bandwidth_gbps",
}

// LoadCSV reads a benchmark results table from disk.
func LoadCSV(path string) (*RecordStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewMalformedInputError("LoadCSV",
			fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()
	return ReadRecords(f)
}

// ReadRecords parses a benchmark results table. The header row names the
// columns; column order does not matter and extra columns are ignored.
// Any malformed row aborts the whole load: downstream projections assume a
// fully typed table, so there is no partial-load recovery.
func ReadRecords(r io.Reader) (*RecordStore, error) {
	const op = "ReadRecords"

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, NewMalformedInputError(op, "cannot parse input as CSV", err)
	}
	if len(rows) == 0 {
		return nil, NewMalformedInputError(op, "input is empty, expected a header row", nil)
	}

	// Map required column names to their positions in the header.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, NewMissingColumnError(op, col)
		}
	}

	records := make([]BenchmarkRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		rec, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &RecordStore{records: records}, nil
}

func parseRow(row []string, index map[string]int, line int) (BenchmarkRecord, error) {
	const op = "ReadRecords"

	cell := func(col string) string { return row[index[col]] }

	if n := len(row); n <= maxIndex(index) {
		return BenchmarkRecord{}, NewMalformedInputError(op,
			fmt.Sprintf("row %d has %d columns, expected at least %d", line, n, maxIndex(index)+1), nil)
	}

	typ, err := ParseAttentionType(cell("attention_type"))
	if err != nil {
		return BenchmarkRecord{}, NewMalformedInputError(op,
			fmt.Sprintf("row %d: bad attention_type", line), err)
	}

	rec := BenchmarkRecord{AttentionType: typ}

	ints := []struct {
		col string
		dst *int
	}{
		{"batch_size", &rec.BatchSize},
		{"num_heads", &rec.NumHeads},
		{"head_dim", &rec.HeadDim},
		{"seq_len", &rec.SeqLen},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(cell(f.col)))
		if err != nil {
			return BenchmarkRecord{}, NewMalformedInputError(op,
				fmt.Sprintf("row %d: invalid %s %q", line, f.col, cell(f.col)), err)
		}
		if v <= 0 {
			return BenchmarkRecord{}, NewMalformedInputError(op,
				fmt.Sprintf("row %d: %s must be positive, got %d", line, f.col, v), nil)
		}
		*f.dst = v
	}

	floats := []struct {
		col      string
		dst      *float64
		positive bool
	}{
		{"time_ms", &rec.TimeMS, true},
		{"tflops", &rec.TFLOPS, false},
		{"bandwidth_gbps", &rec.BandwidthGBPS, false},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell(f.col)), 64)
		if err != nil {
			return BenchmarkRecord{}, NewMalformedInputError(op,
				fmt.Sprintf("row %d: invalid %s %q", line, f.col, cell(f.col)), err)
		}
		if f.positive && v <= 0 {
			return BenchmarkRecord{}, NewMalformedInputError(op,
				fmt.Sprintf("row %d: %s must be positive, got %v", line, f.col, v), nil)
		}
		if !f.positive && v < 0 {
			return BenchmarkRecord{}, NewMalformedInputError(op,
				fmt.Sprintf("row %d: %s must be non-negative, got %v", line, f.col, v), nil)
		}
		*f.dst = v
	}

	return rec, nil
}

func maxIndex(index map[string]int) int {
	max := 0
	for _, col := range requiredColumns {
		if i := index[col]; i > max {
			max = i
		}
	}
	return max
}

// NewRecordStore builds a store directly from records. Mostly for tests
// and synthetic data; LoadCSV is the production path.
func NewRecordStore(records []BenchmarkRecord) *RecordStore {
	return &RecordStore{records: records}
}

// Len returns the number of records in the store
func (s *RecordStore) Len() int {
	return len(s.records)
}

// Records returns the backing slice. Callers must not mutate it.
func (s *RecordStore) Records() []BenchmarkRecord {
	return s.records
}

// Filter returns a new view containing the records matching pred.
// The receiver is never modified.
func (s *RecordStore) Filter(pred func(BenchmarkRecord) bool) *RecordStore {
	var out []BenchmarkRecord
	for _, r := range s.records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return &RecordStore{records: out}
}

// FilterShape selects the records on the given analysis slice
func (s *RecordStore) FilterShape(slice SliceConfig) *RecordStore {
	return s.Filter(func(r BenchmarkRecord) bool { return r.MatchesSlice(slice) })
}

// FilterType selects the records for one kernel variant
func (s *RecordStore) FilterType(t AttentionType) *RecordStore {
	return s.Filter(func(r BenchmarkRecord) bool { return r.AttentionType == t })
}

// GroupByType splits the store into per-variant views. Variants with no
// records are absent from the map.
func (s *RecordStore) GroupByType() map[AttentionType]*RecordStore {
	groups := make(map[AttentionType]*RecordStore)
	for _, r := range s.records {
		g := groups[r.AttentionType]
		if g == nil {
			g = &RecordStore{}
			groups[r.AttentionType] = g
		}
		g.records = append(g.records, r)
	}
	return groups
}

// Variants returns the attention types present in the store, in canonical
// order (naive, shared, flash).
func (s *RecordStore) Variants() []AttentionType {
	seen := make(map[AttentionType]bool, len(AllAttentionTypes))
	for _, r := range s.records {
		seen[r.AttentionType] = true
	}
	out := make([]AttentionType, 0, len(seen))
	for _, t := range AllAttentionTypes {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}

// SeqLens returns the distinct sequence lengths in the store, ascending.
func (s *RecordStore) SeqLens() []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range s.records {
		if !seen[r.SeqLen] {
			seen[r.SeqLen] = true
			out = append(out, r.SeqLen)
		}
	}
	sort.Ints(out)
	return out
}

// FirstAt returns the first record for the given variant and sequence
// length. Duplicate coordinate tuples are tolerated in the input; ratio
// computations use the first match and ignore the rest.
func (s *RecordStore) FirstAt(t AttentionType, seqLen int) (BenchmarkRecord, bool) {
	for _, r := range s.records {
		if r.AttentionType == t && r.SeqLen == seqLen {
			return r, true
		}
	}
	return BenchmarkRecord{}, false
}
