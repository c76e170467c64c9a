package attnbench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options configures one analysis run.
type Options struct {
	// CSVPath locates the benchmark results table
	CSVPath string
	// OutputDir receives the five artifacts; created if absent
	OutputDir string
	// Slice overrides the analysis slice; zero value means DefaultSlice
	Slice SliceConfig
	// Log receives progress output; nil means the standard logger
	Log *logrus.Logger
}

// Analyzer runs the full pipeline: load, project, assemble, write.
// Every run loads fresh input and recomputes everything; there is no
// state carried between runs.
type Analyzer struct {
	opts  Options
	log   *logrus.Logger
	slice SliceConfig
}

// NewAnalyzer validates options and builds an analyzer
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if opts.CSVPath == "" {
		return nil, NewInvalidArgError("NewAnalyzer", "CSV path is required")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	slice := opts.Slice
	if slice == (SliceConfig{}) {
		slice = DefaultSlice
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Analyzer{opts: opts, log: log, slice: slice}, nil
}

// Run executes load → project → assemble. Projections are pure and
// independent; any failure aborts the run. Artifacts already written stay
// on disk, there is no partial cleanup.
func (a *Analyzer) Run() error {
	if err := os.MkdirAll(a.opts.OutputDir, 0755); err != nil {
		return NewWriteError("Run", fmt.Sprintf("cannot create output directory %s", a.opts.OutputDir), err)
	}

	a.log.WithField("csv", a.opts.CSVPath).Info("loading benchmark results")
	store, err := LoadCSV(a.opts.CSVPath)
	if err != nil {
		return err
	}
	a.log.WithField("records", store.Len()).Info("results loaded")

	a.warnEmptySlices(store)

	scaling := Scaling(store, a.slice)
	speedup := Speedup(store, a.slice)
	memory := ProjectMemory(MemorySeqLens, a.slice)
	summary := Summarize(store)

	artifact := func(name string) string { return filepath.Join(a.opts.OutputDir, name) }

	a.log.Info("writing scaling analysis chart")
	if err := WriteScalingChart(scaling, artifact(ScalingChartFile)); err != nil {
		return err
	}

	a.log.Info("writing speedup comparison chart")
	if err := WriteSpeedupChart(speedup, artifact(SpeedupChartFile)); err != nil {
		return err
	}

	a.log.Info("writing memory scaling chart")
	if err := WriteMemoryChart(memory, artifact(MemoryChartFile)); err != nil {
		return err
	}

	a.log.Info("writing summary and report")
	if err := WriteSummary(summary, artifact(SummaryFile)); err != nil {
		return err
	}
	if err := WriteReport(summary, a.slice, CollectHostInfo(), artifact(ReportFile)); err != nil {
		return err
	}

	a.log.WithField("dir", a.opts.OutputDir).Info("analysis complete")
	return nil
}

// warnEmptySlices logs a non-fatal warning for each variant with no
// records on the analysis slice. The corresponding series and bars come
// out empty or zero; the run continues.
func (a *Analyzer) warnEmptySlices(store *RecordStore) {
	subset := store.FilterShape(a.slice)
	for _, t := range AllAttentionTypes {
		if subset.FilterType(t).Len() == 0 {
			a.log.WithFields(logrus.Fields{
				"variant":    t.String(),
				"batch_size": a.slice.BatchSize,
				"num_heads":  a.slice.NumHeads,
				"head_dim":   a.slice.HeadDim,
			}).Warn("no records on analysis slice for variant")
		}
	}
}
