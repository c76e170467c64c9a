package attnbench

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

// rec builds a record on the default analysis slice
func rec(t AttentionType, seqLen int, timeMS, tflops, bandwidth float64) BenchmarkRecord {
	return BenchmarkRecord{
		AttentionType: t,
		BatchSize:     DefaultSlice.BatchSize,
		NumHeads:      DefaultSlice.NumHeads,
		HeadDim:       DefaultSlice.HeadDim,
		SeqLen:        seqLen,
		TimeMS:        timeMS,
		TFLOPS:        tflops,
		BandwidthGBPS: bandwidth,
	}
}

// offSliceRec builds a record away from the default slice
func offSliceRec(t AttentionType, seqLen int, timeMS float64) BenchmarkRecord {
	r := rec(t, seqLen, timeMS, 1.0, 100.0)
	r.BatchSize = 4
	return r
}

// sweepStore is a full naive/shared/flash sweep over 128/256/512 on the
// default slice, with deliberately unsorted insertion order plus one
// off-slice record.
func sweepStore() *RecordStore {
	return NewRecordStore([]BenchmarkRecord{
		rec(Flash, 512, 1.0, 4.0, 400),
		rec(Naive, 128, 1.0, 0.5, 50),
		rec(Shared, 256, 1.5, 1.5, 150),
		rec(Naive, 512, 8.0, 0.8, 80),
		rec(Flash, 128, 0.4, 2.0, 200),
		rec(Shared, 128, 0.6, 1.0, 100),
		rec(Naive, 256, 3.0, 0.6, 60),
		rec(Shared, 512, 4.0, 2.0, 160),
		rec(Flash, 256, 0.6, 3.0, 300),
		offSliceRec(Naive, 1024, 100.0),
	})
}

const sweepCSV = `attention_type,batch_size,num_heads,head_dim,seq_len,time_ms,tflops,bandwidth_gbps
naive,1,8,64,128,1.0,0.5,50
naive,1,8,64,256,3.0,0.6,60
naive,1,8,64,512,8.0,0.8,80
shared,1,8,64,128,0.6,1.0,100
shared,1,8,64,256,1.5,1.5,150
shared,1,8,64,512,4.0,2.0,160
flash,1,8,64,128,0.4,2.0,200
flash,1,8,64,256,0.6,3.0,300
flash,1,8,64,512,1.0,4.0,400
`

// writeSweepCSV drops the standard sweep table into dir and returns its path
func writeSweepCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "results.csv")
	if err := os.WriteFile(path, []byte(sweepCSV), 0644); err != nil {
		t.Fatalf("writing fixture CSV: %v", err)
	}
	return path
}

// quietLogger returns a logger that drops all output
func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
