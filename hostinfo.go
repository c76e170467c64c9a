package attnbench

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine the analysis ran on. It goes into the
// report's environment footer so a reader can tell where the artifacts
// were produced; it says nothing about the machine the kernels ran on,
// which is recorded upstream by the benchmark harness.
type HostInfo struct {
	OS       string
	Arch     string
	NumCPU   int
	Features []string
}

// CollectHostInfo captures the analysis host's OS, architecture and SIMD
// feature set.
func CollectHostInfo() HostInfo {
	return HostInfo{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: simdFeatures(),
	}
}

// simdFeatures lists the instruction set extensions relevant to the
// analysis host, x86 and ARM alike.
func simdFeatures() []string {
	var features []string
	if cpu.X86.HasSSE41 || cpu.X86.HasSSE42 {
		features = append(features, "SSE4")
	}
	if cpu.X86.HasAVX {
		features = append(features, "AVX")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpu.X86.HasFMA {
		features = append(features, "FMA")
	}
	if cpu.X86.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpu.ARM64.HasASIMD {
		features = append(features, "NEON")
	}
	if cpu.ARM64.HasSVE {
		features = append(features, "SVE")
	}
	return features
}

// FeatureString renders the feature list for the report footer
func (h HostInfo) FeatureString() string {
	if len(h.Features) == 0 {
		return "no SIMD extensions detected"
	}
	return strings.Join(h.Features, ", ")
}
