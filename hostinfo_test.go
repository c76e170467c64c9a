package attnbench

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectHostInfo(t *testing.T) {
	host := CollectHostInfo()
	assert.Equal(t, runtime.GOOS, host.OS)
	assert.Equal(t, runtime.GOARCH, host.Arch)
	assert.Greater(t, host.NumCPU, 0)
}

func TestFeatureString(t *testing.T) {
	assert.Equal(t, "no SIMD extensions detected", HostInfo{}.FeatureString())
	assert.Equal(t, "AVX2, FMA", HostInfo{Features: []string{"AVX2", "FMA"}}.FeatureString())
}
