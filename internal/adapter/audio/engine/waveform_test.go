package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePeaksEmpty(t *testing.T) {
	assert.Nil(t, ComputePeaks(nil))
	assert.Nil(t, ComputePeaks([]float32{}))
}

func TestComputePeaksShortBuffer(t *testing.T) {
	// Shorter than the target resolution: one pair per sample
	peaks := ComputePeaks([]float32{0.5, -0.25, 0.0})

	assert.Len(t, peaks, 3)
	assert.Equal(t, float32(0.5), peaks[0].Min)
	assert.Equal(t, float32(0.5), peaks[0].Max)
	assert.Equal(t, float32(-0.25), peaks[1].Min)
}

func TestComputePeaksNeverExceedsTarget(t *testing.T) {
	for _, n := range []int{1999, 2000, 2001, 4000, 4001, 100000, 44100 * 2} {
		peaks := ComputePeaks(make([]float32, n))
		assert.LessOrEqualf(t, len(peaks), targetPeakPoints, "buffer length %d", n)
		assert.NotEmpty(t, peaks)
	}
}

func TestComputePeaksMinMaxWithinWindow(t *testing.T) {
	samples := make([]float32, 4000) // window of 2
	samples[100] = 0.9
	samples[101] = -0.9

	peaks := ComputePeaks(samples)
	assert.Len(t, peaks, 2000)
	assert.Equal(t, float32(-0.9), peaks[50].Min)
	assert.Equal(t, float32(0.9), peaks[50].Max)

	for _, p := range peaks {
		assert.LessOrEqual(t, p.Min, p.Max)
	}
}
