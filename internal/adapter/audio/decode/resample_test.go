package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResampleIdentityOnMatchingRates(t *testing.T) {
	src := []float32{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, src, Resample(src, 2, 44100, 44100))
}

func TestResampleEmptyAndTiny(t *testing.T) {
	assert.Empty(t, Resample(nil, 2, 48000, 44100))
	// A single frame cannot be interpolated and passes through
	src := []float32{0.5, 0.5}
	assert.Equal(t, src, Resample(src, 2, 48000, 44100))
}

func TestResampleLengthScalesWithRateRatio(t *testing.T) {
	src := make([]float32, 4800*2) // 4800 stereo frames
	got := Resample(src, 2, 48000, 44100)

	frames := len(got) / 2
	assert.InDelta(t, 4410, frames, 2)
	assert.Zero(t, len(got)%2)
}

func TestResamplePreservesConstantSignal(t *testing.T) {
	src := make([]float32, 1000)
	for i := range src {
		src[i] = 0.25
	}

	got := Resample(src, 1, 48000, 44100)
	for i, s := range got {
		assert.InDeltaf(t, 0.25, s, 1e-6, "sample %d", i)
	}
}

func TestResampleUpsamplesLinearRamp(t *testing.T) {
	// Catmull-Rom reproduces a straight line exactly away from the edges
	src := make([]float32, 100)
	for i := range src {
		src[i] = float32(i) / 100
	}

	got := Resample(src, 1, 22050, 44100)
	assert.Greater(t, len(got), len(src))

	for f := 2; f < len(got)-4; f++ {
		expected := float32(f) * 0.5 / 100
		assert.InDeltaf(t, expected, got[f], 1e-4, "frame %d", f)
	}
}
