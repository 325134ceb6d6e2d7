package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrybley/sample-duck/internal/logger"
)

func TestRemixIdentity(t *testing.T) {
	log := logger.NewTestLogger()

	src := []float32{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, src, Remix(src, 2, 2, log))
	assert.Equal(t, src, Remix(src, 1, 1, log))
	// Identity also holds for exotic but matching counts
	assert.Equal(t, src, Remix(src, 4, 4, log))
}

func TestRemixMonoToStereo(t *testing.T) {
	log := logger.NewTestLogger()

	got := Remix([]float32{0.1, -0.5, 1.0}, 1, 2, log)
	assert.Equal(t, []float32{0.1, 0.1, -0.5, -0.5, 1.0, 1.0}, got)
}

func TestRemixStereoToMono(t *testing.T) {
	log := logger.NewTestLogger()

	got := Remix([]float32{1.0, 0.0, -1.0, 1.0, 0.5, 0.5}, 2, 1, log)
	assert.Equal(t, []float32{0.5, 0.0, 0.5}, got)
}

func TestRemixBroadcastFallback(t *testing.T) {
	log := logger.NewTestLogger()

	// 3 input channels to stereo: first channel broadcast to both outputs
	src := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	got := Remix(src, 3, 2, log)
	assert.Equal(t, []float32{0.1, 0.1, 0.4, 0.4}, got)
}

func TestRemixInvalidCounts(t *testing.T) {
	log := logger.NewTestLogger()

	assert.Nil(t, Remix([]float32{0.1}, 0, 2, log))
	assert.Nil(t, Remix([]float32{0.1}, 1, 0, log))
}

func TestRemixLengthIsMultipleOfOut(t *testing.T) {
	log := logger.NewTestLogger()

	for _, out := range []int{1, 2, 3} {
		got := Remix(make([]float32, 30), 5, out, log)
		assert.Zero(t, len(got)%out)
	}
}
