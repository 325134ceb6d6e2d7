package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormU8(t *testing.T) {
	assert.Equal(t, float32(-1.0), normU8(0))
	assert.Equal(t, float32(0.0), normU8(128))
	assert.InDelta(t, 1.0, normU8(255), 0.01)
}

func TestNormS16(t *testing.T) {
	assert.Equal(t, float32(0.0), normS16(0))
	assert.Equal(t, float32(1.0), normS16(32767))
	// The divisor is the positive max, so the negative extreme lands just
	// below -1.0.
	assert.InDelta(t, -1.0, normS16(-32768), 0.0001)
	assert.InDelta(t, 0.5, normS16(16384), 0.0001)
}

func TestNormS24(t *testing.T) {
	assert.Equal(t, float32(0.0), normSigned(0, 24))
	assert.Equal(t, float32(1.0), normSigned(8388607, 24))
	// Negative values use the larger magnitude divisor, so the negative
	// extreme is exact.
	assert.Equal(t, float32(-1.0), normSigned(-8388608, 24))
}

func TestNormS32(t *testing.T) {
	assert.Equal(t, float32(0.0), normS32(0))
	assert.Equal(t, float32(1.0), normS32(2147483647))
	assert.InDelta(t, -1.0, normS32(-2147483648), 0.0001)
}

func TestNormF64Truncates(t *testing.T) {
	assert.Equal(t, float32(0.5), normF64(0.5))
	assert.Equal(t, float32(-1.0), normF64(-1.0))
}

func TestNormSignedDispatch(t *testing.T) {
	tests := []struct {
		name  string
		value int
		bits  int
		want  float32
		delta float64
	}{
		{"8-bit max", 127, 8, 1.0, 0},
		{"8-bit min", -128, 8, -1.0, 0.01},
		{"16-bit max", 32767, 16, 1.0, 0},
		{"24-bit max", 8388607, 24, 1.0, 0},
		{"32-bit max", 2147483647, 32, 1.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normSigned(tt.value, tt.bits)
			if tt.delta == 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.InDelta(t, tt.want, got, tt.delta)
			}
		})
	}
}
