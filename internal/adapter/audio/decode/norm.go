package decode

// Sample normalization to float32 in [-1, 1], per encoding's native range.
//
// Unsigned 8-bit maps [0,255] onto [-1,1). Signed widths divide by the
// format's signed max magnitude; 24-bit uses a sign-dependent divisor so both
// extremes land exactly on ±1.0.

// normU8 converts an unsigned 8-bit sample (as stored in WAV files).
func normU8(v int) float32 {
	return (float32(v) - 128.0) / 128.0
}

// normS8 converts a signed 8-bit sample (FLAC, AIFF).
func normS8(v int) float32 {
	return float32(v) / 127.0
}

// normS16 converts a signed 16-bit sample.
func normS16(v int) float32 {
	return float32(v) / 32767.0
}

// normS24 converts a signed 24-bit sample. The asymmetric divisor keeps
// 0x7FFFFF at exactly +1.0 and -0x800000 at exactly -1.0.
func normS24(v int) float32 {
	if v >= 0 {
		return float32(v) / 8388607.0 // 2^23 - 1
	}
	return float32(v) / 8388608.0 // 2^23
}

// normS32 converts a signed 32-bit sample.
func normS32(v int) float32 {
	return float32(v) / 2147483647.0
}

// normF64 truncates a 64-bit float sample to 32 bits.
func normF64(v float64) float32 {
	return float32(v)
}

// normSigned dispatches on bit depth for containers that store signed PCM at
// varying widths (WAV, AIFF, FLAC).
func normSigned(v, bits int) float32 {
	switch bits {
	case 8:
		return normS8(v)
	case 16:
		return normS16(v)
	case 24:
		return normS24(v)
	case 32:
		return normS32(v)
	default:
		// Odd widths (FLAC allows 12- and 20-bit streams): divide by the
		// width's signed max magnitude.
		return float32(v) / float32(int64(1)<<(bits-1)-1)
	}
}
