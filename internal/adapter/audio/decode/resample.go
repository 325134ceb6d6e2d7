package decode

// Resample converts an interleaved buffer from srcRate to dstRate using
// Catmull-Rom cubic interpolation, preserving the channel count. Identity
// when the rates match.
//
// This runs once during load, off the real-time path; the render callback
// only ever sees buffers already at the device rate.
func Resample(src []float32, channels, srcRate, dstRate int) []float32 {
	if srcRate == dstRate || channels <= 0 || len(src) == 0 {
		return src
	}

	srcFrames := len(src) / channels
	if srcFrames < 2 {
		return src
	}

	ratio := float64(srcRate) / float64(dstRate)
	dstFrames := int(float64(srcFrames) / ratio)
	if dstFrames == 0 {
		dstFrames = 1
	}

	dst := make([]float32, dstFrames*channels)

	// sampleAt clamps frame indexes at the edges so the cubic window always
	// has four taps.
	sampleAt := func(frame, ch int) float32 {
		if frame < 0 {
			frame = 0
		}
		if frame >= srcFrames {
			frame = srcFrames - 1
		}
		return src[frame*channels+ch]
	}

	for f := 0; f < dstFrames; f++ {
		pos := float64(f) * ratio
		i := int(pos)
		x := float32(pos - float64(i))

		for ch := 0; ch < channels; ch++ {
			y0 := sampleAt(i-1, ch)
			y1 := sampleAt(i, ch)
			y2 := sampleAt(i+1, ch)
			y3 := sampleAt(i+2, ch)
			dst[f*channels+ch] = cubicInterpolate(y0, y1, y2, y3, x)
		}
	}

	return dst
}

// cubicInterpolate evaluates a Catmull-Rom spline at fractional position x
// between y1 and y2 (0 <= x <= 1).
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
