package decode

import (
	"log/slog"
)

// Remix converts an interleaved buffer from in channels to out channels.
//
// Identity when the counts match; mono to stereo duplicates the single
// channel; stereo to mono averages left and right with 0.5 gain. Any other
// combination broadcasts the first input channel into every output channel —
// a degraded-quality path that is logged, not an error.
//
// The result's length is always a multiple of out.
func Remix(src []float32, in, out int, logger *slog.Logger) []float32 {
	if in <= 0 || out <= 0 {
		return nil
	}
	if in == out {
		return src
	}

	frames := len(src) / in

	switch {
	case in == 1 && out == 2:
		dst := make([]float32, 0, frames*2)
		for _, s := range src {
			dst = append(dst, s, s)
		}
		return dst

	case in == 2 && out == 1:
		dst := make([]float32, 0, frames)
		for f := 0; f < frames; f++ {
			dst = append(dst, (src[2*f]+src[2*f+1])*0.5)
		}
		return dst

	default:
		logger.Warn("unusual channel configuration, broadcasting first channel",
			slog.Int("in", in),
			slog.Int("out", out))
		dst := make([]float32, 0, frames*out)
		for f := 0; f < frames; f++ {
			s := src[f*in]
			for c := 0; c < out; c++ {
				dst = append(dst, s)
			}
		}
		return dst
	}
}
