package engine

import "github.com/henrybley/sample-duck/internal/domain"

// targetPeakPoints is the display resolution of the waveform summary.
const targetPeakPoints = 2000

// ComputePeaks reduces an interleaved sample buffer to at most
// targetPeakPoints (min, max) pairs over consecutive fixed-size windows.
// Buffers shorter than the target yield one pair per sample. The reduction
// ignores channel interleaving; a window simply covers a contiguous span of
// elements.
func ComputePeaks(samples []float32) []domain.PeakPair {
	if len(samples) == 0 {
		return nil
	}

	total := len(samples)
	if total < targetPeakPoints {
		total = targetPeakPoints
	}
	// Ceiling division keeps the pair count at or under the target.
	window := (total + targetPeakPoints - 1) / targetPeakPoints

	peaks := make([]domain.PeakPair, 0, (len(samples)+window-1)/window)
	for start := 0; start < len(samples); start += window {
		end := start + window
		if end > len(samples) {
			end = len(samples)
		}

		p := domain.PeakPair{Min: samples[start], Max: samples[start]}
		for _, s := range samples[start+1 : end] {
			if s < p.Min {
				p.Min = s
			}
			if s > p.Max {
				p.Max = s
			}
		}
		peaks = append(peaks, p)
	}

	return peaks
}
