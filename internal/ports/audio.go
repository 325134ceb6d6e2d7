// Package ports define interfaces for dependency inversion.
// These interfaces allow the core business logic to remain independent of external frameworks.
package ports

import (
	"time"

	"github.com/henrybley/sample-duck/internal/domain"
)

// AudioEngine is the interface for the real-time playback engine.
// It owns the decoded sample buffer, the transport state machine and the
// hardware render callback.
//
// Implementations must be thread-safe: control-path calls arrive from
// application goroutines while the render callback runs on the audio
// subsystem's own thread. Control-path critical sections must stay O(1)
// state flips or a single buffer swap so the render thread never waits on a
// lock held across a blocking operation.
type AudioEngine interface {
	// Load decodes the file at path into the engine's canonical sample
	// buffer (interleaved float32, output channel count), recomputes the
	// waveform peaks and resets position and state.
	//
	// Any active playback stops before the new buffer is accepted. On
	// failure the previously loaded buffer and state are left untouched and
	// a typed error is returned (domain.ErrUnsupportedFormat,
	// *domain.DecodeError, or an I/O error).
	Load(path string) error

	// Play transitions to Playing from any state.
	Play()

	// Pause transitions to Paused from any state; position is unchanged.
	Pause()

	// Stop transitions to Stopped from any state and resets position to 0.
	Stop()

	// TogglePlayback flips the transport: Stopped or Paused become Playing,
	// Playing becomes Stopped with the position reset. The asymmetry
	// (Playing does not pause) mirrors simple play/stop UX.
	TogglePlayback()

	// SetLoop sets the loop flag. Independent of playback state; persists
	// across Load, Stop and Seek.
	SetLoop(enabled bool)

	// IsLooping reports the loop flag.
	IsLooping() bool

	// Seek sets the read position to index (buffer elements, not frames),
	// clamped to [0, SampleCount]. Playback state is unchanged.
	Seek(index int)

	// SeekPercent converts pct in [0,1] to an absolute index, aligned to a
	// frame boundary, with the same clamp as Seek.
	SeekPercent(pct float64)

	// Status returns the current playback status. The Playing to Stopped
	// auto transition performed by the render callback at end-of-buffer is
	// visible here without extra synchronization.
	Status() domain.PlaybackStatus

	// Position returns the current read position in buffer elements.
	Position() int

	// Progress returns position over buffer length as a 0..1 fraction,
	// or 0 when no buffer is loaded.
	Progress() float64

	// Duration returns the total playable length of the loaded buffer
	// (frames divided by the output sample rate).
	Duration() time.Duration

	// SampleCount returns the length of the loaded buffer in elements.
	// The length is always a multiple of the output channel count, or zero.
	SampleCount() int

	// Peaks returns the waveform summary computed at load time, a
	// fixed-target sequence of (min, max) amplitude pairs. Read-only until
	// the next Load.
	Peaks() []domain.PeakPair

	// OutputChannels returns the output device channel count fixed at
	// engine construction.
	OutputChannels() int

	// SampleRate returns the output sample rate fixed at engine construction.
	SampleRate() int

	// Metadata probes an audio file without decoding it fully.
	// Used by library import to build catalog entries.
	Metadata(path string) (*domain.Sample, error)

	// Close stops the output stream and releases device resources.
	Close() error
}
