// Package engine implements the real-time audio playback engine.
//
// The engine decodes a file into a canonical interleaved float32 buffer,
// exposes transport controls, and feeds the hardware output callback with
// non-blocking, allocation-free reads while the control path mutates shared
// state. Two threads touch that state: application goroutines through the
// exported methods, and the audio subsystem's own thread through render.
package engine

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dhowden/tag"

	"github.com/henrybley/sample-duck/internal/adapter/audio/decode"
	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/ports"
)

// Config holds the output stream parameters, fixed at construction.
// Hot output-device changes are not supported.
type Config struct {
	// SampleRate is the output sample rate in Hz
	SampleRate int

	// Channels is the output channel count
	Channels int
}

// DefaultConfig returns the default output configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Channels:   2,
	}
}

// Engine is the playback engine. Synchronization discipline:
//
//   - samples and peaks live behind bufMu and are swapped wholesale on load,
//     never mutated in place, so the render thread's critical section is
//     always "read current snapshot"
//   - position and state are single scalars updated at high frequency, so
//     they are atomics; state is written by both threads (the render thread
//     auto-stops at end-of-buffer)
//   - the loop flag is written only by the control thread
//
// All control-path critical sections are O(1) state flips or one buffer
// pointer swap; the render thread never waits on a lock held across a
// blocking operation.
type Engine struct {
	logger *slog.Logger
	reg    *decode.Registry

	// bufMu guards samples and peaks
	bufMu   sync.Mutex
	samples []float32
	peaks   []domain.PeakPair

	pos   atomic.Int64 // element index into samples, always <= len(samples)
	state atomic.Int32 // domain.PlaybackStatus
	loop  atomic.Bool

	outChannels int
	sampleRate  int

	dev    *outputDevice // nil when constructed without a device (tests)
	closed atomic.Bool
}

// New creates an engine and opens the default output device. The returned
// engine's stream is already running; it renders silence until a file is
// loaded and played.
//
// Device-level failures (no output device, stream build or start errors) are
// unrecoverable and abort construction; there is no degraded silent mode.
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	e := newEngine(cfg, logger)

	dev, err := openOutputDevice(e, cfg)
	if err != nil {
		return nil, err
	}
	e.dev = dev

	if err := dev.start(); err != nil {
		dev.close()
		return nil, domain.NewEngineError("start", "", "starting output stream", err)
	}

	logger.Info("audio engine initialized",
		slog.Int("channels", cfg.Channels),
		slog.Int("sample_rate", cfg.SampleRate))

	return e, nil
}

// newEngine builds the engine core without touching any audio device.
func newEngine(cfg Config, logger *slog.Logger) *Engine {
	return &Engine{
		logger:      logger,
		reg:         decode.NewRegistry(logger),
		outChannels: cfg.Channels,
		sampleRate:  cfg.SampleRate,
	}
}

// Load decodes the file at path and installs it as the playback source.
//
// Decoding, normalization, remixing, resampling and peak computation all run
// before any shared state is touched, so a failed load leaves the previously
// loaded buffer and state fully intact. On success, active playback stops
// before the new buffer is accepted and buffer, peaks and position are
// published together under the buffer lock.
func (e *Engine) Load(path string) error {
	if e.closed.Load() {
		return domain.ErrEngineClosed
	}

	e.logger.Info("loading audio file", slog.String("path", path))

	pcm, err := e.reg.DecodeFile(path)
	if err != nil {
		e.logger.Warn("load failed",
			slog.String("path", path),
			slog.Any("error", err))
		return err
	}

	samples := decode.Remix(pcm.Samples, pcm.Channels, e.outChannels, e.logger)
	samples = decode.Resample(samples, e.outChannels, pcm.SampleRate, e.sampleRate)
	if len(samples) == 0 {
		return domain.NewDecodeError(path, 0, domain.ErrNoSamplesDecoded)
	}

	peaks := ComputePeaks(samples)

	// Stop active playback before accepting the new buffer so no stale
	// render read mixes with the new data mid-transition.
	e.Stop()

	e.bufMu.Lock()
	e.samples = samples
	e.peaks = peaks
	e.pos.Store(0)
	e.state.Store(int32(domain.StatusStopped))
	e.bufMu.Unlock()

	e.logger.Info("audio file loaded",
		slog.String("path", path),
		slog.String("codec", pcm.Codec),
		slog.Int("samples", len(samples)),
		slog.Duration("duration", e.Duration()))

	return nil
}

// Play transitions to Playing. With no buffer loaded this is a no-op: the
// callback would only ever produce silence, so the transport stays Stopped.
func (e *Engine) Play() {
	e.bufMu.Lock()
	empty := len(e.samples) == 0
	e.bufMu.Unlock()

	if empty {
		e.logger.Debug("play ignored, no buffer loaded")
		return
	}

	e.state.Store(int32(domain.StatusPlaying))
	e.logger.Debug("playback started")
}

// Pause transitions to Paused; the position is unchanged.
func (e *Engine) Pause() {
	e.state.Store(int32(domain.StatusPaused))
	e.logger.Debug("playback paused")
}

// Stop transitions to Stopped and resets the position to 0.
func (e *Engine) Stop() {
	e.state.Store(int32(domain.StatusStopped))
	e.pos.Store(0)
	e.logger.Debug("playback stopped")
}

// TogglePlayback flips the transport. Stopped and Paused become Playing;
// Playing becomes Stopped with the position reset, not Paused.
func (e *Engine) TogglePlayback() {
	switch e.Status() {
	case domain.StatusPlaying:
		e.Stop()
	default:
		e.Play()
	}
}

// SetLoop sets the loop flag. Independent of playback state; persists across
// Load, Stop and Seek.
func (e *Engine) SetLoop(enabled bool) {
	e.loop.Store(enabled)
	e.logger.Debug("loop flag changed", slog.Bool("enabled", enabled))
}

// IsLooping reports the loop flag.
func (e *Engine) IsLooping() bool {
	return e.loop.Load()
}

// Seek sets the read position in buffer elements, clamped to [0, len].
// Playback state is unchanged.
func (e *Engine) Seek(index int) {
	if index < 0 {
		index = 0
	}

	e.bufMu.Lock()
	total := len(e.samples)
	if index > total {
		index = total
	}
	e.pos.Store(int64(index))
	e.bufMu.Unlock()

	e.logger.Debug("seek",
		slog.Int("position", index),
		slog.Int("total", total))
}

// SeekPercent converts pct in [0,1] to an absolute element index aligned to
// a frame boundary, then seeks to it with the usual clamp.
func (e *Engine) SeekPercent(pct float64) {
	e.bufMu.Lock()
	total := len(e.samples)
	e.bufMu.Unlock()

	index := int(pct * float64(total))
	index -= index % e.outChannels
	e.Seek(index)
}

// Status returns the current playback status. The render thread's auto-stop
// at end-of-buffer is visible here without extra synchronization.
func (e *Engine) Status() domain.PlaybackStatus {
	return domain.PlaybackStatus(e.state.Load())
}

// Position returns the current read position in buffer elements.
func (e *Engine) Position() int {
	return int(e.pos.Load())
}

// Progress returns position over buffer length as a 0..1 fraction.
func (e *Engine) Progress() float64 {
	total := e.SampleCount()
	if total == 0 {
		return 0
	}
	return float64(e.Position()) / float64(total)
}

// Duration returns the buffer's playable length: frames / sample rate.
func (e *Engine) Duration() time.Duration {
	frames := e.SampleCount() / e.outChannels
	return time.Duration(float64(frames) / float64(e.sampleRate) * float64(time.Second))
}

// SampleCount returns the buffer length in elements; always a multiple of
// the output channel count, or zero.
func (e *Engine) SampleCount() int {
	e.bufMu.Lock()
	defer e.bufMu.Unlock()
	return len(e.samples)
}

// Peaks returns the waveform summary computed at load time. The returned
// slice is read-only until the next Load.
func (e *Engine) Peaks() []domain.PeakPair {
	e.bufMu.Lock()
	defer e.bufMu.Unlock()
	return e.peaks
}

// OutputChannels returns the output channel count fixed at construction.
func (e *Engine) OutputChannels() int {
	return e.outChannels
}

// SampleRate returns the output sample rate fixed at construction.
func (e *Engine) SampleRate() int {
	return e.sampleRate
}

// Metadata probes an audio file for catalog purposes without decoding its
// payload: codec label and sample rate from the header, size from the
// filesystem, display name from embedded tags with a filename fallback.
func (e *Engine) Metadata(path string) (*domain.Sample, error) {
	info, err := e.reg.ProbeFile(path)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	if f, err := os.Open(path); err == nil {
		if meta, err := tag.ReadFrom(f); err == nil && meta.Title() != "" {
			name = meta.Title()
		}
		_ = f.Close()
	}

	return &domain.Sample{
		Path:       path,
		Name:       name,
		Format:     info.Codec,
		SampleRate: info.SampleRate,
		Size:       fi.Size(),
	}, nil
}

// Close stops playback and releases the output device. Idempotent.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	e.Stop()
	if e.dev != nil {
		e.dev.close()
	}

	e.logger.Info("audio engine closed")
	return nil
}

// Verify that Engine implements the AudioEngine port
var _ ports.AudioEngine = (*Engine)(nil)
