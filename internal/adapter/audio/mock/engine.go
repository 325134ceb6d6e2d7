// Package mock provides a mock implementation of the AudioEngine interface.
// It is used for testing services without opening a real output device.
package mock

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/ports"
)

// Engine simulates the playback engine in memory. It honors the same
// transport semantics as the real engine (clamped seeks, toggle stopping
// rather than pausing, failed loads leaving state untouched) but without
// decoding or touching hardware.
//
// Thread-safety: all methods are safe for concurrent use.
type Engine struct {
	mu sync.RWMutex

	loadedPath  string
	sampleCount int
	position    int
	status      domain.PlaybackStatus
	looping     bool
	peaks       []domain.PeakPair

	outChannels int
	sampleRate  int
	closed      bool

	// Behavior configuration for error scenarios
	failLoad     bool
	failMetadata bool

	// Recorded loads, in order
	loadCalls []string
}

// NewEngine creates a mock engine with a stereo 44.1 kHz output shape.
func NewEngine() *Engine {
	return &Engine{
		outChannels: 2,
		sampleRate:  44100,
	}
}

// SetFailLoad configures the mock so Load returns a decode error.
func (m *Engine) SetFailLoad(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failLoad = fail
}

// SetFailMetadata configures the mock so Metadata returns an error.
func (m *Engine) SetFailMetadata(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failMetadata = fail
}

// SetSampleCount overrides the simulated buffer length installed by the
// next successful Load.
func (m *Engine) SetSampleCount(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sampleCount = n
}

// LoadCalls returns the paths passed to Load, in order.
func (m *Engine) LoadCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.loadCalls...)
}

// FinishPlayback simulates the render thread reaching the end of the buffer
// without loop: terminal stop with the position at the buffer end.
func (m *Engine) FinishPlayback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == domain.StatusPlaying && !m.looping {
		m.status = domain.StatusStopped
		m.position = m.sampleCount
	}
}

// Load simulates decoding a file. On success the previous buffer is
// replaced, playback stops and the position resets; on failure nothing
// changes.
func (m *Engine) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return domain.ErrEngineClosed
	}

	m.loadCalls = append(m.loadCalls, path)

	if m.failLoad {
		return domain.NewDecodeError(path, 0, domain.ErrNoSamplesDecoded)
	}

	if m.sampleCount == 0 {
		// Default simulated buffer: one second of stereo output
		m.sampleCount = m.sampleRate * m.outChannels
	}
	m.loadedPath = path
	m.position = 0
	m.status = domain.StatusStopped
	m.peaks = []domain.PeakPair{{Min: -0.5, Max: 0.5}}

	return nil
}

// Play transitions to Playing unless no buffer is loaded.
func (m *Engine) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadedPath == "" {
		return
	}
	m.status = domain.StatusPlaying
}

// Pause transitions to Paused, keeping the position.
func (m *Engine) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = domain.StatusPaused
}

// Stop transitions to Stopped and resets the position.
func (m *Engine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = domain.StatusStopped
	m.position = 0
}

// TogglePlayback flips the transport the same way the real engine does.
func (m *Engine) TogglePlayback() {
	if m.Status() == domain.StatusPlaying {
		m.Stop()
	} else {
		m.Play()
	}
}

// SetLoop sets the loop flag.
func (m *Engine) SetLoop(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.looping = enabled
}

// IsLooping reports the loop flag.
func (m *Engine) IsLooping() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.looping
}

// Seek sets the position clamped to [0, sampleCount].
func (m *Engine) Seek(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > m.sampleCount {
		index = m.sampleCount
	}
	m.position = index
}

// SeekPercent seeks to a fraction of the buffer, frame aligned.
func (m *Engine) SeekPercent(pct float64) {
	m.mu.RLock()
	total := m.sampleCount
	channels := m.outChannels
	m.mu.RUnlock()

	index := int(pct * float64(total))
	index -= index % channels
	m.Seek(index)
}

// Status returns the simulated playback status.
func (m *Engine) Status() domain.PlaybackStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Position returns the simulated position in buffer elements.
func (m *Engine) Position() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.position
}

// Progress returns position over buffer length.
func (m *Engine) Progress() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sampleCount == 0 {
		return 0
	}
	return float64(m.position) / float64(m.sampleCount)
}

// Duration returns the simulated buffer duration.
func (m *Engine) Duration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sampleCount == 0 {
		return 0
	}
	frames := m.sampleCount / m.outChannels
	return time.Duration(float64(frames) / float64(m.sampleRate) * float64(time.Second))
}

// SampleCount returns the simulated buffer length in elements.
func (m *Engine) SampleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sampleCount
}

// Peaks returns the simulated waveform summary.
func (m *Engine) Peaks() []domain.PeakPair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.peaks
}

// OutputChannels returns the simulated output channel count.
func (m *Engine) OutputChannels() int {
	return m.outChannels
}

// SampleRate returns the simulated output sample rate.
func (m *Engine) SampleRate() int {
	return m.sampleRate
}

// Metadata fabricates catalog metadata for the given path.
func (m *Engine) Metadata(path string) (*domain.Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failMetadata {
		return nil, domain.ErrUnsupportedFormat
	}

	return &domain.Sample{
		Path:       path,
		Name:       filepath.Base(path),
		Format:     "wav",
		SampleRate: m.sampleRate,
		Size:       1024,
	}, nil
}

// Close marks the engine closed. Idempotent.
func (m *Engine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.status = domain.StatusStopped
	return nil
}

// Verify that Engine implements the AudioEngine port
var _ ports.AudioEngine = (*Engine)(nil)
