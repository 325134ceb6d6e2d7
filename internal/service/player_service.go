// Package service provides the application-level orchestration on top of the
// playback engine and the sample catalog.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/ports"
)

// PlaybackService orchestrates sample playback. The engine owns the
// real-time semantics (looping, auto-stop, clamped seeks); this service adds
// the current-sample bookkeeping, event publication, and the periodic
// progress ticker.
//
// All operations are thread-safe via sync.RWMutex.
type PlaybackService struct {
	logger *slog.Logger
	engine ports.AudioEngine
	bus    ports.EventBus

	currentSample  *domain.Sample
	wasPlaying     bool // last status observed by the progress ticker
	updateInterval time.Duration

	mu            sync.RWMutex
	stopUpdate    chan struct{}
	updateRunning bool
	updateWg      sync.WaitGroup
}

// NewPlaybackService creates a playback service and starts its progress
// ticker. Call Shutdown to stop the ticker cleanly.
func NewPlaybackService(
	logger *slog.Logger,
	engine ports.AudioEngine,
	bus ports.EventBus,
) *PlaybackService {
	s := &PlaybackService{
		logger:         logger,
		engine:         engine,
		bus:            bus,
		updateInterval: 100 * time.Millisecond,
		stopUpdate:     make(chan struct{}),
	}

	logger.Debug("playback service initialized")

	s.startUpdateRoutine()

	return s
}

// LoadSample loads a sample into the engine. On failure, the previously
// loaded sample stays current and a PlaybackError event is published.
func (s *PlaybackService) LoadSample(sample domain.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("loading sample", slog.String("path", sample.Path))

	if err := s.engine.Load(sample.Path); err != nil {
		s.bus.Publish(domain.NewPlaybackErrorEvent(sample, err))
		return err
	}

	s.currentSample = &sample
	s.wasPlaying = false

	s.bus.Publish(domain.NewSampleLoadedEvent(sample, s.engine.Duration()))

	return nil
}

// Play starts playback of the loaded sample.
func (s *PlaybackService) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentSample == nil {
		return domain.ErrNoSampleLoaded
	}

	s.engine.Play()
	s.wasPlaying = true

	s.bus.Publish(domain.NewPlaybackStartedEvent(*s.currentSample))

	return nil
}

// Pause pauses playback, keeping the position.
func (s *PlaybackService) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentSample == nil {
		return domain.ErrNoSampleLoaded
	}

	s.engine.Pause()
	s.wasPlaying = false

	s.bus.Publish(domain.NewPlaybackPausedEvent(*s.currentSample, s.engine.Position()))

	return nil
}

// Stop stops playback and rewinds.
func (s *PlaybackService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopInternal()
}

// stopInternal stops without locking (caller must hold the write lock).
func (s *PlaybackService) stopInternal() error {
	if s.currentSample == nil {
		return domain.ErrNoSampleLoaded
	}

	s.engine.Stop()
	s.wasPlaying = false

	s.bus.Publish(domain.NewPlaybackStoppedEvent(*s.currentSample))

	return nil
}

// TogglePlayback flips the transport. Playing stops (with rewind), anything
// else starts playing.
func (s *PlaybackService) TogglePlayback() error {
	if s.engine.Status() == domain.StatusPlaying {
		return s.Stop()
	}
	return s.Play()
}

// SetLoop sets the loop flag on the engine and publishes the change.
func (s *PlaybackService) SetLoop(enabled bool) {
	s.engine.SetLoop(enabled)
	s.bus.Publish(domain.NewLoopToggledEvent(enabled))
}

// IsLooping reports the engine's loop flag.
func (s *PlaybackService) IsLooping() bool {
	return s.engine.IsLooping()
}

// SeekPercent seeks to a fraction of the loaded sample and publishes the
// resulting position.
func (s *PlaybackService) SeekPercent(pct float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentSample == nil {
		return domain.ErrNoSampleLoaded
	}

	s.engine.SeekPercent(pct)

	s.bus.Publish(domain.NewPlaybackSeekedEvent(s.engine.Position(), s.engine.Progress()))

	return nil
}

// State returns a snapshot of the current playback state.
func (s *PlaybackService) State() domain.PlaybackState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.PlaybackState{
		CurrentSample: s.currentSample,
		Status:        s.engine.Status(),
		Position:      s.engine.Position(),
		Progress:      s.engine.Progress(),
		Duration:      s.engine.Duration(),
		IsLooping:     s.engine.IsLooping(),
	}
}

// Peaks returns the waveform summary of the loaded sample.
func (s *PlaybackService) Peaks() []domain.PeakPair {
	return s.engine.Peaks()
}

// Shutdown stops the progress ticker and playback.
func (s *PlaybackService) Shutdown() error {
	s.mu.Lock()
	if s.updateRunning {
		close(s.stopUpdate)
		s.updateRunning = false
	}
	// Release the lock before waiting so the ticker can finish its
	// current iteration.
	s.mu.Unlock()

	s.updateWg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentSample != nil {
		return s.stopInternal()
	}
	return nil
}

// startUpdateRoutine starts the goroutine that publishes periodic progress
// events and detects natural end-of-sample completion.
func (s *PlaybackService) startUpdateRoutine() {
	s.mu.Lock()
	if s.updateRunning {
		s.mu.Unlock()
		return
	}
	s.updateRunning = true
	s.updateWg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.updateWg.Done()
		ticker := time.NewTicker(s.updateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopUpdate:
				return
			case <-ticker.C:
				s.publishProgressUpdate()
			}
		}
	}()
}

// publishProgressUpdate publishes a progress event while a sample is
// playing. A Playing-to-Stopped transition that the service did not cause
// is the engine's end-of-buffer auto-stop, reported as completion.
func (s *PlaybackService) publishProgressUpdate() {
	s.mu.Lock()

	if s.currentSample == nil {
		s.mu.Unlock()
		return
	}

	status := s.engine.Status()
	completed := s.wasPlaying && status == domain.StatusStopped
	if completed {
		s.wasPlaying = false
	}
	sample := *s.currentSample

	position := s.engine.Position()
	progress := s.engine.Progress()
	duration := s.engine.Duration()

	s.mu.Unlock()

	if status == domain.StatusPlaying {
		s.bus.Publish(domain.NewPlaybackProgressEvent(position, progress, duration))
	}

	if completed {
		s.logger.Debug("sample playback completed", slog.String("path", sample.Path))
		s.bus.Publish(domain.NewPlaybackCompletedEvent(sample))
	}
}
