// Package domain defines events for the event-driven architecture.
// Events enable loose coupling between the playback core and its consumers.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Playback events
	EventSampleLoaded      EventType = "sample.loaded"
	EventPlaybackStarted   EventType = "playback.started"
	EventPlaybackPaused    EventType = "playback.paused"
	EventPlaybackStopped   EventType = "playback.stopped"
	EventPlaybackCompleted EventType = "playback.completed"
	EventPlaybackProgress  EventType = "playback.progress"
	EventPlaybackError     EventType = "playback.error"
	EventPlaybackSeeked    EventType = "playback.seeked"

	// Playback mode events
	EventLoopToggled EventType = "loop.toggled"

	// Library import events
	EventScanStarted   EventType = "scan.started"
	EventScanProgress  EventType = "scan.progress"
	EventScanCompleted EventType = "scan.completed"
	EventScanCancelled EventType = "scan.cancelled"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

// newBaseEvent creates a new base event with the current timestamp.
func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// SampleLoadedEvent is published when a sample is successfully decoded and installed.
type SampleLoadedEvent struct {
	baseEvent
	Sample   Sample
	Duration time.Duration
}

// Type returns the event type.
func (e SampleLoadedEvent) Type() EventType { return EventSampleLoaded }

// NewSampleLoadedEvent creates a new SampleLoadedEvent.
func NewSampleLoadedEvent(sample Sample, duration time.Duration) SampleLoadedEvent {
	return SampleLoadedEvent{baseEvent: newBaseEvent(), Sample: sample, Duration: duration}
}

// PlaybackStartedEvent is published when playback starts or resumes.
type PlaybackStartedEvent struct {
	baseEvent
	Sample Sample
}

// Type returns the event type.
func (e PlaybackStartedEvent) Type() EventType { return EventPlaybackStarted }

// NewPlaybackStartedEvent creates a new PlaybackStartedEvent.
func NewPlaybackStartedEvent(sample Sample) PlaybackStartedEvent {
	return PlaybackStartedEvent{baseEvent: newBaseEvent(), Sample: sample}
}

// PlaybackPausedEvent is published when playback is paused.
type PlaybackPausedEvent struct {
	baseEvent
	Sample   Sample
	Position int
}

// Type returns the event type.
func (e PlaybackPausedEvent) Type() EventType { return EventPlaybackPaused }

// NewPlaybackPausedEvent creates a new PlaybackPausedEvent.
func NewPlaybackPausedEvent(sample Sample, position int) PlaybackPausedEvent {
	return PlaybackPausedEvent{baseEvent: newBaseEvent(), Sample: sample, Position: position}
}

// PlaybackStoppedEvent is published when playback is explicitly stopped.
type PlaybackStoppedEvent struct {
	baseEvent
	Sample Sample
}

// Type returns the event type.
func (e PlaybackStoppedEvent) Type() EventType { return EventPlaybackStopped }

// NewPlaybackStoppedEvent creates a new PlaybackStoppedEvent.
func NewPlaybackStoppedEvent(sample Sample) PlaybackStoppedEvent {
	return PlaybackStoppedEvent{baseEvent: newBaseEvent(), Sample: sample}
}

// PlaybackCompletedEvent is published when the render callback reaches
// end-of-buffer with loop disabled and playback auto-stops.
type PlaybackCompletedEvent struct {
	baseEvent
	Sample Sample
}

// Type returns the event type.
func (e PlaybackCompletedEvent) Type() EventType { return EventPlaybackCompleted }

// NewPlaybackCompletedEvent creates a new PlaybackCompletedEvent.
func NewPlaybackCompletedEvent(sample Sample) PlaybackCompletedEvent {
	return PlaybackCompletedEvent{baseEvent: newBaseEvent(), Sample: sample}
}

// PlaybackProgressEvent is published periodically while a sample is loaded.
type PlaybackProgressEvent struct {
	baseEvent
	Position int
	Progress float64
	Duration time.Duration
}

// Type returns the event type.
func (e PlaybackProgressEvent) Type() EventType { return EventPlaybackProgress }

// NewPlaybackProgressEvent creates a new PlaybackProgressEvent.
func NewPlaybackProgressEvent(position int, progress float64, duration time.Duration) PlaybackProgressEvent {
	return PlaybackProgressEvent{baseEvent: newBaseEvent(), Position: position, Progress: progress, Duration: duration}
}

// PlaybackErrorEvent is published when a sample fails to load.
type PlaybackErrorEvent struct {
	baseEvent
	Sample Sample
	Error  error
}

// Type returns the event type.
func (e PlaybackErrorEvent) Type() EventType { return EventPlaybackError }

// NewPlaybackErrorEvent creates a new PlaybackErrorEvent.
func NewPlaybackErrorEvent(sample Sample, err error) PlaybackErrorEvent {
	return PlaybackErrorEvent{baseEvent: newBaseEvent(), Sample: sample, Error: err}
}

// PlaybackSeekedEvent is published after a seek operation.
type PlaybackSeekedEvent struct {
	baseEvent
	Position int
	Progress float64
}

// Type returns the event type.
func (e PlaybackSeekedEvent) Type() EventType { return EventPlaybackSeeked }

// NewPlaybackSeekedEvent creates a new PlaybackSeekedEvent.
func NewPlaybackSeekedEvent(position int, progress float64) PlaybackSeekedEvent {
	return PlaybackSeekedEvent{baseEvent: newBaseEvent(), Position: position, Progress: progress}
}

// LoopToggledEvent is published when the loop flag changes.
type LoopToggledEvent struct {
	baseEvent
	Enabled bool
}

// Type returns the event type.
func (e LoopToggledEvent) Type() EventType { return EventLoopToggled }

// NewLoopToggledEvent creates a new LoopToggledEvent.
func NewLoopToggledEvent(enabled bool) LoopToggledEvent {
	return LoopToggledEvent{baseEvent: newBaseEvent(), Enabled: enabled}
}

// ScanStartedEvent is published when a library import begins.
type ScanStartedEvent struct {
	baseEvent
	Folder string
}

// Type returns the event type.
func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// NewScanStartedEvent creates a new ScanStartedEvent.
func NewScanStartedEvent(folder string) ScanStartedEvent {
	return ScanStartedEvent{baseEvent: newBaseEvent(), Folder: folder}
}

// ScanProgressEvent is published for each file processed during import.
type ScanProgressEvent struct {
	baseEvent
	Progress ScanProgress
}

// Type returns the event type.
func (e ScanProgressEvent) Type() EventType { return EventScanProgress }

// NewScanProgressEvent creates a new ScanProgressEvent.
func NewScanProgressEvent(progress ScanProgress) ScanProgressEvent {
	return ScanProgressEvent{baseEvent: newBaseEvent(), Progress: progress}
}

// ScanCompletedEvent is published when a library import finishes.
type ScanCompletedEvent struct {
	baseEvent
	Samples []Sample
}

// Type returns the event type.
func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// NewScanCompletedEvent creates a new ScanCompletedEvent.
func NewScanCompletedEvent(samples []Sample) ScanCompletedEvent {
	return ScanCompletedEvent{baseEvent: newBaseEvent(), Samples: samples}
}

// ScanCancelledEvent is published when a library import is cancelled.
type ScanCancelledEvent struct {
	baseEvent
	Reason string
}

// Type returns the event type.
func (e ScanCancelledEvent) Type() EventType { return EventScanCancelled }

// NewScanCancelledEvent creates a new ScanCancelledEvent.
func NewScanCancelledEvent(reason string) ScanCancelledEvent {
	return ScanCancelledEvent{baseEvent: newBaseEvent(), Reason: reason}
}
