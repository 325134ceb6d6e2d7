// Package domain contains core business models and logic with no external dependencies.
// This package defines the fundamental entities of the sample-duck audio sample manager.
package domain

import (
	"time"
)

// Sample represents a single audio sample file known to the catalog.
// This is the core domain model mirrored by the persistence layer.
type Sample struct {
	// ID is the catalog row identifier (assigned by the repository, 0 if unsaved)
	ID int64

	// Path is the absolute path to the audio file on the filesystem.
	// The catalog is keyed on this value.
	Path string

	// Name is the display name (usually the file name)
	Name string

	// Format is the container/codec label (wav, flac, mp3, vorbis, aiff)
	Format string

	// SampleRate is the source sample rate in Hz as probed from the file header
	SampleRate int

	// Size is the file size in bytes
	Size int64
}

// PlaybackStatus represents the current playback state of the engine.
// Exactly one engine-wide value exists at any instant.
type PlaybackStatus int

const (
	// StatusStopped indicates playback is stopped, position reset to zero
	StatusStopped PlaybackStatus = iota

	// StatusPlaying indicates the render callback is consuming the buffer
	StatusPlaying

	// StatusPaused indicates playback is halted with position preserved
	StatusPaused
)

// String returns a human-readable representation of the playback status.
func (s PlaybackStatus) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// PeakPair is one downsampled window of the sample buffer, holding the
// minimum and maximum amplitude observed inside that window. A sequence of
// these is what the presentation layer draws as a waveform.
type PeakPair struct {
	Min float32
	Max float32
}

// PlaybackState is a point-in-time snapshot of the player, assembled by the
// playback service for queries and progress events.
type PlaybackState struct {
	// CurrentSample is the currently loaded sample (nil if none)
	CurrentSample *Sample

	// Status is the current playback status
	Status PlaybackStatus

	// Position is the current read position in buffer elements (not frames)
	Position int

	// Progress is Position over total samples as a 0..1 fraction (0 if empty)
	Progress float64

	// Duration is the total playable length of the loaded buffer
	Duration time.Duration

	// IsLooping indicates if the loop flag is set
	IsLooping bool
}

// ScanProgress represents the progress of a library import operation.
type ScanProgress struct {
	// CurrentFile is the file currently being probed
	CurrentFile string

	// FilesScanned is the number of files processed so far
	FilesScanned int

	// TotalFiles is the total number of files to scan
	TotalFiles int

	// SamplesFound is the number of valid audio samples found
	SamplesFound int
}

// Percentage returns the completion percentage (0-100), or -1 if total is unknown.
func (p ScanProgress) Percentage() float64 {
	if p.TotalFiles <= 0 {
		return -1
	}
	return float64(p.FilesScanned) / float64(p.TotalFiles) * 100.0
}
