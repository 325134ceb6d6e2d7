// Package domain defines domain-specific errors.
// These errors represent business logic failures and are independent of infrastructure.
package domain

import (
	"errors"
	"fmt"
)

// Common errors that the engine and services can return.
var (
	// ErrNoOutputDevice is returned when no usable audio output device exists.
	// This is fatal to engine construction; there is no degraded silent mode.
	ErrNoOutputDevice = errors.New("no audio output device available")

	// ErrUnsupportedFormat is returned when a file carries no recognizable
	// audio container or an unsupported sample encoding.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoSamplesDecoded is returned when a file decodes to zero samples.
	ErrNoSamplesDecoded = errors.New("no audio samples decoded")

	// ErrNoSampleLoaded is returned when playback is attempted with no sample loaded.
	ErrNoSampleLoaded = errors.New("no sample loaded")

	// ErrSampleNotFound is returned when a requested catalog entry does not exist.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrScanCancelled is returned when a library import is cancelled.
	ErrScanCancelled = errors.New("scan cancelled")

	// ErrEngineClosed is returned when an operation is attempted on a closed engine.
	ErrEngineClosed = errors.New("audio engine closed")
)

// DecodeError represents a fatal failure while decoding an audio file.
// A failure on any packet rejects the whole file; partial files are not
// truncated silently.
type DecodeError struct {
	Path   string // File being decoded
	Packet int    // Packet index at which decoding failed (0 if not applicable)
	Err    error  // Underlying decoder error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Packet > 0 {
		return fmt.Sprintf("decoding '%s' failed at packet %d: %v", e.Path, e.Packet, e.Err)
	}
	return fmt.Sprintf("decoding '%s' failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(path string, packet int, err error) *DecodeError {
	return &DecodeError{Path: path, Packet: packet, Err: err}
}

// EngineError represents an error from the audio engine or the host audio
// subsystem. Device-level errors are surfaced verbatim via Err.
type EngineError struct {
	Op      string // Operation that failed (e.g., "init", "load", "start")
	Path    string // File path (if applicable)
	Message string // Error message
	Err     error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("audio engine %s failed for '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("audio engine %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError creates a new EngineError.
func NewEngineError(op, path, message string, err error) *EngineError {
	return &EngineError{Op: op, Path: path, Message: message, Err: err}
}

// RepositoryError represents an error from the sample catalog.
type RepositoryError struct {
	Op      string // Operation that failed (e.g., "save", "all", "by_path")
	Message string // Error message
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("catalog %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new RepositoryError.
func NewRepositoryError(op, message string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Message: message, Err: err}
}

// ServiceError represents an error from a service layer operation.
type ServiceError struct {
	Service string // Service name (e.g., "PlaybackService", "LibraryService")
	Op      string // Operation that failed
	Message string // Error message
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("service %s.%s failed: %s", e.Service, e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op, message string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Message: message, Err: err}
}
