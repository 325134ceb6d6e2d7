// Package app provides application-level orchestration and dependency
// injection. It wires the audio engine, the sample catalog and the services
// together and manages their lifecycle.
package app

import (
	"fmt"
	"log/slog"

	"github.com/henrybley/sample-duck/internal/adapter/audio/engine"
	"github.com/henrybley/sample-duck/internal/adapter/audio/mock"
	"github.com/henrybley/sample-duck/internal/adapter/eventbus"
	"github.com/henrybley/sample-duck/internal/adapter/repository/sqlite"
	"github.com/henrybley/sample-duck/internal/logger"
	"github.com/henrybley/sample-duck/internal/ports"
	"github.com/henrybley/sample-duck/internal/service"
)

// Application is the root structure that holds all dependencies, created
// with constructor-based injection.
type Application struct {
	logger *slog.Logger

	// Infrastructure
	eventBus    ports.EventBus
	audioEngine ports.AudioEngine
	sampleRepo  ports.SampleRepository

	// Services
	playbackService *service.PlaybackService
	libraryService  *service.LibraryService
}

// Config holds application configuration.
type Config struct {
	// DatabasePath is the sample catalog location; ":memory:" for ephemeral
	DatabasePath string

	// SampleRate is the audio output sample rate in Hz
	SampleRate int

	// Channels is the audio output channel count
	Channels int

	// UseMockAudio selects the in-memory engine instead of a real device
	UseMockAudio bool

	// LogLevel controls logging verbosity
	LogLevel slog.Level
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()
	engineCfg := engine.DefaultConfig()
	return Config{
		DatabasePath: "sample-duck.db",
		SampleRate:   engineCfg.SampleRate,
		Channels:     engineCfg.Channels,
		UseMockAudio: false,
		LogLevel:     loggerCfg.Level,
	}
}

// NewApplication creates an application with all dependencies wired.
func NewApplication(config Config) (*Application, error) {
	app := &Application{}

	app.logger = logger.NewLogger(logger.Config{
		Level:  config.LogLevel,
		Format: "text",
	})
	app.logger.Info("initializing application",
		slog.String("database", config.DatabasePath),
		slog.Int("sample_rate", config.SampleRate),
		slog.Int("channels", config.Channels))

	bus := eventbus.NewSyncEventBus()
	bus.SetLogger(app.logger.With(slog.String("component", "eventbus")))
	app.eventBus = bus

	if config.UseMockAudio {
		app.audioEngine = mock.NewEngine()
	} else {
		eng, err := engine.New(engine.Config{
			SampleRate: config.SampleRate,
			Channels:   config.Channels,
		}, app.logger.With(slog.String("component", "engine")))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize audio engine: %w", err)
		}
		app.audioEngine = eng
	}

	repo, err := sqlite.NewSampleRepository(config.DatabasePath,
		app.logger.With(slog.String("component", "catalog")))
	if err != nil {
		_ = app.audioEngine.Close()
		return nil, fmt.Errorf("failed to open sample catalog: %w", err)
	}
	app.sampleRepo = repo

	app.playbackService = service.NewPlaybackService(
		app.logger.With(slog.String("service", "playback")),
		app.audioEngine,
		app.eventBus,
	)

	app.libraryService = service.NewLibraryService(
		app.logger.With(slog.String("service", "library")),
		app.audioEngine,
		app.sampleRepo,
		app.eventBus,
	)

	return app, nil
}

// Playback returns the playback service.
func (a *Application) Playback() *service.PlaybackService {
	return a.playbackService
}

// Library returns the library service.
func (a *Application) Library() *service.LibraryService {
	return a.libraryService
}

// EventBus returns the application event bus.
func (a *Application) EventBus() ports.EventBus {
	return a.eventBus
}

// Shutdown gracefully shuts down the application, services first, then the
// engine and the catalog.
func (a *Application) Shutdown() {
	a.logger.Info("shutting down application")

	if a.libraryService != nil {
		a.libraryService.CancelScan()
	}

	if a.playbackService != nil {
		if err := a.playbackService.Shutdown(); err != nil {
			a.logger.Warn("failed to shutdown playback service", slog.Any("error", err))
		}
	}

	if a.audioEngine != nil {
		if err := a.audioEngine.Close(); err != nil {
			a.logger.Warn("failed to close audio engine", slog.Any("error", err))
		}
	}

	if a.sampleRepo != nil {
		if err := a.sampleRepo.Close(); err != nil {
			a.logger.Warn("failed to close sample catalog", slog.Any("error", err))
		}
	}

	if a.eventBus != nil {
		if err := a.eventBus.Close(); err != nil {
			a.logger.Warn("failed to close event bus", slog.Any("error", err))
		}
	}

	a.logger.Info("application shutdown complete")
}
