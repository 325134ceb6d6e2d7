package service

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/ports"
)

// LibraryService imports audio files into the sample catalog. A scan walks
// a directory tree, probes each candidate file for metadata, and persists
// new samples; files already cataloged under the same path are left alone.
//
// All operations are thread-safe via sync.RWMutex.
type LibraryService struct {
	logger *slog.Logger
	engine ports.AudioEngine
	repo   ports.SampleRepository
	bus    ports.EventBus

	scanning      bool
	cancelScan    context.CancelFunc
	supportedExts []string

	mu sync.RWMutex
}

// NewLibraryService creates a library service.
func NewLibraryService(
	logger *slog.Logger,
	engine ports.AudioEngine,
	repo ports.SampleRepository,
	bus ports.EventBus,
) *LibraryService {
	return &LibraryService{
		logger: logger,
		engine: engine,
		repo:   repo,
		bus:    bus,
		supportedExts: []string{
			".wav",
			".aif", ".aiff",
			".flac",
			".mp3",
			".ogg", ".oga",
		},
	}
}

// ScanFolder walks folderPath recursively, probes every supported audio
// file and saves it to the catalog. Returns the samples found this scan,
// in walk order. Publishes scan events throughout. Files that fail to
// probe are skipped with a warning, not treated as scan failures.
func (s *LibraryService) ScanFolder(folderPath string) ([]domain.Sample, error) {
	s.mu.Lock()
	if s.scanning {
		s.mu.Unlock()
		return nil, domain.NewServiceError("LibraryService", "ScanFolder", "scan already in progress", nil)
	}
	s.scanning = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelScan = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.scanning = false
		s.cancelScan = nil
		s.mu.Unlock()
		cancel()
	}()

	s.bus.Publish(domain.NewScanStartedEvent(folderPath))

	files, err := s.collectAudioFiles(ctx, folderPath)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.bus.Publish(domain.NewScanCancelledEvent("cancelled"))
			return nil, domain.ErrScanCancelled
		}
		return nil, err
	}

	samples := make([]domain.Sample, 0, len(files))
	total := len(files)

	for i, filePath := range files {
		select {
		case <-ctx.Done():
			s.bus.Publish(domain.NewScanCancelledEvent("cancelled"))
			return samples, domain.ErrScanCancelled
		default:
		}

		sample, err := s.engine.Metadata(filePath)
		if err != nil {
			s.logger.Warn("skipping unreadable file",
				slog.String("path", filePath),
				slog.Any("error", err))
			continue
		}

		if err := s.repo.Save(sample); err != nil {
			s.logger.Warn("failed to catalog sample",
				slog.String("path", filePath),
				slog.Any("error", err))
			continue
		}

		samples = append(samples, *sample)

		s.bus.Publish(domain.NewScanProgressEvent(domain.ScanProgress{
			CurrentFile:  filePath,
			FilesScanned: i + 1,
			TotalFiles:   total,
			SamplesFound: len(samples),
		}))
	}

	s.logger.Info("folder scan finished",
		slog.String("folder", folderPath),
		slog.Int("files", total),
		slog.Int("samples", len(samples)))

	s.bus.Publish(domain.NewScanCompletedEvent(samples))

	return samples, nil
}

// CancelScan cancels a running scan. No-op when nothing is scanning.
func (s *LibraryService) CancelScan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelScan != nil {
		s.cancelScan()
	}
}

// IsScanning reports whether a scan is in progress.
func (s *LibraryService) IsScanning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanning
}

// Samples returns the full catalog.
func (s *LibraryService) Samples() ([]domain.Sample, error) {
	return s.repo.All()
}

// SampleByPath returns the cataloged sample for path, or ErrSampleNotFound.
func (s *LibraryService) SampleByPath(path string) (*domain.Sample, error) {
	return s.repo.ByPath(path)
}

// IsFormatSupported reports whether the file's extension is one the decoder
// stack handles.
func (s *LibraryService) IsFormatSupported(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range s.supportedExts {
		if ext == supported {
			return true
		}
	}
	return false
}

// collectAudioFiles walks root and returns the supported audio files in
// sorted order.
func (s *LibraryService) collectAudioFiles(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal
			s.logger.Warn("scan error", slog.String("path", path), slog.Any("error", err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			// Skip hidden directories
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}

		if s.IsFormatSupported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, context.Canceled
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewServiceError("LibraryService", "ScanFolder", "folder does not exist", err)
		}
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
