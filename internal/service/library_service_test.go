package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrybley/sample-duck/internal/adapter/audio/mock"
	"github.com/henrybley/sample-duck/internal/adapter/eventbus"
	"github.com/henrybley/sample-duck/internal/adapter/repository/sqlite"
	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/logger"
	"github.com/henrybley/sample-duck/internal/testutil"
)

func newTestLibrary(t *testing.T) (*LibraryService, *mock.Engine, *eventRecorder) {
	t.Helper()

	engine := mock.NewEngine()
	repo, err := sqlite.NewSampleRepository(":memory:", logger.NewTestLogger())
	require.NoError(t, err)

	bus := eventbus.NewSyncEventBus()
	recorder := &eventRecorder{}
	bus.SubscribeAll(recorder.record)

	svc := NewLibraryService(logger.NewTestLogger(), engine, repo, bus)
	t.Cleanup(func() {
		_ = repo.Close()
		_ = bus.Close()
	})

	return svc, engine, recorder
}

// makeSampleDir creates a directory tree with the given file names.
func makeSampleDir(t *testing.T, names ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("stub"), 0o644))
	}
	return root
}

func TestScanFolderImportsSupportedFiles(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	svc, _, recorder := newTestLibrary(t)
	root := makeSampleDir(t,
		"kick.wav",
		"snare.flac",
		"loops/amen.aiff",
		"readme.txt",
		"cover.png",
	)

	samples, err := svc.ScanFolder(root)
	require.NoError(t, err)
	assert.Len(t, samples, 3)

	assert.True(t, recorder.sawType(domain.EventScanStarted))
	assert.True(t, recorder.sawType(domain.EventScanProgress))
	assert.True(t, recorder.sawType(domain.EventScanCompleted))

	cataloged, err := svc.Samples()
	require.NoError(t, err)
	assert.Len(t, cataloged, 3)
}

func TestScanFolderIdempotent(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	svc, _, _ := newTestLibrary(t)
	root := makeSampleDir(t, "kick.wav", "snare.ogg")

	_, err := svc.ScanFolder(root)
	require.NoError(t, err)

	// Rescanning the same folder does not duplicate catalog rows
	_, err = svc.ScanFolder(root)
	require.NoError(t, err)

	cataloged, err := svc.Samples()
	require.NoError(t, err)
	assert.Len(t, cataloged, 2)
}

func TestScanFolderSkipsUnreadableFiles(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	svc, engine, _ := newTestLibrary(t)
	engine.SetFailMetadata(true)
	root := makeSampleDir(t, "kick.wav")

	samples, err := svc.ScanFolder(root)
	require.NoError(t, err, "unreadable files are skipped, not fatal")
	assert.Empty(t, samples)
}

func TestScanFolderMissing(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	svc, _, _ := newTestLibrary(t)

	_, err := svc.ScanFolder(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var svcErr *domain.ServiceError
	assert.ErrorAs(t, err, &svcErr)
}

func TestScanSkipsHiddenDirectories(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	svc, _, _ := newTestLibrary(t)
	root := makeSampleDir(t, "kick.wav", ".git/blob.wav")

	samples, err := svc.ScanFolder(root)
	require.NoError(t, err)
	assert.Len(t, samples, 1)
}

func TestSampleByPath(t *testing.T) {
	t.Cleanup(func() { testutil.VerifyNoLeaks(t) })

	svc, _, _ := newTestLibrary(t)
	root := makeSampleDir(t, "kick.wav")

	_, err := svc.ScanFolder(root)
	require.NoError(t, err)

	got, err := svc.SampleByPath(filepath.Join(root, "kick.wav"))
	require.NoError(t, err)
	assert.Equal(t, "kick.wav", got.Name)

	_, err = svc.SampleByPath("/nope.wav")
	assert.ErrorIs(t, err, domain.ErrSampleNotFound)
}

func TestIsFormatSupported(t *testing.T) {
	svc, _, _ := newTestLibrary(t)

	tests := []struct {
		path string
		want bool
	}{
		{"kick.wav", true},
		{"kick.WAV", true},
		{"loop.aif", true},
		{"loop.aiff", true},
		{"pad.flac", true},
		{"vox.mp3", true},
		{"fx.ogg", true},
		{"fx.oga", true},
		{"notes.txt", false},
		{"song.m4a", false},
		{"noext", false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, svc.IsFormatSupported(tt.path), "path %s", tt.path)
	}
}

func TestIsScanningFalseWhenIdle(t *testing.T) {
	svc, _, _ := newTestLibrary(t)
	assert.False(t, svc.IsScanning())

	// CancelScan with no scan running is a no-op
	svc.CancelScan()
}
