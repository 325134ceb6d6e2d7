package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/testutil"
)

func newTestConfig() Config {
	cfg := DefaultConfig()
	cfg.DatabasePath = ":memory:"
	cfg.UseMockAudio = true
	cfg.LogLevel = slog.LevelWarn
	return cfg
}

func TestNewApplicationWiresEverything(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	application, err := NewApplication(newTestConfig())
	require.NoError(t, err)
	defer application.Shutdown()

	assert.NotNil(t, application.Playback())
	assert.NotNil(t, application.Library())
	assert.NotNil(t, application.EventBus())
}

func TestApplicationImportAndPlay(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	application, err := NewApplication(newTestConfig())
	require.NoError(t, err)
	defer application.Shutdown()

	dir := t.TempDir()
	path := filepath.Join(dir, "kick.wav")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o644))

	samples, err := application.Library().ScanFolder(dir)
	require.NoError(t, err)
	require.Len(t, samples, 1)

	require.NoError(t, application.Playback().LoadSample(samples[0]))
	require.NoError(t, application.Playback().Play())

	state := application.Playback().State()
	assert.Equal(t, domain.StatusPlaying, state.Status)
}

func TestShutdownIsCleanAfterUse(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	application, err := NewApplication(newTestConfig())
	require.NoError(t, err)

	require.NoError(t, application.Playback().LoadSample(domain.Sample{Path: "/s/kick.wav"}))
	require.NoError(t, application.Playback().Play())

	application.Shutdown()
}

func TestVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, "dev", info.Version)
	assert.Contains(t, info.FullString(), "sample-duck")
}
