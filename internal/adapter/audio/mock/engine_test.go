package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrybley/sample-duck/internal/domain"
)

func TestMockTransportMirrorsRealSemantics(t *testing.T) {
	m := NewEngine()

	// Play with no buffer stays Stopped
	m.Play()
	assert.Equal(t, domain.StatusStopped, m.Status())

	require.NoError(t, m.Load("/s/kick.wav"))
	assert.Equal(t, []string{"/s/kick.wav"}, m.LoadCalls())

	m.Play()
	assert.Equal(t, domain.StatusPlaying, m.Status())

	// Toggle from Playing stops with rewind
	m.Seek(100)
	m.TogglePlayback()
	assert.Equal(t, domain.StatusStopped, m.Status())
	assert.Equal(t, 0, m.Position())
}

func TestMockSeekClamps(t *testing.T) {
	m := NewEngine()
	require.NoError(t, m.Load("/s/kick.wav"))

	m.Seek(-5)
	assert.Equal(t, 0, m.Position())

	m.Seek(m.SampleCount() + 100)
	assert.Equal(t, m.SampleCount(), m.Position())
}

func TestMockFailLoadLeavesStateUntouched(t *testing.T) {
	m := NewEngine()
	require.NoError(t, m.Load("/s/kick.wav"))
	m.Play()

	m.SetFailLoad(true)
	err := m.Load("/s/broken.wav")
	require.Error(t, err)
	assert.Equal(t, domain.StatusPlaying, m.Status())
}

func TestMockFinishPlayback(t *testing.T) {
	m := NewEngine()
	require.NoError(t, m.Load("/s/kick.wav"))
	m.Play()

	m.FinishPlayback()
	assert.Equal(t, domain.StatusStopped, m.Status())
	assert.Equal(t, m.SampleCount(), m.Position())
	assert.InDelta(t, 1.0, m.Progress(), 0.001)

	// Looping playback does not auto-finish
	m.SetLoop(true)
	m.Play()
	m.FinishPlayback()
	assert.Equal(t, domain.StatusPlaying, m.Status())
}

func TestMockCloseRejectsLoad(t *testing.T) {
	m := NewEngine()
	require.NoError(t, m.Close())
	assert.ErrorIs(t, m.Load("/s/kick.wav"), domain.ErrEngineClosed)
}
