package decode

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrybley/sample-duck/internal/domain"
	"github.com/henrybley/sample-duck/internal/logger"
)

// writeWav writes a minimal 16-bit PCM WAV file with the given interleaved
// samples and returns its path.
func writeWav(t *testing.T, channels, rate int, samples []int16) string {
	t.Helper()

	dataLen := len(samples) * 2
	buf := make([]byte, 0, 44+dataLen)

	le := binary.LittleEndian
	u32 := func(v uint32) []byte { b := make([]byte, 4); le.PutUint32(b, v); return b }
	u16 := func(v uint16) []byte { b := make([]byte, 2); le.PutUint16(b, v); return b }

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, u32(uint32(36+dataLen))...)
	buf = append(buf, []byte("WAVE")...)
	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, u32(16)...)
	buf = append(buf, u16(1)...) // PCM
	buf = append(buf, u16(uint16(channels))...)
	buf = append(buf, u32(uint32(rate))...)
	buf = append(buf, u32(uint32(rate*channels*2))...)
	buf = append(buf, u16(uint16(channels*2))...)
	buf = append(buf, u16(16)...)
	buf = append(buf, []byte("data")...)
	buf = append(buf, u32(uint32(dataLen))...)
	for _, s := range samples {
		buf = append(buf, u16(uint16(s))...)
	}

	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestDecodeFileWav(t *testing.T) {
	reg := NewRegistry(logger.NewTestLogger())

	// One second of stereo silence with a known spike in the middle
	samples := make([]int16, 44100*2)
	samples[44100] = 32767
	path := writeWav(t, 2, 44100, samples)

	pcm, err := reg.DecodeFile(path)
	require.NoError(t, err)

	assert.Equal(t, "wav", pcm.Codec)
	assert.Equal(t, 2, pcm.Channels)
	assert.Equal(t, 44100, pcm.SampleRate)
	assert.Len(t, pcm.Samples, 44100*2)
	assert.Equal(t, float32(1.0), pcm.Samples[44100])
	assert.Equal(t, float32(0.0), pcm.Samples[0])
}

func TestDecodeFileMissing(t *testing.T) {
	reg := NewRegistry(logger.NewTestLogger())

	_, err := reg.DecodeFile(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestDecodeFileUnrecognizedHeader(t *testing.T) {
	reg := NewRegistry(logger.NewTestLogger())

	path := filepath.Join(t.TempDir(), "noise.bin")
	require.NoError(t, os.WriteFile(path, []byte("this is not audio data at all"), 0o644))

	_, err := reg.DecodeFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestDecodeFileTruncatedHeader(t *testing.T) {
	reg := NewRegistry(logger.NewTestLogger())

	path := filepath.Join(t.TempDir(), "tiny.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))

	_, err := reg.DecodeFile(path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestProbeFile(t *testing.T) {
	reg := NewRegistry(logger.NewTestLogger())

	path := writeWav(t, 1, 22050, make([]int16, 2205))

	info, err := reg.ProbeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "wav", info.Codec)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 22050, info.SampleRate)
}

func TestDecodeEmptyWavReportsNoSamples(t *testing.T) {
	reg := NewRegistry(logger.NewTestLogger())

	path := writeWav(t, 2, 44100, nil)

	_, err := reg.DecodeFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSamplesDecoded)

	var decErr *domain.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, path, decErr.Path)
}
