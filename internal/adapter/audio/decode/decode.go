// Package decode turns audio container files into the engine's canonical
// in-memory form: interleaved float32 samples normalized to [-1, 1].
//
// Each supported container has its own decoder; all of them feed the shared
// normalization and remix steps so format-specific branching stays out of the
// playback engine.
package decode

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/henrybley/sample-duck/internal/domain"
)

// sniffLen is the number of header bytes used to recognize a container.
const sniffLen = 12

// PCM is a fully decoded audio stream at its source channel layout.
type PCM struct {
	// Samples is the interleaved normalized sample data
	Samples []float32

	// Channels is the source channel count
	Channels int

	// SampleRate is the source sample rate in Hz
	SampleRate int

	// Codec is the container/codec label (wav, aiff, flac, vorbis, mp3)
	Codec string
}

// Info describes an audio stream's parameters, read from the header without
// decoding the payload. Used for catalog entries.
type Info struct {
	Codec      string
	Channels   int
	SampleRate int
}

// Decoder decodes one container family.
type Decoder interface {
	// Name returns the codec label.
	Name() string

	// Sniff reports whether the header bytes look like this container.
	Sniff(header []byte) bool

	// Decode fully decodes the stream. A failure on any packet is fatal;
	// partial files are rejected rather than truncated silently.
	Decode(r io.ReadSeeker) (*PCM, error)

	// Probe reads the stream parameters without decoding the payload.
	Probe(r io.ReadSeeker) (*Info, error)
}

// Registry holds the known decoders in sniff order. MP3 goes last: its frame
// sync is the weakest signature of the set.
type Registry struct {
	decoders []Decoder
	logger   *slog.Logger
}

// NewRegistry creates a registry with all built-in decoders registered.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		decoders: []Decoder{
			wavDecoder{},
			aiffDecoder{},
			flacDecoder{},
			vorbisDecoder{},
			mp3Decoder{},
		},
		logger: logger,
	}
}

// match returns the first decoder recognizing the header, or nil.
func (reg *Registry) match(header []byte) Decoder {
	for _, d := range reg.decoders {
		if d.Sniff(header) {
			return d
		}
	}
	return nil
}

// DecodeFile opens and fully decodes the file at path.
//
// Errors are typed at this boundary: file access problems come back as I/O
// errors, an unrecognized container as domain.ErrUnsupportedFormat, and any
// mid-stream decoder failure (or an empty result) as *domain.DecodeError.
func (reg *Registry) DecodeFile(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	d, err := reg.matchFile(f, path)
	if err != nil {
		return nil, err
	}

	pcm, err := d.Decode(f)
	if err != nil {
		return nil, asDecodeError(path, err)
	}
	if len(pcm.Samples) == 0 {
		return nil, domain.NewDecodeError(path, 0, domain.ErrNoSamplesDecoded)
	}

	reg.logger.Debug("decoded audio file",
		slog.String("path", path),
		slog.String("codec", pcm.Codec),
		slog.Int("channels", pcm.Channels),
		slog.Int("sample_rate", pcm.SampleRate),
		slog.Int("samples", len(pcm.Samples)))

	return pcm, nil
}

// ProbeFile reads the stream parameters of the file at path.
func (reg *Registry) ProbeFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	d, err := reg.matchFile(f, path)
	if err != nil {
		return nil, err
	}

	info, err := d.Probe(f)
	if err != nil {
		return nil, asDecodeError(path, err)
	}
	return info, nil
}

// matchFile sniffs the header and rewinds the file for the chosen decoder.
func (reg *Registry) matchFile(f *os.File, path string) (Decoder, error) {
	header := make([]byte, sniffLen)
	if _, err := io.ReadFull(f, header); err != nil {
		// Too short to carry any recognizable audio container.
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	d := reg.match(header)
	if d == nil {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	return d, nil
}

// asDecodeError normalizes decoder failures into typed errors, filling in the
// file path on DecodeErrors raised inside a decoder.
func asDecodeError(path string, err error) error {
	if errors.Is(err, domain.ErrUnsupportedFormat) {
		return fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}
	var dErr *domain.DecodeError
	if errors.As(err, &dErr) {
		if dErr.Path == "" {
			dErr.Path = path
		}
		return dErr
	}
	return domain.NewDecodeError(path, 0, err)
}
