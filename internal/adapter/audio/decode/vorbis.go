package decode

import (
	"bytes"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/henrybley/sample-duck/internal/domain"
)

// vorbisDecoder decodes Ogg Vorbis streams. Vorbis already produces float32
// samples in [-1, 1], so normalization is a passthrough.
type vorbisDecoder struct{}

func (vorbisDecoder) Name() string { return "vorbis" }

func (vorbisDecoder) Sniff(header []byte) bool {
	return len(header) >= 4 && bytes.Equal(header[0:4], []byte("OggS"))
}

func (vorbisDecoder) Decode(r io.ReadSeeker) (*PCM, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, domain.ErrUnsupportedFormat
	}

	var samples []float32
	buf := make([]float32, 4096*dec.Channels())
	packet := 0

	for {
		n, err := dec.Read(buf)
		if n > 0 {
			packet++
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewDecodeError("", packet+1, err)
		}
	}

	return &PCM{
		Samples:    samples,
		Channels:   dec.Channels(),
		SampleRate: dec.SampleRate(),
		Codec:      "vorbis",
	}, nil
}

func (vorbisDecoder) Probe(r io.ReadSeeker) (*Info, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, domain.ErrUnsupportedFormat
	}
	return &Info{
		Codec:      "vorbis",
		Channels:   dec.Channels(),
		SampleRate: dec.SampleRate(),
	}, nil
}
