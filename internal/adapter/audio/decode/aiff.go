package decode

import (
	"bytes"
	"io"

	"github.com/go-audio/aiff"

	"github.com/henrybley/sample-duck/internal/domain"
)

// aiffDecoder decodes FORM/AIFF (and AIFC) files. AIFF stores signed
// big-endian PCM at 8, 16, 24 or 32 bits.
type aiffDecoder struct{}

func (aiffDecoder) Name() string { return "aiff" }

func (aiffDecoder) Sniff(header []byte) bool {
	if len(header) < 12 || !bytes.Equal(header[0:4], []byte("FORM")) {
		return false
	}
	return bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))
}

func (aiffDecoder) Decode(r io.ReadSeeker) (*PCM, error) {
	d := aiff.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, domain.ErrUnsupportedFormat
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = int(d.BitDepth)
	}
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, domain.ErrUnsupportedFormat
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = normSigned(v, bits)
	}

	return &PCM{
		Samples:    samples,
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
		Codec:      "aiff",
	}, nil
}

func (aiffDecoder) Probe(r io.ReadSeeker) (*Info, error) {
	d := aiff.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, domain.ErrUnsupportedFormat
	}
	d.ReadInfo()
	return &Info{
		Codec:      "aiff",
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
	}, nil
}
