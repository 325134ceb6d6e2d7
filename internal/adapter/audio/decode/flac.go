package decode

import (
	"bytes"
	"io"

	"github.com/mewkiz/flac"

	"github.com/henrybley/sample-duck/internal/domain"
)

// flacDecoder decodes native FLAC streams. FLAC frames carry signed PCM at
// 8 to 32 bits per sample; 16 and 24 are the common cases.
type flacDecoder struct{}

func (flacDecoder) Name() string { return "flac" }

func (flacDecoder) Sniff(header []byte) bool {
	return len(header) >= 4 && bytes.Equal(header[0:4], []byte("fLaC"))
}

func (flacDecoder) Decode(r io.ReadSeeker) (*PCM, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, domain.ErrUnsupportedFormat
	}

	channels := int(stream.Info.NChannels)
	bits := int(stream.Info.BitsPerSample)

	var samples []float32
	packet := 0

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Fail-fast: one bad frame rejects the whole file.
			return nil, domain.NewDecodeError("", packet+1, err)
		}
		packet++

		if len(frame.Subframes) != channels {
			return nil, domain.NewDecodeError("", packet, domain.ErrUnsupportedFormat)
		}

		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				samples = append(samples, normSigned(int(frame.Subframes[ch].Samples[i]), bits))
			}
		}
	}

	return &PCM{
		Samples:    samples,
		Channels:   channels,
		SampleRate: int(stream.Info.SampleRate),
		Codec:      "flac",
	}, nil
}

func (flacDecoder) Probe(r io.ReadSeeker) (*Info, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, domain.ErrUnsupportedFormat
	}
	return &Info{
		Codec:      "flac",
		Channels:   int(stream.Info.NChannels),
		SampleRate: int(stream.Info.SampleRate),
	}, nil
}
