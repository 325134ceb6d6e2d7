package decode

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/go-audio/wav"

	"github.com/henrybley/sample-duck/internal/domain"
)

// wavAudioFormatIEEEFloat is the WAVE format tag for IEEE float PCM.
const wavAudioFormatIEEEFloat = 3

// wavDecoder decodes RIFF/WAVE files: unsigned 8-bit, signed 16/24/32-bit
// integer PCM, and 32/64-bit IEEE float.
type wavDecoder struct{}

func (wavDecoder) Name() string { return "wav" }

func (wavDecoder) Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[0:4], []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE"))
}

func (wavDecoder) Decode(r io.ReadSeeker) (*PCM, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, domain.ErrUnsupportedFormat
	}

	pcm := &PCM{
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
		Codec:      "wav",
	}

	if d.WavAudioFormat == wavAudioFormatIEEEFloat {
		samples, err := decodeWavFloat(d)
		if err != nil {
			return nil, err
		}
		pcm.Samples = samples
		return pcm, nil
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = int(d.BitDepth)
	}

	samples := make([]float32, len(buf.Data))
	switch bits {
	case 8:
		// WAV stores 8-bit PCM unsigned.
		for i, v := range buf.Data {
			samples[i] = normU8(v)
		}
	case 16, 24, 32:
		for i, v := range buf.Data {
			samples[i] = normSigned(v, bits)
		}
	default:
		return nil, domain.ErrUnsupportedFormat
	}

	pcm.Samples = samples
	return pcm, nil
}

func (wavDecoder) Probe(r io.ReadSeeker) (*Info, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, domain.ErrUnsupportedFormat
	}
	return &Info{
		Codec:      "wav",
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
	}, nil
}

// decodeWavFloat reads the data chunk of an IEEE float WAV directly;
// go-audio's PCM buffers only cover the integer formats. 64-bit samples are
// truncated to float32.
func decodeWavFloat(d *wav.Decoder) ([]float32, error) {
	if err := d.FwdToPCM(); err != nil {
		return nil, err
	}

	bytesPerSample := int(d.BitDepth) / 8
	if bytesPerSample != 4 && bytesPerSample != 8 {
		return nil, domain.ErrUnsupportedFormat
	}

	var samples []float32
	chunk := make([]byte, 4096*bytesPerSample)

	for {
		n, err := io.ReadFull(d.PCMChunk, chunk)
		if n > 0 {
			for off := 0; off+bytesPerSample <= n; off += bytesPerSample {
				if bytesPerSample == 4 {
					bits := binary.LittleEndian.Uint32(chunk[off:])
					samples = append(samples, math.Float32frombits(bits))
				} else {
					bits := binary.LittleEndian.Uint64(chunk[off:])
					samples = append(samples, normF64(math.Float64frombits(bits)))
				}
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
