package decode

import (
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/henrybley/sample-duck/internal/domain"
)

// mp3Channels is go-mp3's fixed output layout: 16-bit little-endian stereo.
const mp3Channels = 2

// mp3Decoder decodes MPEG audio via go-mp3.
type mp3Decoder struct{}

func (mp3Decoder) Name() string { return "mp3" }

func (mp3Decoder) Sniff(header []byte) bool {
	if len(header) < 3 {
		return false
	}
	// ID3v2 tag, or a bare MPEG frame sync.
	if header[0] == 'I' && header[1] == 'D' && header[2] == '3' {
		return true
	}
	return header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

func (mp3Decoder) Decode(r io.ReadSeeker) (*PCM, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, domain.ErrUnsupportedFormat
	}

	var samples []float32
	buf := make([]byte, 4096*mp3Channels*2)
	carry := 0 // bytes left over from a read that split a sample
	packet := 0

	for {
		n, err := dec.Read(buf[carry:])
		if n > 0 {
			packet++
			total := carry + n
			for off := 0; off+2 <= total; off += 2 {
				v := int16(uint16(buf[off]) | uint16(buf[off+1])<<8)
				samples = append(samples, normS16(int(v)))
			}
			carry = total % 2
			if carry > 0 {
				buf[0] = buf[total-1]
			}
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
		Channels:   mp3Channels,
		SampleRate: dec.SampleRate(),
		Codec:      "mp3",
	}, nil
}

func (mp3Decoder) Probe(r io.ReadSeeker) (*Info, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, domain.ErrUnsupportedFormat
	}
	return &Info{
		Codec:      "mp3",
		Channels:   mp3Channels,
		SampleRate: dec.SampleRate(),
	}, nil
}
