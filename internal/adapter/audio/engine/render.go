package engine

import (
	"encoding/binary"
	"math"

	"github.com/henrybley/sample-duck/internal/domain"
)

// bytesPerSample is the wire size of one float32 output sample.
const bytesPerSample = 4

// render fills one hardware period with little-endian float32 samples. It
// runs on the audio subsystem's thread at the device cadence and must never
// block for long, allocate, or perform I/O.
//
// The period is zero-filled first, so every early return produces silence.
// Frames are copied whole; when fewer than a full frame remains the callback
// either wraps to the start (loop enabled) or flips the state to Stopped and
// leaves the position at the buffer end. The position atomic is written back
// once per callback, not once per frame.
func (e *Engine) render(out []byte) {
	for i := range out {
		out[i] = 0
	}

	if domain.PlaybackStatus(e.state.Load()) != domain.StatusPlaying {
		return
	}

	e.bufMu.Lock()
	defer e.bufMu.Unlock()

	if len(e.samples) == 0 {
		return
	}

	pos := int(e.pos.Load())
	frameElems := e.outChannels
	frameBytes := frameElems * bytesPerSample

	for off := 0; off+frameBytes <= len(out); off += frameBytes {
		switch {
		case pos+frameElems <= len(e.samples):
			writeFrame(out[off:off+frameBytes], e.samples[pos:pos+frameElems])
			pos += frameElems
		case e.loop.Load():
			pos = 0
			if frameElems <= len(e.samples) {
				writeFrame(out[off:off+frameBytes], e.samples[:frameElems])
				pos = frameElems
			}
		default:
			// End of buffer without loop: terminal stop. The position
			// stays at the buffer end so progress reads 1.0 until the
			// next explicit transport action.
			e.state.Store(int32(domain.StatusStopped))
			e.pos.Store(int64(pos))
			return
		}
	}

	e.pos.Store(int64(pos))
}

// writeFrame encodes one interleaved frame as little-endian float32.
func writeFrame(dst []byte, frame []float32) {
	for i, s := range frame {
		binary.LittleEndian.PutUint32(dst[i*bytesPerSample:], math.Float32bits(s))
	}
}
