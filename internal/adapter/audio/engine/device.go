package engine

import (
	"fmt"

	"github.com/gen2brain/malgo"

	"github.com/henrybley/sample-duck/internal/domain"
)

// outputDevice owns the backend context and playback device. The device
// invokes Engine.render on its own thread at the hardware cadence.
type outputDevice struct {
	ctx *malgo.AllocatedContext
	dev *malgo.Device
}

// openOutputDevice initializes the default playback device with a float32
// interleaved stream matching cfg. Context failures surface as
// ErrNoOutputDevice; stream build failures as an EngineError.
func openOutputDevice(e *Engine, cfg Config) (*outputDevice, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoOutputDevice, err)
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	devCfg.Playback.Format = malgo.FormatF32
	devCfg.Playback.Channels = uint32(cfg.Channels)
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(outputSamples, inputSamples []byte, frameCount uint32) {
			e.render(outputSamples)
		},
	}

	dev, err := malgo.InitDevice(ctx.Context, devCfg, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, domain.NewEngineError("open", "", "building output stream", err)
	}

	return &outputDevice{ctx: ctx, dev: dev}, nil
}

func (d *outputDevice) start() error {
	return d.dev.Start()
}

func (d *outputDevice) close() {
	d.dev.Uninit()
	_ = d.ctx.Uninit()
	d.ctx.Free()
}
