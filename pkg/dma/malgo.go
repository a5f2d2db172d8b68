package dma

import (
	"encoding/binary"
	"fmt"

	"github.com/gen2brain/malgo"
)

// Malgo captures one channel of the default miniaudio capture device in
// signed 32-bit format.
type Malgo struct {
	SampleRate uint32
	Channels   uint32 // interleaved channels opened on the device, 0 means 1
	InChannel  int

	ctx    *malgo.AllocatedContext
	device *malgo.Device
	block  []int32
}

func (m *Malgo) Start(buffer []int32, cb Callbacks) error {
	if m.device != nil {
		return ErrStarted
	}
	dma, err := newCircular(buffer, cb)
	if err != nil {
		return err
	}

	channels := m.Channels
	if channels == 0 {
		channels = 1
	}
	if m.InChannel < 0 || m.InChannel >= int(channels) {
		return fmt.Errorf("dma: input channel %d out of range [0, %d)", m.InChannel, channels)
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("init malgo context: %w", err)
	}

	config := malgo.DefaultDeviceConfig(malgo.Capture)
	config.Capture.Format = malgo.FormatS32
	config.Capture.Channels = channels
	config.SampleRate = m.SampleRate

	stride := 4 * int(channels)
	offset := 4 * m.InChannel
	m.block = alloci32(BlockSize * 64)

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			n := len(input) / stride
			if n == 0 {
				return
			}
			if cap(m.block) < n {
				m.block = alloci32(n)
			}
			block := m.block[:n]
			for i := range block {
				block[i] = int32(binary.LittleEndian.Uint32(input[i*stride+offset:]))
			}
			dma.write(block)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, config, callbacks)
	if err != nil {
		ctx.Uninit()
		return fmt.Errorf("init capture device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		ctx.Uninit()
		return fmt.Errorf("start capture: %w", err)
	}

	m.ctx = ctx
	m.device = device
	return nil
}

func (m *Malgo) Stop() {
	if m.device != nil {
		m.device.Uninit()
		m.device = nil
	}
	if m.ctx != nil {
		m.ctx.Uninit()
		m.ctx = nil
	}
}
