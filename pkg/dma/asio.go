package dma

import (
	"errors"
	"fmt"
)

var ErrNoASIO = errors.New("dma: asio is not available on this platform")

// asioDriver is the part of an ASIO driver a stream needs.
type asioDriver interface {
	Load(name string) error
	SetSampleRate(rate float64) error
	Open() error
	Start(callback func(in, out [][]int32)) error
	Stop()
	Close()
	Unload()
}

// ASIO captures one input channel of an ASIO driver. Outputs are kept silent.
type ASIO struct {
	DeviceName string
	SampleRate float64
	InChannel  int

	driver  asioDriver // nil means the platform driver
	started bool
}

func (a *ASIO) Start(buffer []int32, cb Callbacks) error {
	if a.started {
		return ErrStarted
	}
	dma, err := newCircular(buffer, cb)
	if err != nil {
		return err
	}

	if a.driver == nil {
		a.driver = newASIODriver()
	}
	d := a.driver
	if d == nil {
		return ErrNoASIO
	}

	if err := d.Load(a.DeviceName); err != nil {
		return fmt.Errorf("dma: load asio driver %q: %w", a.DeviceName, err)
	}
	if err := d.SetSampleRate(a.SampleRate); err != nil {
		d.Unload()
		return fmt.Errorf("dma: set asio sample rate %v: %w", a.SampleRate, err)
	}
	if err := d.Open(); err != nil {
		d.Unload()
		return fmt.Errorf("dma: open asio driver %q: %w", a.DeviceName, err)
	}
	err = d.Start(func(in, out [][]int32) {
		if a.InChannel < len(in) {
			dma.write(in[a.InChannel])
		}
		for _, o := range out {
			cleari32(o)
		}
	})
	if err != nil {
		d.Close()
		d.Unload()
		return fmt.Errorf("dma: start asio driver %q: %w", a.DeviceName, err)
	}

	a.started = true
	return nil
}

func (a *ASIO) Stop() {
	if !a.started {
		return
	}
	a.driver.Stop()
	a.driver.Close()
	a.driver.Unload()
	a.started = false
}
