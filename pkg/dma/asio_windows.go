package dma

import "github.com/xsjk/go-asio"

const HasASIO = true

type asioDevice struct {
	device asio.Device
}

func newASIODriver() asioDriver {
	return &asioDevice{}
}

func (d *asioDevice) Load(name string) error           { return d.device.Load(name) }
func (d *asioDevice) SetSampleRate(rate float64) error { return d.device.SetSampleRate(rate) }
func (d *asioDevice) Open() error                      { return d.device.Open() }

func (d *asioDevice) Start(callback func(in, out [][]int32)) error {
	return d.device.Start(callback)
}

func (d *asioDevice) Stop()   { d.device.Stop() }
func (d *asioDevice) Close()  { d.device.Close() }
func (d *asioDevice) Unload() { d.device.Unload() }
