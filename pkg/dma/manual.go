package dma

import "sync"

// Manual is a stream driven by the caller: every Push is written into the
// buffer synchronously and the callbacks run on the pushing goroutine.
type Manual struct {
	mu  sync.Mutex
	dma *circular
}

func (m *Manual) Start(buffer []int32, cb Callbacks) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dma != nil {
		return ErrStarted
	}
	dma, err := newCircular(buffer, cb)
	if err != nil {
		return err
	}
	m.dma = dma
	return nil
}

// Push feeds samples to the transfer. Samples pushed while the stream is not
// running are dropped, like a peripheral with its DMA disabled.
func (m *Manual) Push(samples ...int32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dma == nil {
		return
	}
	m.dma.write(samples)
}

func (m *Manual) Stop() {
	m.mu.Lock()
	m.dma = nil
	m.mu.Unlock()
}
