package dma

import "errors"

// Callbacks are invoked from the stream's transfer context. They must return
// quickly and must not block.
type Callbacks struct {
	HalfComplete     func() // first half of the buffer has been written
	TransferComplete func() // second half of the buffer has been written
}

// Stream is a continuous circular transfer into a caller-owned buffer.
type Stream interface {
	Start(buffer []int32, cb Callbacks) error
	Stop()
}

const BlockSize = 32

var (
	ErrOddBuffer = errors.New("dma: buffer length must be positive and even")
	ErrStarted   = errors.New("dma: stream already started")
)
