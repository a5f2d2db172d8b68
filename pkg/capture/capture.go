// Package capture keeps the latest sample of a double-buffered transfer.
//
// A Session owns a fixed, even-length sample buffer. Once started on a
// dma.Stream, every transfer-complete event (second half written) copies the
// first sample of the second half into an atomic cell that any goroutine may
// poll.
package capture

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"MicCapture/pkg/dma"
)

const BufferLength = 100

type State int32

const (
	Idle State = iota
	Capturing
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

var (
	ErrEmptyBuffer    = errors.New("capture: buffer length must be positive")
	ErrOddLength      = errors.New("capture: buffer length must be even")
	ErrAlreadyStarted = errors.New("capture: session already started")
)

type Session struct {
	buffer []int32
	half   int

	// low 32 bits hold the latest sample, high 32 bits the cycle it came
	// from, so a reader never pairs a sample with the wrong cycle
	snapshot atomic.Uint64
	cycles   atomic.Uint64
	state    atomic.Int32

	mu     sync.Mutex
	stream dma.Stream
	closed bool
}

func New(length int) (*Session, error) {
	if length <= 0 {
		return nil, ErrEmptyBuffer
	}
	if length%2 != 0 {
		return nil, ErrOddLength
	}
	return &Session{
		buffer: make([]int32, length),
		half:   length / 2,
	}, nil
}

// Start hands the session buffer to stream. It may only succeed once per
// session; a failed start leaves the session idle.
func (s *Session) Start(stream dma.Stream) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil || s.closed {
		return ErrAlreadyStarted
	}

	err := stream.Start(s.buffer, dma.Callbacks{
		TransferComplete: s.OnTransferComplete,
	})
	if err != nil {
		return fmt.Errorf("capture: start stream: %w", err)
	}

	s.stream = stream
	s.state.Store(int32(Capturing))
	return nil
}

// OnTransferComplete runs in the stream's transfer context right after the
// second half of the buffer has been written.
func (s *Session) OnTransferComplete() {
	c := s.cycles.Add(1)
	s.snapshot.Store(c<<32 | uint64(uint32(s.buffer[s.half])))
}

// Latest is the sample stored by the most recent transfer-complete event, or
// 0 before the first one.
func (s *Session) Latest() int32 {
	return int32(uint32(s.snapshot.Load()))
}

// Snapshot returns the latest sample together with the cycle that produced
// it, read in one atomic load. The cycle wraps after 2^32 events.
func (s *Session) Snapshot() (int32, uint32) {
	v := s.snapshot.Load()
	return int32(uint32(v)), uint32(v >> 32)
}

// Cycles counts transfer-complete events handled so far.
func (s *Session) Cycles() uint64 {
	return s.cycles.Load()
}

func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) Len() int {
	return len(s.buffer)
}

// Close stops the stream and moves a capturing session to Stopped. Latest and
// Cycles keep their last values.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.stream != nil {
		s.stream.Stop()
		s.state.Store(int32(Stopped))
	}
}
