package dma

import (
	"sync"
	"time"
)

// Synthetic emulates a peripheral that delivers BlockSize samples at a time
// from a Waveform.
type Synthetic struct {
	SampleRate float64  // the fake sample rate, 0 means no limit
	BlockSize  int      // samples per burst, 0 means BlockSize
	Waveform   Waveform // nil means silence

	done chan struct{}
	wg   sync.WaitGroup
}

func (s *Synthetic) Start(buffer []int32, cb Callbacks) error {
	if s.done != nil {
		return ErrStarted
	}
	dma, err := newCircular(buffer, cb)
	if err != nil {
		return err
	}

	size := s.BlockSize
	if size <= 0 {
		size = BlockSize
	}
	block := alloci32(size)
	waveform := s.Waveform
	period := burstPeriod(s.SampleRate, size)

	s.done = make(chan struct{})
	done := s.done

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var n uint64
		update := func() {
			if waveform == nil {
				cleari32(block)
			} else {
				for i := range block {
					block[i] = waveform(n)
					n++
				}
			}
			dma.write(block)
		}

		if period == 0 {
			for {
				select {
				case <-done:
					return
				default:
					update()
				}
			}
		}

		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				update()
			}
		}
	}()

	return nil
}

// Stop returns once the transfer goroutine has exited, so no callback runs
// after it.
func (s *Synthetic) Stop() {
	if s.done == nil {
		return
	}
	close(s.done)
	s.wg.Wait()
	s.done = nil
}

func burstPeriod(sampleRate float64, size int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	d := time.Duration(float64(time.Second) * float64(size) / sampleRate)
	if d <= 0 {
		d = time.Nanosecond
	}
	return d
}
