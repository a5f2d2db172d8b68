package monitor

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sampler is anything exposing a polled latest sample, such as a
// capture.Session. Snapshot must return the sample and the cycle that
// produced it from a single read.
type Sampler interface {
	Snapshot() (sample int32, cycle uint32)
}

// Recorder polls a Sampler and keeps one value per observed cycle.
type Recorder struct {
	Source Sampler
	Track  []int32
	Missed uint64 // cycles that completed between two polls without being seen

	last uint32
}

// Update polls the source once and reports whether a new sample was appended.
func (r *Recorder) Update() bool {
	sample, cycle := r.Source.Snapshot()
	if cycle == r.last {
		return false
	}
	// wrapping subtraction keeps the count right across a cycle overflow
	r.Missed += uint64(cycle - r.last - 1)
	r.last = cycle
	r.Track = append(r.Track, sample)
	return true
}

func (r *Recorder) Reset() {
	r.Track = nil
	r.Missed = 0
	_, r.last = r.Source.Snapshot()
}

// Save writes the track as one decimal value per line when filename ends in
// .txt, otherwise as raw little-endian int32.
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if strings.EqualFold(filepath.Ext(filename), ".txt") {
		for _, v := range r.Track {
			w.WriteString(strconv.FormatInt(int64(v), 10))
			w.WriteByte('\n')
		}
	} else if err := binary.Write(w, binary.LittleEndian, r.Track); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return file.Close()
}
