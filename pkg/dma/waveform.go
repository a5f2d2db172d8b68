package dma

import (
	"math"

	"golang.org/x/exp/rand"
)

// Waveform returns the n-th sample of a signal.
type Waveform func(n uint64) int32

// Sine is a full-scale sine scaled by amplitude, clamped to [0, 1].
func Sine(freq, sampleRate, amplitude float64) Waveform {
	amplitude = clampAmplitude(amplitude)
	return func(n uint64) int32 {
		t := float64(n) / sampleRate
		return int32(amplitude * 0x7fffffff * math.Sin(2*math.Pi*freq*t))
	}
}

// Noise is uniform white noise scaled by amplitude, clamped to [0, 1].
func Noise(amplitude float64) Waveform {
	amplitude = clampAmplitude(amplitude)
	return func(uint64) int32 {
		return int32(amplitude * float64(int32(rand.Uint32())))
	}
}

// Ramp counts up from start, one per sample, wrapping on overflow.
func Ramp(start int32) Waveform {
	return func(n uint64) int32 {
		return start + int32(n)
	}
}

func clampAmplitude(a float64) float64 {
	if math.IsNaN(a) || a < 0 {
		return 0
	}
	return min(a, 1)
}
