package dma

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	w := Sine(1000, 48000, 0.5)
	if v := w(0); v != 0 {
		t.Errorf("expected 0 at n=0, got %d", v)
	}
	// a quarter period of 1kHz at 48kHz is 12 samples
	peak := w(12)
	if want := int32(1073741823); peak < want-1 || peak > want {
		t.Errorf("expected peak near %d, got %d", want, peak)
	}
}

func TestNoise(t *testing.T) {
	w := Noise(0.25)
	limit := int64(0.25*0x80000000) + 1
	for n := uint64(0); n < 1000; n++ {
		v := int64(w(n))
		if v > limit || v < -limit {
			t.Fatalf("sample %d out of range: %d", n, v)
		}
	}
}

func TestRamp(t *testing.T) {
	w := Ramp(-2)
	for n, want := range []int32{-2, -1, 0, 1} {
		if v := w(uint64(n)); v != want {
			t.Errorf("n=%d: expected %d, got %d", n, want, v)
		}
	}
}

func TestAmplitudeClamp(t *testing.T) {
	if v := Sine(1000, 48000, 4)(12); v < 0x7fffffff-1 {
		t.Errorf("expected full scale, got %d", v)
	}
	if v := Sine(1000, 48000, -1)(12); v != 0 {
		t.Errorf("expected silence for a negative amplitude, got %d", v)
	}
	for in, want := range map[float64]float64{-2: 0, 0: 0, 0.3: 0.3, 1: 1, 7: 1} {
		if got := clampAmplitude(in); got != want {
			t.Errorf("clampAmplitude(%v): expected %v, got %v", in, want, got)
		}
	}
	if got := clampAmplitude(math.NaN()); got != 0 {
		t.Errorf("clampAmplitude(NaN): expected 0, got %v", got)
	}
}
