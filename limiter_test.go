package pluck

import (
	"math"
	"testing"
)

func TestLimiter(t *testing.T) {
	meter := NewMeter(.05)
	l := NewLimiter(meter, .25, .01, .5)
	Init(l, DefaultParams())
	Init(meter, DefaultParams())
	if err := l.Write(0, 0); err != nil {
		t.Fatal(err)
	}
	if meter.Peak() != 0 {
		t.Fatalf("silence came out as %v", meter.Peak())
	}

	// A loud sine is pulled down towards the limit once the gain settles.
	for i := 1; i < DefaultSampleRate; i++ {
		tm := float64(i) / DefaultSampleRate
		l.Write(tm, 4*math.Sin(2*math.Pi*220*tm))
	}
	in := 4 / math.Sqrt2
	if got := meter.RMS(); got >= in/2 {
		t.Errorf("limited rms %v, input rms %v", got, in)
	}
	if got := l.rms.Amplitude(); math.Abs(got-in) > .2 {
		t.Errorf("input rms measured as %v, want %v", got, in)
	}
}

func BenchmarkLimiter(b *testing.B) {
	l := NewLimiter(Discard, .25, .01, .5)
	Init(l, DefaultParams())
	for i := 0; i < b.N; i++ {
		l.Write(0, math.Sin(float64(i)/10))
	}
}
