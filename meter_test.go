package pluck

import (
	"math"
	"testing"
)

func TestMeter(t *testing.T) {
	m := NewMeter(.01)
	Init(m, Params{SampleRate: 1000})
	for i := 0; i < 1000; i++ {
		x := .5
		if i%2 == 1 {
			x = -.5
		}
		m.Write(float64(i)/1000, x)
	}
	if m.Samples() != 1000 {
		t.Errorf("samples %d", m.Samples())
	}
	if m.Peak() != .5 {
		t.Errorf("peak %v, want .5", m.Peak())
	}
	if math.Abs(m.RMS()-.5) > 1e-12 {
		t.Errorf("rms %v, want .5", m.RMS())
	}
	if math.Abs(m.MaxRMS()-.5) > 1e-9 {
		t.Errorf("max rms %v, want .5", m.MaxRMS())
	}
}
