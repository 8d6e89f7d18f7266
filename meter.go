package pluck

import "math"

// RMS measures the root-mean-square amplitude over a sliding window.
type RMS struct {
	window float64
	buf    []float64
	i      int
	sum    float64
}

func NewRMS(window float64) *RMS {
	return &RMS{window: window}
}

func (a *RMS) InitAudio(p Params) {
	n := int(p.SampleRate * a.window)
	if n < 1 {
		n = 1
	}
	a.buf = make([]float64, n)
	a.i = 0
	a.sum = 0
}

func (a *RMS) Add(x float64) {
	a.sum -= a.buf[a.i]
	a.buf[a.i] = x * x
	a.sum += a.buf[a.i]
	a.i = (a.i + 1) % len(a.buf)
}

func (a *RMS) Amplitude() float64 {
	// the running sum can drift slightly below zero
	return math.Sqrt(math.Max(0, a.sum) / float64(len(a.buf)))
}

// Meter is a Sink that records the levels of everything written to it.
type Meter struct {
	rms    *RMS
	n      int64
	sum    float64
	peak   float64
	maxRMS float64
}

// NewMeter returns a meter whose windowed RMS level is measured over window
// seconds.
func NewMeter(window float64) *Meter {
	return &Meter{rms: NewRMS(window)}
}

func (m *Meter) InitAudio(p Params) {
	m.rms.InitAudio(p)
	m.n, m.sum, m.peak, m.maxRMS = 0, 0, 0, 0
}

func (m *Meter) Write(t, x float64) error {
	m.n++
	m.sum += x * x
	m.peak = math.Max(m.peak, math.Abs(x))
	m.rms.Add(x)
	m.maxRMS = math.Max(m.maxRMS, m.rms.Amplitude())
	return nil
}

// Samples is the number of samples metered.
func (m *Meter) Samples() int64 { return m.n }

// Peak is the largest absolute sample.
func (m *Meter) Peak() float64 { return m.peak }

// RMS is the root-mean-square level of the whole signal.
func (m *Meter) RMS() float64 {
	if m.n == 0 {
		return 0
	}
	return math.Sqrt(m.sum / float64(m.n))
}

// MaxRMS is the loudest windowed RMS level seen.
func (m *Meter) MaxRMS() float64 { return m.maxRMS }
