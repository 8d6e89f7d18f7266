package pluck

import "math"

// DCFilter removes the DC offset that random excitation leaves on a string,
// which otherwise decays only as fast as the string itself.  It is a
// one-pole high-pass at 10Hz in front of another Sink.
type DCFilter struct {
	Out     Sink
	a, x, y float64
}

func NewDCFilter(out Sink) *DCFilter { return &DCFilter{Out: out} }

func (f *DCFilter) InitAudio(p Params) {
	rc := 1 / (2 * math.Pi * 10)
	f.a = rc / (rc + 1/p.SampleRate)
	f.x, f.y = 0, 0
}

func (f *DCFilter) Filter(x float64) float64 {
	f.y = f.a * (f.y + x - f.x)
	f.x = x
	return f.y
}

func (f *DCFilter) Write(t, x float64) error {
	return f.Out.Write(t, f.Filter(x))
}
