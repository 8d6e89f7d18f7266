package pluck

import (
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// Spectrum is a Sink that keeps the first size samples written to it and
// reports their dominant frequency.
type Spectrum struct {
	Params Params
	fft    fft.FFT
	env    []float64
	buf    []complex128
	n      int
}

// NewSpectrum returns a Spectrum over size samples.  size must be a power of
// two.
func NewSpectrum(size int) *Spectrum {
	f, err := fft.New(size)
	if err != nil {
		panic(err)
	}
	env := make([]float64, size)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
	}
	return &Spectrum{fft: f, env: env, buf: make([]complex128, size)}
}

func (s *Spectrum) InitAudio(p Params) {
	s.Params = p
	s.n = 0
}

func (s *Spectrum) Write(t, x float64) error {
	if s.n < len(s.buf) {
		s.buf[s.n] = complex(x*s.env[s.n], 0)
		s.n++
	}
	return nil
}

// Full reports whether the analysis window has been filled.
func (s *Spectrum) Full() bool { return s.n == len(s.buf) }

// Peak returns the frequency in Hz of the strongest component of the
// collected samples, or 0 if they are silent.  A window that is not full is
// zero-padded.
func (s *Spectrum) Peak() float64 {
	x := make([]complex128, len(s.buf))
	copy(x, s.buf[:s.n])
	x = s.fft.Transform(x)

	mag := func(k int) float64 { return cmplx.Abs(x[k]) }
	best, peak := 0, 0.0
	for k := 1; k < len(x)/2; k++ {
		if m := mag(k); m > peak {
			best, peak = k, m
		}
	}
	if best == 0 {
		return 0
	}

	// parabolic interpolation between neighbouring bins
	k := float64(best)
	if a, b, c := mag(best-1), peak, mag(best+1); a-2*b+c != 0 {
		k += (a - c) / (a - 2*b + c) / 2
	}
	return k * s.Params.SampleRate / float64(len(x))
}
