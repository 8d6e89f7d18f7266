package pluck

// Decay is the loss applied to every sample that travels around a string's
// delay line.
const Decay = .996

// A String is a Karplus-Strong plucked string: a delay line whose output is
// fed back through a two-point average and a constant decay.
type String struct {
	freq    float64
	exciter Exciter
	buf     []float64
	i       int
}

// NewString returns a silent string of the given frequency.  Its delay line
// is sized by InitAudio.
func NewString(freq float64, exciter Exciter) *String {
	if !(freq > 0) {
		panic("pluck.NewString: frequency must be positive")
	}
	return &String{freq: freq, exciter: exciter}
}

func (s *String) InitAudio(p Params) {
	n := int(p.SampleRate / s.freq)
	if n < 1 {
		n = 1
	}
	s.buf = make([]float64, n)
	s.i = 0
}

// silence clears the delay line.
func (s *String) silence() {
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.i = 0
}

func (s *String) Freq() float64 { return s.freq }

// Len is the length of the delay line in samples.
func (s *String) Len() int { return len(s.buf) }

// Pluck replaces the contents of the delay line with fresh excitation.
func (s *String) Pluck() {
	s.exciter.Excite(s.buf)
	s.i = 0
}

// Tic advances the string by one sample.
func (s *String) Tic() {
	j := s.i + 1
	if j == len(s.buf) {
		j = 0
	}
	s.buf[s.i] = (s.buf[s.i] + s.buf[j]) / 2 * Decay
	s.i = j
}

// Sample returns the string's current output.
func (s *String) Sample() float64 {
	return s.buf[s.i]
}
