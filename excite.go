package pluck

import (
	"math/rand"
	"time"
)

// An Exciter fills a string's delay line when it is plucked.  Every value it
// produces must lie in [-0.5, 0.5].
type Exciter interface {
	Excite(buf []float64)
}

// RandExciter draws independent uniform noise.
type RandExciter struct {
	rand *rand.Rand
}

func NewRandExciter() *RandExciter {
	return NewSeededExciter(time.Now().UnixNano())
}

func NewSeededExciter(seed int64) *RandExciter {
	return &RandExciter{rand: rand.New(rand.NewSource(seed))}
}

func (r *RandExciter) Excite(buf []float64) {
	for i := range buf {
		buf[i] = r.rand.Float64() - .5
	}
}

// FixedExciter repeats Values across the buffer, restarting from the first
// value on every pluck.  The zero FixedExciter excites nothing: the buffer
// is filled with zeros.
type FixedExciter struct {
	Values []float64
}

func (f FixedExciter) Excite(buf []float64) {
	if len(f.Values) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	for i := range buf {
		buf[i] = clampExcitation(f.Values[i%len(f.Values)])
	}
}

func clampExcitation(x float64) float64 {
	switch {
	case x > .5:
		return .5
	case x < -.5:
		return -.5
	}
	return x
}
