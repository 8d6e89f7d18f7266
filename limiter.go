package pluck

import "math"

// A Limiter is a soft limiter in front of another Sink.  The RMS amplitude of
// the output (averaged over the attack time) will approach the supplied
// limit; this means that much of the signal will actually exceed the limit.
//
// The signal is delayed by the attack time so that the gain can come down
// before a loud onset reaches the output.  Samples keep the time they were
// rendered at, so the output runs attack seconds late and the final attack
// seconds of the score are not written.
type Limiter struct {
	Out Sink

	limit         float64
	attack, decay float64
	down, up      float64
	amp           float64
	rms           *RMS
	delay         *ConstDelay
}

func NewLimiter(out Sink, limit, attack, decay float64) *Limiter {
	return &Limiter{Out: out, limit: limit, attack: attack, decay: decay, rms: NewRMS(attack), delay: NewConstDelay(attack)}
}

func (c *Limiter) InitAudio(p Params) {
	c.down = -1 / (c.attack * p.SampleRate)
	c.up = 1 / (c.decay * p.SampleRate)
	c.amp = 0
	c.rms.InitAudio(p)
	c.delay.InitAudio(p)
}

func (c *Limiter) Limit(x float64) float64 {
	gain := math.Exp2(c.amp)
	c.rms.Add(x)
	if y := c.rms.Amplitude() / c.limit; y > 0 && math.Tanh(y)/y < gain {
		c.amp += c.down
	} else if c.amp += c.up; c.amp > 0 {
		c.amp = 0
	}
	return gain * c.delay.Delay(x)
}

func (c *Limiter) Write(t, x float64) error {
	return c.Out.Write(t, c.Limit(x))
}
