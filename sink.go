package pluck

// A Sink consumes the mixed sample stream, one sample per tick, in order.
// t is the time of the sample in seconds.
type Sink interface {
	Write(t, x float64) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(t, x float64) error

func (f SinkFunc) Write(t, x float64) error { return f(t, x) }

// Tee writes every sample to each of its sinks in turn, stopping at the
// first error.
type Tee []Sink

func (s Tee) Write(t, x float64) error {
	for _, k := range s {
		if err := k.Write(t, x); err != nil {
			return err
		}
	}
	return nil
}

// Discard drops every sample.
var Discard Sink = SinkFunc(func(t, x float64) error { return nil })
