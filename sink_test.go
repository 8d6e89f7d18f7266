package pluck

import (
	"errors"
	"testing"
)

func TestTee(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	tee := Tee{a, b}
	for i := 0; i < 3; i++ {
		if err := tee.Write(float64(i), float64(-i)); err != nil {
			t.Fatal(err)
		}
	}
	if len(a.samples) != 3 || len(b.samples) != 3 || b.samples[2] != (sample{2, -2}) {
		t.Errorf("got %v and %v", a.samples, b.samples)
	}

	c := &recorder{}
	tee = Tee{SinkFunc(func(t, x float64) error { return errBoom }), c}
	if err := tee.Write(0, 0); !errors.Is(err, errBoom) {
		t.Errorf("got %v, want errBoom", err)
	}
	if len(c.samples) != 0 {
		t.Error("wrote past a failing sink")
	}
}

func TestSliceScore(t *testing.T) {
	s := NewSliceScore(Event{0, 1}, Event{1, EndOfScore})
	events, err := readAll(t, s)
	if err != nil || len(events) != 2 || !events[1].End() {
		t.Fatalf("got %v, %v", events, err)
	}
	s.Reset()
	if ev, err := s.Next(); err != nil || ev != (Event{0, 1}) {
		t.Errorf("after reset: %v, %v", ev, err)
	}
}

func TestErrorMessages(t *testing.T) {
	for _, c := range []struct {
		err  error
		want string
	}{
		{&ScoreOrderingError{Time: -.1, Previous: 0}, "event time -0.1 precedes previous event time 0"},
		{&PitchRangeError{Time: 1, Pitch: 37}, "pitch 37 at time 1 out of range [-1, 36]"},
		{&ScoreFormatError{Line: 2, Text: "x 1", Err: errFields}, `malformed score line 2 "x 1": want <time> <pitch>`},
		{&ResourceError{Op: "open score", Path: "a.txt", Err: errBoom}, "open score a.txt: boom"},
		{&ResourceError{Op: "write sample", Err: errBoom}, "write sample: boom"},
	} {
		if got := c.err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
