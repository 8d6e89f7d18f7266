// Package pluck renders scores for a bank of Karplus-Strong plucked strings.
package pluck

import (
	"errors"
	"io"
	"math"
)

// Engine renders a score by plucking and mixing NumStrings strings.
//
// Events are applied in batches: every event due at the current tick is
// applied before the tick's sample is computed, so strings plucked at the
// same instant start sounding on the same sample.
type Engine struct {
	Params  Params
	strings []*String

	// OnPluck, if set, is called for every pluck the engine applies.
	OnPluck func(Event)

	score Score
	sink  Sink
	next  Event
	prev  float64
	n     int64
}

// NewEngine returns an engine whose strings are excited by ex.  It must be
// initialized with Init (or InitAudio) before Run.
func NewEngine(ex Exciter) *Engine {
	e := &Engine{}
	for i := 0; i < NumStrings; i++ {
		e.strings = append(e.strings, NewString(Freq(i), ex))
	}
	return e
}

func (e *Engine) InitAudio(p Params) {
	e.Params = p
	for _, s := range e.strings {
		s.InitAudio(p)
	}
	e.reset()
}

func (e *Engine) reset() {
	e.score, e.sink = nil, nil
	e.next = Event{}
	e.prev = 0
	e.n = 0
	for _, s := range e.strings {
		s.silence()
	}
}

// Strings returns the engine's strings, indexed by pitch.
func (e *Engine) Strings() []*String { return e.strings }

// Clock is the time of the next tick in seconds.
func (e *Engine) Clock() float64 { return float64(e.n) / e.Params.SampleRate }

// Samples is the number of samples written by the last Run.
func (e *Engine) Samples() int64 { return e.n }

type state int

const (
	batch state = iota
	tick
	end
)

// Run renders score into sink, starting from silent strings.  It returns when the score ends or at the
// first error; no samples are written for time after the final event.
func (e *Engine) Run(score Score, sink Sink) error {
	if e.Params.SampleRate <= 0 {
		panic("pluck.Engine.Run called before InitAudio")
	}
	e.reset()
	e.score, e.sink = score, sink
	defer func() { e.score, e.sink = nil, nil }()

	st := end
	ok, err := e.pop()
	if ok {
		st = batch
	}
	for err == nil && st != end {
		switch st {
		case batch:
			st, err = e.batch()
		case tick:
			st, err = e.tick()
		}
	}
	return err
}

// pop reads and validates the next event.  It reports false if the score is
// exhausted.
func (e *Engine) pop() (bool, error) {
	ev, err := e.score.Next()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if math.IsNaN(ev.Time) || math.IsInf(ev.Time, 0) || ev.Time < e.prev {
		return false, &ScoreOrderingError{Time: ev.Time, Previous: e.prev}
	}
	if ev.Pitch < EndOfScore || ev.Pitch >= NumStrings {
		return false, &PitchRangeError{Time: ev.Time, Pitch: ev.Pitch}
	}
	e.next = ev
	return true, nil
}

// batch applies the pending event and every following event at the same
// time.
func (e *Engine) batch() (state, error) {
	if e.Clock() < e.next.Time {
		return tick, nil
	}
	for {
		ev := e.next
		if ev.End() {
			return end, nil
		}
		e.strings[ev.Pitch].Pluck()
		if e.OnPluck != nil {
			e.OnPluck(ev)
		}
		e.prev = ev.Time

		ok, err := e.pop()
		if err != nil || !ok {
			return end, err
		}
		if e.next.Time != ev.Time {
			return tick, nil
		}
	}
}

// tick renders samples until the pending event is due.
func (e *Engine) tick() (state, error) {
	for e.Clock() < e.next.Time {
		x := 0.0
		for _, s := range e.strings {
			s.Tic()
			x += s.Sample()
		}
		if err := e.sink.Write(e.Clock(), x); err != nil {
			var rerr *ResourceError
			if !errors.As(err, &rerr) {
				err = &ResourceError{Op: "write sample", Err: err}
			}
			return end, err
		}
		e.n++
	}
	return batch, nil
}
