package pluck

import (
	"fmt"
	"io"
)

// EndOfScore is the pitch of the event that ends a score.
const EndOfScore = -1

// An Event plucks string Pitch at Time seconds, or ends the score if Pitch
// is EndOfScore.
type Event struct {
	Time  float64
	Pitch int
}

func (e Event) End() bool { return e.Pitch == EndOfScore }

func (e Event) String() string {
	if e.End() {
		return fmt.Sprintf("end@%g", e.Time)
	}
	return fmt.Sprintf("%s@%g", PitchName(e.Pitch), e.Time)
}

// A Score yields events in time order.  Next returns io.EOF once the score
// is exhausted, which ends it just like an EndOfScore event.
type Score interface {
	Next() (Event, error)
}

// SliceScore is a Score held in memory.
type SliceScore struct {
	Events []Event
	i      int
}

func NewSliceScore(events ...Event) *SliceScore {
	return &SliceScore{Events: events}
}

func (s *SliceScore) Next() (Event, error) {
	if s.i >= len(s.Events) {
		return Event{}, io.EOF
	}
	e := s.Events[s.i]
	s.i++
	return e, nil
}

func (s *SliceScore) Reset() { s.i = 0 }
