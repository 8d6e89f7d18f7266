package pluck

import "fmt"

// ScoreOrderingError reports an event that is earlier than the event before
// it.
type ScoreOrderingError struct {
	Time, Previous float64
}

func (e *ScoreOrderingError) Error() string {
	return fmt.Sprintf("event time %g precedes previous event time %g", e.Time, e.Previous)
}

// PitchRangeError reports an event whose pitch names no string.
type PitchRangeError struct {
	Time  float64
	Pitch int
}

func (e *PitchRangeError) Error() string {
	return fmt.Sprintf("pitch %d at time %g out of range [%d, %d]", e.Pitch, e.Time, EndOfScore, NumStrings-1)
}

// ScoreFormatError reports score text that could not be parsed.
type ScoreFormatError struct {
	Line int
	Text string
	Err  error
}

func (e *ScoreFormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed score: %v", e.Err)
	}
	return fmt.Sprintf("malformed score line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ScoreFormatError) Unwrap() error { return e.Err }

// ResourceError reports a score source or sample sink that failed.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error { return e.Err }
