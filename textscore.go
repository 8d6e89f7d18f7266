package pluck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// TextScore reads a score written one event per line as
//
//	<time> <pitch>
//
// where time is in seconds and pitch is a string index or EndOfScore.
// Blank lines are ignored.
type TextScore struct {
	s    *bufio.Scanner
	line int
}

func NewTextScore(r io.Reader) *TextScore {
	return &TextScore{s: bufio.NewScanner(r)}
}

func (s *TextScore) Next() (Event, error) {
	for s.s.Scan() {
		s.line++
		text := s.s.Text()
		f := strings.Fields(text)
		if len(f) == 0 {
			continue
		}
		ev, err := parseEvent(f)
		if err != nil {
			return Event{}, &ScoreFormatError{Line: s.line, Text: text, Err: err}
		}
		return ev, nil
	}
	if err := s.s.Err(); errors.Is(err, bufio.ErrTooLong) {
		return Event{}, &ScoreFormatError{Line: s.line + 1, Err: err}
	} else if err != nil {
		return Event{}, &ResourceError{Op: "read score", Err: err}
	}
	return Event{}, io.EOF
}

var errFields = errors.New("want <time> <pitch>")

func parseEvent(f []string) (Event, error) {
	if len(f) != 2 {
		return Event{}, errFields
	}
	t, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return Event{}, fmt.Errorf("time: %w", err)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return Event{}, fmt.Errorf("time %s is not finite", f[0])
	}
	p, err := strconv.Atoi(f[1])
	if err != nil {
		return Event{}, fmt.Errorf("pitch: %w", err)
	}
	return Event{Time: t, Pitch: p}, nil
}
