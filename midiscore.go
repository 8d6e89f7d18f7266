package pluck

import (
	"io"
	"log/slog"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMIDIScore converts a Standard MIDI File into a score.  Every note start
// on any track plucks the string of the same pitch, folded by octaves into
// range; note ends are ignored.  The score ends with the file's last event,
// so the final notes ring until then.
func ReadMIDIScore(r io.Reader) (*SliceScore, error) {
	var (
		events []Event
		last   int64
	)
	tr := smf.ReadTracksFrom(r).Do(func(te smf.TrackEvent) {
		if te.AbsMicroSeconds > last {
			last = te.AbsMicroSeconds
		}
		var ch, key, vel uint8
		if !midi.Message(te.Message).GetNoteStart(&ch, &key, &vel) {
			return
		}
		t := float64(te.AbsMicroSeconds) / 1e6
		i := KeyIndex(int(key))
		if j := FoldIndex(i); j != i {
			slog.Warn("MIDI note out of range, folded", "track", te.TrackNo, "time", t, "key", key, "string", PitchName(j))
			i = j
		}
		events = append(events, Event{Time: t, Pitch: i})
	})
	if err := tr.Error(); err != nil {
		return nil, &ScoreFormatError{Err: err}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })
	events = append(events, Event{Time: float64(last) / 1e6, Pitch: EndOfScore})
	return NewSliceScore(events...), nil
}
