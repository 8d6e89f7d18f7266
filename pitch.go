package pluck

import (
	"fmt"
	"math"
)

const (
	NumStrings = 37
	A4Index    = 24
	A4Freq     = 440.0

	// a4Key is the MIDI key number of A4.
	a4Key = 69
)

// Freq returns the equal-tempered frequency of string i.
func Freq(i int) float64 {
	return A4Freq * math.Pow(2, float64(i-A4Index)/12)
}

// KeyIndex maps a MIDI key number to a string index.  The result may be out
// of range; see FoldIndex.
func KeyIndex(key int) int { return key - a4Key + A4Index }

func IndexKey(i int) int { return i - A4Index + a4Key }

// FoldIndex shifts i by whole octaves until it names a string.
func FoldIndex(i int) int {
	for i < 0 {
		i += 12
	}
	for i >= NumStrings {
		i -= 12
	}
	return i
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName returns the scientific pitch name of string i, e.g. "A4" for
// A4Index.
func PitchName(i int) string {
	key := IndexKey(i)
	if key < 0 {
		return fmt.Sprintf("?%d", i)
	}
	return fmt.Sprintf("%s%d", noteNames[key%12], key/12-1)
}
