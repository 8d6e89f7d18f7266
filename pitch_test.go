package pluck

import (
	"math"
	"testing"
)

func TestFreq(t *testing.T) {
	for i, want := range map[int]float64{
		0:  110,
		12: 220,
		24: 440,
		36: 880,
		27: 523.2511306011972,
	} {
		if got := Freq(i); math.Abs(got-want) > 1e-9 {
			t.Errorf("Freq(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestPitchName(t *testing.T) {
	for i, want := range map[int]string{
		0:  "A2",
		3:  "C3",
		24: "A4",
		36: "A5",
	} {
		if got := PitchName(i); got != want {
			t.Errorf("PitchName(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestKeyIndex(t *testing.T) {
	if got := KeyIndex(69); got != A4Index {
		t.Errorf("KeyIndex(69) = %d", got)
	}
	for key := 0; key < 128; key++ {
		if got := IndexKey(KeyIndex(key)); got != key {
			t.Fatalf("round trip of key %d gave %d", key, got)
		}
	}
}

func TestFoldIndex(t *testing.T) {
	for _, c := range []struct{ in, out int }{
		{0, 0},
		{36, 36},
		{37, 25},
		{60, 36},
		{61, 25},
		{-1, 11},
		{-24, 0},
	} {
		if got := FoldIndex(c.in); got != c.out {
			t.Errorf("FoldIndex(%d) = %d, want %d", c.in, got, c.out)
		}
	}
}
