package audio

import (
	"math"
	"testing"
)

func TestNoteToHertz(t *testing.T) {
	tests := []struct {
		note NoteNumber
		want Hertz
	}{
		{69, 440},    // A4, the reference
		{57, 220},    // one octave down
		{81, 880},    // one octave up
		{60, 261.63}, // middle C
	}

	for _, tt := range tests {
		got := NoteToHertz(tt.note)
		if math.Abs(float64(got-tt.want)) > 0.01 {
			t.Errorf("NoteToHertz(%d) = %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestHertzToNote(t *testing.T) {
	tests := []struct {
		hz   Hertz
		want NoteNumber
	}{
		{440, 69},
		{220, 57},
		{261.63, 60},
		{442, 69}, // slightly sharp A4 still rounds to 69
	}

	for _, tt := range tests {
		if got := HertzToNote(tt.hz); got != tt.want {
			t.Errorf("HertzToNote(%v) = %d, want %d", tt.hz, got, tt.want)
		}
	}
}

func TestNoteHertzRoundTrip(t *testing.T) {
	for n := NoteNumber(21); n <= 108; n++ { // piano range
		if got := HertzToNote(NoteToHertz(n)); got != n {
			t.Errorf("round trip of note %d = %d", n, got)
		}
	}
}
