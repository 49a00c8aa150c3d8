package audio

import "math"

// Equal-temperament reference: A4 (MIDI note 69) at 440 Hz.
const (
	refNote  NoteNumber = 69
	refPitch Hertz      = 440
)

// NoteToHertz converts a MIDI note number to its equal-temperament
// frequency.
func NoteToHertz(n NoteNumber) Hertz {
	return refPitch * Hertz(math.Pow(2, float64(n-refNote)/12))
}

// HertzToNote converts a frequency to the nearest MIDI note number.
func HertzToNote(hz Hertz) NoteNumber {
	return refNote + NoteNumber(math.Round(12*math.Log2(float64(hz/refPitch))))
}
