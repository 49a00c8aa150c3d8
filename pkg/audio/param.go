package audio

// ParamKind tags the payload carried by a [Param].
type ParamKind int

const (
	// ParamValue carries an arbitrary control value.
	ParamValue ParamKind = iota
	// ParamNote carries a MIDI note number.
	ParamNote
	// ParamFrequency carries a frequency in hertz.
	ParamFrequency
	// ParamWaveform carries a waveform label.
	ParamWaveform
)

// Param is a typed, named control value attached to a node. The union is
// closed: the four kinds above are the only ones, and routing is never
// expressed as a param (nodes declare routing through their input/output
// channel maps instead).
//
// Params are immutable values built with [Value], [Note], [Frequency], or
// [Waveform]. The zero value is a ParamValue of 0.
type Param struct {
	kind ParamKind
	num  float64
	text string
}

// Value returns a param carrying an arbitrary control value.
func Value(v Level) Param { return Param{kind: ParamValue, num: float64(v)} }

// Note returns a param carrying a MIDI note number.
func Note(n NoteNumber) Param { return Param{kind: ParamNote, num: float64(n)} }

// Frequency returns a param carrying a frequency in hertz.
func Frequency(hz Hertz) Param { return Param{kind: ParamFrequency, num: float64(hz)} }

// Waveform returns a param carrying a waveform label. The label is free
// form; the model passes it through to the consumer unchanged.
func Waveform(name string) Param { return Param{kind: ParamWaveform, text: name} }

// Kind reports which payload the param carries.
func (p Param) Kind() ParamKind { return p.kind }

// Float returns the numeric payload of a ParamValue or ParamFrequency,
// and 0 for the other kinds.
func (p Param) Float() float64 {
	if p.kind == ParamValue || p.kind == ParamFrequency {
		return p.num
	}
	return 0
}

// Int returns the note payload of a ParamNote, and 0 for the other kinds.
func (p Param) Int() int {
	if p.kind == ParamNote {
		return int(p.num)
	}
	return 0
}

// Text returns the label of a ParamWaveform, and "" for the other kinds.
func (p Param) Text() string { return p.text }
