package audio

// Hertz is a frequency in cycles per second.
type Hertz float64

// Channel is a routing channel index on a node. Valid channels are
// non-negative; NoChannel marks an absent lookup.
type Channel int

// NoChannel is returned by [Node.InputChannel] and [Node.OutputChannel]
// when no channel is declared under the requested label.
const NoChannel Channel = -1

// Level is an arbitrary control value.
type Level float64

// NoteNumber is a MIDI note number (69 = A4).
type NoteNumber int
