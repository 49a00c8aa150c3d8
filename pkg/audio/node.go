package audio

import "maps"

// Kind tags a node with the audio-processing role the downstream engine
// should materialize. The three built-in kinds have dedicated constructors;
// any other label is a custom kind carried through verbatim.
type Kind string

const (
	// KindDestination is the terminal output node.
	KindDestination Kind = "destination"
	// KindOscillator is a periodic signal source.
	KindOscillator Kind = "oscillator"
	// KindGain is a signal attenuator.
	KindGain Kind = "gain"
)

// Node is one unit of the audio topology: an identity, a kind tag, named
// typed params, and named input/output routing channels.
//
// Nodes are values. The id and kind never change after construction;
// params can be replaced through [Node.SetParam], which returns a new Node
// and leaves the receiver untouched. A Node held by one Graph is therefore
// never changed by operations on another.
type Node struct {
	id      ID
	kind    Kind
	params  map[string]Param
	inputs  map[string]Channel
	outputs map[string]Channel
}

// NewDestination returns the terminal output node every graph routes into.
// It declares stereo audio inputs ("left", "right"), no outputs, and no
// params. Its identifier is always [DestinationID].
func NewDestination() Node {
	return Node{
		id:      DestinationID,
		kind:    KindDestination,
		params:  map[string]Param{},
		inputs:  map[string]Channel{"left": 0, "right": 1},
		outputs: map[string]Channel{},
	}
}

// NewOscillator returns an oscillator node: a 440 Hz sine with no detune.
// The "frequency" and "detune" inputs accept modulation signals; "audio"
// is the single output channel.
func NewOscillator(id ID) Node {
	return Node{
		id:   id,
		kind: KindOscillator,
		params: map[string]Param{
			"detune":    Value(0),
			"frequency": Frequency(440),
			"waveform":  Waveform("sine"),
		},
		inputs:  map[string]Channel{"frequency": 0, "detune": 1},
		outputs: map[string]Channel{"audio": 0},
	}
}

// NewGain returns a gain node with unity gain. It declares an "audio"
// input, a "gain" modulation input, and an "audio" output.
func NewGain(id ID) Node {
	return Node{
		id:      id,
		kind:    KindGain,
		params:  map[string]Param{"gain": Value(1)},
		inputs:  map[string]Channel{"audio": 0, "gain": 1},
		outputs: map[string]Channel{"audio": 0},
	}
}

// NewCustom builds a node of an arbitrary kind from caller-supplied param
// and routing maps. The maps are copied, so the caller keeps ownership of
// its arguments. This is the sole extensibility mechanism: the model
// attaches no behavior to the kind label, it only carries it to the
// consumer.
func NewCustom(kind Kind, params map[string]Param, inputs, outputs map[string]Channel, id ID) Node {
	return Node{
		id:      id,
		kind:    kind,
		params:  cloneMap(params),
		inputs:  cloneMap(inputs),
		outputs: cloneMap(outputs),
	}
}

// ID returns the node's identifier.
func (n Node) ID() ID { return n.id }

// Kind returns the node's kind tag.
func (n Node) Kind() Kind { return n.kind }

// Param returns the control value stored under name. Absence is a normal
// outcome, not a fault: ok is false when the name is not a param.
func (n Node) Param(name string) (Param, bool) {
	p, ok := n.params[name]
	return p, ok
}

// Params returns a copy of the node's param map.
func (n Node) Params() map[string]Param { return cloneMap(n.params) }

// InputChannel returns the input channel declared under name, or
// [NoChannel] when the label is absent.
func (n Node) InputChannel(name string) Channel {
	if c, ok := n.inputs[name]; ok {
		return c
	}
	return NoChannel
}

// OutputChannel returns the output channel declared under name, or
// [NoChannel] when the label is absent.
func (n Node) OutputChannel(name string) Channel {
	if c, ok := n.outputs[name]; ok {
		return c
	}
	return NoChannel
}

// Inputs returns a copy of the node's input routing map.
func (n Node) Inputs() map[string]Channel { return cloneMap(n.inputs) }

// Outputs returns a copy of the node's output routing map.
func (n Node) Outputs() map[string]Channel { return cloneMap(n.outputs) }

// SetParam returns a copy of the node with name set to p. It only replaces
// keys that already exist: when name is not a param of the node, the node
// is returned unchanged. SetParam never grows the param set, so a typo in
// the name cannot silently introduce a new control.
func (n Node) SetParam(name string, p Param) Node {
	if _, ok := n.params[name]; !ok {
		return n
	}
	params := maps.Clone(n.params)
	params[name] = p
	n.params = params
	return n
}

// cloneMap copies m, mapping nil and empty inputs to a fresh empty map so
// node maps are never nil.
func cloneMap[M ~map[K]V, K comparable, V any](m M) M {
	if len(m) == 0 {
		return make(M)
	}
	return maps.Clone(m)
}
