package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/patchwire/patchwire/pkg/audio"
)

var (
	// ErrUnknownNode is returned when a connection references a node id
	// the manifest does not declare.
	ErrUnknownNode = errors.New("connection references an undeclared node")

	// ErrUnknownChannel is returned when a connection references a channel
	// label the endpoint node does not declare.
	ErrUnknownChannel = errors.New("connection references an unknown channel label")

	// ErrUnknownParam is returned when a node table sets a param its kind
	// does not declare.
	ErrUnknownParam = errors.New("param not declared by node kind")

	// ErrBadParamValue is returned when a TOML value cannot be coerced to
	// the param's type.
	ErrBadParamValue = errors.New("param value has the wrong type")
)

// File is the on-disk TOML schema of a patch manifest.
type File struct {
	Nodes       []NodeSpec       `toml:"node"`
	Connections []ConnectionSpec `toml:"connection"`
}

// NodeSpec declares one node.
type NodeSpec struct {
	ID      string         `toml:"id"`
	Kind    string         `toml:"kind"`
	Params  map[string]any `toml:"params"`
	Inputs  map[string]int `toml:"inputs"`
	Outputs map[string]int `toml:"outputs"`
}

// ConnectionSpec declares one directed edge by node id and channel label.
type ConnectionSpec struct {
	From   string `toml:"from"`
	Output string `toml:"output"`
	To     string `toml:"to"`
	Input  string `toml:"input"`
}

// Load reads a TOML patch manifest and builds the graph it declares.
func Load(path string) (audio.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return audio.Graph{}, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return audio.Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes TOML manifest bytes and builds the declared graph.
func Parse(data []byte) (audio.Graph, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return audio.Graph{}, fmt.Errorf("decode manifest: %w", err)
	}
	return f.Graph()
}

// Graph builds the audio graph declared by the manifest. The returned
// graph always contains the destination node, whether or not the manifest
// mentions it.
func (f File) Graph() (audio.Graph, error) {
	g := audio.New()

	for i, spec := range f.Nodes {
		n, err := buildNode(spec)
		if err != nil {
			return audio.Graph{}, fmt.Errorf("node %d (%s): %w", i, spec.ID, err)
		}
		g = g.AddNode(n)
	}

	for i, spec := range f.Connections {
		c, err := resolveConnection(g, spec)
		if err != nil {
			return audio.Graph{}, fmt.Errorf("connection %d: %w", i, err)
		}
		g = g.Connect(c)
	}

	return g, nil
}

func buildNode(spec NodeSpec) (audio.Node, error) {
	id := audio.ID(spec.ID)
	if id == "" {
		id = audio.RandomID()
	}

	switch audio.Kind(spec.Kind) {
	case audio.KindOscillator:
		return applyParams(audio.NewOscillator(id), spec.Params)
	case audio.KindGain:
		return applyParams(audio.NewGain(id), spec.Params)
	case audio.KindDestination:
		// The destination already exists; a manifest entry can only
		// restate it.
		return audio.NewDestination(), nil
	default:
		return buildCustomNode(audio.Kind(spec.Kind), spec, id)
	}
}

// applyParams overrides a built-in node's default params. Each value is
// coerced to the type of the param it replaces, and names the kind does
// not declare are rejected rather than silently dropped.
func applyParams(n audio.Node, raw map[string]any) (audio.Node, error) {
	for name, v := range raw {
		existing, ok := n.Param(name)
		if !ok {
			return audio.Node{}, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		p, err := coerceParam(existing.Kind(), v)
		if err != nil {
			return audio.Node{}, fmt.Errorf("%q: %w", name, err)
		}
		n = n.SetParam(name, p)
	}
	return n, nil
}

func buildCustomNode(kind audio.Kind, spec NodeSpec, id audio.ID) (audio.Node, error) {
	params := make(map[string]audio.Param, len(spec.Params))
	for name, v := range spec.Params {
		p, err := inferParam(name, v)
		if err != nil {
			return audio.Node{}, fmt.Errorf("%q: %w", name, err)
		}
		params[name] = p
	}
	return audio.NewCustom(kind, params, channels(spec.Inputs), channels(spec.Outputs), id), nil
}

func channels(raw map[string]int) map[string]audio.Channel {
	out := make(map[string]audio.Channel, len(raw))
	for label, ch := range raw {
		out[label] = audio.Channel(ch)
	}
	return out
}

// coerceParam converts a decoded TOML value to the given param kind.
func coerceParam(kind audio.ParamKind, v any) (audio.Param, error) {
	switch kind {
	case audio.ParamWaveform:
		s, ok := v.(string)
		if !ok {
			return audio.Param{}, fmt.Errorf("%w: want string, got %T", ErrBadParamValue, v)
		}
		return audio.Waveform(s), nil
	case audio.ParamNote:
		n, ok := v.(int64)
		if !ok {
			return audio.Param{}, fmt.Errorf("%w: want integer, got %T", ErrBadParamValue, v)
		}
		return audio.Note(audio.NoteNumber(n)), nil
	case audio.ParamFrequency:
		f, err := asFloat(v)
		if err != nil {
			return audio.Param{}, err
		}
		return audio.Frequency(audio.Hertz(f)), nil
	default:
		f, err := asFloat(v)
		if err != nil {
			return audio.Param{}, err
		}
		return audio.Value(audio.Level(f)), nil
	}
}

// inferParam types a custom node's param from its name and TOML value.
func inferParam(name string, v any) (audio.Param, error) {
	if s, ok := v.(string); ok {
		return audio.Waveform(s), nil
	}
	f, err := asFloat(v)
	if err != nil {
		return audio.Param{}, err
	}
	switch name {
	case "frequency":
		return audio.Frequency(audio.Hertz(f)), nil
	case "note":
		return audio.Note(audio.NoteNumber(f)), nil
	default:
		return audio.Value(audio.Level(f)), nil
	}
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: want number, got %T", ErrBadParamValue, v)
	}
}

// resolveConnection maps a label-based connection spec to the numeric
// channels the endpoint nodes declare.
func resolveConnection(g audio.Graph, spec ConnectionSpec) (audio.Connection, error) {
	src, ok := g.Node(audio.ID(spec.From))
	if !ok {
		return audio.Connection{}, fmt.Errorf("%w: %q", ErrUnknownNode, spec.From)
	}
	dst, ok := g.Node(audio.ID(spec.To))
	if !ok {
		return audio.Connection{}, fmt.Errorf("%w: %q", ErrUnknownNode, spec.To)
	}

	out := src.OutputChannel(spec.Output)
	if out == audio.NoChannel {
		return audio.Connection{}, fmt.Errorf("%w: output %q of %q", ErrUnknownChannel, spec.Output, spec.From)
	}
	in := dst.InputChannel(spec.Input)
	if in == audio.NoChannel {
		return audio.Connection{}, fmt.Errorf("%w: input %q of %q", ErrUnknownChannel, spec.Input, spec.To)
	}

	return audio.Connection{
		Source:        src.ID(),
		SourceChannel: out,
		Target:        dst.ID(),
		TargetChannel: in,
	}, nil
}
