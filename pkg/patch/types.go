package patch

import (
	"github.com/patchwire/patchwire/pkg/audio"
)

// Document is the canonical serialization format for audio graphs.
// Nodes are keyed by their identifier string; connections preserve the
// graph's order.
type Document struct {
	Nodes       map[string]NodeDoc `json:"nodes"`
	Connections []ConnectionDoc    `json:"connections"`
}

// NodeDoc is the serialized form of one node.
type NodeDoc struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Params  map[string]any `json:"params"`
	Inputs  map[string]int `json:"inputs"`
	Outputs map[string]int `json:"outputs"`
}

// ConnectionDoc is the serialized form of one directed edge. The key names
// are fixed; downstream consumers match on them exactly.
type ConnectionDoc struct {
	OutputNode    string `json:"outputNode"`
	OutputChannel int    `json:"outputChannel"`
	InputNode     string `json:"inputNode"`
	InputChannel  int    `json:"inputChannel"`
}

// FromGraph converts a graph to its serialization format. The conversion
// is total: every graph value encodes, including ones with dangling
// connections.
func FromGraph(g audio.Graph) Document {
	out := Document{
		Nodes:       make(map[string]NodeDoc, g.NodeCount()),
		Connections: make([]ConnectionDoc, 0, g.ConnectionCount()),
	}

	for _, n := range g.Nodes() {
		out.Nodes[n.ID().String()] = nodeDoc(n)
	}

	for _, c := range g.Connections() {
		out.Connections = append(out.Connections, ConnectionDoc{
			OutputNode:    c.Source.String(),
			OutputChannel: int(c.SourceChannel),
			InputNode:     c.Target.String(),
			InputChannel:  int(c.TargetChannel),
		})
	}

	return out
}

// nodeDoc converts one node. This is the single point of conversion for
// all node serialization.
func nodeDoc(n audio.Node) NodeDoc {
	params := n.Params()
	doc := NodeDoc{
		ID:      n.ID().String(),
		Type:    string(n.Kind()),
		Params:  make(map[string]any, len(params)),
		Inputs:  channelDoc(n.Inputs()),
		Outputs: channelDoc(n.Outputs()),
	}
	for name, p := range params {
		doc.Params[name] = encodeParam(p)
	}
	return doc
}

func channelDoc(channels map[string]audio.Channel) map[string]int {
	out := make(map[string]int, len(channels))
	for label, ch := range channels {
		out[label] = int(ch)
	}
	return out
}

// encodeParam maps the closed param union onto plain JSON values.
func encodeParam(p audio.Param) any {
	switch p.Kind() {
	case audio.ParamNote:
		return p.Int()
	case audio.ParamWaveform:
		return p.Text()
	default: // ParamValue, ParamFrequency
		return p.Float()
	}
}
