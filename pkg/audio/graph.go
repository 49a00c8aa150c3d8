package audio

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrDanglingConnection is returned by [Graph.Validate] when a
	// connection references a node that is not in the graph. Dangling
	// connections are legal in the model itself; only the opt-in strict
	// check reports them.
	ErrDanglingConnection = errors.New("connection references a missing node")

	// ErrUnknownChannel is returned by [Graph.Validate] when a connection
	// references a channel index that neither endpoint node declares.
	ErrUnknownChannel = errors.New("connection references an undeclared channel")
)

// Connection is a directed edge from an output channel of one node to an
// input channel of another. Channels are the numeric indices declared by
// the endpoint nodes' routing maps.
type Connection struct {
	Source        ID
	SourceChannel Channel
	Target        ID
	TargetChannel Channel
}

// Graph owns the nodes and connections of one audio topology.
//
// Graphs are values: every mutating operation returns a new Graph and
// leaves the receiver observably unchanged. A graph created with [New]
// always contains the destination node.
//
// The connection list is deliberately permissive. [Graph.Connect] does not
// check that the endpoints exist, duplicates are allowed, and
// [Graph.RemoveNode] does not cascade-remove connections referencing the
// removed node. Endpoint validation is deferred to the downstream consumer;
// callers that want to fail early can use [Graph.Validate].
type Graph struct {
	nodes       map[string]Node
	connections []Connection
}

// New returns a graph holding exactly the destination node and no
// connections.
func New() Graph {
	return Graph{
		nodes: map[string]Node{DestinationID.String(): NewDestination()},
	}
}

// AddNode returns a copy of the graph with n inserted, keyed by its
// identifier. An existing node under the same identifier is replaced.
func (g Graph) AddNode(n Node) Graph {
	nodes := make(map[string]Node, len(g.nodes)+1)
	maps.Copy(nodes, g.nodes)
	nodes[n.ID().String()] = n
	g.nodes = nodes
	return g
}

// Node returns the node stored under id.
func (g Graph) Node(id ID) (Node, bool) {
	n, ok := g.nodes[id.String()]
	return n, ok
}

// RemoveNode returns a copy of the graph without the node stored under id.
// Removing an absent id is a no-op. Connections referencing the removed
// node are kept; see the type comment on [Graph].
func (g Graph) RemoveNode(id ID) Graph {
	if _, ok := g.nodes[id.String()]; !ok {
		return g
	}
	nodes := maps.Clone(g.nodes)
	delete(nodes, id.String())
	g.nodes = nodes
	return g
}

// Connect returns a copy of the graph with c prepended to the connection
// list, so the most recently added connection comes first. Endpoints are
// not checked and duplicates are allowed.
func (g Graph) Connect(c Connection) Graph {
	connections := make([]Connection, 0, len(g.connections)+1)
	connections = append(connections, c)
	connections = append(connections, g.connections...)
	g.connections = connections
	return g
}

// Disconnect returns a copy of the graph without any connection
// structurally equal to c. All matches are removed, not just the first;
// no match is a no-op.
func (g Graph) Disconnect(c Connection) Graph {
	g.connections = slices.DeleteFunc(slices.Clone(g.connections), func(x Connection) bool {
		return x == c
	})
	return g
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int { return len(g.nodes) }

// ConnectionCount returns the number of connections in the graph.
func (g Graph) ConnectionCount() int { return len(g.connections) }

// Nodes returns the graph's nodes sorted by identifier.
func (g Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, key := range g.IDs() {
		nodes = append(nodes, g.nodes[key])
	}
	return nodes
}

// IDs returns the identifier strings of all nodes in sorted order.
func (g Graph) IDs() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Connections returns a copy of the connection list, most recent first.
func (g Graph) Connections() []Connection {
	return slices.Clone(g.connections)
}

// Validate is the opt-in strict check: it verifies that every connection
// references existing nodes and channels those nodes declare. It returns
// ErrDanglingConnection or ErrUnknownChannel wrapped with the offending
// endpoint, or nil. The mutation path never calls Validate; the model
// stays permissive unless the caller asks.
func (g Graph) Validate() error {
	for _, c := range g.connections {
		src, ok := g.nodes[c.Source.String()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrDanglingConnection, c.Source)
		}
		dst, ok := g.nodes[c.Target.String()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrDanglingConnection, c.Target)
		}
		if !declaresChannel(src.outputs, c.SourceChannel) {
			return fmt.Errorf("%w: output %d of %s", ErrUnknownChannel, c.SourceChannel, c.Source)
		}
		if !declaresChannel(dst.inputs, c.TargetChannel) {
			return fmt.Errorf("%w: input %d of %s", ErrUnknownChannel, c.TargetChannel, c.Target)
		}
	}
	return nil
}

func declaresChannel(channels map[string]Channel, ch Channel) bool {
	for _, c := range channels {
		if c == ch {
			return true
		}
	}
	return false
}
