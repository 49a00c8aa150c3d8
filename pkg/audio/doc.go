// Package audio models a directed graph describing an audio-processing
// topology: nodes representing sources, effects, and destinations, and
// connections describing signal and control routing between them.
//
// # Overview
//
// Patchwire does not process audio. The graph built with this package is an
// intermediate representation that a downstream audio engine (typically a
// browser audio API) consumes to materialize the real processing nodes and
// wiring. The package's job is to make building that description safe:
// node identity is unique within a graph, parameters are typed, and routing
// points are declared explicitly.
//
// # Basic Usage
//
// Create a graph with [New] (it always contains the destination node), add
// nodes, and connect output channels to input channels:
//
//	g := audio.New()
//	g = g.AddNode(audio.NewOscillator("osc"))
//	g = g.Connect(audio.Connection{
//		Source: "osc", SourceChannel: 0,
//		Target: audio.DestinationID, TargetChannel: 0,
//	})
//
// # Value Semantics
//
// Graph and Node are immutable values. Every mutating operation returns a
// new value and leaves its receiver observably unchanged, so a graph held
// by one caller is never altered by operations performed on another copy.
// There is no shared mutable state and no synchronization to get wrong:
// values can be passed freely between goroutines.
//
// # Node Kinds
//
// Three kinds are built in, each with a constructor that declares its
// default params and routing channels:
//
//   - [KindDestination]: the terminal output node ([NewDestination])
//   - [KindOscillator]: a periodic signal source ([NewOscillator])
//   - [KindGain]: a signal attenuator ([NewGain])
//
// Any other kind label is a custom kind built with [NewCustom]. The model
// attaches no behavior to the label; it is carried through to the consumer
// verbatim.
//
// # Permissive Connections
//
// [Graph.Connect] never checks that the referenced nodes or channels exist,
// and [Graph.RemoveNode] never cascades to the connections referencing the
// removed node. Endpoint validation is the downstream consumer's job. The
// opt-in [Graph.Validate] performs the strict check for callers that want
// to fail early.
package audio
