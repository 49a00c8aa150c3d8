// Package pkg provides the core libraries for Patchwire audio patch building.
//
// # Overview
//
// Patchwire models audio processing topologies as immutable graphs of typed
// nodes — oscillators, gain stages, and the output destination — and turns
// them into canonical JSON documents and signal-flow diagrams. The pkg
// directory is organized into these areas:
//
//  1. [audio] - Domain model (nodes, params, graph, tuning)
//  2. [patch] - Canonical JSON document encoding
//  3. [manifest] - TOML patch manifest loading
//  4. [render] - Signal-flow diagrams via Graphviz
//  5. [pipeline] - Orchestration (load → encode → render)
//  6. [observability] - Build lifecycle hooks
//
// # Architecture
//
// The typical data flow through Patchwire:
//
//	TOML Patch Manifest
//	         ↓
//	    [manifest] package (declare nodes + connections)
//	         ↓
//	    [audio] package (immutable graph model)
//	         ↓
//	    [patch] / [render] packages (JSON document, DOT/SVG/PNG)
//
// # Quick Start
//
// Build a graph and encode it:
//
//	import (
//	    "os"
//	    "github.com/patchwire/patchwire/pkg/audio"
//	    "github.com/patchwire/patchwire/pkg/patch"
//	)
//
//	g := audio.New()
//	g = g.AddNode(audio.NewOscillator("osc"))
//	g = g.AddNode(audio.NewGain("vol"))
//	g = g.Connect(audio.Connection{Source: "osc", Target: "vol"})
//	g = g.Connect(audio.Connection{Source: "vol", Target: audio.DestinationID})
//
//	patch.WriteGraph(g, os.Stdout)
//
// # Main Packages
//
// [audio] - The graph model. Graphs and nodes are immutable value types;
// every mutation returns a new value. Includes the MIDI note tuning helpers
// and opt-in connection validation.
//
// [patch] - Write-only encoder producing the canonical JSON patch document
// with deterministic key ordering.
//
// [manifest] - TOML manifest schema and loader. Connections are declared by
// channel label and resolved against the node kinds' channel maps.
//
// [render] - Node-link diagrams of the signal flow, DOT generation plus SVG
// and PNG rendering through Graphviz.
//
// [pipeline] - Complete build pipeline (load → encode → render) used by all
// CLI entry points. Ensures consistent behavior no matter which command
// triggers a build.
//
// [observability] - Process-wide build hooks for timing and diagnostics.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/audio/...    # Specific package
//	go test -run Example       # Examples only
//
// [audio]: https://pkg.go.dev/github.com/patchwire/patchwire/pkg/audio
// [patch]: https://pkg.go.dev/github.com/patchwire/patchwire/pkg/patch
// [manifest]: https://pkg.go.dev/github.com/patchwire/patchwire/pkg/manifest
// [render]: https://pkg.go.dev/github.com/patchwire/patchwire/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/patchwire/patchwire/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/patchwire/patchwire/pkg/observability
package pkg
