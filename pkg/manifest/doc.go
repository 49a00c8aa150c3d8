// Package manifest loads audio graphs from TOML patch manifests.
//
// A manifest declares nodes and the connections between their channels by
// label, letting a patch live in version control next to the code that
// ships it:
//
//	[[node]]
//	id = "osc"
//	kind = "oscillator"
//	[node.params]
//	frequency = 220.0
//
//	[[node]]
//	id = "vol"
//	kind = "gain"
//	[node.params]
//	gain = 0.5
//
//	[[connection]]
//	from = "osc"
//	output = "audio"
//	to = "vol"
//	input = "audio"
//
// # Nodes
//
// "kind" selects a built-in constructor (oscillator, gain) or names a
// custom kind. Built-in nodes start from their constructor defaults and
// the params table overrides them; a param name the kind does not declare
// is an error here (the model's SetParam would silently no-op, which is
// the wrong behavior for a hand-written file). Custom nodes take their
// params, inputs, and outputs tables verbatim. A node without an id gets
// a random one, which is only useful for nodes referenced by no
// connection.
//
// # Param typing
//
// For built-in kinds, the existing param decides the type: TOML values
// are coerced to the kind already stored under that name. For custom
// kinds, strings become waveform labels, the names "frequency" and "note"
// become frequency and note params, and any other number becomes a plain
// control value.
//
// # Connections
//
// Connections reference channels by label ("audio", "left", ...) and are
// resolved against the endpoint node's routing maps at load time, so a
// typo fails here instead of in the downstream engine. The destination
// node is always present under the id "_destination". Connections are
// prepended in declaration order, matching the model: the last declared
// connection appears first in the encoded document.
package manifest
