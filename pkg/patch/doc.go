// Package patch serializes audio graphs into their canonical JSON document.
//
// The document is the sole wire contract with the downstream engine that
// materializes the real processing graph: the engine reads "type" to select
// a constructor, "params" to seed initial values, and "connections" to wire
// signal and control paths. Patchwire only emits this document; there is no
// decode path.
//
// # Document Shape
//
//	{
//	  "nodes": {
//	    "osc": {
//	      "id": "osc",
//	      "type": "oscillator",
//	      "params": {"frequency": 440, "waveform": "sine", "detune": 0},
//	      "inputs": {"frequency": 0, "detune": 1},
//	      "outputs": {"audio": 0}
//	    }
//	  },
//	  "connections": [
//	    {"outputNode": "osc", "outputChannel": 0,
//	     "inputNode": "_destination", "inputChannel": 0}
//	  ]
//	}
//
// Params encode as plain JSON values: numbers for control values and
// frequencies, integers for note numbers, strings for waveform labels.
// Routing lives in the "inputs"/"outputs" maps, never in "params".
//
// # Determinism
//
// encoding/json writes object keys in sorted order, so encoding the same
// graph twice yields byte-identical output. Connection order follows the
// graph's list, most recently added first.
package patch
