package patch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/patchwire/patchwire/pkg/audio"
)

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name      string
		build     func() audio.Graph
		wantNodes int
		wantConns int
		check     func(t *testing.T, doc Document)
	}{
		{
			name:      "Empty",
			build:     audio.New,
			wantNodes: 1, // destination is always present
			wantConns: 0,
			check: func(t *testing.T, doc Document) {
				n, ok := doc.Nodes["_destination"]
				if !ok {
					t.Fatal("destination missing from document")
				}
				if n.Type != "destination" {
					t.Errorf("type = %q, want destination", n.Type)
				}
				if n.Inputs["left"] != 0 || n.Inputs["right"] != 1 {
					t.Errorf("inputs = %v, want left:0 right:1", n.Inputs)
				}
			},
		},
		{
			name: "OscillatorParams",
			build: func() audio.Graph {
				return audio.New().AddNode(audio.NewOscillator("osc"))
			},
			wantNodes: 2,
			wantConns: 0,
			check: func(t *testing.T, doc Document) {
				n := doc.Nodes["osc"]
				if n.Params["waveform"] != "sine" {
					t.Errorf("waveform = %v, want sine", n.Params["waveform"])
				}
				if n.Outputs["audio"] != 0 {
					t.Errorf("outputs = %v, want audio:0", n.Outputs)
				}
			},
		},
		{
			name: "ConnectionsPreserveOrder",
			build: func() audio.Graph {
				g := audio.New().AddNode(audio.NewOscillator("a")).AddNode(audio.NewGain("b"))
				g = g.Connect(audio.Connection{Source: "a", SourceChannel: 0, Target: "b", TargetChannel: 0})
				g = g.Connect(audio.Connection{Source: "b", SourceChannel: 0, Target: audio.DestinationID, TargetChannel: 0})
				return g
			},
			wantNodes: 3,
			wantConns: 2,
			check: func(t *testing.T, doc Document) {
				// Most recently added connection comes first.
				if doc.Connections[0].OutputNode != "b" {
					t.Errorf("first connection from %q, want b", doc.Connections[0].OutputNode)
				}
				if doc.Connections[1].OutputNode != "a" {
					t.Errorf("second connection from %q, want a", doc.Connections[1].OutputNode)
				}
			},
		},
		{
			name: "CustomKindPassthrough",
			build: func() audio.Graph {
				n := audio.NewCustom("convolver",
					map[string]audio.Param{"mix": audio.Value(0.3)},
					map[string]audio.Channel{"audio": 0},
					map[string]audio.Channel{"audio": 0},
					"verb")
				return audio.New().AddNode(n)
			},
			wantNodes: 2,
			wantConns: 0,
			check: func(t *testing.T, doc Document) {
				if got := doc.Nodes["verb"].Type; got != "convolver" {
					t.Errorf("type = %q, want convolver", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalGraph(tt.build())
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var doc Document
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got := len(doc.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(doc.Connections); got != tt.wantConns {
				t.Errorf("connections = %d, want %d", got, tt.wantConns)
			}
			if tt.check != nil {
				tt.check(t, doc)
			}
		})
	}
}

func TestParamEncoding(t *testing.T) {
	n := audio.NewCustom("synth",
		map[string]audio.Param{
			"level":     audio.Value(0.5),
			"note":      audio.Note(69),
			"frequency": audio.Frequency(440),
			"waveform":  audio.Waveform("saw"),
		},
		nil, nil, "s")

	data, err := MarshalGraph(audio.New().AddNode(n))
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	// Decode into generic JSON to check the concrete value shapes.
	var raw struct {
		Nodes map[string]struct {
			Params map[string]json.RawMessage `json:"params"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	params := raw.Nodes["s"].Params
	tests := []struct {
		key  string
		want string
	}{
		{"level", "0.5"},
		{"note", "69"},
		{"frequency", "440"},
		{"waveform", `"saw"`},
	}
	for _, tt := range tests {
		if got := string(params[tt.key]); got != tt.want {
			t.Errorf("params[%q] = %s, want %s", tt.key, got, tt.want)
		}
	}
}

func TestMarshalGraphDeterministic(t *testing.T) {
	g := audio.New().AddNode(audio.NewOscillator("osc")).AddNode(audio.NewGain("vol"))
	g = g.Connect(audio.Connection{Source: "osc", SourceChannel: 0, Target: "vol", TargetChannel: 0})

	first, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	second, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("encoding the same graph twice should yield identical bytes")
	}
}

func TestEmptyConnectionsEncodeAsArray(t *testing.T) {
	data, err := MarshalGraph(audio.New())
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if !bytes.Contains(data, []byte(`"connections": []`)) {
		t.Errorf("connections should encode as [], got:\n%s", data)
	}
}

func TestWriteGraph(t *testing.T) {
	g := audio.New().AddNode(audio.NewGain("vol"))

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(doc.Nodes))
	}
}

func TestWriteGraphFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patch.json")

	if err := WriteGraphFile(audio.New(), path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := doc.Nodes["_destination"]; !ok {
		t.Error("written document should contain the destination node")
	}
}

func TestWriteGraphFileBadPath(t *testing.T) {
	err := WriteGraphFile(audio.New(), filepath.Join(t.TempDir(), "missing", "patch.json"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

// TestEndToEndScenario builds the reference patch: oscillator at 220 Hz into
// a half gain stage, fanned out to both destination inputs.
func TestEndToEndScenario(t *testing.T) {
	g := audio.New()
	g = g.AddNode(audio.NewOscillator("oscA").SetParam("frequency", audio.Frequency(220)))
	g = g.AddNode(audio.NewGain("gain").SetParam("gain", audio.Value(0.5)))
	g = g.Connect(audio.Connection{Source: "oscA", SourceChannel: 0, Target: "gain", TargetChannel: 0})
	g = g.Connect(audio.Connection{Source: "gain", SourceChannel: 0, Target: audio.DestinationID, TargetChannel: 0})
	g = g.Connect(audio.Connection{Source: "gain", SourceChannel: 0, Target: audio.DestinationID, TargetChannel: 1})

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(doc.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(doc.Nodes))
	}
	for _, id := range []string{"_destination", "oscA", "gain"} {
		if _, ok := doc.Nodes[id]; !ok {
			t.Errorf("node %q missing from document", id)
		}
	}

	if doc.Nodes["oscA"].Params["frequency"] != 220.0 {
		t.Errorf("oscA frequency = %v, want 220", doc.Nodes["oscA"].Params["frequency"])
	}
	if doc.Nodes["gain"].Params["gain"] != 0.5 {
		t.Errorf("gain = %v, want 0.5", doc.Nodes["gain"].Params["gain"])
	}

	if len(doc.Connections) != 3 {
		t.Fatalf("connections = %d, want 3", len(doc.Connections))
	}
	intoDestination := 0
	for _, c := range doc.Connections {
		if c.InputNode == "_destination" && c.OutputNode == "gain" {
			intoDestination++
		}
	}
	if intoDestination != 2 {
		t.Errorf("connections into destination = %d, want 2", intoDestination)
	}
}
