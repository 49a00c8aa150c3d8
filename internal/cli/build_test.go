package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `
[[node]]
id = "osc"
kind = "oscillator"
[node.params]
frequency = 220.0

[[node]]
id = "vol"
kind = "gain"

[[connection]]
from = "osc"
output = "audio"
to = "vol"
input = "audio"

[[connection]]
from = "vol"
output = "audio"
to = "_destination"
input = "left"
`

func writeTestManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patch.toml")
	if err := os.WriteFile(path, []byte(testManifest), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		manifest string
		want     string
	}{
		{name: "Derived", output: "", manifest: "patch.toml", want: "patch.json"},
		{name: "Explicit", output: "out.json", manifest: "patch.toml", want: "out.json"},
		{name: "Stdout", output: "-", manifest: "patch.toml", want: ""},
		{name: "NestedManifest", output: "", manifest: "patches/lead.toml", want: "patches/lead.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.manifest); got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.manifest, got, tt.want)
			}
		})
	}
}

func TestBuildCmd(t *testing.T) {
	manifest := writeTestManifest(t)
	out := filepath.Join(t.TempDir(), "patch.json")

	cmd := newBuildCmd()
	cmd.SetArgs([]string{manifest, "-o", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var doc struct {
		Nodes       map[string]json.RawMessage `json:"nodes"`
		Connections []json.RawMessage          `json:"connections"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(doc.Nodes) != 3 {
		t.Errorf("document nodes = %d, want 3", len(doc.Nodes))
	}
	if len(doc.Connections) != 2 {
		t.Errorf("document connections = %d, want 2", len(doc.Connections))
	}
}

func TestBuildCmdDefaultOutput(t *testing.T) {
	manifest := writeTestManifest(t)

	cmd := newBuildCmd()
	cmd.SetArgs([]string{manifest})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}

	want := filepath.Join(filepath.Dir(manifest), "patch.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected output at %s: %v", want, err)
	}
}

func TestBuildCmdCheck(t *testing.T) {
	manifest := writeTestManifest(t)
	out := filepath.Join(t.TempDir(), "patch.json")

	cmd := newBuildCmd()
	cmd.SetArgs([]string{manifest, "-o", out, "--check"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build --check: %v", err)
	}
}

func TestBuildCmdMissingManifest(t *testing.T) {
	cmd := newBuildCmd()
	cmd.SetArgs([]string{"nonexistent.toml"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
