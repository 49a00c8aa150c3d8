package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/patchwire/patchwire/pkg/audio"
)

// MarshalGraph converts a graph to its canonical JSON bytes.
// Output is deterministic: object keys are written in sorted order.
func MarshalGraph(g audio.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a graph's canonical JSON document to a file.
// The file is created with 0644 permissions.
func WriteGraphFile(g audio.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// WriteGraph writes a graph's canonical JSON document to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(g audio.Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

func writeGraphTo(g audio.Graph, w io.Writer) error {
	out := FromGraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
