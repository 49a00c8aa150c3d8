package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/patchwire/patchwire/pkg/audio"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes the kind and params in node labels.
	// When false, only the node ID is shown.
	Detailed bool
}

// ToDOT converts an audio graph to Graphviz DOT format. Signal flows left
// to right; the destination node is drawn filled to mark the terminal.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g audio.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph patch {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID().String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range g.Connections() {
		fmt.Fprintf(&buf, "  %q -> %q [label=\"%d:%d\"];\n",
			c.Source.String(), c.Target.String(), c.SourceChannel, c.TargetChannel)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n audio.Node, detailed bool) string {
	if !detailed {
		return n.ID().String()
	}

	parts := []string{string(n.Kind())}
	params := n.Params()
	for _, k := range slices.Sorted(maps.Keys(params)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fmtParam(params[k])))
	}

	return n.ID().String() + "\n" + strings.Join(parts, "\n")
}

func fmtParam(p audio.Param) string {
	switch p.Kind() {
	case audio.ParamNote:
		return fmt.Sprintf("note %d", p.Int())
	case audio.ParamFrequency:
		return fmt.Sprintf("%g Hz", p.Float())
	case audio.ParamWaveform:
		return p.Text()
	default:
		return fmt.Sprintf("%g", p.Float())
	}
}

func fmtAttrs(n audio.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Kind() == audio.KindDestination {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
