package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patchwire/patchwire/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "dot", "svg", "png"
	detailed bool     // include kinds and params in node labels
	check    bool     // validate connections before rendering
}

// diagramFormats is the set of formats the render command accepts.
// JSON documents are produced by the build command instead.
var diagramFormats = map[string]bool{
	pipeline.FormatDOT: true,
	pipeline.FormatSVG: true,
	pipeline.FormatPNG: true,
}

// newRenderCmd creates the render command for generating signal-flow diagrams.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a patch as a signal-flow diagram",
		Long: `Render loads a TOML patch manifest and draws the audio graph as a
node-link diagram. Signal flows left to right into the destination.

Supported formats are dot, svg (default), and png. Multiple formats can be
requested comma-separated; each is written next to the manifest unless -o
provides a base path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include kinds and params in node labels")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if connections reference missing nodes or channels")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are diagram formats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !diagramFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and manifest paths.
// If output is empty, it strips the extension from the manifest path.
// If output carries a format extension (.svg, .png, .dot), that is stripped
// so per-format extensions can be appended.
func basePath(output, manifest string) string {
	if output == "" {
		return strings.TrimSuffix(manifest, filepath.Ext(manifest))
	}
	ext := filepath.Ext(output)
	if diagramFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender executes the pipeline for all requested formats and writes each
// artifact to its own file. Graphviz layout can take a moment on large
// patches, so a spinner runs while the pipeline executes.
func runRender(ctx context.Context, manifest string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s", manifest))
	spin.Start()

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Manifest: manifest,
		Check:    opts.check,
		Formats:  opts.formats,
		Detailed: opts.detailed,
	})
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	spin.Stop()

	base := basePath(opts.output, manifest)
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(result.Artifacts[format]); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}

		logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
		printFile(path)
	}

	printSuccess("Rendered %d diagram(s)", len(opts.formats))
	printStats(result.Stats.NodeCount, result.Stats.ConnectionCount)
	return nil
}
