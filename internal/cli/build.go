package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patchwire/patchwire/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path ("-" or empty writes to stdout)
	check  bool   // validate connections after loading
}

// newBuildCmd creates the build command. It loads a TOML patch manifest and
// emits the canonical JSON patch document.
func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [manifest]",
		Short: "Build a patch document from a TOML manifest",
		Long: `Build loads a TOML patch manifest, assembles the audio graph, and emits
the canonical JSON patch document.

By default the document is written next to the manifest with a .json
extension. Use -o to pick a different path, or "-o -" to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to <manifest>.json, \"-\" for stdout)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if connections reference missing nodes or channels")

	return cmd
}

// outputPath derives the JSON output path from the flags and manifest path.
// An explicit "-" selects stdout (empty string for openOutput).
func outputPath(output, manifest string) string {
	if output == "-" {
		return ""
	}
	if output != "" {
		return output
	}
	return strings.TrimSuffix(manifest, filepath.Ext(manifest)) + ".json"
}

// runBuild executes the build pipeline and writes the JSON document.
func runBuild(ctx context.Context, manifest string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Manifest: manifest,
		Check:    opts.check,
		Formats:  []string{pipeline.FormatJSON},
	})
	if err != nil {
		return err
	}

	path := outputPath(opts.output, manifest)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(result.Artifacts[pipeline.FormatJSON]); err != nil {
		return err
	}

	if path == "" {
		// Document went to stdout; keep decoration off it.
		return nil
	}
	prog.done(fmt.Sprintf("Built %s", path))
	printSuccess("Patch document written")
	printFile(path)
	printStats(result.Stats.NodeCount, result.Stats.ConnectionCount)
	printNextStep("Render a diagram", fmt.Sprintf("patchwire render %s", manifest))
	return nil
}
