// Package pipeline provides the patch build pipeline for Patchwire.
//
// This package implements the complete load → encode → render pipeline
// shared by all CLI entry points. Centralizing it keeps behavior identical
// no matter which command triggers a build.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a TOML patch manifest and build the audio graph
//  2. Encode: Serialize the graph to its canonical JSON document
//  3. Render: Generate node-link diagrams (DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Manifest: "patch.toml",
//	    Formats:  []string{pipeline.FormatJSON, pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Artifacts[pipeline.FormatJSON]
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/patchwire/patchwire/pkg/audio"
)

// Format constants for pipeline outputs.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the patch build pipeline.
type Options struct {
	// Manifest is the path of the TOML patch manifest to load.
	Manifest string `json:"manifest"`

	// Check runs the strict connection validation after loading.
	// The model itself stays permissive; this fails a build whose
	// connections reference missing nodes or channels.
	Check bool `json:"check,omitempty"`

	// Formats selects the outputs to produce. Defaults to ["json"].
	Formats []string `json:"formats,omitempty"`

	// Detailed includes kinds and params in diagram labels.
	Detailed bool `json:"detailed,omitempty"`

	// Logger overrides the runner's logger for this run when non-nil.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Manifest == "" {
		return fmt.Errorf("manifest is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the loaded audio graph.
	Graph audio.Graph

	// Artifacts contains produced outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	ConnectionCount int
	LoadTime        time.Duration
	EncodeTime      time.Duration
	RenderTime      time.Duration
}
