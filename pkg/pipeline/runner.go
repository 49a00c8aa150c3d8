package pipeline

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Runner executes pipeline stages with shared logging.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{logger: logger}
}

// Execute runs the full pipeline: load the manifest, optionally check it,
// and produce every requested artifact. A non-nil opts.Logger overrides the
// runner's logger for the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		r = &Runner{logger: opts.Logger}
	}

	result := &Result{Artifacts: make(map[string][]byte, len(opts.Formats))}

	g, err := r.Load(ctx, opts.Manifest, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.ConnectionCount = g.ConnectionCount()

	if opts.Check {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		r.logger.Debug("Connection check passed")
	}

	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatJSON:
			data, err = r.Encode(ctx, g, &result.Stats)
		default:
			data, err = r.Render(ctx, g, format, opts.Detailed, &result.Stats)
		}
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}

	return result, nil
}
