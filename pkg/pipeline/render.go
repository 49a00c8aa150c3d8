package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/patchwire/patchwire/pkg/audio"
	"github.com/patchwire/patchwire/pkg/observability"
	"github.com/patchwire/patchwire/pkg/render"
)

// Render runs the render stage: draw g as a node-link diagram in the given
// format (dot, svg, or png). Timing is recorded into stats when non-nil.
func (r *Runner) Render(ctx context.Context, g audio.Graph, format string, detailed bool, stats *Stats) ([]byte, error) {
	observability.Build().OnRenderStart(ctx, format)

	start := time.Now()
	data, err := renderFormat(g, format, detailed)
	elapsed := time.Since(start)

	observability.Build().OnRenderComplete(ctx, format, len(data), elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	if stats != nil {
		stats.RenderTime += elapsed
	}
	r.logger.Debugf("Rendered %s: %d bytes", format, len(data))
	return data, nil
}

func renderFormat(g audio.Graph, format string, detailed bool) ([]byte, error) {
	dot := render.ToDOT(g, render.Options{Detailed: detailed})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return render.RenderSVG(dot)
	case FormatPNG:
		return render.RenderPNG(dot)
	default:
		return nil, fmt.Errorf("unknown render format: %s", format)
	}
}
