package pipeline

import (
	"context"
	"time"

	"github.com/patchwire/patchwire/pkg/audio"
	"github.com/patchwire/patchwire/pkg/observability"
	"github.com/patchwire/patchwire/pkg/patch"
)

// Encode runs the encode stage: serialize g to its canonical JSON document.
// Timing is recorded into stats when non-nil.
func (r *Runner) Encode(ctx context.Context, g audio.Graph, stats *Stats) ([]byte, error) {
	observability.Build().OnEncodeStart(ctx)

	start := time.Now()
	data, err := patch.MarshalGraph(g)
	elapsed := time.Since(start)

	observability.Build().OnEncodeComplete(ctx, len(data), elapsed, err)
	if err != nil {
		return nil, err
	}

	if stats != nil {
		stats.EncodeTime += elapsed
	}
	r.logger.Debugf("Encoded document: %d bytes", len(data))
	return data, nil
}
