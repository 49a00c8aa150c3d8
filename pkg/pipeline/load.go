package pipeline

import (
	"context"
	"time"

	"github.com/patchwire/patchwire/pkg/audio"
	"github.com/patchwire/patchwire/pkg/manifest"
	"github.com/patchwire/patchwire/pkg/observability"
)

// Load runs the load stage: read the manifest at path and build its graph.
// Timing is recorded into stats when non-nil.
func (r *Runner) Load(ctx context.Context, path string, stats *Stats) (audio.Graph, error) {
	r.logger.Debugf("Loading manifest %s", path)
	observability.Build().OnLoadStart(ctx, path)

	start := time.Now()
	g, err := manifest.Load(path)
	elapsed := time.Since(start)

	observability.Build().OnLoadComplete(ctx, path, g.NodeCount(), g.ConnectionCount(), elapsed, err)
	if err != nil {
		return audio.Graph{}, err
	}

	if stats != nil {
		stats.LoadTime = elapsed
	}
	r.logger.Infof("Loaded patch: %d nodes, %d connections", g.NodeCount(), g.ConnectionCount())
	return g, nil
}
