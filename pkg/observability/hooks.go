// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about manifest loading, document
// encoding, and diagram rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - A hook interface for pipeline events
//   - A no-op default implementation
//   - Registration of custom implementations at startup
//
// This keeps the core library free of observability frameworks while
// allowing different backends (OpenTelemetry, Prometheus, plain logs).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks around each stage:
//
//	observability.Build().OnLoadStart(ctx, path)
//	// ... load manifest ...
//	observability.Build().OnLoadComplete(ctx, path, nodes, conns, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from the patch build pipeline.
type BuildHooks interface {
	// Load events cover manifest reading and graph construction.
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, nodeCount, connectionCount int, duration time.Duration, err error)

	// Encode events cover canonical document serialization.
	OnEncodeStart(ctx context.Context)
	OnEncodeComplete(ctx context.Context, size int, duration time.Duration, err error)

	// Render events cover diagram generation.
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnLoadStart(context.Context, string) {}
func (NoopBuildHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {}
func (NoopBuildHooks) OnEncodeStart(context.Context) {}
func (NoopBuildHooks) OnEncodeComplete(context.Context, int, time.Duration, error) {}
func (NoopBuildHooks) OnRenderStart(context.Context, string) {}
func (NoopBuildHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any pipeline runs.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
}
