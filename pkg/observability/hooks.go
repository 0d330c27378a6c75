// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, config writes and backup cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages never
// import an observability backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetConfigHooks(&myConfigHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnDiscoverStart(ctx, root)
//	// ... scan ...
//	observability.Pipeline().OnDiscoverComplete(ctx, root, len(paths), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the discovery pipeline.
type PipelineHooks interface {
	// Discovery events
	OnDiscoverStart(ctx context.Context, root string)
	OnDiscoverComplete(ctx context.Context, root string, count int, duration time.Duration, err error)

	// Build events
	OnBuildComplete(ctx context.Context, aliases, conflicts int, duration time.Duration)

	// Validation events
	OnValidateComplete(ctx context.Context, issues int, valid bool, duration time.Duration)
}

// =============================================================================
// Config Hooks
// =============================================================================

// ConfigHooks receives events when a tsconfig file is written or restored.
type ConfigHooks interface {
	// OnConfigWrite records a merge into the config at path.
	OnConfigWrite(ctx context.Context, path string, entries int, err error)

	// OnRestore records a backup being written back to path.
	OnRestore(ctx context.Context, path string, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDiscoverStart(context.Context, string) {}
func (NoopPipelineHooks) OnDiscoverComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration)     {}
func (NoopPipelineHooks) OnValidateComplete(context.Context, int, bool, time.Duration) {}

// NoopConfigHooks is a no-op implementation of ConfigHooks.
type NoopConfigHooks struct{}

func (NoopConfigHooks) OnConfigWrite(context.Context, string, int, error) {}
func (NoopConfigHooks) OnRestore(context.Context, string, error)          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	configHooks   ConfigHooks   = NoopConfigHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetConfigHooks registers custom config hooks.
func SetConfigHooks(h ConfigHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		configHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Config returns the registered config hooks.
func Config() ConfigHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return configHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	configHooks = NoopConfigHooks{}
	cacheHooks = NoopCacheHooks{}
}
