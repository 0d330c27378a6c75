package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnDiscoverStart(ctx, "/repo")
	p.OnDiscoverComplete(ctx, "/repo", 12, time.Second, nil)
	p.OnBuildComplete(ctx, 10, 2, time.Second)
	p.OnValidateComplete(ctx, 1, false, time.Second)

	// Config hooks
	cfg := NoopConfigHooks{}
	cfg.OnConfigWrite(ctx, "/repo/tsconfig.json", 10, nil)
	cfg.OnRestore(ctx, "/repo/tsconfig.json", errors.New("boom"))

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "backup")
	c.OnCacheMiss(ctx, "backup")
	c.OnCacheSet(ctx, "backup", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Config().(NoopConfigHooks); !ok {
		t.Error("Config() should return NoopConfigHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customConfig := &testConfigHooks{}
	SetConfigHooks(customConfig)
	if Config() != customConfig {
		t.Error("SetConfigHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Config().(NoopConfigHooks); !ok {
		t.Error("Reset() should restore NoopConfigHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)
	SetConfigHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
	if Config() == nil || Cache() == nil {
		t.Error("nil hooks should never be installed")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testConfigHooks struct{ NoopConfigHooks }
type testCacheHooks struct{ NoopCacheHooks }
