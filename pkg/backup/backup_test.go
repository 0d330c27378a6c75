package backup

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alirezahematidev/ts-path/pkg/cache"
	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/observability"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(c, 0)
}

func TestSaveAndLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "tsconfig.json")

	first, err := s.Save(ctx, path, []byte(`{"v":1}`))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("snapshot has nil ID")
	}

	second, err := s.Save(ctx, path, []byte(`{"v":2}`))
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Latest(ctx, path)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("Latest ID = %s, want %s", got.ID, second.ID)
	}
	if string(got.Data) != `{"v":2}` {
		t.Errorf("Data = %s", got.Data)
	}
	if got.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, path)
	}
}

func TestLatestMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Latest(context.Background(), "/nowhere/tsconfig.json")
	if !errors.Is(err, errors.ErrCodeBackupNotFound) {
		t.Errorf("Latest error = %v, want BACKUP_NOT_FOUND", err)
	}
}

func TestLatestExpired(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(c, time.Nanosecond)

	if _, err := s.Save(ctx, "/repo/tsconfig.json", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)

	if _, err := s.Latest(ctx, "/repo/tsconfig.json"); !errors.Is(err, errors.ErrCodeBackupNotFound) {
		t.Errorf("Latest after expiry = %v, want BACKUP_NOT_FOUND", err)
	}
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.Save(ctx, "/repo/tsconfig.json", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := s.Discard(ctx, "/repo/tsconfig.json"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Latest(ctx, "/repo/tsconfig.json"); err == nil {
		t.Error("snapshot still present after Discard")
	}
}

func TestNilCacheDisablesBackups(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil, 0)
	if _, err := s.Save(ctx, "/repo/tsconfig.json", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Latest(ctx, "/repo/tsconfig.json"); !errors.Is(err, errors.ErrCodeBackupNotFound) {
		t.Errorf("Latest = %v, want BACKUP_NOT_FOUND", err)
	}
}

type countingHooks struct {
	hits, misses, sets int
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestStoreReportsCacheHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "tsconfig.json")

	if _, err := s.Latest(ctx, path); err == nil {
		t.Fatal("expected miss")
	}
	if _, err := s.Save(ctx, path, []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Latest(ctx, path); err != nil {
		t.Fatal(err)
	}

	if hooks.hits != 1 || hooks.misses != 1 || hooks.sets != 1 {
		t.Errorf("hooks = %+v, want one hit, miss and set", *hooks)
	}
}

func TestStoreClose(t *testing.T) {
	if err := newTestStore(t).Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := NewStore(nil, 0).Close(); err != nil {
		t.Errorf("Close() on disabled store = %v", err)
	}
}
