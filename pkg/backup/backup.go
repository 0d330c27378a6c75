// Package backup keeps the last version of a tsconfig file before it is
// rewritten, so a generate run can be undone with `tspath restore`.
package backup

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alirezahematidev/ts-path/pkg/cache"
	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/observability"
)

// DefaultTTL is how long a snapshot is kept.
const DefaultTTL = 7 * 24 * time.Hour

const keyPrefix = "backup"

// Snapshot is a saved copy of a config file.
type Snapshot struct {
	ID         uuid.UUID `json:"id"`
	ConfigPath string    `json:"config_path"`
	CreatedAt  time.Time `json:"created_at"`
	Data       []byte    `json:"data"`
}

// Store saves and retrieves snapshots. Only the latest snapshot per config
// path is kept.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewStore returns a Store over c. A nil cache disables backups and a
// ttl <= 0 uses DefaultTTL.
func NewStore(c cache.Cache, ttl time.Duration) *Store {
	if c == nil {
		c = cache.NewNullCache()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{cache: c, ttl: ttl, now: time.Now}
}

// Save records data as the latest snapshot of configPath.
func (s *Store) Save(ctx context.Context, configPath string, data []byte) (*Snapshot, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %q", configPath)
	}
	snap := &Snapshot{
		ID:         uuid.New(),
		ConfigPath: abs,
		CreatedAt:  s.now().UTC(),
		Data:       data,
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot")
	}
	if err := s.cache.Set(ctx, key(abs), payload, s.ttl); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigIO, err, "save backup of %s", abs)
	}
	observability.Cache().OnCacheSet(ctx, keyPrefix, len(payload))
	return snap, nil
}

// Latest returns the most recent snapshot of configPath.
func (s *Store) Latest(ctx context.Context, configPath string) (*Snapshot, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %q", configPath)
	}
	payload, ok, err := s.cache.Get(ctx, key(abs))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigIO, err, "read backup of %s", abs)
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, keyPrefix)
		return nil, errors.New(errors.ErrCodeBackupNotFound, "no backup found for %s", abs)
	}
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeBackupNotFound, err, "corrupt backup for %s", abs)
	}
	observability.Cache().OnCacheHit(ctx, keyPrefix)
	return &snap, nil
}

// Discard removes the snapshot of configPath.
func (s *Store) Discard(ctx context.Context, configPath string) error {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %q", configPath)
	}
	return s.cache.Delete(ctx, key(abs))
}

// Close closes the underlying cache.
func (s *Store) Close() error {
	return s.cache.Close()
}

func key(absPath string) string {
	return cache.Key(keyPrefix, absPath)
}
