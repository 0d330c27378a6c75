package pipeline

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alirezahematidev/ts-path/pkg/backup"
	"github.com/alirezahematidev/ts-path/pkg/discovery"
	"github.com/alirezahematidev/ts-path/pkg/fswalk"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
	"github.com/alirezahematidev/ts-path/pkg/observability"
	"github.com/alirezahematidev/ts-path/pkg/validate"
)

// Runner executes pipeline stages.
//
// The Runner is stateless except for its collaborators - it doesn't store
// results between calls. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Lister  discovery.Lister
	Checker validate.Checker
	Backups *backup.Store
	Logger  *log.Logger
}

// NewRunner creates a runner.
// If lister is nil, the filesystem lister is used.
// If backups is nil, backups are disabled.
// If logger is nil, log.Default() is used.
func NewRunner(lister discovery.Lister, backups *backup.Store, logger *log.Logger) *Runner {
	if lister == nil {
		lister = fswalk.New()
	}
	if backups == nil {
		backups = backup.NewStore(nil, 0)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Lister:  lister,
		Checker: validate.OSChecker{},
		Backups: backups,
		Logger:  logger,
	}
}

// Discover returns every discovered entry under opts.Root in discovery order.
func (r *Runner) Discover(ctx context.Context, opts Options) ([]discovery.DiscoveredPath, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnDiscoverStart(ctx, opts.Root)
	start := time.Now()

	paths, err := discovery.New(r.Lister).Discover(ctx, opts.DiscoveryOptions())
	hooks.OnDiscoverComplete(ctx, opts.Root, len(paths), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("discovered paths",
		"root", opts.Root,
		"entries", len(paths),
		"duration", time.Since(start))
	return paths, nil
}

// BuildMappings discovers opts.Root and returns the resolved alias table.
func (r *Runner) BuildMappings(ctx context.Context, opts Options) (*mapping.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnDiscoverStart(ctx, opts.Root)
	start := time.Now()

	b := mapping.NewBuilder(discovery.New(r.Lister), r.Logger)
	res, err := b.Build(ctx, opts.BuildOptions())
	if err != nil {
		hooks.OnDiscoverComplete(ctx, opts.Root, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnDiscoverComplete(ctx, opts.Root, len(res.Discovered), time.Since(start), nil)

	hooks.OnBuildComplete(ctx, len(res.Mappings), len(res.Warnings), time.Since(start))
	r.Logger.Info("built alias table",
		"aliases", len(res.Mappings),
		"conflicts", len(res.Warnings),
		"duration", time.Since(start))
	return res, nil
}

// Suggest returns the builder's suggestions followed by one suggestion per
// conventional directory that exists under src/.
func (r *Runner) Suggest(ctx context.Context, opts Options) ([]string, error) {
	res, err := r.BuildMappings(ctx, opts)
	if err != nil {
		return nil, err
	}

	out := append([]string{}, res.Suggestions...)
	for _, name := range ConventionalDirs {
		rel := path.Join(SourceDir, name)
		if !r.Checker.Exists(filepath.Join(opts.Root, filepath.FromSlash(rel))) {
			continue
		}
		out = append(out, fmt.Sprintf("Consider adding alias %q -> %q for the %s directory",
			opts.Prefix+name+"/*", rel+"/*", name))
	}
	return out, nil
}

// Close releases the backup store.
func (r *Runner) Close() error {
	return r.Backups.Close()
}
