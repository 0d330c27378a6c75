package pipeline

import (
	"context"
	"os"

	"github.com/alirezahematidev/ts-path/pkg/backup"
	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
	"github.com/alirezahematidev/ts-path/pkg/observability"
	"github.com/alirezahematidev/ts-path/pkg/tsconfig"
)

// Merge writes table into opts.ConfigPath. With opts.Merge the existing paths
// entries are kept; otherwise they are replaced. An existing file is backed
// up before it is overwritten unless opts.NoBackup is set; a missing file is
// created from the baseline.
func (r *Runner) Merge(ctx context.Context, table mapping.Table, opts Options) (err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	defer func() {
		observability.Config().OnConfigWrite(ctx, opts.ConfigPath, len(table), err)
	}()

	for _, key := range table.Keys() {
		if verr := errors.ValidateRelativePath(table[key]); verr != nil {
			return errors.Wrap(errors.ErrCodeInvalidMapping, verr, "alias %q", key)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var doc tsconfig.Document
	raw, err := os.ReadFile(opts.ConfigPath)
	switch {
	case err == nil:
		if doc, err = tsconfig.Parse(raw); err != nil {
			return err
		}
		if opts.NoBackup {
			break
		}
		snap, err := r.Backups.Save(ctx, opts.ConfigPath, raw)
		if err != nil {
			return err
		}
		r.Logger.Debug("backed up config", "path", opts.ConfigPath, "backup", snap.ID)
	case os.IsNotExist(err):
		r.Logger.Debug("config not found, creating", "path", opts.ConfigPath)
	default:
		return errors.Wrap(errors.ErrCodeConfigIO, err, "read %s", opts.ConfigPath)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := tsconfig.Write(opts.ConfigPath, tsconfig.Apply(table, doc, opts.Merge)); err != nil {
		return err
	}

	r.Logger.Info("wrote config",
		"path", opts.ConfigPath,
		"entries", len(table),
		"merge", opts.Merge)
	return nil
}

// Generate builds the alias table and merges it into the config. With
// opts.DryRun nothing is written.
func (r *Runner) Generate(ctx context.Context, opts Options) (*mapping.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	res, err := r.BuildMappings(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		r.Logger.Debug("dry run, config left untouched", "path", opts.ConfigPath)
		return res, nil
	}
	if err := r.Merge(ctx, res.Mappings, opts); err != nil {
		return nil, err
	}
	return res, nil
}

// Restore writes the latest backup of opts.ConfigPath back to disk.
func (r *Runner) Restore(ctx context.Context, opts Options) (snap *backup.Snapshot, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	defer func() {
		observability.Config().OnRestore(ctx, opts.ConfigPath, err)
	}()

	snap, err = r.Backups.Latest(ctx, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := tsconfig.WriteRaw(opts.ConfigPath, snap.Data); err != nil {
		return nil, err
	}
	r.Logger.Info("restored config",
		"path", opts.ConfigPath,
		"backup", snap.ID,
		"created", snap.CreatedAt)
	return snap, nil
}
