package pipeline

import (
	"context"
	"time"

	"github.com/alirezahematidev/ts-path/pkg/discovery"
	"github.com/alirezahematidev/ts-path/pkg/observability"
	"github.com/alirezahematidev/ts-path/pkg/tsconfig"
	"github.com/alirezahematidev/ts-path/pkg/validate"
)

// Validate checks the paths table stored in opts.ConfigPath. A missing config
// file is reported as a single error issue rather than an error.
func (r *Runner) Validate(ctx context.Context, opts Options) (*validate.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	if !tsconfig.Exists(opts.ConfigPath) {
		res := validate.MissingConfig(opts.ConfigPath)
		observability.Pipeline().OnValidateComplete(ctx, len(res.Issues), res.IsValid, time.Since(start))
		return res, nil
	}

	doc, err := tsconfig.Read(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	table := tsconfig.ReadTable(doc)

	v := validate.New(discovery.New(r.Lister), r.Checker, r.Logger)
	res, err := v.Validate(ctx, table, opts.ValidateOptions())
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnValidateComplete(ctx, len(res.Issues), res.IsValid, time.Since(start))
	r.Logger.Info("validated config",
		"path", opts.ConfigPath,
		"entries", len(table),
		"issues", len(res.Issues),
		"duration", time.Since(start))
	return res, nil
}
