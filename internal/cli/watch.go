package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alirezahematidev/ts-path/internal/watch"
	"github.com/alirezahematidev/ts-path/pkg/pipeline"
)

// watchCommand regenerates the alias table whenever sources change.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		replace  bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate aliases whenever files change",
		Long: `Watch regenerates the alias table once, then again after every quiet
period in which matching files changed. Only the config as it was before the
watch started is backed up, so 'tspath restore' undoes the whole session.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("replace") {
				opts.Merge = !replace
			}

			ctx := commandContext(cmd)
			runner := c.newRunner()
			defer runner.Close()
			if err := regenerate(ctx, runner, opts); err != nil {
				return err
			}
			// The backup taken above holds the pre-watch config; later
			// regenerations must not replace it.
			opts.NoBackup = true

			w, err := watch.New(watch.Config{
				Root:     opts.Root,
				Patterns: opts.Include,
				Ignore:   opts.Exclude,
				Debounce: debounce,
				Logger:   c.Logger,
				OnChange: func(ctx context.Context, changed []string) error {
					loggerFromContext(ctx).Debug("regenerating", "changed", len(changed))
					return regenerate(ctx, runner, opts)
				},
			})
			if err != nil {
				return err
			}

			printInfo("Watching %s (Ctrl+C to stop)", opts.Root)
			return w.Run(withLogger(ctx, c.Logger))
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace existing paths instead of merging")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before regenerating")
	return cmd
}

func regenerate(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) error {
	res, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}
	printResult(res)
	printSuccess("Wrote %d aliases to %s", len(res.Mappings), opts.ConfigPath)
	return nil
}
