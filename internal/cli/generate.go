package cli

import (
	"github.com/spf13/cobra"

	"github.com/alirezahematidev/ts-path/pkg/mapping"
)

// generateCommand builds the alias table and merges it into tsconfig.json.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		replace bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate path aliases and write them to tsconfig.json",
		Long: `Generate discovers files and directories under the project root, derives
an alias for each, resolves conflicts and merges the table into
compilerOptions.paths. Existing entries are kept unless --replace is given.
The previous tsconfig.json is backed up and can be restored with
'tspath restore'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("replace") {
				opts.Merge = !replace
			}
			opts.DryRun = dryRun
			runner := c.newRunner()
			defer runner.Close()

			ctx := commandContext(cmd)
			prog := newProgress(c.Logger)
			s := newSpinner(ctx, "Generating aliases")
			s.Start()
			res, err := runner.Generate(ctx, opts)
			s.Stop()
			if err != nil {
				return err
			}

			printResult(res)
			if dryRun {
				printNewline()
				printMappings(res.Mappings)
				printInfo("Dry run: %s left untouched", opts.ConfigPath)
				return nil
			}
			printSuccess("Wrote %d aliases to %s", len(res.Mappings), opts.ConfigPath)
			prog.done("Generated alias table")
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace existing paths instead of merging")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the table without writing")
	return cmd
}

// printResult prints build diagnostics.
func printResult(res *mapping.Result) {
	for _, w := range res.Warnings {
		printWarning("%s", w)
	}
	for _, e := range res.Errors {
		printError("%s", e)
	}
	if len(res.Suggestions) > 0 {
		printInfo("%d suggestions, run 'tspath suggest' to see them", len(res.Suggestions))
	}
}
