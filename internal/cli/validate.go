package cli

import (
	"github.com/spf13/cobra"

	"github.com/alirezahematidev/ts-path/pkg/validate"
)

// validateCommand checks the paths stored in tsconfig.json.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check tsconfig paths against the filesystem",
		Long: `Validate reads compilerOptions.paths and reports aliases whose target is
missing (errors) and targets reachable through a shorter path (info).
The command exits with status 2 when any error is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			runner := c.newRunner()
			defer runner.Close()

			res, err := runner.Validate(commandContext(cmd), opts)
			if err != nil {
				return err
			}

			for _, issue := range res.Issues {
				printIssue(issue)
			}
			if !res.IsValid {
				printNewline()
				printError("%s has %d invalid aliases", opts.ConfigPath, res.Count(validate.SeverityError))
				return &ExitError{Code: ExitInvalid}
			}
			printSuccess("All aliases in %s are valid", opts.ConfigPath)
			return nil
		},
	}
}
