package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// discoverCommand lists every discovered entry with its alias.
func (c *CLI) discoverCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List discovered files and directories with their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			runner := c.newRunner()
			defer runner.Close()
			ctx := commandContext(cmd)

			s := newSpinner(ctx, "Scanning "+opts.Root)
			s.Start()
			paths, err := runner.Discover(ctx, opts)
			s.Stop()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(paths)
			}
			if len(paths) == 0 {
				printInfo("Nothing matched under %s", opts.Root)
				return nil
			}
			printDiscovered(paths)
			printDetail("%d entries under %s", len(paths), opts.Root)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}
