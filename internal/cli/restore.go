package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// restoreCommand writes the latest backup of tsconfig.json back to disk.
func (c *CLI) restoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore tsconfig.json from the latest backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			runner := c.newRunner()
			defer runner.Close()

			snap, err := runner.Restore(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			printSuccess("Restored %s", opts.ConfigPath)
			printKeyValue("Backup", snap.ID.String())
			printKeyValue("Created", snap.CreatedAt.Local().Format(time.RFC1123))
			return nil
		},
	}
}
