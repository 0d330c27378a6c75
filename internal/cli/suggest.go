package cli

import "github.com/spf13/cobra"

func (c *CLI) suggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest aliases for deep paths and conventional directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			runner := c.newRunner()
			defer runner.Close()

			suggestions, err := runner.Suggest(commandContext(cmd), opts)
			if err != nil {
				return err
			}
			if len(suggestions) == 0 {
				printSuccess("No suggestions")
				return nil
			}
			for _, s := range suggestions {
				printInfo("%s", s)
			}
			return nil
		},
	}
}
