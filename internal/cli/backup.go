package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alirezahematidev/ts-path/pkg/cache"
)

// backupCommand manages the tsconfig backup cache.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage tsconfig backups",
	}

	cmd.AddCommand(c.backupClearCommand())
	cmd.AddCommand(c.backupDiscardCommand())
	cmd.AddCommand(c.backupPathCommand())

	return cmd
}

// backupClearCommand creates the "backup clear" subcommand.
func (c *CLI) backupClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			count, err := clearDir(dir)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("No backups stored")
				return nil
			}
			printSuccess("Removed %d backups", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// backupDiscardCommand creates the "backup discard" subcommand, which drops
// the backup of the project's tsconfig only.
func (c *CLI) backupDiscardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Delete the backup of the current tsconfig",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			runner := c.newRunner()
			defer runner.Close()

			if err := runner.Backups.Discard(commandContext(cmd), opts.ConfigPath); err != nil {
				return err
			}
			printSuccess("Discarded backup of %s", opts.ConfigPath)
			return nil
		},
	}
}

// backupPathCommand creates the "backup path" subcommand.
func (c *CLI) backupPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the backup directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(stdout, dir)
			return nil
		},
	}
}

// clearDir removes every file below dir and the emptied subdirectories,
// returning the number of files removed. A missing dir is not an error.
func clearDir(dir string) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	var subdirs []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == dir {
			return nil
		}
		if d.IsDir() {
			subdirs = append(subdirs, path)
			return nil
		}
		if err := os.Remove(path); err == nil {
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	for i := len(subdirs) - 1; i >= 0; i-- {
		_ = os.Remove(subdirs[i])
	}
	return count, nil
}
