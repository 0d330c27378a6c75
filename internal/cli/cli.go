// Package cli implements the tspath command-line interface.
//
// Every command builds its options the same way: built-in defaults, then the
// project file and TSPATH_* environment variables (see internal/config),
// then any flag the user set explicitly. The project root defaults to the
// working directory and is resolved once here; library packages never read
// the working directory themselves.
//
// # Commands
//
//   - discover: list discovered files and directories with their aliases
//   - generate: build the alias table and merge it into tsconfig.json
//   - validate: check existing tsconfig paths against the filesystem
//   - suggest: print alias suggestions
//   - restore: write the latest tsconfig backup back to disk
//   - watch: regenerate whenever sources change
//   - backup: inspect or clear the backup cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alirezahematidev/ts-path/internal/config"
	"github.com/alirezahematidev/ts-path/pkg/backup"
	"github.com/alirezahematidev/ts-path/pkg/buildinfo"
	"github.com/alirezahematidev/ts-path/pkg/cache"
	"github.com/alirezahematidev/ts-path/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "tspath"

// ExitInvalid is the exit code used when validate finds errors.
const ExitInvalid = 2

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ExitError asks main to exit with Code without printing anything further.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	root     string
	include  []string
	exclude  []string
	maxDepth int
	prefix   string
	config   string
	tsconfig string
	verbose  bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "tspath generates tsconfig path aliases from your source tree",
		Long:          `tspath discovers files and directories in a TypeScript project, derives short aliases for them, resolves naming conflicts and merges the result into compilerOptions.paths of tsconfig.json.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.flags.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.root, "root", "", "project root (default: current directory)")
	pf.StringSliceVar(&c.flags.include, "include", nil, "glob of files to include (repeatable)")
	pf.StringSliceVar(&c.flags.exclude, "exclude", nil, "glob of files to exclude (repeatable)")
	pf.IntVar(&c.flags.maxDepth, "max-depth", pipeline.DefaultMaxDepth, "maximum directory depth to alias")
	pf.StringVar(&c.flags.prefix, "prefix", pipeline.DefaultPrefix, "marker prepended to every alias")
	pf.StringVar(&c.flags.config, "config", "", "project config file (default: <root>/"+config.FileName+")")
	pf.StringVar(&c.flags.tsconfig, "tsconfig", "", "tsconfig file to read and write (default: <root>/tsconfig.json)")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	_ = root.MarkPersistentFlagDirname("root")
	_ = root.MarkPersistentFlagFilename("config", "toml")
	_ = root.MarkPersistentFlagFilename("tsconfig", "json")

	root.AddCommand(c.discoverCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.suggestCommand())
	root.AddCommand(c.restoreCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.backupCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options
// =============================================================================

// options resolves the layered settings for cmd.
func (c *CLI) options(cmd *cobra.Command) (pipeline.Options, error) {
	root := c.flags.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("determine working directory: %w", err)
		}
		root = wd
	}

	loaded, err := config.Load(commandContext(cmd), config.LoadOptions{Root: root, File: c.flags.config})
	if err != nil {
		return pipeline.Options{}, err
	}
	for _, w := range loaded.Warnings {
		c.Logger.Warn(w)
	}
	if loaded.Path != "" {
		c.Logger.Debug("loaded project config", "path", loaded.Path)
	}

	opts := loaded.Config.PipelineOptions(root)
	applyFlags(cmd, &opts, c.flags)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// applyFlags overlays flags the user set explicitly.
func applyFlags(cmd *cobra.Command, opts *pipeline.Options, f globalFlags) {
	flags := cmd.Flags()
	if flags.Changed("include") {
		opts.Include = f.include
	}
	if flags.Changed("exclude") {
		opts.Exclude = f.exclude
	}
	if flags.Changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if flags.Changed("prefix") {
		opts.Prefix = f.prefix
	}
	if flags.Changed("tsconfig") {
		opts.ConfigPath = f.tsconfig
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner whose backups live in the user cache
// directory. Backups are disabled when no cache directory is available.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(nil, backup.NewStore(c.newCache(), 0), c.Logger)
}

func (c *CLI) newCache() cache.Cache {
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("backups disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("backups disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// commandContext returns cmd's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
