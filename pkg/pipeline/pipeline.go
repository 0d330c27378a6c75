// Package pipeline provides the discover → build → validate → merge pipeline
// for tspath.
//
// The CLI and the watch loop both go through a [Runner], so every entry point
// shares the same defaults, logging, hooks and backup behaviour.
//
// # Stages
//
//  1. Discover: list files and directories under the project root
//  2. Build: derive aliases and resolve conflicts into a table
//  3. Validate: check an existing tsconfig table against the filesystem
//  4. Merge: write a table into tsconfig.json, backing up the old file
//
// Each stage can be run independently; [Runner.Generate] chains build and
// merge.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, backups, logger)
//	opts := pipeline.DefaultOptions(root)
//	res, err := runner.Generate(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range res.Warnings {
//	    fmt.Println(w)
//	}
package pipeline

import (
	"path/filepath"

	"github.com/alirezahematidev/ts-path/pkg/discovery"
	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
	"github.com/alirezahematidev/ts-path/pkg/tsconfig"
	"github.com/alirezahematidev/ts-path/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and watch mode
// =============================================================================

const (
	// DefaultMaxDepth is the directory scan depth.
	DefaultMaxDepth = discovery.DefaultMaxDepth

	// DefaultPrefix is the alias marker.
	DefaultPrefix = mapping.DefaultPrefix

	// SourceDir is where conventional directories are looked up by Suggest.
	SourceDir = "src"
)

// ConventionalDirs are directory names Suggest recommends aliasing when they
// exist under SourceDir.
var ConventionalDirs = []string{"components", "utils", "types", "services", "hooks", "pages"}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures every pipeline stage.
//
// A zero MaxDepth disables directory discovery and an empty Prefix produces
// bare keys, so callers normally start from DefaultOptions.
type Options struct {
	Root       string   `json:"root"`
	Include    []string `json:"include,omitempty"`
	Exclude    []string `json:"exclude,omitempty"`
	MaxDepth   int      `json:"max_depth"`
	Prefix     string   `json:"prefix"`
	ConfigPath string   `json:"config_path,omitempty"` // relative paths resolve against Root
	Merge      bool     `json:"merge"`                 // keep existing paths entries
	DryRun     bool     `json:"dry_run,omitempty"`
	NoBackup   bool     `json:"no_backup,omitempty"` // Merge skips the backup of the existing file

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns the built-in defaults for root.
func DefaultOptions(root string) Options {
	return Options{
		Root:     root,
		Include:  append([]string(nil), discovery.DefaultInclude...),
		Exclude:  append([]string(nil), discovery.DefaultExclude...),
		MaxDepth: DefaultMaxDepth,
		Prefix:   DefaultPrefix,
		Merge:    true,
	}
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field, resolves Root and ConfigPath to
// absolute paths and fills nil pattern lists with the defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Root == "" {
		return errors.New(errors.ErrCodeInvalidInput, "root is required")
	}
	root, err := filepath.Abs(o.Root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve root %q", o.Root)
	}
	o.Root = root

	if o.Include == nil {
		o.Include = append([]string(nil), discovery.DefaultInclude...)
	}
	if o.Exclude == nil {
		o.Exclude = append([]string(nil), discovery.DefaultExclude...)
	}
	if len(o.Include) == 0 {
		return errors.New(errors.ErrCodeInvalidPattern, "at least one include pattern is required")
	}
	if err := errors.ValidatePatterns(o.Include); err != nil {
		return err
	}
	if err := errors.ValidatePatterns(o.Exclude); err != nil {
		return err
	}
	if err := errors.ValidateMaxDepth(o.MaxDepth); err != nil {
		return err
	}
	if err := errors.ValidatePrefix(o.Prefix); err != nil {
		return err
	}

	switch {
	case o.ConfigPath == "":
		o.ConfigPath = filepath.Join(root, tsconfig.DefaultFileName)
	case !filepath.IsAbs(o.ConfigPath):
		o.ConfigPath = filepath.Join(root, o.ConfigPath)
	}

	o.validated = true
	return nil
}

// DiscoveryOptions returns the subset used by the discoverer.
func (o *Options) DiscoveryOptions() discovery.Options {
	return discovery.Options{
		Root:     o.Root,
		Include:  o.Include,
		Exclude:  o.Exclude,
		MaxDepth: o.MaxDepth,
	}
}

// BuildOptions returns the subset used by the mapping builder.
func (o *Options) BuildOptions() mapping.Options {
	return mapping.Options{Options: o.DiscoveryOptions(), Prefix: o.Prefix}
}

// ValidateOptions returns the subset used by the validator.
func (o *Options) ValidateOptions() validate.Options {
	return validate.Options{Options: o.DiscoveryOptions()}
}
