// Package config loads tspath settings.
//
// Values are layered with viper in this order, later layers winning:
// built-in defaults, the project file (.tspath.toml in the root, or the file
// given with --config), and TSPATH_* environment variables. Command-line flags
// are applied on top by the CLI.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/alirezahematidev/ts-path/pkg/discovery"
	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
	"github.com/alirezahematidev/ts-path/pkg/pipeline"
)

const (
	// FileName is the project config file looked up in the root.
	FileName = ".tspath.toml"

	// EnvPrefix prefixes environment overrides, e.g. TSPATH_MAX_DEPTH.
	EnvPrefix = "TSPATH"
)

// Config holds the layered settings.
type Config struct {
	Include    []string `mapstructure:"include" toml:"include"`
	Exclude    []string `mapstructure:"exclude" toml:"exclude"`
	MaxDepth   int      `mapstructure:"max_depth" toml:"max_depth"`
	Prefix     string   `mapstructure:"prefix" toml:"prefix"`
	ConfigPath string   `mapstructure:"config_path" toml:"config_path"` // tsconfig location
	Merge      bool     `mapstructure:"merge" toml:"merge"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Include:  append([]string(nil), discovery.DefaultInclude...),
		Exclude:  append([]string(nil), discovery.DefaultExclude...),
		MaxDepth: discovery.DefaultMaxDepth,
		Prefix:   mapping.DefaultPrefix,
		Merge:    true,
	}
}

// LoadOptions controls where Load looks for the project file.
type LoadOptions struct {
	// Root is the project root searched for FileName.
	Root string

	// File, when set, is used instead of Root/FileName and must exist.
	File string
}

// Loaded is the outcome of Load.
type Loaded struct {
	Config Config

	// Path is the project file that was read, or empty.
	Path string

	// Warnings lists keys in the project file that were not recognised.
	Warnings []string
}

// Load resolves the layered configuration.
func Load(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("include", defaults.Include)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("max_depth", defaults.MaxDepth)
	v.SetDefault("prefix", defaults.Prefix)
	v.SetDefault("config_path", defaults.ConfigPath)
	v.SetDefault("merge", defaults.Merge)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	out := &Loaded{Warnings: []string{}}

	path := opts.File
	if path == "" {
		path = filepath.Join(opts.Root, FileName)
		if !fileExists(path) {
			path = ""
		}
	} else if !fileExists(path) {
		return nil, errors.New(errors.ErrCodeConfigNotFound, "config file not found: %s", path)
	}

	if path != "" {
		warnings, err := loadTOMLIntoViper(v, path)
		if err != nil {
			return nil, err
		}
		out.Path = path
		out.Warnings = warnings
	}

	if err := v.Unmarshal(&out.Config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse, err, "decode settings")
	}
	if err := out.Config.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// loadTOMLIntoViper decodes path and merges it into v, returning a warning
// for every key the Config struct does not know.
func loadTOMLIntoViper(v *viper.Viper, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigIO, err, "read %s", path)
	}

	var known Config
	md, err := toml.Decode(string(data), &known)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse, err, "parse %s", path)
	}

	var configMap map[string]any
	if _, err := toml.Decode(string(data), &configMap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse, err, "parse %s", path)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse, err, "merge %s", path)
	}

	warnings := []string{}
	for _, key := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown key %q in %s", key.String(), path))
	}
	sort.Strings(warnings)
	return warnings, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if len(c.Include) == 0 {
		return errors.New(errors.ErrCodeInvalidPattern, "at least one include pattern is required")
	}
	if err := errors.ValidatePatterns(c.Include); err != nil {
		return err
	}
	if err := errors.ValidatePatterns(c.Exclude); err != nil {
		return err
	}
	if err := errors.ValidateMaxDepth(c.MaxDepth); err != nil {
		return err
	}
	return errors.ValidatePrefix(c.Prefix)
}

// PipelineOptions converts c into runner options for root.
func (c Config) PipelineOptions(root string) pipeline.Options {
	return pipeline.Options{
		Root:       root,
		Include:    append([]string(nil), c.Include...),
		Exclude:    append([]string(nil), c.Exclude...),
		MaxDepth:   c.MaxDepth,
		Prefix:     c.Prefix,
		ConfigPath: c.ConfigPath,
		Merge:      c.Merge,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
