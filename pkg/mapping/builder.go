package mapping

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/alirezahematidev/ts-path/pkg/discovery"
)

// suggestDepth is the depth beyond which a unique alias gets a suggestion.
const suggestDepth = 2

// Options configures a build.
type Options struct {
	discovery.Options

	// Prefix is prepended to every alias key. Empty means no prefix.
	Prefix string
}

// Result is the output of a build.
type Result struct {
	Mappings    Table
	Discovered  []discovery.DiscoveredPath
	Suggestions []string
	Warnings    []string

	// Errors is reserved for invariant violations that survive resolution
	// (for example two keys mapping to the same alias after prefixing).
	// Build never populates it today.
	Errors []string
}

// Builder orchestrates discovery and conflict resolution.
type Builder struct {
	discoverer *discovery.Discoverer
	logger     *log.Logger
}

// NewBuilder returns a Builder. A nil logger falls back to log.Default().
func NewBuilder(d *discovery.Discoverer, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{discoverer: d, logger: logger}
}

// Build discovers opts.Root and returns the alias table with diagnostics.
// Discovery failures abort the build; conflicts only produce warnings.
func (b *Builder) Build(ctx context.Context, opts Options) (*Result, error) {
	paths, err := b.discoverer.Discover(ctx, opts.Options)
	if err != nil {
		return nil, err
	}
	return FromDiscovered(paths, opts.Prefix, b.logger), nil
}

// FromDiscovered builds a Result from an already discovered, ordered set.
func FromDiscovered(paths []discovery.DiscoveredPath, prefix string, logger *log.Logger) *Result {
	if logger == nil {
		logger = log.Default()
	}

	res := &Result{
		Mappings:    make(Table),
		Discovered:  paths,
		Suggestions: []string{},
		Warnings:    []string{},
		Errors:      []string{},
	}

	g := groupByAlias(paths)
	g.each(func(name string, group []discovery.DiscoveredPath) {
		key := prefix + name
		if len(group) == 1 {
			p := group[0]
			res.Mappings[key] = p.RelativePath
			if p.Depth > suggestDepth {
				res.Suggestions = append(res.Suggestions, fmt.Sprintf(
					"Consider a shorter alias for deeply nested path %q (currently %q, depth %d)",
					p.RelativePath, key, p.Depth))
			}
			return
		}

		r := Resolve(name, group)
		winner := prefix + r.Alias
		res.Mappings[winner] = r.RelativePath
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Alias conflict for %q between %d paths: resolved to %q -> %q",
			key, len(group), winner, r.RelativePath))
		logger.Debug("resolved alias conflict", "alias", key, "candidates", len(group), "winner", r.RelativePath)
	})

	logger.Debug("built alias table",
		"discovered", len(paths),
		"aliases", g.len(),
		"conflicts", len(res.Warnings))
	return res
}
