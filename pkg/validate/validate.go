package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alirezahematidev/ts-path/pkg/discovery"
	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
)

// Checker reports whether a path exists.
type Checker interface {
	Exists(path string) bool
}

// OSChecker checks the local filesystem.
type OSChecker struct{}

// Exists implements Checker.
func (OSChecker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Options configures a validation run. The embedded discovery options drive
// the shorter-path search.
type Options struct {
	discovery.Options
}

// Validator checks alias tables.
type Validator struct {
	discoverer *discovery.Discoverer
	checker    Checker
	logger     *log.Logger
}

// New returns a Validator. A nil checker uses the local filesystem and a nil
// logger falls back to log.Default().
func New(d *discovery.Discoverer, c Checker, logger *log.Logger) *Validator {
	if c == nil {
		c = OSChecker{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Validator{discoverer: d, checker: c, logger: logger}
}

// Validate checks every entry of table. Discovery runs at most once per call
// and only when an existing target needs the shorter-path search.
func (v *Validator) Validate(ctx context.Context, table mapping.Table, opts Options) (*Result, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve root %q", opts.Root)
	}
	opts.Root = root

	res := &Result{IsValid: true, Issues: []Issue{}}
	var index map[string][]discovery.DiscoveredPath

	for _, key := range table.Keys() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel := table[key]
		stripped := stripWildcard(rel)
		target := filepath.Join(root, filepath.FromSlash(stripped))
		if !v.checker.Exists(target) {
			res.add(Issue{
				Severity: SeverityError,
				Code:     errors.ErrCodeInvalidMapping,
				Message:  fmt.Sprintf("alias %q points to a missing path", key),
				Path:     rel,
			})
			continue
		}

		if v.discoverer == nil {
			continue
		}
		if index == nil {
			paths, err := v.discoverer.Discover(ctx, opts.Options)
			if err != nil {
				return nil, err
			}
			index = byLocation(paths)
		}
		if shorter, ok := shortest(index[target], stripped); ok {
			res.add(Issue{
				Severity:   SeverityInfo,
				Message:    fmt.Sprintf("alias %q could use a shorter path", key),
				Path:       rel,
				Suggestion: shorter,
			})
		}
	}

	v.logger.Debug("validated alias table",
		"entries", len(table),
		"issues", len(res.Issues),
		"valid", res.IsValid)
	return res, nil
}

// stripWildcard removes a trailing "/*" so directory globs resolve to the
// directory itself.
func stripWildcard(p string) string {
	if s, ok := strings.CutSuffix(p, "/*"); ok {
		if s == "" {
			return "."
		}
		return s
	}
	return p
}

func byLocation(paths []discovery.DiscoveredPath) map[string][]discovery.DiscoveredPath {
	m := make(map[string][]discovery.DiscoveredPath, len(paths))
	for _, p := range paths {
		loc := filepath.Clean(p.Path)
		m[loc] = append(m[loc], p)
	}
	return m
}

// shortest returns the shortest RelativePath among candidates that is
// strictly shorter than current.
func shortest(candidates []discovery.DiscoveredPath, current string) (string, bool) {
	best, found := current, false
	for _, c := range candidates {
		if len(c.RelativePath) < len(best) {
			best, found = c.RelativePath, true
		}
	}
	return best, found
}
