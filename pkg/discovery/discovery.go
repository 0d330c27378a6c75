package discovery

import (
	"cmp"
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alirezahematidev/ts-path/pkg/alias"
	"github.com/alirezahematidev/ts-path/pkg/errors"
)

// Default scan options.
const DefaultMaxDepth = 3

var (
	// DefaultInclude selects TypeScript sources.
	DefaultInclude = []string{"**/*.ts", "**/*.tsx"}

	// DefaultExclude drops declaration files and build output.
	DefaultExclude = []string{"**/*.d.ts", "node_modules/**", "dist/**", "build/**"}
)

// Kind distinguishes files from directories.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// DiscoveredPath is one filesystem entity found during a scan.
type DiscoveredPath struct {
	Alias        string `json:"alias"`
	Path         string `json:"path"`          // absolute
	RelativePath string `json:"relative_path"` // slash-separated, relative to root
	Kind         Kind   `json:"kind"`
	Depth        int    `json:"depth"`
}

// Lister enumerates the filesystem. Implementations return absolute paths.
type Lister interface {
	ListFiles(ctx context.Context, root string, include, exclude []string) ([]string, error)
	ListDirectories(ctx context.Context, root string, maxDepth int) ([]string, error)
}

// Options configures a scan.
type Options struct {
	Root     string
	Include  []string
	Exclude  []string
	MaxDepth int
}

// Discoverer produces ordered DiscoveredPath sets.
type Discoverer struct {
	lister Lister
}

// New returns a Discoverer backed by l.
func New(l Lister) *Discoverer {
	return &Discoverer{lister: l}
}

// Discover lists files and directories under opts.Root and returns one record
// per entry in deterministic order.
func (d *Discoverer) Discover(ctx context.Context, opts Options) ([]DiscoveredPath, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscoveryFailed, err, "resolve root %q", opts.Root)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscoveryFailed, err, "discover %s", root)
	}

	files, err := d.lister.ListFiles(ctx, root, opts.Include, opts.Exclude)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscoveryFailed, err, "list files in %s", root)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscoveryFailed, err, "discover %s", root)
	}
	dirs, err := d.lister.ListDirectories(ctx, root, opts.MaxDepth)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscoveryFailed, err, "list directories in %s", root)
	}

	out := make([]DiscoveredPath, 0, len(files)+len(dirs))
	seen := make(map[string]bool, len(files)+len(dirs))
	add := func(path string, kind Kind) {
		p, ok := newPath(root, path, kind)
		if !ok || seen[p.Path] {
			return
		}
		seen[p.Path] = true
		out = append(out, p)
	}
	for _, f := range files {
		add(f, KindFile)
	}
	for _, dir := range dirs {
		add(dir, KindDirectory)
	}

	Sort(out)
	return out, nil
}

// Sort orders paths by depth, alias, relative path and kind (files first).
func Sort(paths []DiscoveredPath) {
	slices.SortStableFunc(paths, func(a, b DiscoveredPath) int {
		return cmp.Or(
			cmp.Compare(a.Depth, b.Depth),
			strings.Compare(a.Alias, b.Alias),
			strings.Compare(a.RelativePath, b.RelativePath),
			cmp.Compare(kindRank(a.Kind), kindRank(b.Kind)),
		)
	})
}

// RelativeTo returns path relative to root with forward slashes, or false if
// path is root itself or lies outside it.
func RelativeTo(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func newPath(root, path string, kind Kind) (DiscoveredPath, bool) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)
	rel, ok := RelativeTo(root, path)
	if !ok {
		return DiscoveredPath{}, false
	}
	return DiscoveredPath{
		Alias:        alias.Derive(path, root),
		Path:         path,
		RelativePath: rel,
		Kind:         kind,
		Depth:        strings.Count(rel, "/"),
	}, true
}

func kindRank(k Kind) int {
	if k == KindFile {
		return 0
	}
	return 1
}
