// Package fswalk lists project files and directories for discovery.
//
// [Lister] implements discovery.Lister on the real filesystem. File listing
// is a single walk that matches doublestar glob patterns against
// root-relative, slash-separated paths and prunes excluded subtrees;
// directory listing is a depth-bounded walk that skips VCS metadata,
// dependency caches and build output.
package fswalk

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never reported by ListDirectories and never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
}

// Lister lists files and directories on the local filesystem.
type Lister struct{}

// New returns a filesystem Lister.
func New() *Lister { return &Lister{} }

// ListFiles returns the absolute paths of regular files under root that match
// at least one include pattern and no exclude pattern. The result is sorted
// and free of duplicates. Hidden directories and directories whose whole
// subtree is excluded are not descended into.
func (l *Lister) ListFiles(ctx context.Context, root string, include, exclude []string) ([]string, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if Pruned(d.Name(), rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !matchAny(include, rel) || Excluded(rel, exclude) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.Sort(out)
	return out, nil
}

// ListDirectories returns the absolute paths of directories between one and
// maxDepth segments below root, sorted. Hidden directories and the entries of
// skipDirs are pruned.
func (l *Lister) ListDirectories(ctx context.Context, root string, maxDepth int) ([]string, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	if maxDepth <= 0 {
		return nil, nil
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if Skipped(d.Name()) {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(filepath.ToSlash(rel), "/") + 1
		if depth > maxDepth {
			return filepath.SkipDir
		}
		out = append(out, path)
		if depth == maxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.Sort(out)
	return out, nil
}

// Excluded reports whether the slash-separated relative path matches any of
// the exclude patterns. Malformed patterns never match.
func Excluded(rel string, exclude []string) bool {
	return matchAny(exclude, filepath.ToSlash(rel))
}

// Pruned reports whether the file walk skips the directory rel (named name).
// Hidden directories are pruned, as is any directory covered by an exclude
// pattern of the form "<dir>/**".
func Pruned(name, rel string, exclude []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range exclude {
		base, ok := strings.CutSuffix(pattern, "/**")
		if !ok {
			continue
		}
		if m, err := doublestar.Match(base, rel); err == nil && m {
			return true
		}
	}
	return false
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Skipped reports whether a directory with the given name is pruned from
// directory listings.
func Skipped(name string) bool {
	return strings.HasPrefix(name, ".") || skipDirs[name]
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", root)
	}
	return nil
}
