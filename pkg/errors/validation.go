package errors

import (
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// MaxDirectoryDepth caps --max-depth. Deeper scans produce aliases nobody
// would type and make discovery slow on large trees.
const MaxDirectoryDepth = 32

// ValidatePattern validates an include or exclude glob pattern.
//
// Validation rules:
//   - Pattern cannot be empty
//   - Pattern must be relative (patterns are matched against root-relative paths)
//   - Pattern must be valid doublestar syntax
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return New(ErrCodeInvalidPattern, "pattern cannot be empty")
	}
	if strings.HasPrefix(pattern, "/") {
		return New(ErrCodeInvalidPattern, "pattern must be relative: %q", pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return New(ErrCodeInvalidPattern, "invalid glob pattern: %q", pattern)
	}
	return nil
}

// ValidatePatterns validates every pattern in patterns.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if err := ValidatePattern(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePrefix validates the alias marker prepended to every generated key.
// An empty prefix is allowed; otherwise it must be short and free of
// whitespace, path separators and glob metacharacters.
func ValidatePrefix(prefix string) error {
	if len(prefix) > 8 {
		return New(ErrCodeInvalidPrefix, "prefix too long (max 8 characters)")
	}
	for _, r := range prefix {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidPrefix, "prefix contains whitespace or control characters")
		}
	}
	if strings.ContainsAny(prefix, "/\\*?[]{}") {
		return New(ErrCodeInvalidPrefix, "prefix contains invalid characters: %q", prefix)
	}
	return nil
}

// ValidateMaxDepth validates the directory scan depth.
func ValidateMaxDepth(depth int) error {
	if depth < 0 {
		return New(ErrCodeInvalidInput, "max depth cannot be negative")
	}
	if depth > MaxDirectoryDepth {
		return New(ErrCodeInvalidInput, "max depth too large (max %d)", MaxDirectoryDepth)
	}
	return nil
}

// ValidateRelativePath validates a mapping target stored in tsconfig.
// It prevents path traversal outside the project and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateRelativePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
