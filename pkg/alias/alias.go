// Package alias derives short symbolic names for files and directories.
//
// [Derive] is the only entry point. It is a pure function of its inputs: it
// never touches the filesystem and never fails.
//
// # Rules
//
// Files (the final segment has an extension) are camel-folded:
//
//	src/components/Button.tsx   -> button
//	src/hooks/use-auth.ts       -> useAuth
//	src/api/http_client.ts      -> httpClient
//
// Index files take the name of their directory:
//
//	src/utils/index.ts          -> utils
//
// Directories (no extension) keep the segment verbatim:
//
//	src/components              -> components
//	src/feature-flags           -> feature-flags
//
// A result that does not start with an ASCII letter is prefixed with [Fallback].
package alias

import (
	"path/filepath"
	"strings"
)

// Fallback is prepended to aliases that would not start with an ASCII letter.
const Fallback = "x"

// indexStem is the stem of module entry files that are aliased by their
// parent directory.
const indexStem = "index"

// Derive maps path to a candidate alias. root is the scan root; it is only
// consulted to keep index files directly under the root named "index".
func Derive(path, root string) string {
	clean := filepath.Clean(path)
	base := filepath.Base(clean)

	ext := filepath.Ext(base)
	if ext == "" {
		return ensureLetter(base)
	}

	stem := strings.TrimSuffix(base, ext)
	if stem == indexStem {
		parent := filepath.Dir(clean)
		if !isRoot(parent, root) {
			return ensureLetter(Fold(filepath.Base(parent)))
		}
	}
	return ensureLetter(Fold(stem))
}

// Fold camel-cases s: runs of non-alphanumeric ASCII characters become word
// boundaries, every word after the first is capitalised, and the first
// character of the result is lowercased.
//
//	Fold("user-profile card") == "userProfileCard"
//	Fold("Button")            == "button"
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	boundary := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) {
			boundary = b.Len() > 0
			continue
		}
		if boundary && isLower(c) {
			c -= 'a' - 'A'
		}
		boundary = false
		b.WriteByte(c)
	}
	out := b.String()
	if out == "" {
		return out
	}
	return strings.ToLower(out[:1]) + out[1:]
}

func ensureLetter(s string) string {
	if s != "" && isLetter(s[0]) {
		return s
	}
	return Fallback + s
}

func isRoot(dir, root string) bool {
	if root == "" {
		return dir == "." || dir == string(filepath.Separator)
	}
	return dir == filepath.Clean(root)
}

func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isLetter(c byte) bool { return isLower(c) || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool  { return isLetter(c) || (c >= '0' && c <= '9') }
