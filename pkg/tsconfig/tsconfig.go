// Package tsconfig reads, merges and writes the compilerOptions.paths
// section of a tsconfig.json document.
//
// [Apply] is pure and never touches disk. [Read], [Write] and [Exists] are
// the store functions used by the pipeline; Read accepts JSON with comments
// and trailing commas, Write emits plain two-space indented JSON.
package tsconfig

import (
	"github.com/alirezahematidev/ts-path/pkg/mapping"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = "tsconfig.json"

const (
	keyCompilerOptions = "compilerOptions"
	keyBaseURL         = "baseUrl"
	keyPaths           = "paths"
)

// Document is a decoded tsconfig.json.
type Document map[string]any

// Baseline returns the document synthesised when no config exists.
func Baseline() Document {
	return Document{
		keyCompilerOptions: map[string]any{
			keyBaseURL: ".",
			keyPaths:   map[string]any{},
		},
	}
}

// Apply returns a copy of doc whose compilerOptions.paths holds table.
// With merge set, existing entries are kept and table entries override them
// on key collision; otherwise paths is replaced by table. doc is never
// modified. A nil doc starts from Baseline.
func Apply(table mapping.Table, doc Document, merge bool) Document {
	var out Document
	if doc == nil {
		out = Baseline()
	} else {
		out = deepCopy(doc).(map[string]any)
	}

	opts, ok := out[keyCompilerOptions].(map[string]any)
	if !ok {
		opts = map[string]any{}
		out[keyCompilerOptions] = opts
	}

	paths := map[string]any{}
	if merge {
		if existing, ok := opts[keyPaths].(map[string]any); ok {
			paths = existing
		}
	}
	for k, v := range table {
		paths[k] = v
	}
	opts[keyPaths] = paths
	return out
}

// ReadTable extracts compilerOptions.paths as a Table. Array values
// contribute their first element; empty arrays and non-string values are
// skipped.
func ReadTable(doc Document) mapping.Table {
	table := mapping.Table{}
	opts, ok := doc[keyCompilerOptions].(map[string]any)
	if !ok {
		return table
	}
	paths, ok := opts[keyPaths].(map[string]any)
	if !ok {
		return table
	}
	for k, v := range paths {
		switch v := v.(type) {
		case string:
			table[k] = v
		case []any:
			if len(v) == 0 {
				continue
			}
			if s, ok := v[0].(string); ok {
				table[k] = s
			}
		}
	}
	return table
}

func deepCopy(v any) any {
	switch v := v.(type) {
	case Document:
		return deepCopy(map[string]any(v))
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = deepCopy(e)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, e := range v {
			s[i] = deepCopy(e)
		}
		return s
	default:
		return v
	}
}
