package mapping

import (
	"maps"
	"slices"
)

// DefaultPrefix marks generated aliases in tsconfig paths.
const DefaultPrefix = "@"

// Table maps alias keys (including the prefix) to root-relative paths.
type Table map[string]string

// Keys returns the table's keys in sorted order.
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns a shallow copy of t. A nil table clones to an empty one.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	maps.Copy(out, t)
	return out
}
