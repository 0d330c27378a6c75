// Package mapping turns discovered paths into a collision-free alias table.
//
// # Overview
//
// [Builder.Build] runs discovery, groups the records by alias and emits one
// table entry per alias:
//
//   - A unique alias maps straight to its relative path. Entries more than two
//     directories deep get a suggestion to pick a shorter alias.
//   - A contested alias is settled by [Resolve] and recorded as a warning.
//
// Conflicts never fail a build. Blocking generation on a collision would
// defeat the point of generating aliases automatically.
//
// # Conflict policy
//
// [Resolve] prefers files over directories, then the shortest relative path
// (by string length). On an exact tie the record that came first in discovery
// order wins, which is why grouping preserves discovery order.
package mapping
