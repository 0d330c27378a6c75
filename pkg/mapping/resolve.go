package mapping

import "github.com/alirezahematidev/ts-path/pkg/discovery"

// Resolution is the outcome of a conflict: the alias and the path it keeps.
type Resolution struct {
	Alias        string
	RelativePath string
	Winner       discovery.DiscoveredPath
}

// Resolve picks a single winner from records that share alias.
//
// Files beat directories. Among the remaining candidates the shortest
// RelativePath wins; on an exact tie the earliest record in group wins.
// group is expected to be in discovery order and non-empty.
func Resolve(alias string, group []discovery.DiscoveredPath) Resolution {
	if len(group) == 0 {
		return Resolution{Alias: alias}
	}

	candidates := filterKind(group, discovery.KindFile)
	if len(candidates) == 0 {
		candidates = filterKind(group, discovery.KindDirectory)
	}
	if len(candidates) == 0 {
		first := group[0]
		return Resolution{Alias: alias, RelativePath: first.RelativePath, Winner: first}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.RelativePath) < len(best.RelativePath) {
			best = c
		}
	}
	return Resolution{Alias: alias, RelativePath: best.RelativePath, Winner: best}
}

func filterKind(group []discovery.DiscoveredPath, kind discovery.Kind) []discovery.DiscoveredPath {
	var out []discovery.DiscoveredPath
	for _, p := range group {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}
