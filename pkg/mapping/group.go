package mapping

import "github.com/alirezahematidev/ts-path/pkg/discovery"

// groups is an order-preserving multimap from alias to records. Keys are
// visited in first-insertion order and each group keeps the records in the
// order they were added.
type groups struct {
	keys  []string
	byKey map[string][]discovery.DiscoveredPath
}

func groupByAlias(paths []discovery.DiscoveredPath) *groups {
	g := &groups{byKey: make(map[string][]discovery.DiscoveredPath)}
	for _, p := range paths {
		g.add(p)
	}
	return g
}

func (g *groups) add(p discovery.DiscoveredPath) {
	if _, ok := g.byKey[p.Alias]; !ok {
		g.keys = append(g.keys, p.Alias)
	}
	g.byKey[p.Alias] = append(g.byKey[p.Alias], p)
}

// each calls fn for every alias in first-insertion order.
func (g *groups) each(fn func(alias string, group []discovery.DiscoveredPath)) {
	for _, k := range g.keys {
		fn(k, g.byKey[k])
	}
}

func (g *groups) len() int { return len(g.keys) }
