// Package discovery scans a project tree for aliasable files and directories.
//
// # Overview
//
// A [Discoverer] combines a [Lister] (the filesystem collaborator) with
// [alias.Derive] to produce one [DiscoveredPath] per file and one per
// directory. The result is sorted by depth, then alias, then relative path,
// then kind (files first), so two scans of an unchanged tree are identical.
//
// Aliases are not unique at this stage. Collisions are expected and are
// resolved by package mapping.
//
// # Usage
//
//	d := discovery.New(fswalk.New())
//	paths, err := d.Discover(ctx, discovery.Options{
//	    Root:     "/path/to/project",
//	    Include:  discovery.DefaultInclude,
//	    Exclude:  discovery.DefaultExclude,
//	    MaxDepth: discovery.DefaultMaxDepth,
//	})
//
// Any lister failure aborts the whole scan with a DISCOVERY_FAILED error;
// partial results are never returned.
//
// [alias.Derive]: github.com/alirezahematidev/ts-path/pkg/alias.Derive
package discovery
