// Package pkg provides the core libraries for tspath, the tsconfig path
// alias generator.
//
// # Overview
//
// tspath scans a TypeScript project, derives a short alias for every source
// file and directory it finds, resolves aliases that collide and merges the
// resulting table into compilerOptions.paths of tsconfig.json. The pkg
// directory is organized into three areas:
//
//  1. Domain logic: [alias], [discovery], [mapping], [validate]
//  2. Storage: [tsconfig], [cache], [backup]
//  3. Orchestration: [pipeline], plus [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	project root
//	     ↓
//	[fswalk] lists files and directories
//	     ↓
//	[discovery] filters them and attaches an alias from [alias]
//	     ↓
//	[mapping] groups by alias and resolves conflicts
//	     ↓
//	[tsconfig] merges the table into tsconfig.json ([backup] keeps the old one)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/alirezahematidev/ts-path/pkg/pipeline"
//	)
//
//	opts := pipeline.DefaultOptions("/path/to/project")
//	r := pipeline.NewRunner(nil, nil, nil)
//	defer r.Close()
//
//	res, err := r.Generate(context.Background(), opts)
//	if err != nil {
//	    return err
//	}
//	for _, w := range res.Warnings {
//	    fmt.Println(w)
//	}
//
// # Common Workflows
//
// Build a table without touching tsconfig.json:
//
//	res, _ := r.BuildMappings(ctx, opts)
//	for _, k := range res.Mappings.Keys() {
//	    fmt.Println(k, "->", res.Mappings[k])
//	}
//
// Check an existing tsconfig.json:
//
//	vr, _ := r.Validate(ctx, opts)
//	if !vr.IsValid {
//	    for _, issue := range vr.Issues {
//	        fmt.Println(issue)
//	    }
//	}
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/mapping/...   # Specific package
//	go test -run Example ./...  # Examples only
//
// [alias]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/alias
// [discovery]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/discovery
// [fswalk]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/fswalk
// [mapping]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/mapping
// [validate]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/validate
// [tsconfig]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/tsconfig
// [cache]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/cache
// [backup]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/backup
// [pipeline]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/errors
// [observability]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/alirezahematidev/ts-path/pkg/buildinfo
package pkg
