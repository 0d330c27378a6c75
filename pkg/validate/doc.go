// Package validate checks an existing alias table against the filesystem.
//
// Every entry is visited in sorted key order. A target that does not exist
// produces an error issue; a target that exists but is reachable through a
// strictly shorter root-relative path produces an info issue carrying that
// path as the suggestion.
//
// The filesystem is accessed through the [Checker] interface and, for the
// shorter-path search, a [discovery.Discoverer]. Both are injected so tests
// can run without touching disk:
//
//	v := validate.New(discovery.New(fswalk.New()), validate.OSChecker{}, logger)
//	res, err := v.Validate(ctx, table, validate.Options{Root: root})
//	if !res.IsValid {
//	    // report res.Issues
//	}
package validate
