package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/alirezahematidev/ts-path/pkg/errors"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions("/repo")
	if o.MaxDepth != 3 || o.Prefix != "@" || !o.Merge {
		t.Errorf("DefaultOptions = %+v", o)
	}
	if len(o.Include) != 2 || len(o.Exclude) != 4 {
		t.Errorf("patterns = %v / %v", o.Include, o.Exclude)
	}

	// Defaults must not alias the package-level slices.
	o.Include[0] = "changed"
	if DefaultOptions("/repo").Include[0] == "changed" {
		t.Error("DefaultOptions shares Include storage")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing root", Options{}, errors.ErrCodeInvalidInput},
		{"empty include", Options{Root: "/repo", Include: []string{}}, errors.ErrCodeInvalidPattern},
		{"bad include", Options{Root: "/repo", Include: []string{"src/[a"}}, errors.ErrCodeInvalidPattern},
		{"absolute exclude", Options{Root: "/repo", Exclude: []string{"/dist/**"}}, errors.ErrCodeInvalidPattern},
		{"negative depth", Options{Root: "/repo", MaxDepth: -1}, errors.ErrCodeInvalidInput},
		{"bad prefix", Options{Root: "/repo", Prefix: "@/"}, errors.ErrCodeInvalidPrefix},
		{"valid", Options{Root: "/repo", MaxDepth: 2, Prefix: "~"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaultsFillsFields(t *testing.T) {
	root := t.TempDir()
	o := Options{Root: root}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.ConfigPath != filepath.Join(root, "tsconfig.json") {
		t.Errorf("ConfigPath = %q", o.ConfigPath)
	}
	if len(o.Include) == 0 || len(o.Exclude) == 0 {
		t.Error("nil pattern lists not defaulted")
	}

	rel := Options{Root: root, ConfigPath: "configs/tsconfig.base.json"}
	if err := rel.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if rel.ConfigPath != filepath.Join(root, "configs", "tsconfig.base.json") {
		t.Errorf("relative ConfigPath = %q", rel.ConfigPath)
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	o := Options{Root: "/repo", ConfigPath: "a.json"}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := o.ConfigPath
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.ConfigPath != first {
		t.Errorf("second call changed ConfigPath: %q -> %q", first, o.ConfigPath)
	}
}
