package tsconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alirezahematidev/ts-path/pkg/errors"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
)

const jsoncConfig = `{
  // editor settings
  "compilerOptions": {
    "target": "es2022",
    "paths": {
      "@a": ["src/a.ts"], /* legacy */
    },
  },
}
`

func TestReadJSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(jsoncConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := ReadTable(doc)["@a"]; got != "src/a.ts" {
		t.Errorf("@a = %q, want %q", got, "src/a.ts")
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Errorf("missing file: code = %v, want %v", errors.GetCode(err), errors.ErrCodeConfigNotFound)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"compilerOptions": `), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Read(bad)
	if !errors.Is(err, errors.ErrCodeConfigParse) {
		t.Errorf("malformed file: code = %v, want %v", errors.GetCode(err), errors.ErrCodeConfigParse)
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	for _, in := range []string{"null", "[]", `"x"`} {
		if _, err := Parse([]byte(in)); !errors.Is(err, errors.ErrCodeConfigParse) {
			t.Errorf("Parse(%s) error = %v, want CONFIG_PARSE", in, err)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	doc := Apply(mapping.Table{"@b": "src/b.ts", "@a": "src/a.ts"}, nil, true)
	if err := Write(path, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		t.Error("missing trailing newline")
	}
	if !strings.Contains(text, "\n  \"compilerOptions\": {\n    \"baseUrl\": \".\",") {
		t.Errorf("unexpected layout:\n%s", text)
	}

	back, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := ReadTable(back); len(got) != 2 || got["@a"] != "src/a.ts" {
		t.Errorf("ReadTable after write = %v", got)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, DefaultFileName), Baseline()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}

func TestWriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", DefaultFileName)
	if err := Write(path, Baseline()); !errors.Is(err, errors.ErrCodeConfigIO) {
		t.Errorf("Write error = %v, want CONFIG_IO", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if Exists(path) {
		t.Error("Exists before write")
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists after write = false")
	}
	if Exists(dir) {
		t.Error("Exists(dir) = true")
	}
}

func TestParseLeavesInputUntouched(t *testing.T) {
	const src = "{\n  // keep me\n  \"compilerOptions\": {},\n}"
	data := []byte(src)

	if _, err := Parse(data); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(data) != src {
		t.Errorf("input changed to %q, want %q", data, src)
	}
}
