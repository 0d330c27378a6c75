package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alirezahematidev/ts-path/pkg/mapping"
	"github.com/alirezahematidev/ts-path/pkg/validate"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestPrintMappingsSorted(t *testing.T) {
	buf := captureStdout(t)

	printMappings(mapping.Table{
		"@utils":  "src/utils/index.ts",
		"@button": "src/components/Button.tsx",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "@button") || !strings.Contains(lines[1], "@utils") {
		t.Errorf("lines not in key order: %q", lines)
	}
	if !strings.Contains(lines[0], iconArrow) {
		t.Errorf("line %q should contain %q", lines[0], iconArrow)
	}
}

func TestPrintIssue(t *testing.T) {
	tests := []struct {
		name  string
		issue validate.Issue
		want  []string
	}{
		{
			name:  "error with path",
			issue: validate.Issue{Severity: validate.SeverityError, Message: "missing target", Path: "src/gone.ts"},
			want:  []string{iconError, "missing target", "path: src/gone.ts"},
		},
		{
			name:  "info with suggestion",
			issue: validate.Issue{Severity: validate.SeverityInfo, Message: "shorter path", Suggestion: "src/a.ts"},
			want:  []string{iconInfo, "shorter path", "suggestion: src/a.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			printIssue(tt.issue)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}
