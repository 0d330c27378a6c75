package validate

import (
	"fmt"

	"github.com/alirezahematidev/ts-path/pkg/errors"
)

// Severity classifies an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single validation finding.
type Issue struct {
	Severity   Severity    `json:"severity"`
	Code       errors.Code `json:"code,omitempty"`
	Message    string      `json:"message"`
	Path       string      `json:"path,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	if i.Suggestion != "" {
		s += fmt.Sprintf(" (suggestion: %s)", i.Suggestion)
	}
	return s
}

// Result is the outcome of a validation run.
type Result struct {
	IsValid bool    `json:"is_valid"`
	Issues  []Issue `json:"issues"`
}

// Count returns the number of issues with severity s.
func (r *Result) Count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

// MissingConfig returns the result reported when the tsconfig file is absent.
func MissingConfig(path string) *Result {
	return &Result{
		IsValid: false,
		Issues: []Issue{{
			Severity: SeverityError,
			Code:     errors.ErrCodeConfigNotFound,
			Message:  fmt.Sprintf("config file not found: %s", path),
			Path:     path,
		}},
	}
}

func (r *Result) add(i Issue) {
	r.Issues = append(r.Issues, i)
	if i.Severity == SeverityError {
		r.IsValid = false
	}
}
