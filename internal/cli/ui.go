package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alirezahematidev/ts-path/pkg/discovery"
	"github.com/alirezahematidev/ts-path/pkg/mapping"
	"github.com/alirezahematidev/ts-path/pkg/validate"
)

// stdout receives all user-facing output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for aliases.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKind        = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, "  "+StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(stdout, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Domain Output
// =============================================================================

// printMappings prints table in key order as "alias → path" lines.
func printMappings(t mapping.Table) {
	width := 0
	for k := range t {
		width = max(width, lipgloss.Width(k))
	}
	keyStyle := StyleHighlight.Width(width)
	for _, k := range t.Keys() {
		fmt.Fprintln(stdout, "  "+keyStyle.Render(k)+" "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(t[k]))
	}
}

// printDiscovered renders paths as a bordered table.
func printDiscovered(paths []discovery.DiscoveredPath) {
	rows := make([][]string, len(paths))
	for i, p := range paths {
		rows[i] = []string{p.Alias, string(p.Kind), strconv.Itoa(p.Depth), p.RelativePath}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Alias", "Kind", "Depth", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0:
				return base.Foreground(colorCyan)
			case 1, 2:
				return base.Inherit(styleKind)
			}
			return base
		})
	fmt.Fprintln(stdout, t.Render())
}

// printIssue prints one validation issue with its severity icon.
func printIssue(i validate.Issue) {
	switch i.Severity {
	case validate.SeverityError:
		printError("%s", i.Message)
	case validate.SeverityWarning:
		printWarning("%s", i.Message)
	default:
		printInfo("%s", i.Message)
	}
	if i.Path != "" {
		printDetail("path: %s", i.Path)
	}
	if i.Suggestion != "" {
		printDetail("suggestion: %s", i.Suggestion)
	}
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Fprintln(stdout)
}
