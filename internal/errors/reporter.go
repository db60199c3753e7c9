package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"kaleido/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is a structured diagnostic with source context
type CompilerError struct {
	Level    ErrorLevel
	Code     string       // Error code like E0100
	Message  string       // Primary error message
	Position ast.Position // Location in source
	Length   int          // Length of the problematic region
}

func (ce CompilerError) Error() string {
	return fmt.Sprintf("%s[%s]: %s", ce.Level, ce.Code, ce.Message)
}

// ErrorReporter handles consistent diagnostic formatting for one file
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders a diagnostic with Rust-like styling: a header, the
// offending source line, and a caret marker under the region.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0100]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	// Location line: --> filename:line:column
	lineNumberWidth := len(fmt.Sprintf("%d", err.Position.Line))
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line > 0 && err.Position.Line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("│"),
			er.lines[err.Position.Line-1]))

		marker := strings.Repeat(" ", maxInt(0, err.Position.Column-1)) +
			strings.Repeat("^", maxInt(1, err.Length))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), levelColor(marker)))
	}

	return result.String()
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(a ...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgCyan, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
