package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"kaleido/internal/ast"
)

func init() {
	// Keep formatted output free of ANSI codes in tests.
	color.NoColor = true
}

func TestFormatErrorIncludesCodeAndLocation(t *testing.T) {
	source := "def foo(a, b) a\n"
	reporter := NewErrorReporter("test.kl", source)

	out := reporter.FormatError(CompilerError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  "Expected ')' in prototype",
		Position: ast.Position{Filename: "test.kl", Line: 1, Column: 10},
		Length:   1,
	})

	assert.Contains(t, out, "error[E0100]: Expected ')' in prototype")
	assert.Contains(t, out, "test.kl:1:10")
	assert.Contains(t, out, "def foo(a, b) a")
}

func TestFormatErrorMarkerPointsAtColumn(t *testing.T) {
	reporter := NewErrorReporter("test.kl", "1 + )")

	out := reporter.FormatError(CompilerError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  "unknown token when expecting an expression",
		Position: ast.Position{Line: 1, Column: 5},
		Length:   1,
	})

	lines := strings.Split(out, "\n")
	var markerLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			markerLine = line
		}
	}
	assert.NotEmpty(t, markerLine, "Output should contain a caret marker")
	assert.Equal(t, len(markerLine), strings.Index(markerLine, "^")+1,
		"Caret should be the last character on its line")
}

func TestFormatErrorWithoutCode(t *testing.T) {
	reporter := NewErrorReporter("test.kl", "x")

	out := reporter.FormatError(CompilerError{
		Level:    Warning,
		Message:  "something looks off",
		Position: ast.Position{Line: 1, Column: 1},
	})

	assert.True(t, strings.HasPrefix(out, "warning: something looks off"))
}

func TestCompilerErrorImplementsError(t *testing.T) {
	err := CompilerError{Level: Error, Code: ErrorUnknownVariable, Message: "unknown variable name 'x'"}
	assert.Equal(t, "error[E0201]: unknown variable name 'x'", err.Error())
}
