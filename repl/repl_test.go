package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kaleido/repl"
)

func runSession(input string) string {
	var out bytes.Buffer
	repl.Start(strings.NewReader(input), &out)
	return out.String()
}

func TestSessionLowersEachConstruct(t *testing.T) {
	output := runSession("extern sin(x); def double(x) x + x; double(2);")

	assert.Contains(t, output, "Parsed an extern.")
	assert.Contains(t, output, "declare double @sin(double %x)")

	assert.Contains(t, output, "Parsed a function definition.")
	assert.Contains(t, output, "define double @double(double %x) {")
	assert.Contains(t, output, "%0 = fadd double %x, %x")

	assert.Contains(t, output, "Parsed a top-level expr.")
	assert.Contains(t, output, "define double @__anon_expr() {")
	assert.Contains(t, output, "%0 = call double @double(double 2)")
}

func TestDefinitionsPersistAcrossLines(t *testing.T) {
	output := runSession("def inc(x) x + 1\ninc(41)\n")

	assert.Contains(t, output, "Parsed a function definition.")
	assert.Contains(t, output, "%0 = call double @inc(double 41)")
}

func TestAnonymousWrapperIsDiscarded(t *testing.T) {
	// Two top-level expressions in a row must not collide on the
	// reserved anonymous name.
	output := runSession("1 + 2; 3 + 4;")

	assert.Equal(t, 2, strings.Count(output, "Parsed a top-level expr."))
	assert.Equal(t, 2, strings.Count(output, "define double @__anon_expr() {"))
}

func TestParseErrorRecovers(t *testing.T) {
	output := runSession("def (x) x; 40 + 2;")

	assert.Contains(t, output, "Expected function name in prototype")
	assert.Contains(t, output, "Parsed a top-level expr.", "the session continues after an error")
}

func TestSemanticErrorIsReported(t *testing.T) {
	output := runSession("bogus(1);")

	assert.Contains(t, output, "error[E0202]: unknown function referenced: 'bogus'")
}

func TestPromptPrintedPerConstruct(t *testing.T) {
	output := runSession("1;")

	// One leading prompt, one after the expression, one after the ';'.
	assert.Equal(t, 3, strings.Count(output, repl.PROMPT))
}
