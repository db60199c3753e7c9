package main

import (
	goerrors "errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"kaleido/grammar"
	"kaleido/internal/ast"
	"kaleido/internal/codegen"
	"kaleido/internal/errors"
	"kaleido/internal/parser"
)

func main() {
	check := flag.Bool("check", false, "syntax check only, using the declarative reference grammar")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: kaleido [-check] <file.kl>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	if *check {
		runCheck(path, string(source), startTime)
		return
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, string(source))

	reporter := errors.NewErrorReporter(path, string(source))

	// Scan notes never abort the pipeline; the token stream kept going.
	for _, scanErr := range scanErrors {
		fmt.Print(reporter.FormatError(errors.CompilerError{
			Level:    errors.Warning,
			Code:     errors.ErrorMalformedNumber,
			Message:  scanErr.Message,
			Position: scanPosition(path, scanErr.Position),
			Length:   scanErr.Length,
		}))
	}

	hasErrors := false
	for _, parseErr := range parseErrors {
		fmt.Print(reporter.FormatError(errors.CompilerError{
			Level:    errors.Error,
			Code:     errors.ErrorSyntax,
			Message:  parseErr.Message,
			Position: scanPosition(path, parseErr.Position),
			Length:   1,
		}))
		hasErrors = true
	}

	builder := codegen.NewBuilder()
	for _, item := range program.Items {
		var lowerErr error
		switch v := item.(type) {
		case *ast.Prototype:
			builder.AddPrototype(v)
		case *ast.Function:
			_, lowerErr = builder.AddFunction(v)
		}

		if lowerErr != nil {
			var ce errors.CompilerError
			if goerrors.As(lowerErr, &ce) {
				fmt.Print(reporter.FormatError(ce))
			} else {
				fmt.Fprintln(os.Stderr, lowerErr)
			}
			hasErrors = true
		}
	}

	duration := formatDuration(time.Since(startTime))

	if hasErrors {
		color.Red("Compilation failed after %s", duration)
		os.Exit(1)
	}

	fmt.Print(codegen.Print(builder.Module()))
	color.Green("Successfully processed %s in %s", path, duration)
}

func runCheck(path, source string, startTime time.Time) {
	_, err := grammar.ParseSource(path, source)
	duration := formatDuration(time.Since(startTime))

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		color.Red("Syntax check failed after %s", duration)
		os.Exit(1)
	}

	color.Green("Syntax OK: %s in %s", path, duration)
}

// scanPosition lifts a lexer position into an AST position so the
// reporter can render it.
func scanPosition(filename string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
