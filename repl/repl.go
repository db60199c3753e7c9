package repl

import (
	"fmt"
	"io"

	"kaleido/internal/ast"
	"kaleido/internal/codegen"
	"kaleido/internal/parser"
)

const PROMPT = "ready> "

// Start runs the interactive loop until the input stream ends. One
// lexer, parser and code builder live for the whole session, so
// definitions from earlier lines stay callable.
func Start(in io.Reader, out io.Writer) {
	fmt.Fprint(out, PROMPT)

	ops := parser.NewOpTable()
	p := parser.NewParser("<stdin>", parser.NewLexer(in), ops)
	builder := codegen.NewBuilder()

	for {
		cur := p.Current()
		switch {
		case cur.Type == parser.EOF:
			fmt.Fprintln(out)
			return
		case cur.Type == parser.SYMBOL && cur.Symbol() == ';':
			// Top-level semicolons just separate constructs.
			p.Skip()
		case cur.Type == parser.DEF:
			handleDefinition(p, builder, out)
		case cur.Type == parser.EXTERN:
			handleExtern(p, builder, out)
		default:
			handleTopLevelExpression(p, builder, out)
		}

		fmt.Fprint(out, PROMPT)
	}
}

func handleDefinition(p *parser.Parser, builder *codegen.Builder, out io.Writer) {
	fn, err := p.ParseDefinition()
	if err != nil {
		fmt.Fprintln(out, err)
		p.Skip()
		return
	}

	fmt.Fprintln(out, "Parsed a function definition.")

	ir, lowerErr := builder.AddFunction(fn)
	if lowerErr != nil {
		fmt.Fprintln(out, lowerErr)
		return
	}
	fmt.Fprint(out, codegen.PrintFunc(ir))
}

func handleExtern(p *parser.Parser, builder *codegen.Builder, out io.Writer) {
	proto, err := p.ParseExtern()
	if err != nil {
		fmt.Fprintln(out, err)
		p.Skip()
		return
	}

	fmt.Fprintln(out, "Parsed an extern.")
	fmt.Fprintln(out, codegen.PrintDecl(builder.AddPrototype(proto)))
}

func handleTopLevelExpression(p *parser.Parser, builder *codegen.Builder, out io.Writer) {
	fn, err := p.ParseTopLevelExpr()
	if err != nil {
		fmt.Fprintln(out, err)
		p.Skip()
		return
	}

	fmt.Fprintln(out, "Parsed a top-level expr.")

	ir, lowerErr := builder.AddFunction(fn)
	if lowerErr != nil {
		fmt.Fprintln(out, lowerErr)
		return
	}
	fmt.Fprint(out, codegen.PrintFunc(ir))

	// The wrapper exists only to be shown; keeping it would shadow the
	// name for the next top-level expression.
	builder.Discard(ast.AnonExprName)
}
