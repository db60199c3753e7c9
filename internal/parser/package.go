package parser

import "kaleido/internal/ast"

// ParseSource parses a whole buffer of top-level constructs. A failed
// construct is discarded entirely, one token is skipped, and parsing
// resumes at the next construct, so a buffer can yield both a partial
// Program and a list of errors.
func ParseSource(filename, source string) (*ast.Program, []*ParseError, []ScanError) {
	lexer := NewLexerFromString(source)
	p := NewParser(filename, lexer, NewOpTable())

	program := &ast.Program{}
	var errs []*ParseError

	for !p.AtEOF() {
		switch {
		case p.atSymbol(';'):
			// ignore top-level semicolons
			p.Skip()
		case p.cur.Type == DEF:
			fn, err := p.ParseDefinition()
			if err != nil {
				errs = append(errs, err)
				p.Skip()
				continue
			}
			program.Items = append(program.Items, fn)
		case p.cur.Type == EXTERN:
			proto, err := p.ParseExtern()
			if err != nil {
				errs = append(errs, err)
				p.Skip()
				continue
			}
			program.Items = append(program.Items, proto)
		default:
			fn, err := p.ParseTopLevelExpr()
			if err != nil {
				errs = append(errs, err)
				p.Skip()
				continue
			}
			program.Items = append(program.Items, fn)
		}
	}

	return program, errs, lexer.Errors()
}
