package parser

import (
	"fmt"

	"kaleido/internal/ast"
)

type ParseError struct {
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// Parser builds AST nodes by pulling tokens from its lexer on demand.
// Its only state beyond the lexer is the current token, so like the
// lexer it is single-session: one Parser per input stream.
type Parser struct {
	filename string
	lexer    *Lexer
	ops      *OpTable
	cur      Token
}

// NewParser primes the first token, so constructing a parser on an
// interactive stream blocks until one token is available.
func NewParser(filename string, lexer *Lexer, ops *OpTable) *Parser {
	p := &Parser{filename: filename, lexer: lexer, ops: ops}
	p.advance()
	return p
}

// advance consumes the current token and returns it.
func (p *Parser) advance() Token {
	prev := p.cur
	p.cur = p.lexer.NextToken()
	return prev
}

// Current exposes the parser's one token of state so a driver can
// dispatch on it between top-level constructs.
func (p *Parser) Current() Token {
	return p.cur
}

// Skip discards the current token. Drivers call it once after a failed
// construct to resume at the next one; the parser itself never recovers.
func (p *Parser) Skip() {
	p.advance()
}

func (p *Parser) AtEOF() bool {
	return p.cur.Type == EOF
}

func (p *Parser) atSymbol(c byte) bool {
	return p.cur.Type == SYMBOL && p.cur.Symbol() == c
}

// tokenPrecedence is the binary-operator precedence of the current
// token, or -1 when it cannot continue an expression.
func (p *Parser) tokenPrecedence() int {
	if p.cur.Type != SYMBOL {
		return -1
	}
	return p.ops.Precedence(p.cur.Symbol())
}

func (p *Parser) errorAt(tok Token, message string) *ParseError {
	return &ParseError{Message: message, Position: tok.Position}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}
