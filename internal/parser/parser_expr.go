package parser

import "kaleido/internal/ast"

// ParseExpression parses a full expression: a primary followed by any
// number of binary-operator continuations. It is the entry point for
// every expression context (parenthesized subexpressions, call
// arguments, function bodies, top-level expressions).
func (p *Parser) ParseExpression() (ast.Expr, *ParseError) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// parseBinOpRHS is the precedence-climbing core. It extends lhs with
// operator/primary pairs for as long as the pending operator binds at
// least as tightly as minPrec; the recursive call at prec+1 hands the
// candidate right-hand side to a tighter-binding operator, which is what
// makes '*' group inside '+' and keeps equal-precedence chains
// left-associative.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, *ParseError) {
	for {
		prec := p.tokenPrecedence()
		if prec < minPrec {
			return lhs, nil
		}

		op := p.advance() // eat the operator

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if prec < p.tokenPrecedence() {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{
			Pos:    lhs.NodePos(),
			EndPos: rhs.NodeEndPos(),
			Op:     op.Symbol(),
			LHS:    lhs,
			RHS:    rhs,
		}
	}
}

// primary ::= identifierexpr | numberexpr | parenexpr
func (p *Parser) parsePrimary() (ast.Expr, *ParseError) {
	switch p.cur.Type {
	case IDENTIFIER:
		return p.parseIdentifierExpr()
	case NUMBER:
		return p.parseNumberExpr()
	case SYMBOL:
		if p.cur.Symbol() == '(' {
			return p.parseParenExpr()
		}
	}
	return nil, p.errorAt(p.cur, "unknown token when expecting an expression")
}

// numberexpr ::= number
func (p *Parser) parseNumberExpr() (ast.Expr, *ParseError) {
	tok := p.advance()
	return &ast.NumberLiteral{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Value,
	}, nil
}

// parenexpr ::= '(' expression ')'
// Grouping leaves no node behind: "(e)" parses to e.
func (p *Parser) parseParenExpr() (ast.Expr, *ParseError) {
	p.advance() // eat '('

	inner, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if !p.atSymbol(')') {
		return nil, p.errorAt(p.cur, "expected ')'")
	}
	p.advance() // eat ')'
	return inner, nil
}

// identifierexpr
//
//	::= identifier
//	::= identifier '(' expression* ')'
func (p *Parser) parseIdentifierExpr() (ast.Expr, *ParseError) {
	name := p.advance() // eat the identifier

	if !p.atSymbol('(') {
		return &ast.VariableRef{
			Pos:    p.makePos(name),
			EndPos: p.makeEndPos(name),
			Name:   name.Lexeme,
		}, nil
	}

	p.advance() // eat '('
	var args []ast.Expr
	if !p.atSymbol(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.atSymbol(')') {
				break
			}
			if !p.atSymbol(',') {
				return nil, p.errorAt(p.cur, "expected ')' or ',' in argument list")
			}
			p.advance() // eat ','
		}
	}

	end := p.advance() // eat ')'
	return &ast.CallExpr{
		Pos:    p.makePos(name),
		EndPos: p.makeEndPos(end),
		Callee: name.Lexeme,
		Args:   args,
	}, nil
}
