package parser

import "kaleido/internal/ast"

// prototype ::= id '(' id* ')'
// Parameter names are plain identifiers with no separators between them.
func (p *Parser) ParsePrototype() (*ast.Prototype, *ParseError) {
	if p.cur.Type != IDENTIFIER {
		return nil, p.errorAt(p.cur, "Expected function name in prototype")
	}
	name := p.advance() // eat the function name

	if !p.atSymbol('(') {
		return nil, p.errorAt(p.cur, "Expected '(' in prototype")
	}
	p.advance() // eat '('

	var params []string
	for p.cur.Type == IDENTIFIER {
		params = append(params, p.cur.Lexeme)
		p.advance()
	}

	if !p.atSymbol(')') {
		return nil, p.errorAt(p.cur, "Expected ')' in prototype")
	}
	end := p.advance() // eat ')'

	return &ast.Prototype{
		Pos:    p.makePos(name),
		EndPos: p.makeEndPos(end),
		Name:   name.Lexeme,
		Params: params,
	}, nil
}

// definition ::= 'def' prototype expression
func (p *Parser) ParseDefinition() (*ast.Function, *ParseError) {
	def := p.advance() // eat 'def'

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Pos:    p.makePos(def),
		EndPos: body.NodeEndPos(),
		Proto:  proto,
		Body:   body,
	}, nil
}

// external ::= 'extern' prototype
func (p *Parser) ParseExtern() (*ast.Prototype, *ParseError) {
	p.advance() // eat 'extern'
	return p.ParsePrototype()
}

// toplevelexpr ::= expression
// The expression is wrapped in a zero-parameter function under the
// reserved anonymous name so the code generator can treat it like any
// other definition.
func (p *Parser) ParseTopLevelExpr() (*ast.Function, *ParseError) {
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	proto := &ast.Prototype{
		Pos:    body.NodePos(),
		EndPos: body.NodePos(),
		Name:   ast.AnonExprName,
	}

	return &ast.Function{
		Pos:    body.NodePos(),
		EndPos: body.NodeEndPos(),
		Proto:  proto,
		Body:   body,
	}, nil
}
