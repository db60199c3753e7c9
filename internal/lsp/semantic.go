package lsp

import (
	"kaleido/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	for _, item := range program.Items {
		tokens = append(tokens, walkItem(item)...)
	}

	return tokens
}

func walkItem(item ast.Node) []SemanticToken {
	var tokens []SemanticToken

	if item == nil {
		return tokens
	}

	switch v := item.(type) {
	case *ast.Prototype:
		// An extern declaration. Its position is the function name; the
		// span runs to the closing ')', so cover the name only.
		tokens = append(tokens, makeToken(v.Pos, spanEnd(v.Pos, len(v.Name)), v.Name, "function", 1)...)
	case *ast.Function:
		tokens = append(tokens, walkFunction(v)...)
	}

	return tokens
}

func walkFunction(f *ast.Function) []SemanticToken {
	var tokens []SemanticToken

	if f == nil {
		return tokens
	}

	// An anonymous wrapper has no 'def' in the source; its position is
	// the body's, so only the body gets tokens.
	if f.Proto != nil && f.Proto.Name != ast.AnonExprName {
		tokens = append(tokens, makeToken(f.Pos, spanEnd(f.Pos, len("def")), "def", "keyword", 0)...)
		tokens = append(tokens, makeToken(f.Proto.Pos, spanEnd(f.Proto.Pos, len(f.Proto.Name)), f.Proto.Name, "function", 1)...)
	}

	tokens = append(tokens, walkExpression(f.Body)...)

	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.NumberLiteral:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.String(), "number", 0)...)
	case *ast.VariableRef:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpression(v.LHS)...)
		tokens = append(tokens, walkExpression(v.RHS)...)
	case *ast.CallExpr:
		tokens = append(tokens, makeToken(v.Pos, spanEnd(v.Pos, len(v.Callee)), v.Callee, "function", 0)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
	}

	return tokens
}

// spanEnd is the position length characters after pos on the same line.
func spanEnd(pos ast.Position, length int) ast.Position {
	end := pos
	end.Offset += length
	end.Column += length
	return end
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
