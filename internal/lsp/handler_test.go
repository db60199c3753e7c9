package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"kaleido/internal/lsp"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewKaleidoHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "dist.kl"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 15)

	// extern sqrt(x)
	assertToken(t, &decoded[0], 2, 8, 4, "function", []string{"declaration"})

	// def square(x) x * x
	assertToken(t, &decoded[1], 4, 1, 3, "keyword", nil)
	assertToken(t, &decoded[2], 4, 5, 6, "function", []string{"declaration"})
	assertToken(t, &decoded[3], 4, 15, 1, "variable", nil)
	assertToken(t, &decoded[4], 4, 19, 1, "variable", nil)

	// def dist(x y) sqrt(square(x) + square(y))
	assertToken(t, &decoded[5], 5, 1, 3, "keyword", nil)
	assertToken(t, &decoded[6], 5, 5, 4, "function", []string{"declaration"})
	assertToken(t, &decoded[7], 5, 15, 4, "function", nil)
	assertToken(t, &decoded[8], 5, 20, 6, "function", nil)
	assertToken(t, &decoded[9], 5, 27, 1, "variable", nil)
	assertToken(t, &decoded[10], 5, 32, 6, "function", nil)
	assertToken(t, &decoded[11], 5, 39, 1, "variable", nil)

	// dist(3, 4); parses as an anonymous function, so there is no
	// keyword or declaration token for it.
	assertToken(t, &decoded[12], 8, 1, 4, "function", nil)
	assertToken(t, &decoded[13], 8, 6, 1, "number", nil)
	assertToken(t, &decoded[14], 8, 9, 1, "number", nil)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // back to 1-based for readability
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (token %d)", token.Index)
	require.Equal(t, expectedChar, token.Char, "char mismatch (token %d)", token.Index)
	require.Equal(t, expectedLength, token.Length, "length mismatch (token %d)", token.Index)
	require.Equal(t, expectedType, token.Type, "type mismatch (token %d)", token.Index)
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch (token %d)", token.Index)
}
