package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Keywords
	DEF
	EXTERN

	// Identifiers + literals
	IDENTIFIER
	NUMBER

	// Catch-all for any other single character: operators, parentheses,
	// comma, semicolon. The parser decides what a symbol means in context.
	SYMBOL
)

var tokenNames = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	DEF:        "DEF",
	EXTERN:     "EXTERN",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	SYMBOL:     "SYMBOL",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is one lexical unit. Tokens are transient: the lexer produces
// one at a time and the parser consumes it before asking for the next.
type Token struct {
	Type     TokenType
	Lexeme   string
	Value    float64 // decoded numeric value, set when Type is NUMBER
	Position Position
}

// Symbol returns the character of a SYMBOL token, or 0 for other kinds.
func (t Token) Symbol() byte {
	if t.Type != SYMBOL || len(t.Lexeme) == 0 {
		return 0
	}
	return t.Lexeme[0]
}
