package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var KaleidoLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `#[^\n]*`, nil},

		// Keywords and Identifiers (order matters)
		{"Ident", `[a-zA-Z][a-zA-Z0-9]*`, nil},

		// Number literals
		{"Number", `[0-9]+(\.[0-9]+)?|\.[0-9]+`, nil},

		// Operators
		{"Operator", `[<+\-*]`, nil},

		// Punctuation
		{"Punctuation", `[(),;]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
