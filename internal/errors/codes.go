package errors

// Error codes for the Kaleido front end, used in diagnostics so tooling
// can identify failures without string-matching messages.
//
// Error code ranges:
// E0001-E0099: Scanner notes
// E0100-E0199: Parser errors
// E0200-E0299: Code generation errors

const (
	// E0001: malformed numeric text, lexed leniently
	ErrorMalformedNumber = "E0001"

	// E0100: generic syntax error (unexpected token at a grammar position)
	ErrorSyntax = "E0100"

	// E0201: reference to a name with no binding in the current function
	ErrorUnknownVariable = "E0201"

	// E0202: call of a function that was never defined or declared
	ErrorUnknownFunction = "E0202"

	// E0203: binary operator with no lowering rule
	ErrorInvalidOperator = "E0203"

	// E0204: call argument count does not match the callee's arity
	ErrorArityMismatch = "E0204"
)
