package ast

// AnonExprName is the reserved prototype name used to wrap a bare
// top-level expression in a callable zero-parameter function.
const AnonExprName = "__anon_expr"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Program is an ordered sequence of top-level constructs: function
// definitions (including anonymous expression wrappers) and extern
// prototypes.
type Program struct {
	Items []Node
}

// NumberLiteral represents a numeric literal
// Example: "1.0", "42"
type NumberLiteral struct {
	Pos    Position
	EndPos Position
	Value  float64
}

// VariableRef references a value by name
// Example: "a" in "a + 1"
type VariableRef struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BinaryExpr applies a single-character binary operator to two owned
// operands. Op is always a character registered in the operator table at
// the time the expression was parsed.
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     byte
	LHS    Expr
	RHS    Expr
}

// CallExpr calls a named function with ordered arguments. The argument
// count is not checked against any declared arity here; arity belongs to
// the code generator.
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee string
	Args   []Expr
}

// Prototype is a function's name and parameter list without a body.
// Parameter order is significant: it determines arity and binding
// position. Held alone for extern declarations.
type Prototype struct {
	Pos    Position
	EndPos Position
	Name   string
	Params []string
}

// Function is a prototype plus a single expression body. Bare top-level
// expressions are wrapped in a synthetic zero-parameter Function whose
// prototype is named AnonExprName.
type Function struct {
	Pos    Position
	EndPos Position
	Proto  *Prototype
	Body   Expr
}
