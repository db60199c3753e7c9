package grammar

// Declarative reference grammar for Kaleido. Precedence is expressed
// through layered rules (comparison, additive, multiplicative) rather
// than the table-driven climb of the hand-written parser, so this
// grammar only accepts the fixed default operator set. It backs the fast
// syntax-check path; the real pipeline lives in internal/parser.

type Program struct {
	Items []*Item `@@*`
}

type Item struct {
	Definition *Definition `  @@`
	External   *External   `| @@`
	TopLevel   *Expression `| @@`
	Semicolon  bool        `| @";"`
}

type Definition struct {
	Proto *Prototype  `"def" @@`
	Body  *Expression `@@`
}

type External struct {
	Proto *Prototype `"extern" @@`
}

type Prototype struct {
	Name   string   `@Ident`
	Params []string `"(" @Ident* ")"`
}

type Expression struct {
	Comparison *Comparison `@@`
}

type Comparison struct {
	Left *Additive       `@@`
	Rest []*ComparisonOp `@@*`
}

type ComparisonOp struct {
	Op    string    `@"<"`
	Right *Additive `@@`
}

type Additive struct {
	Left *Multiplicative `@@`
	Rest []*AdditiveOp   `@@*`
}

type AdditiveOp struct {
	Op    string          `@("+" | "-")`
	Right *Multiplicative `@@`
}

type Multiplicative struct {
	Left *Primary            `@@`
	Rest []*MultiplicativeOp `@@*`
}

type MultiplicativeOp struct {
	Op    string   `@"*"`
	Right *Primary `@@`
}

type Primary struct {
	Number *float64    `  @Number`
	Call   *Call       `| @@`
	Ident  *string     `| @Ident`
	Paren  *Expression `| "(" @@ ")"`
}

type Call struct {
	Callee string        `@Ident`
	Args   []*Expression `"(" (@@ ("," @@)*)? ")"`
}
