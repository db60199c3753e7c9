package ast

type NodeType int

const (
	NUMBER_LITERAL NodeType = iota
	VARIABLE_REF
	BINARY_EXPR
	CALL_EXPR
	PROTOTYPE
	FUNCTION
)

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// Expr is the closed set of expression variants the parser produces.
// Downstream consumers switch exhaustively over the four concrete types.
type Expr interface {
	Node
	isExpr()
}

func (*NumberLiteral) isExpr() {}

func (*VariableRef) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (n *NumberLiteral) NodePos() Position    { return n.Pos }
func (n *NumberLiteral) NodeEndPos() Position { return n.EndPos }
func (*NumberLiteral) NodeType() NodeType     { return NUMBER_LITERAL }

func (v *VariableRef) NodePos() Position    { return v.Pos }
func (v *VariableRef) NodeEndPos() Position { return v.EndPos }
func (*VariableRef) NodeType() NodeType     { return VARIABLE_REF }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (p *Prototype) NodePos() Position    { return p.Pos }
func (p *Prototype) NodeEndPos() Position { return p.EndPos }
func (*Prototype) NodeType() NodeType     { return PROTOTYPE }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }
