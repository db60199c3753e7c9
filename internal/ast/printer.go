package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, item := range p.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
	}

	return b.String()
}

func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (v *VariableRef) String() string {
	return v.Name
}

// Binary expressions print fully parenthesized so the grouping chosen by
// the precedence climb is visible.
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %c %s)", b.LHS.String(), b.Op, b.RHS.String())
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteString(c.Callee)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")

	return b.String()
}

func (p *Prototype) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Params, " "))
}

func (f *Function) String() string {
	return fmt.Sprintf("def %s %s", f.Proto.String(), f.Body.String())
}
