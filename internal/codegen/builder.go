package codegen

import (
	"fmt"
	"strconv"

	"kaleido/internal/ast"
	"kaleido/internal/errors"
)

// Builder lowers AST constructs into a Module. It carries the
// cross-construct state a driver needs: every prototype and function it
// has seen stays callable from later expressions. The semantic checks
// the parser defers (unknown names, arity) happen here.
type Builder struct {
	module *Module
	arity  map[string]int

	// per-function lowering state
	fn    *FuncIR
	named map[string]string
	tmp   int
}

func NewBuilder() *Builder {
	return &Builder{
		module: &Module{},
		arity:  make(map[string]int),
	}
}

func (b *Builder) Module() *Module {
	return b.module
}

// AddPrototype declares an extern signature and makes it callable.
func (b *Builder) AddPrototype(proto *ast.Prototype) *FuncDecl {
	decl := &FuncDecl{
		Name:   proto.Name,
		Params: append([]string(nil), proto.Params...),
	}
	b.module.Decls = append(b.module.Decls, decl)
	b.arity[proto.Name] = len(proto.Params)
	return decl
}

// AddFunction lowers a definition. On failure nothing is added to the
// module, mirroring the parser's no-partial-results policy.
func (b *Builder) AddFunction(fn *ast.Function) (*FuncIR, error) {
	name := fn.Proto.Name

	b.fn = &FuncIR{
		Name:   name,
		Params: append([]string(nil), fn.Proto.Params...),
	}
	b.named = make(map[string]string, len(fn.Proto.Params))
	b.tmp = 0
	for _, param := range fn.Proto.Params {
		b.named[param] = "%" + param
	}

	// The function may call itself.
	prevArity, hadArity := b.arity[name]
	b.arity[name] = len(fn.Proto.Params)

	ret, err := b.lowerExpr(fn.Body)
	if err != nil {
		if hadArity {
			b.arity[name] = prevArity
		} else {
			delete(b.arity, name)
		}
		b.fn = nil
		return nil, err
	}

	b.fn.Instrs = append(b.fn.Instrs, Instr{Op: RET, Args: []string{ret}})
	b.module.Funcs = append(b.module.Funcs, b.fn)

	out := b.fn
	b.fn = nil
	return out, nil
}

// Discard removes a lowered function again; the interactive driver uses
// it to drop the anonymous expression wrapper once it has been shown.
func (b *Builder) Discard(name string) {
	for i, fn := range b.module.Funcs {
		if fn.Name == name {
			b.module.Funcs = append(b.module.Funcs[:i], b.module.Funcs[i+1:]...)
			break
		}
	}
	delete(b.arity, name)
}

// lowerExpr performs the exhaustive case analysis over the closed
// expression set and returns the value name holding the result.
func (b *Builder) lowerExpr(e ast.Expr) (string, error) {
	switch e := e.(type) {
	case *ast.NumberLiteral:
		return strconv.FormatFloat(e.Value, 'g', -1, 64), nil

	case *ast.VariableRef:
		value, ok := b.named[e.Name]
		if !ok {
			return "", b.errorAt(e, errors.ErrorUnknownVariable,
				fmt.Sprintf("unknown variable name '%s'", e.Name))
		}
		return value, nil

	case *ast.BinaryExpr:
		lhs, err := b.lowerExpr(e.LHS)
		if err != nil {
			return "", err
		}
		rhs, err := b.lowerExpr(e.RHS)
		if err != nil {
			return "", err
		}

		switch e.Op {
		case '+':
			return b.emit(FADD, lhs, rhs), nil
		case '-':
			return b.emit(FSUB, lhs, rhs), nil
		case '*':
			return b.emit(FMUL, lhs, rhs), nil
		case '<':
			// '<' yields 0.0 or 1.0: compare, then widen the i1.
			cmp := b.emit(FCMP_ULT, lhs, rhs)
			return b.emit(UITOFP, cmp), nil
		default:
			// The parser only forms operators present in its table, but
			// a table entry without a lowering rule still lands here.
			return "", b.errorAt(e, errors.ErrorInvalidOperator,
				fmt.Sprintf("invalid binary operator '%c'", e.Op))
		}

	case *ast.CallExpr:
		want, ok := b.arity[e.Callee]
		if !ok {
			return "", b.errorAt(e, errors.ErrorUnknownFunction,
				fmt.Sprintf("unknown function referenced: '%s'", e.Callee))
		}
		if want != len(e.Args) {
			return "", b.errorAt(e, errors.ErrorArityMismatch,
				fmt.Sprintf("incorrect number of arguments: '%s' expects %d, got %d",
					e.Callee, want, len(e.Args)))
		}

		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			value, err := b.lowerExpr(arg)
			if err != nil {
				return "", err
			}
			args = append(args, value)
		}

		name := b.nextTemp()
		b.fn.Instrs = append(b.fn.Instrs, Instr{
			Result: name,
			Op:     CALL,
			Callee: e.Callee,
			Args:   args,
		})
		return name, nil

	default:
		return "", b.errorAt(e, errors.ErrorSyntax, "unsupported expression kind")
	}
}

func (b *Builder) emit(op OpKind, args ...string) string {
	name := b.nextTemp()
	b.fn.Instrs = append(b.fn.Instrs, Instr{Result: name, Op: op, Args: args})
	return name
}

func (b *Builder) nextTemp() string {
	name := fmt.Sprintf("%%%d", b.tmp)
	b.tmp++
	return name
}

func (b *Builder) errorAt(node ast.Node, code, message string) error {
	return errors.CompilerError{
		Level:    errors.Error,
		Code:     code,
		Message:  message,
		Position: node.NodePos(),
		Length:   node.NodeEndPos().Offset - node.NodePos().Offset,
	}
}
