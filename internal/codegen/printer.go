package codegen

import (
	"fmt"
	"strings"
)

// Print renders the whole module: declarations first, then functions.
func Print(m *Module) string {
	var b strings.Builder

	for _, decl := range m.Decls {
		b.WriteString(PrintDecl(decl))
		b.WriteString("\n")
	}
	if len(m.Decls) > 0 && len(m.Funcs) > 0 {
		b.WriteString("\n")
	}
	for i, fn := range m.Funcs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(PrintFunc(fn))
	}

	return b.String()
}

func PrintDecl(d *FuncDecl) string {
	return fmt.Sprintf("declare double @%s(%s)", d.Name, paramList(d.Params))
}

func PrintFunc(f *FuncIR) string {
	var b strings.Builder

	fmt.Fprintf(&b, "define double @%s(%s) {\n", f.Name, paramList(f.Params))
	b.WriteString("entry:\n")
	for _, instr := range f.Instrs {
		b.WriteString("  ")
		b.WriteString(formatInstr(instr))
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	return b.String()
}

func paramList(params []string) string {
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = "double %" + param
	}
	return strings.Join(parts, ", ")
}

func formatInstr(instr Instr) string {
	switch instr.Op {
	case RET:
		return fmt.Sprintf("ret double %s", instr.Args[0])
	case CALL:
		args := make([]string, len(instr.Args))
		for i, arg := range instr.Args {
			args[i] = "double " + arg
		}
		return fmt.Sprintf("%s = call double @%s(%s)",
			instr.Result, instr.Callee, strings.Join(args, ", "))
	case FCMP_ULT:
		return fmt.Sprintf("%s = fcmp ult double %s, %s",
			instr.Result, instr.Args[0], instr.Args[1])
	case UITOFP:
		return fmt.Sprintf("%s = uitofp i1 %s to double", instr.Result, instr.Args[0])
	default:
		return fmt.Sprintf("%s = %s double %s, %s",
			instr.Result, instr.Op, instr.Args[0], instr.Args[1])
	}
}
