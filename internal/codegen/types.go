package codegen

// OpKind enumerates the instructions of the flat IR. Every operand and
// result is a double, except the transient i1 produced by FCMP_ULT,
// which UITOFP widens right back.
type OpKind int

const (
	FADD OpKind = iota
	FSUB
	FMUL
	FCMP_ULT
	UITOFP
	CALL
	RET
)

var opNames = map[OpKind]string{
	FADD:     "fadd",
	FSUB:     "fsub",
	FMUL:     "fmul",
	FCMP_ULT: "fcmp ult",
	UITOFP:   "uitofp",
	CALL:     "call",
	RET:      "ret",
}

func (op OpKind) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "unknown"
}

// Instr is one IR instruction. Result is an SSA-style temporary name
// like "%0", empty for RET.
type Instr struct {
	Result string
	Op     OpKind
	Callee string // CALL only
	Args   []string
}

// FuncDecl is a signature the module knows without a body: an extern.
type FuncDecl struct {
	Name   string
	Params []string
}

// FuncIR is a lowered function: a single straight-line entry block
// ending in RET. Expression bodies never branch, so one block is all
// there is.
type FuncIR struct {
	Name   string
	Params []string
	Instrs []Instr
}

// Module is the unit of lowering: extern declarations plus defined
// functions, in source order.
type Module struct {
	Decls []*FuncDecl
	Funcs []*FuncIR
}
