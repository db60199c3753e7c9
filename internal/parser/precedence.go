package parser

// OpTable maps single-character binary operators to their precedence.
// Higher binds tighter. The table is read-mostly: populate it before
// parsing begins, never during an active parse.
type OpTable struct {
	prec map[byte]int
}

// NewOpTable returns a table with the standard operators installed.
func NewOpTable() *OpTable {
	return &OpTable{prec: map[byte]int{
		'<': 10,
		'+': 20,
		'-': 20,
		'*': 40, // highest
	}}
}

// Register installs op with the given precedence, overriding any
// previous registration.
func (t *OpTable) Register(op byte, prec int) {
	t.prec[op] = prec
}

// Precedence returns the precedence of op, or -1 if op is not a
// registered binary operator.
func (t *OpTable) Precedence(op byte) int {
	prec, ok := t.prec[op]
	if !ok || prec <= 0 {
		return -1
	}
	return prec
}
