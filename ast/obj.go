package ast

import "zkcc/ctype"

// Obj is a symbol: a local variable, a global variable, or a function.
// Objects live in two lists: the parser's program-wide global list
// (threaded through Next), and each function's Locals list (also threaded
// through Next, in declaration order).
type Obj struct {
	Next *Obj
	Name string
	Ty   *ctype.Type

	IsLocal bool

	// Local variable: stack-frame offset, assigned exactly once by
	// codegen's pre-pass: the negated sum of the sizes of this local and
	// every local declared before it.
	Offset int

	// Global variable or function
	IsFunction bool

	// Global variable: zero/byte-array initializer, absent for .zero globals.
	InitData []byte

	// Function
	Params    *Obj
	Body      *Node
	Locals    *Obj
	StackSize int
}
