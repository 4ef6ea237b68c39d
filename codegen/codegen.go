// Package codegen walks an elaborated AST and emits AT&T-syntax x86-64
// System V assembly text. Emission is stateful — stack depth, the label
// counter, and the function currently being emitted — so all of that state
// lives on a *Generator value constructed fresh for each compilation, per
// the design note on bundling global mutable state into an explicit
// compiler-context value.
package codegen

import (
	"bytes"
	"fmt"

	"zkcc/ast"
	"zkcc/ctype"
	"zkcc/diag"
)

var argReg64 = [6]string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}
var argReg8 = [6]string{"%dil", "%sil", "%dl", "%cl", "%r8b", "%r9b"}

// cappedBuffer is a bytes.Buffer that silently stops accepting writes past
// a fixed capacity, rather than growing unbounded — the Go equivalent of
// the original's append-with-truncation log buffer.
type cappedBuffer struct {
	buf bytes.Buffer
	cap int
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	remaining := c.cap - c.buf.Len()
	if remaining <= 0 {
		return len(p), nil // report as written so fmt.Fprintf doesn't error; bytes are dropped
	}
	if len(p) > remaining {
		p = p[:remaining]
	}
	c.buf.Write(p)
	return len(p), nil
}

// Capacity matches the original's 64 KiB codegen log buffer.
const LogCapacity = 64 * 1024

// Generator holds every piece of codegen's mutable state.
type Generator struct {
	log        cappedBuffer
	depth      int
	labelSeq   int
	currentFn  *ast.Obj
}

// New constructs a Generator with a fresh, empty log buffer.
func New() *Generator {
	g := &Generator{}
	g.log.cap = LogCapacity
	return g
}

func (g *Generator) emitf(format string, args ...any) {
	fmt.Fprintf(&g.log, format, args...)
}

// Bytes returns the assembly text emitted so far.
func (g *Generator) Bytes() []byte {
	return g.log.buf.Bytes()
}

func (g *Generator) push() {
	g.emitf("  push %%rax\n")
	g.depth++
}

func (g *Generator) pop(reg string) {
	g.emitf("  pop %s\n", reg)
	g.depth--
}

func (g *Generator) nextLabel() int {
	g.labelSeq++
	return g.labelSeq
}

func alignTo(n, align int) int {
	return (n + align - 1) / align * align
}

// Generate runs the full codegen pass over prog — the parser's linked list
// of top-level functions and global variables — and returns the emitted
// assembly text. Each call starts from a fresh Generator state, so the
// label counter and log buffer never carry over between calls, matching
// the "reset at the start of each codegen() call" requirement.
func Generate(prog *ast.Obj) (asm []byte, err error) {
	defer diag.Recover(&err)

	g := New()
	g.assignLocalOffsets(prog)
	g.emitData(prog)
	g.emitText(prog)
	return g.Bytes(), nil
}

// assignLocalOffsets is codegen's pre-pass: for every function, walk its
// locals in declaration order and assign each a negative stack offset,
// then round the running total up to a 16-byte stack frame size.
func (g *Generator) assignLocalOffsets(prog *ast.Obj) {
	for fn := prog; fn != nil; fn = fn.Next {
		if !fn.IsFunction {
			continue
		}
		offset := 0
		for v := fn.Locals; v != nil; v = v.Next {
			offset += v.Ty.Size
			v.Offset = -offset
		}
		fn.StackSize = alignTo(offset, 16)
	}
}

func (g *Generator) emitData(prog *ast.Obj) {
	for v := prog; v != nil; v = v.Next {
		if v.IsFunction {
			continue
		}
		g.emitf("  .data\n")
		g.emitf("  .globl %s\n", v.Name)
		g.emitf("%s:\n", v.Name)

		if v.InitData != nil {
			for _, b := range v.InitData {
				g.emitf("  .byte %d\n", b)
			}
		} else {
			g.emitf("  .zero %d\n", v.Ty.Size)
		}
	}
}

func (g *Generator) emitText(prog *ast.Obj) {
	for fn := prog; fn != nil; fn = fn.Next {
		if !fn.IsFunction {
			continue
		}

		g.emitf("  .globl %s\n", fn.Name)
		g.emitf("  .text\n")
		g.emitf("%s:\n", fn.Name)
		g.currentFn = fn

		g.emitf("  push %%rbp\n")
		g.emitf("  mov %%rsp, %%rbp\n")
		g.emitf("  sub $%d, %%rsp\n", fn.StackSize)

		i := 0
		for v := fn.Params; v != nil; v = v.Next {
			if v.Ty.Size == 1 {
				g.emitf("  mov %s, %d(%%rbp)\n", argReg8[i], v.Offset)
			} else {
				g.emitf("  mov %s, %d(%%rbp)\n", argReg64[i], v.Offset)
			}
			i++
		}

		g.genStmt(fn.Body)
		if g.depth != 0 {
			diag.Abortf(diag.Codegen, -1, "stack depth did not return to zero in %s (depth=%d)", fn.Name, g.depth)
		}

		g.emitf(".L.return.%s:\n", fn.Name)
		g.emitf("  mov %%rbp, %%rsp\n")
		g.emitf("  pop %%rbp\n")
		g.emitf("  ret\n")
	}
}

// genAddr computes the absolute address of node into %rax. Only ND_VAR and
// ND_DEREF denote addressable locations; anything else is "not an lvalue".
func (g *Generator) genAddr(n *ast.Node) {
	switch n.Kind {
	case ast.ND_VAR:
		if n.Var.IsLocal {
			g.emitf("  lea %d(%%rbp), %%rax\n", n.Var.Offset)
		} else {
			g.emitf("  lea %s(%%rip), %%rax\n", n.Var.Name)
		}
		return
	case ast.ND_DEREF:
		g.genExpr(n.Lhs)
		return
	}
	diag.Abortf(diag.Codegen, n.Tok.Loc, "not an lvalue")
}

// load reads the value %rax points to back into %rax. Arrays decay: their
// "value" is their address, so loading one is a no-op.
func (g *Generator) load(ty *ctype.Type) {
	if ty.Kind == ctype.ARRAY {
		return
	}
	if ty.Size == 1 {
		g.emitf("  movsbq (%%rax), %%rax\n")
	} else {
		g.emitf("  mov (%%rax), %%rax\n")
	}
}

// store writes %rax to the address left on top of the runtime stack by a
// prior genAddr+push.
func (g *Generator) store(ty *ctype.Type) {
	g.pop("%rdi")
	if ty.Size == 1 {
		g.emitf("  mov %%al, (%%rdi)\n")
	} else {
		g.emitf("  mov %%rax, (%%rdi)\n")
	}
}

func (g *Generator) genExpr(n *ast.Node) {
	switch n.Kind {
	case ast.ND_NUM:
		g.emitf("  mov $%d, %%rax\n", n.Val)
		return
	case ast.ND_NEG:
		g.genExpr(n.Lhs)
		g.emitf("  neg %%rax\n")
		return
	case ast.ND_VAR:
		g.genAddr(n)
		g.load(n.Ty)
		return
	case ast.ND_DEREF:
		g.genExpr(n.Lhs)
		g.load(n.Ty)
		return
	case ast.ND_ADDR:
		g.genAddr(n.Lhs)
		return
	case ast.ND_ASSIGN:
		g.genAddr(n.Lhs)
		g.push()
		g.genExpr(n.Rhs)
		g.store(n.Ty)
		return
	case ast.ND_FUNCALL:
		nargs := 0
		for arg := n.Args; arg != nil; arg = arg.Next {
			g.genExpr(arg)
			g.push()
			nargs++
		}
		for i := nargs - 1; i >= 0; i-- {
			g.pop(argReg64[i])
		}
		g.emitf("  mov $0, %%rax\n")
		g.emitf("  call %s\n", n.FuncName)
		return
	}

	g.genExpr(n.Rhs)
	g.push()
	g.genExpr(n.Lhs)
	g.pop("%rdi")

	switch n.Kind {
	case ast.ND_ADD:
		g.emitf("  add %%rdi, %%rax\n")
		return
	case ast.ND_SUB:
		g.emitf("  sub %%rdi, %%rax\n")
		return
	case ast.ND_MUL:
		g.emitf("  imul %%rdi, %%rax\n")
		return
	case ast.ND_DIV:
		g.emitf("  cqo\n")
		g.emitf("  idiv %%rdi\n")
		return
	case ast.ND_EQ, ast.ND_NE, ast.ND_LT, ast.ND_LE:
		g.emitf("  cmp %%rdi, %%rax\n")
		switch n.Kind {
		case ast.ND_EQ:
			g.emitf("  sete %%al\n")
		case ast.ND_NE:
			g.emitf("  setne %%al\n")
		case ast.ND_LT:
			g.emitf("  setl %%al\n")
		case ast.ND_LE:
			g.emitf("  setle %%al\n")
		}
		g.emitf("  movzb %%al, %%rax\n")
		return
	}

	diag.Abortf(diag.Codegen, n.Tok.Loc, "invalid expression")
}

func (g *Generator) genStmt(n *ast.Node) {
	switch n.Kind {
	case ast.ND_IF:
		c := g.nextLabel()
		g.genExpr(n.Cond)
		g.emitf("  cmp $0, %%rax\n")
		g.emitf("  je  .L.else.%d\n", c)
		g.genStmt(n.Then)
		g.emitf("  jmp .L.end.%d\n", c)
		g.emitf(".L.else.%d:\n", c)
		if n.Els != nil {
			g.genStmt(n.Els)
		}
		g.emitf(".L.end.%d:\n", c)
		return
	case ast.ND_FOR:
		c := g.nextLabel()
		if n.Init != nil {
			g.genStmt(n.Init)
		}
		g.emitf(".L.begin.%d:\n", c)
		if n.Cond != nil {
			g.genExpr(n.Cond)
			g.emitf("  cmp $0, %%rax\n")
			g.emitf("  je  .L.end.%d\n", c)
		}
		g.genStmt(n.Then)
		if n.Inc != nil {
			g.genExpr(n.Inc)
		}
		g.emitf("  jmp .L.begin.%d\n", c)
		g.emitf(".L.end.%d:\n", c)
		return
	case ast.ND_BLOCK:
		for s := n.Body; s != nil; s = s.Next {
			g.genStmt(s)
		}
		return
	case ast.ND_RETURN:
		g.genExpr(n.Lhs)
		g.emitf("  jmp .L.return.%s\n", g.currentFn.Name)
		return
	case ast.ND_EXPR_STMT:
		g.genExpr(n.Lhs)
		return
	}
	diag.Abortf(diag.Codegen, n.Tok.Loc, "invalid statement")
}
