package ast

import (
	"zkcc/arena"
	"zkcc/ctype"
	"zkcc/diag"
)

// AddType is an idempotent post-order walk that fills in node.Ty wherever
// it is still nil. The parser calls it inline where it needs an operand's
// type and then once over each whole function body, so by the time codegen
// sees any node, add_type has already run on it — but it
// is safe (and produces identical Ty fields) to call again on an
// already-elaborated tree, which is exactly the idempotence property this
// compiler is tested against.
//
// a is only needed for the ND_ADDR case, which constructs a fresh pointer
// type; every other case reuses an existing Type.
func AddType(a *arena.Arena, n *Node) {
	if n == nil || n.Ty != nil {
		return
	}

	AddType(a, n.Lhs)
	AddType(a, n.Rhs)
	AddType(a, n.Cond)
	AddType(a, n.Then)
	AddType(a, n.Els)
	AddType(a, n.Init)
	AddType(a, n.Inc)
	for b := n.Body; b != nil; b = b.Next {
		AddType(a, b)
	}
	for arg := n.Args; arg != nil; arg = arg.Next {
		AddType(a, arg)
	}

	switch n.Kind {
	case ND_NUM:
		n.Ty = ctype.IntType
	case ND_ADD, ND_SUB, ND_MUL, ND_DIV, ND_NEG:
		n.Ty = n.Lhs.Ty
	case ND_ASSIGN:
		if n.Lhs.Ty.Kind == ctype.ARRAY {
			diag.Abortf(diag.Type, n.Tok.Loc, "not an lvalue")
		}
		n.Ty = n.Lhs.Ty
	case ND_EQ, ND_NE, ND_LT, ND_LE:
		n.Ty = ctype.IntType
	case ND_VAR:
		n.Ty = n.Var.Ty
	case ND_ADDR:
		if n.Lhs.Ty.Kind == ctype.ARRAY {
			n.Ty = ctype.PointerTo(a, n.Lhs.Ty.Base)
		} else {
			n.Ty = ctype.PointerTo(a, n.Lhs.Ty)
		}
	case ND_DEREF:
		if !ctype.HasBase(n.Lhs.Ty) {
			diag.Abortf(diag.Type, n.Tok.Loc, "invalid pointer dereference")
		}
		n.Ty = n.Lhs.Ty.Base
	case ND_FUNCALL:
		n.Ty = ctype.IntType
	}
}
