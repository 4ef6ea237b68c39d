// Package ast defines the compiler's abstract syntax tree and symbol table,
// and implements type elaboration over that tree.
//
// Node is deliberately a single tagged struct rather than one Go type per
// NodeKind. A sum type where each variant carries only its meaningful
// payload, dispatched through an Accept(visitor) method, is a natural fit
// for a tree-walking interpreter whose node kinds each carry their own
// evaluation logic — and is exactly how a nearby tree-walking interpreter
// in this codebase's lineage models its own Expression/Stmt nodes.
//
// It does not fit this compiler as well: codegen.Generator's gen_expr and
// gen_stmt are single recursive functions that switch on node.Kind and, for
// most kinds, read two or three of the same handful of child slots
// (Lhs/Rhs, Cond/Then/Els/Init/Inc, Body, FuncName/Args). A visitor
// interface would turn that one switch into either an N-method interface
// implemented by N structs, or a type switch over N concrete types — either
// way adding a layer of indirection the original codegen.c's `switch
// (node->kind)` doesn't have, without buying anything: there is no second
// consumer of the AST that would benefit from double dispatch (codegen is
// the only walker; type elaboration is a second, independent walk, not a
// second Visitor implementation of the same one). So Node keeps the
// original's wide-record-with-optional-fields shape, tagged by Kind.
package ast

import (
	"zkcc/ctype"
	"zkcc/token"
)

// Kind tags a Node with which of its fields are meaningful.
type Kind int

const (
	ND_ADD       Kind = iota // +
	ND_SUB                   // -
	ND_MUL                   // *
	ND_DIV                   // /
	ND_NEG                   // unary -
	ND_EQ                    // ==
	ND_NE                    // !=
	ND_LT                    // <
	ND_LE                    // <=
	ND_ASSIGN                // =
	ND_ADDR                  // unary &
	ND_DEREF                 // unary *
	ND_RETURN                // "return"
	ND_IF                    // "if"
	ND_FOR                   // "for" or "while"
	ND_BLOCK                 // { ... }
	ND_FUNCALL               // function call
	ND_EXPR_STMT             // expression statement
	ND_VAR                   // variable reference
	ND_NUM                   // integer literal
)

func (k Kind) String() string {
	names := [...]string{
		"ADD", "SUB", "MUL", "DIV", "NEG", "EQ", "NE", "LT", "LE",
		"ASSIGN", "ADDR", "DEREF", "RETURN", "IF", "FOR", "BLOCK",
		"FUNCALL", "EXPR_STMT", "VAR", "NUM",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Node is one AST node. Every node carries a representative token (for
// diagnostics) and, once type elaboration has run, a non-nil Ty for every
// expression node. Which of the remaining fields are populated depends on
// Kind; see the field comments below for the grouping.
type Node struct {
	Kind Kind
	Next *Node // links sibling statements in a block or call arguments
	Ty   *ctype.Type
	Tok  *token.Token

	Lhs *Node
	Rhs *Node

	// if/for
	Cond *Node
	Then *Node
	Els  *Node
	Init *Node
	Inc  *Node

	// block
	Body *Node

	// function call
	FuncName string
	Args     *Node

	Var *Obj // ND_VAR
	Val int  // ND_NUM
}
