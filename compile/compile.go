// Package compile wires the lexer, parser, and code generator into the
// single Compile entry point the rest of this module — the dev CLI and
// the host harness alike — calls to turn source text into assembly.
package compile

import (
	"zkcc/arena"
	"zkcc/codegen"
	"zkcc/diag"
	"zkcc/lexer"
	"zkcc/parser"
)

// Compile lexes, parses and type-elaborates, then generates assembly for
// src. Each call gets its own arena, so nothing carries over between
// independent compilations.
func Compile(src []byte) (asm []byte, err error) {
	defer diag.Recover(&err)

	a := arena.New(arena.DefaultSize)
	toks := lexer.New(a, src).Scan()
	prog, err := parser.Parse(a, src, toks)
	if err != nil {
		return nil, err
	}
	return codegen.Generate(prog)
}
