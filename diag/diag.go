// Package diag defines the compiler's typed error taxonomy and the single
// panic/recover sink every pipeline stage unwinds through.
//
// Lexing, parsing, type elaboration, and code generation are all
// non-recoverable in this compiler: the first error aborts compilation.
// Rather than thread an error return through every recursive-descent
// production and every AST walk, each stage panics with a *diag.Error.
// parser.Parse, codegen.Generate and compile.Compile each install one
// Recover at their entry point, which converts the panic back into a
// normal Go error; lexer.Scan installs none, so its panics unwind to the
// caller's Recover. Anything that is not a *diag.Error re-panics,
// since that indicates a bug in the compiler rather than a malformed
// program.
package diag

import "fmt"

// Kind classifies an Error into the taxonomy from the error handling design:
// lex, parse (syntax), type, codegen, and resource (arena) errors.
type Kind int

const (
	Lex Kind = iota
	Syntax
	Type
	Codegen
	Resource
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex error"
	case Syntax:
		return "syntax error"
	case Type:
		return "type error"
	case Codegen:
		return "codegen error"
	case Resource:
		return "resource error"
	default:
		return "error"
	}
}

// Error is the single error value used across the whole pipeline. Loc is a
// byte offset into the original source buffer, or -1 when the error has no
// source position (e.g. arena exhaustion). The compiler only ever tracks
// byte offsets, never line/column, so diagnostics carry a caret under the
// reconstructed offset rather than a line:column pair.
type Error struct {
	Kind    Kind
	Loc     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AtLoc formats e as a caret-pointing diagnostic against src, the original
// source buffer e.Loc was computed against. It is the Go analogue of
// error_at/error_tok: print the source line containing Loc, followed by a
// line with spaces up to Loc and a caret.
func (e *Error) AtLoc(src []byte) string {
	if e.Loc < 0 || e.Loc > len(src) {
		return e.Error()
	}

	lineStart := e.Loc
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := e.Loc
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}

	line := string(src[lineStart:lineEnd])
	caretPos := e.Loc - lineStart
	caret := make([]byte, caretPos)
	for i := range caret {
		caret[i] = ' '
	}

	return fmt.Sprintf("%s\n%s^ %s: %s", line, caret, e.Kind, e.Message)
}

// New constructs an Error. loc is -1 for errors with no source position.
func New(kind Kind, loc int, format string, args ...any) *Error {
	return &Error{Kind: kind, Loc: loc, Message: fmt.Sprintf(format, args...)}
}

// Abort panics with err, unwinding to the nearest Recover. Every function in
// this compiler that detects a malformed program, an exhausted arena, or an
// unreachable codegen case calls Abort instead of returning an error,
// because the error handling design requires compilation to stop at the
// first fault rather than attempt local recovery.
func Abort(err *Error) {
	panic(err)
}

// Abortf is a convenience wrapper combining New and Abort.
func Abortf(kind Kind, loc int, format string, args ...any) {
	Abort(New(kind, loc, format, args...))
}

// Recover installs the pipeline's single error sink. Call it as:
//
//	defer diag.Recover(&err)
//
// at the top of any function that may call Abort (directly or transitively).
// If the deferred recover observes a *diag.Error panic, it assigns that
// error to *errp and stops the panic from propagating further. Any other
// panic value is re-raised, since it represents a compiler bug rather than
// a diagnosed fault in the input program.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*errp = e
		return
	}
	panic(r)
}
