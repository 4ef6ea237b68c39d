// Package token defines the lexical token produced by package lexer and
// consumed by package parser.
package token

import "zkcc/ctype"

// Kind classifies a Token.
type Kind int

const (
	IDENT   Kind = iota // identifiers
	PUNCT               // punctuators, e.g. "+", "==", "{"
	KEYWORD             // identifiers promoted to a reserved word
	STR                 // string literals
	NUM                 // decimal integer literals
	EOF                 // end-of-file marker, always the list's last token
)

func (k Kind) String() string {
	switch k {
	case IDENT:
		return "IDENT"
	case PUNCT:
		return "PUNCT"
	case KEYWORD:
		return "KEYWORD"
	case STR:
		return "STR"
	case NUM:
		return "NUM"
	case EOF:
		return "EOF"
	default:
		return "?"
	}
}

// Keywords is the set of identifiers promoted to KEYWORD by the lexer's
// single post-pass, once scanning is complete.
var Keywords = map[string]bool{
	"return": true,
	"if":     true,
	"else":   true,
	"for":    true,
	"while":  true,
	"int":    true,
	"char":   true,
	"sizeof": true,
}

// Token is a single lexical token. Tokens form a singly-linked,
// immutable list terminated by an EOF token; the parser walks the list via
// Next without ever mutating it.
//
// Loc and Len point into the original source buffer rather than copying the
// token's text, so diagnostics can always recover the exact source span a
// token came from (see the tokenize-then-print-loc round-trip property).
type Token struct {
	Kind Kind
	Next *Token

	Loc int // byte offset into the source buffer this token starts at
	Len int // length in bytes

	Val int // decoded value, valid when Kind == NUM

	Str string     // decoded payload including a trailing NUL, valid when Kind == STR
	Ty  *ctype.Type // array-of-char, valid when Kind == STR
}

// Text returns the token's original source span, i.e. src[t.Loc:t.Loc+t.Len].
func (t *Token) Text(src []byte) string {
	return string(src[t.Loc : t.Loc+t.Len])
}

// Is reports whether t is a PUNCT or KEYWORD token whose source text
// exactly equals op.
func (t *Token) Is(src []byte, op string) bool {
	return (t.Kind == PUNCT || t.Kind == KEYWORD) && t.Text(src) == op
}
