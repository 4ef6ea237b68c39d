package token

import "testing"

func TestTextReturnsSourceSpan(t *testing.T) {
	src := []byte("int x = 12;")
	tok := &Token{Kind: IDENT, Loc: 4, Len: 1}
	if got := tok.Text(src); got != "x" {
		t.Errorf("Text() = %q, want %q", got, "x")
	}
}

func TestIsMatchesPunctAndKeywordBySourceText(t *testing.T) {
	src := []byte("== return ident")
	eq := &Token{Kind: PUNCT, Loc: 0, Len: 2}
	if !eq.Is(src, "==") {
		t.Errorf("Is(==) = false, want true")
	}
	if eq.Is(src, "=") {
		t.Errorf("Is(=) = true, want false")
	}

	ret := &Token{Kind: KEYWORD, Loc: 3, Len: 6}
	if !ret.Is(src, "return") {
		t.Errorf("Is(return) = false, want true")
	}

	ident := &Token{Kind: IDENT, Loc: 10, Len: 5}
	if ident.Is(src, "ident") {
		t.Errorf("Is() matched an IDENT token, want false (only PUNCT/KEYWORD match)")
	}
}

func TestKeywordsTable(t *testing.T) {
	for _, kw := range []string{"return", "if", "else", "for", "while", "int", "char", "sizeof"} {
		if !Keywords[kw] {
			t.Errorf("Keywords[%q] = false, want true", kw)
		}
	}
	if Keywords["notakeyword"] {
		t.Errorf("Keywords[notakeyword] = true, want false")
	}
}
