package compile

import (
	"strings"
	"testing"

	"zkcc/diag"
)

func TestCompileSimpleProgram(t *testing.T) {
	asm, err := Compile([]byte("int main() { return 7; }"))
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.Contains(string(asm), "main:") {
		t.Errorf("asm missing main label:\n%s", asm)
	}
}

func TestCompileReportsLexError(t *testing.T) {
	_, err := Compile([]byte("int main() { return \xff; }"))
	if err == nil {
		t.Fatalf("expected a lex error for an invalid token")
	}
	if de, ok := err.(*diag.Error); !ok || de.Kind != diag.Lex {
		t.Fatalf("error = %v, want a lex error", err)
	}
}

func TestCompileReportsSyntaxError(t *testing.T) {
	_, err := Compile([]byte("int main() { retur 0; }"))
	if err == nil {
		t.Fatalf("expected a syntax error for the undeclared identifier retur")
	}
}

func TestCompileIsIndependentAcrossCalls(t *testing.T) {
	asm1, err := Compile([]byte("int main() { return 1; }"))
	if err != nil {
		t.Fatalf("first Compile failed: %v", err)
	}
	asm2, err := Compile([]byte("int main() { return 2; }"))
	if err != nil {
		t.Fatalf("second Compile failed: %v", err)
	}
	if string(asm1) == string(asm2) {
		t.Fatalf("expected different output for different programs")
	}
}
