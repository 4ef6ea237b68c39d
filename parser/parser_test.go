package parser

import (
	"testing"

	"zkcc/arena"
	"zkcc/ast"
	"zkcc/ctype"
	"zkcc/lexer"
)

func parseSrc(t *testing.T, src string) *ast.Obj {
	t.Helper()
	a := arena.New(arena.DefaultSize)
	b := []byte(src)
	toks := lexer.New(a, b).Scan()
	prog, err := Parse(a, b, toks)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return prog
}

func findFunc(prog *ast.Obj, name string) *ast.Obj {
	for o := prog; o != nil; o = o.Next {
		if o.IsFunction && o.Name == name {
			return o
		}
	}
	return nil
}

func TestParseSimpleFunctionReturningConstant(t *testing.T) {
	prog := parseSrc(t, "int main() { return 42; }")
	fn := findFunc(prog, "main")
	if fn == nil {
		t.Fatalf("expected a function named main")
	}
	if fn.Body.Kind != ast.ND_BLOCK {
		t.Fatalf("fn.Body.Kind = %v, want ND_BLOCK", fn.Body.Kind)
	}
	ret := fn.Body.Body
	if ret.Kind != ast.ND_RETURN {
		t.Fatalf("first stmt = %v, want ND_RETURN", ret.Kind)
	}
	if ret.Lhs.Kind != ast.ND_NUM || ret.Lhs.Val != 42 {
		t.Fatalf("return operand = %+v, want NUM(42)", ret.Lhs)
	}
}

func TestParseLocalsListHoldsEachDeclaredLocal(t *testing.T) {
	prog := parseSrc(t, "int main() { int a; int b; a = 1; b = 2; return a+b; }")
	fn := findFunc(prog, "main")

	names := map[string]bool{}
	count := 0
	for v := fn.Locals; v != nil; v = v.Next {
		names[v.Name] = true
		count++
	}
	if count != 2 || !names["a"] || !names["b"] {
		t.Fatalf("locals = %v, want exactly a and b", names)
	}
}

func TestParseLocalInitializerDesugarsToDeclarationThenAssign(t *testing.T) {
	prog := parseSrc(t, "int main() { int a = 3; return a; }")
	fn := findFunc(prog, "main")

	// The declaration carries no initializer list of its own in this AST;
	// the desugared assignment is the first statement in the block body.
	first := fn.Body.Body
	if first.Kind != ast.ND_EXPR_STMT {
		t.Fatalf("first stmt = %v, want ND_EXPR_STMT wrapping the desugared assign", first.Kind)
	}
	assign := first.Lhs
	if assign.Kind != ast.ND_ASSIGN {
		t.Fatalf("desugared stmt = %v, want ND_ASSIGN", assign.Kind)
	}
	if assign.Lhs.Kind != ast.ND_VAR || assign.Lhs.Var.Name != "a" {
		t.Fatalf("assign.Lhs = %+v, want VAR(a)", assign.Lhs)
	}
	if assign.Rhs.Kind != ast.ND_NUM || assign.Rhs.Val != 3 {
		t.Fatalf("assign.Rhs = %+v, want NUM(3)", assign.Rhs)
	}
	// Already elaborated by the inline addType call in declaration().
	if assign.Ty != ctype.IntType {
		t.Fatalf("assign.Ty = %v, want IntType", assign.Ty)
	}
}

func TestParsePointerArithmeticScalesByBaseSize(t *testing.T) {
	prog := parseSrc(t, "int main() { int *p; return *(p+1); }")
	fn := findFunc(prog, "main")

	ret := fn.Body.Body
	deref := ret.Lhs
	if deref.Kind != ast.ND_DEREF {
		t.Fatalf("return operand = %v, want ND_DEREF", deref.Kind)
	}
	add := deref.Lhs
	if add.Kind != ast.ND_ADD {
		t.Fatalf("deref operand = %v, want ND_ADD", add.Kind)
	}
	// rhs must have been rewritten into `1 * sizeof(int)`.
	if add.Rhs.Kind != ast.ND_MUL {
		t.Fatalf("add.Rhs = %v, want ND_MUL (scaled integer)", add.Rhs.Kind)
	}
	if add.Rhs.Rhs.Kind != ast.ND_NUM || add.Rhs.Rhs.Val != ctype.IntType.Size {
		t.Fatalf("scale factor = %+v, want NUM(%d)", add.Rhs.Rhs, ctype.IntType.Size)
	}
}

func TestParsePointerDifferenceDividesByBaseSize(t *testing.T) {
	prog := parseSrc(t, "int main() { int *p; int *q; return p-q; }")
	fn := findFunc(prog, "main")

	ret := fn.Body.Body
	div := ret.Lhs
	if div.Kind != ast.ND_DIV {
		t.Fatalf("p-q = %v, want ND_DIV", div.Kind)
	}
	if div.Lhs.Kind != ast.ND_SUB {
		t.Fatalf("div.Lhs = %v, want ND_SUB", div.Lhs.Kind)
	}
	if div.Lhs.Ty != ctype.IntType {
		t.Fatalf("pointer difference Ty = %v, want IntType", div.Lhs.Ty)
	}
	if div.Rhs.Kind != ast.ND_NUM || div.Rhs.Val != ctype.IntType.Size {
		t.Fatalf("divisor = %+v, want NUM(%d)", div.Rhs, ctype.IntType.Size)
	}
}

func TestParseArraySubscriptDesugarsToDerefOfAdd(t *testing.T) {
	prog := parseSrc(t, "int main() { int a[3]; return a[1]; }")
	fn := findFunc(prog, "main")

	ret := fn.Body.Body
	deref := ret.Lhs
	if deref.Kind != ast.ND_DEREF {
		t.Fatalf("a[1] = %v, want ND_DEREF", deref.Kind)
	}
	if deref.Lhs.Kind != ast.ND_ADD {
		t.Fatalf("deref operand = %v, want ND_ADD", deref.Lhs.Kind)
	}
}

func TestParseAddrOfArrayDecaysToElementPointer(t *testing.T) {
	prog := parseSrc(t, "int main() { int a[3]; int *p; p = &a; return 0; }")
	fn := findFunc(prog, "main")

	stmt := fn.Body.Body
	for stmt != nil && !(stmt.Kind == ast.ND_EXPR_STMT && stmt.Lhs.Kind == ast.ND_ASSIGN) {
		stmt = stmt.Next
	}
	if stmt == nil {
		t.Fatalf("could not find the p = &a assignment")
	}
	addr := stmt.Lhs.Rhs
	if addr.Kind != ast.ND_ADDR {
		t.Fatalf("rhs = %v, want ND_ADDR", addr.Kind)
	}
	if addr.Ty.Kind != ctype.PTR || addr.Ty.Base != ctype.IntType {
		t.Fatalf("&a Ty = %+v, want pointer-to-int", addr.Ty)
	}
}

func TestParseSizeofYieldsConstantAndDiscardsOperand(t *testing.T) {
	prog := parseSrc(t, "int main() { int a[3]; return sizeof(a); }")
	fn := findFunc(prog, "main")

	ret := fn.Body.Body
	if ret.Lhs.Kind != ast.ND_NUM {
		t.Fatalf("sizeof(a) = %v, want ND_NUM", ret.Lhs.Kind)
	}
	want := ctype.IntType.Size * 3
	if ret.Lhs.Val != want {
		t.Fatalf("sizeof(a) = %d, want %d", ret.Lhs.Val, want)
	}
}

func TestParseFunctionCallCollectsArgsInOrder(t *testing.T) {
	prog := parseSrc(t, "int add(int a, int b) { return a+b; } int main() { return add(1, 2); }")
	fn := findFunc(prog, "main")

	ret := fn.Body.Body
	call := ret.Lhs
	if call.Kind != ast.ND_FUNCALL || call.FuncName != "add" {
		t.Fatalf("call = %+v, want FUNCALL(add)", call)
	}
	if call.Args == nil || call.Args.Val != 1 || call.Args.Next == nil || call.Args.Next.Val != 2 {
		t.Fatalf("call args not in source order: %+v", call.Args)
	}
}

func TestParseStringLiteralBecomesAnonymousGlobal(t *testing.T) {
	prog := parseSrc(t, `int main() { return 0; } char *msg() { return "hi"; }`)

	var anon *ast.Obj
	for o := prog; o != nil; o = o.Next {
		if !o.IsFunction && o.InitData != nil {
			anon = o
		}
	}
	if anon == nil {
		t.Fatalf("expected an anonymous global holding the string literal's bytes")
	}
	if string(anon.InitData) != "hi\x00" {
		t.Fatalf("InitData = %q, want %q", anon.InitData, "hi\x00")
	}
}

func TestParseUndeclaredIdentifierAborts(t *testing.T) {
	a := arena.New(arena.DefaultSize)
	src := []byte("int main() { return x; }")
	toks := lexer.New(a, src).Scan()
	_, err := Parse(a, src, toks)
	if err == nil {
		t.Fatalf("expected an error referencing an undeclared identifier")
	}
}

func TestParseMissingSemicolonAborts(t *testing.T) {
	a := arena.New(arena.DefaultSize)
	src := []byte("int main() { return 0 }")
	toks := lexer.New(a, src).Scan()
	_, err := Parse(a, src, toks)
	if err == nil {
		t.Fatalf("expected a syntax error for the missing semicolon")
	}
}

func TestParseWhileDesugarsToForWithOnlyCondAndThen(t *testing.T) {
	prog := parseSrc(t, "int main() { int i; i = 0; while (i) i = i-1; return 0; }")
	fn := findFunc(prog, "main")

	stmt := fn.Body.Body
	for stmt != nil && stmt.Kind != ast.ND_FOR {
		stmt = stmt.Next
	}
	if stmt == nil {
		t.Fatalf("expected a desugared ND_FOR node for the while loop")
	}
	if stmt.Init != nil || stmt.Inc != nil {
		t.Fatalf("while-desugared for node has Init=%v Inc=%v, want both nil", stmt.Init, stmt.Inc)
	}
	if stmt.Cond == nil || stmt.Then == nil {
		t.Fatalf("while-desugared for node missing Cond/Then")
	}
}

func TestParseGlobalVariableHasNoInitData(t *testing.T) {
	prog := parseSrc(t, "int counter; int main() { return counter; }")

	var g *ast.Obj
	for o := prog; o != nil; o = o.Next {
		if !o.IsFunction && o.Name == "counter" {
			g = o
		}
	}
	if g == nil {
		t.Fatalf("expected a global named counter")
	}
	if g.InitData != nil {
		t.Fatalf("counter.InitData = %v, want nil (zero-initialized)", g.InitData)
	}
}

func TestParsePointerToArrayDeclarator(t *testing.T) {
	prog := parseSrc(t, "int main() { int (*p)[10]; return 0; }")
	fn := findFunc(prog, "main")

	var v *ast.Obj
	for l := fn.Locals; l != nil; l = l.Next {
		if l.Name == "p" {
			v = l
		}
	}
	if v == nil {
		t.Fatalf("expected local p")
	}
	if v.Ty.Kind != ctype.PTR || v.Ty.Base.Kind != ctype.ARRAY || v.Ty.Base.ArrayLen != 10 {
		t.Fatalf("p.Ty = %+v, want pointer to array[10]", v.Ty)
	}
}
