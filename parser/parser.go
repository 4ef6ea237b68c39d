// Package parser implements the compiler's recursive-descent parser and
// its simultaneous type elaboration: ast.AddType runs inline wherever the
// parser itself needs an operand's type (pointer arithmetic, sizeof, local
// initializers), and once more over each function body right after that
// body is parsed, so every expression node has its type before codegen.
//
// Grammar productions are plain functions/methods that take the current
// token and return the next one, threading the cursor explicitly instead
// of advancing a mutable position field on *Parser. declarator's
// "(" declarator ")" case needs that: it must first discover where the
// parenthesized sub-declarator ends before it can apply the outer
// type-suffix, then re-parse the inner declarator against the now-known
// element type. Passing an explicit cursor in and out of every production
// makes that two-pass trick a matter of calling the same function twice
// with the same starting token, instead of manually saving and restoring a
// mutable index.
package parser

import (
	"fmt"

	"zkcc/arena"
	"zkcc/ast"
	"zkcc/ctype"
	"zkcc/diag"
	"zkcc/token"
)

// Parser holds the symbol tables and counters threaded through every
// production. It carries no token cursor — that is passed explicitly.
type Parser struct {
	a   *arena.Arena
	src []byte

	globalsHead, globalsTail *ast.Obj
	globalsByName            map[string]*ast.Obj

	localsHead, localsTail *ast.Obj
	localsByName           map[string]*ast.Obj

	anonCount int // .L..N counter for string-literal globals
}

// Parse consumes an already-tokenized src into a program: the head of the
// linked list of top-level functions and global variables.
func Parse(a *arena.Arena, src []byte, tok *token.Token) (prog *ast.Obj, err error) {
	defer diag.Recover(&err)

	p := &Parser{
		a:             a,
		src:           src,
		globalsByName: map[string]*ast.Obj{},
	}
	p.program(tok)
	return p.globalsHead, nil
}

// --- token cursor helpers ---

func (p *Parser) equal(tok *token.Token, op string) bool {
	return tok.Is(p.src, op)
}

func (p *Parser) skip(tok *token.Token, op string) *token.Token {
	if !p.equal(tok, op) {
		p.errorTok(tok, "expected %q", op)
	}
	return tok.Next
}

func (p *Parser) consume(tok *token.Token, op string) (*token.Token, bool) {
	if p.equal(tok, op) {
		return tok.Next, true
	}
	return tok, false
}

func (p *Parser) errorTok(tok *token.Token, format string, args ...any) {
	diag.Abortf(diag.Syntax, tok.Loc, format, args...)
}

// --- symbol table ---

func (p *Parser) findVar(name string) *ast.Obj {
	if p.localsByName != nil {
		if v, ok := p.localsByName[name]; ok {
			return v
		}
	}
	return p.globalsByName[name]
}

func (p *Parser) newLVar(name string, ty *ctype.Type) *ast.Obj {
	v := arena.Alloc[ast.Obj](p.a)
	v.Name = name
	v.Ty = ty
	v.IsLocal = true

	if p.localsHead == nil {
		p.localsHead = v
		p.localsTail = v
	} else {
		p.localsTail.Next = v
		p.localsTail = v
	}
	p.localsByName[name] = v
	return v
}

func (p *Parser) newGVar(name string, ty *ctype.Type) *ast.Obj {
	v := arena.Alloc[ast.Obj](p.a)
	v.Name = name
	v.Ty = ty

	if p.globalsHead == nil {
		p.globalsHead = v
		p.globalsTail = v
	} else {
		p.globalsTail.Next = v
		p.globalsTail = v
	}
	p.globalsByName[name] = v
	return v
}

func (p *Parser) newAnonGVarName() string {
	p.anonCount++
	return fmt.Sprintf(".L..%d", p.anonCount)
}

// --- node constructors ---

func (p *Parser) newNode(kind ast.Kind, tok *token.Token) *ast.Node {
	n := arena.Alloc[ast.Node](p.a)
	n.Kind = kind
	n.Tok = tok
	return n
}

func (p *Parser) newNum(val int, tok *token.Token) *ast.Node {
	n := p.newNode(ast.ND_NUM, tok)
	n.Val = val
	return n
}

func (p *Parser) newVarNode(v *ast.Obj, tok *token.Token) *ast.Node {
	n := p.newNode(ast.ND_VAR, tok)
	n.Var = v
	return n
}

func (p *Parser) newUnary(kind ast.Kind, lhs *ast.Node, tok *token.Token) *ast.Node {
	n := p.newNode(kind, tok)
	n.Lhs = lhs
	return n
}

func (p *Parser) newBinary(kind ast.Kind, lhs, rhs *ast.Node, tok *token.Token) *ast.Node {
	n := p.newNode(kind, tok)
	n.Lhs = lhs
	n.Rhs = rhs
	return n
}

func (p *Parser) addType(n *ast.Node) {
	ast.AddType(p.a, n)
}

// newAdd/newSub implement the pointer-arithmetic normalization rules: both
// operands are type-elaborated first, then integer+pointer combinations
// are rewritten to scale the integer side by the pointee size.
func (p *Parser) newAdd(lhs, rhs *ast.Node, tok *token.Token) *ast.Node {
	p.addType(lhs)
	p.addType(rhs)

	if ctype.IsInteger(lhs.Ty) && ctype.IsInteger(rhs.Ty) {
		return p.newBinary(ast.ND_ADD, lhs, rhs, tok)
	}
	if ctype.HasBase(lhs.Ty) && ctype.IsInteger(rhs.Ty) {
		rhs = p.scaleByBaseSize(rhs, lhs.Ty, tok)
		return p.newBinary(ast.ND_ADD, lhs, rhs, tok)
	}
	if ctype.IsInteger(lhs.Ty) && ctype.HasBase(rhs.Ty) {
		lhs = p.scaleByBaseSize(lhs, rhs.Ty, tok)
		return p.newBinary(ast.ND_ADD, rhs, lhs, tok)
	}
	p.errorTok(tok, "invalid operands for +")
	return nil
}

func (p *Parser) newSub(lhs, rhs *ast.Node, tok *token.Token) *ast.Node {
	p.addType(lhs)
	p.addType(rhs)

	if ctype.IsInteger(lhs.Ty) && ctype.IsInteger(rhs.Ty) {
		return p.newBinary(ast.ND_SUB, lhs, rhs, tok)
	}
	if ctype.HasBase(lhs.Ty) && ctype.IsInteger(rhs.Ty) {
		rhs = p.scaleByBaseSize(rhs, lhs.Ty, tok)
		n := p.newBinary(ast.ND_SUB, lhs, rhs, tok)
		n.Ty = lhs.Ty
		return n
	}
	if ctype.HasBase(lhs.Ty) && ctype.HasBase(rhs.Ty) {
		if lhs.Ty.Base.Size != rhs.Ty.Base.Size {
			p.errorTok(tok, "pointer difference between mismatched base sizes")
		}
		diff := p.newBinary(ast.ND_SUB, lhs, rhs, tok)
		diff.Ty = ctype.IntType
		size := p.newNum(lhs.Ty.Base.Size, tok)
		return p.newBinary(ast.ND_DIV, diff, size, tok)
	}
	p.errorTok(tok, "invalid operands for -")
	return nil
}

func (p *Parser) scaleByBaseSize(n *ast.Node, baseTy *ctype.Type, tok *token.Token) *ast.Node {
	scaled := p.newBinary(ast.ND_MUL, n, p.newNum(baseTy.Base.Size, tok), tok)
	p.addType(scaled)
	return scaled
}

// --- program ---

// program = (function-def | global-var)*
func (p *Parser) program(tok *token.Token) {
	for tok.Kind != token.EOF {
		baseTy, rest := p.typespec(tok)

		if p.isFunction(rest) {
			tok = p.functionDef(rest, baseTy)
			continue
		}
		tok = p.globalVar(rest, baseTy)
	}
}

// isFunction performs a speculative declarator parse to decide whether the
// upcoming declaration is a function definition or a global variable.
func (p *Parser) isFunction(tok *token.Token) bool {
	if p.equal(tok, ";") {
		return false
	}
	ty, _ := p.declarator(tok, &ctype.Type{})
	return ty.Kind == ctype.FUNC
}

// typespec = "int" | "char"
func (p *Parser) typespec(tok *token.Token) (*ctype.Type, *token.Token) {
	if p.equal(tok, "int") {
		return ctype.IntType, tok.Next
	}
	if p.equal(tok, "char") {
		return ctype.CharType, tok.Next
	}
	p.errorTok(tok, "expected a type specifier")
	return nil, nil
}

// declarator = "*"* ("(" declarator ")" | ident) type-suffix
func (p *Parser) declarator(tok *token.Token, ty *ctype.Type) (*ctype.Type, *token.Token) {
	for {
		var ok bool
		if tok, ok = p.consume(tok, "*"); !ok {
			break
		}
		ty = ctype.PointerTo(p.a, ty)
	}

	if p.equal(tok, "(") {
		start := tok
		// First pass: discover where the parenthesized sub-declarator
		// ends, discarding the type it produces.
		_, afterInner := p.declarator(start.Next, &ctype.Type{})
		afterParen := p.skip(afterInner, ")")
		outerTy, rest := p.typeSuffix(afterParen, ty)
		// Second pass: now that the element type is fully known,
		// re-parse the inner declarator for real against it.
		innerTy, _ := p.declarator(start.Next, outerTy)
		return innerTy, rest
	}

	if tok.Kind != token.IDENT {
		p.errorTok(tok, "expected a variable name")
	}
	nameTok := tok
	ty, rest := p.typeSuffix(tok.Next, ty)
	// For a plain "int x" with no pointer/array/func suffix, ty is the
	// shared IntType/CharType singleton, so this writes through to it.
	// That's fine: every caller reads ty.Name right away to build an Obj
	// (Obj.Name is its own string field, copied by value), before the
	// singleton's Name can be overwritten by the next declaration.
	ty.Name = nameTok.Text(p.src)
	return ty, rest
}

// type-suffix = "(" func-params | "[" num "]" type-suffix | ε
func (p *Parser) typeSuffix(tok *token.Token, ty *ctype.Type) (*ctype.Type, *token.Token) {
	if p.equal(tok, "(") {
		return p.funcParams(tok.Next, ty)
	}
	if p.equal(tok, "[") {
		if tok.Next.Kind != token.NUM {
			p.errorTok(tok.Next, "expected an array length")
		}
		length := tok.Next.Val
		rest := p.skip(tok.Next.Next, "]")
		elemTy, rest := p.typeSuffix(rest, ty)
		return ctype.ArrayOf(p.a, elemTy, length), rest
	}
	return ty, tok
}

// func-params = (param ("," param)*)? ")"
// A param is typespec declarator. The resulting types form a linked list
// via Type.Next, matching the original's Type*->params representation.
func (p *Parser) funcParams(tok *token.Token, retTy *ctype.Type) (*ctype.Type, *token.Token) {
	fnTy := ctype.FuncType(p.a, retTy)

	var head, tail *ctype.Type
	for !p.equal(tok, ")") {
		if head != nil {
			tok = p.skip(tok, ",")
		}
		baseTy, rest := p.typespec(tok)
		paramTy, rest2 := p.declarator(rest, baseTy)
		// Copy before linking: paramTy may be a shared base-type singleton
		// (e.g. ctype.IntType for a bare "int a"), and linking it directly
		// would chain that singleton's Next through every parameter list
		// that happens to share a basic type.
		paramTy = ctype.CopyType(p.a, paramTy)
		if head == nil {
			head = paramTy
			tail = paramTy
		} else {
			tail.Next = paramTy
			tail = paramTy
		}
		tok = rest2
	}
	fnTy.Params = head
	return fnTy, tok.Next
}

func (p *Parser) functionDef(tok *token.Token, baseTy *ctype.Type) *token.Token {
	ty, rest := p.declarator(tok, baseTy)

	fn := p.newGVar(ty.Name, ty)
	fn.IsFunction = true

	p.localsHead, p.localsTail = nil, nil
	p.localsByName = map[string]*ast.Obj{}

	var paramObjs *ast.Obj
	var paramTail *ast.Obj
	for pt := ty.Params; pt != nil; pt = pt.Next {
		v := p.newLVar(pt.Name, pt)
		if paramObjs == nil {
			paramObjs = v
			paramTail = v
		} else {
			paramTail.Next = v
			paramTail = v
		}
	}
	fn.Params = paramObjs

	rest = p.skip(rest, "{")
	body, rest := p.compoundStmt(rest)
	// A single post-order walk over the whole body elaborates every
	// expression node AddType's own recursion hasn't already reached
	// inline (pointer-arithmetic normalization and sizeof call AddType
	// as they parse, to decide types the parser itself needs to see).
	p.addType(body)
	fn.Body = body
	fn.Locals = p.localsHead

	p.localsHead, p.localsTail, p.localsByName = nil, nil, nil
	return rest
}

// global-var = typespec declarator ("," declarator)* ";"
func (p *Parser) globalVar(tok *token.Token, baseTy *ctype.Type) *token.Token {
	first := true
	for !p.equal(tok, ";") {
		if !first {
			tok = p.skip(tok, ",")
		}
		first = false

		ty, rest := p.declarator(tok, baseTy)
		p.newGVar(ty.Name, ty)
		tok = rest
	}
	return tok.Next
}

// --- statements ---

// compound-stmt = (declaration | stmt)* "}"
func (p *Parser) compoundStmt(tok *token.Token) (*ast.Node, *token.Token) {
	blockTok := tok
	var head, tail *ast.Node

	appendStmt := func(s *ast.Node) {
		for s != nil {
			next := s.Next
			s.Next = nil
			if head == nil {
				head = s
				tail = s
			} else {
				tail.Next = s
				tail = s
			}
			s = next
		}
	}

	for !p.equal(tok, "}") {
		var stmts *ast.Node
		if p.equal(tok, "int") || p.equal(tok, "char") {
			stmts, tok = p.declaration(tok)
		} else {
			stmts, tok = p.stmt(tok)
		}
		appendStmt(stmts)
	}

	block := p.newNode(ast.ND_BLOCK, blockTok)
	block.Body = head
	return block, tok.Next
}

// declaration = typespec (declarator ("=" expr)?)("," declarator ("=" expr)?)* ";"
//
// Each declared local is registered in the symbol table; a declarator with
// an initializer additionally produces an ND_EXPR_STMT(ND_ASSIGN(...)) node,
// appended (via Next) right after the declaration itself, desugaring
// `int a = 3;` into `int a; a = 3;`.
func (p *Parser) declaration(tok *token.Token) (*ast.Node, *token.Token) {
	baseTy, rest := p.typespec(tok)

	var head, tail *ast.Node
	appendStmt := func(s *ast.Node) {
		if s == nil {
			return
		}
		if head == nil {
			head = s
			tail = s
		} else {
			tail.Next = s
			tail = s
		}
	}

	first := true
	for !p.equal(rest, ";") {
		if !first {
			rest = p.skip(rest, ",")
		}
		first = false

		declTok := rest
		ty, afterDecl := p.declarator(rest, baseTy)
		v := p.newLVar(ty.Name, ty)
		rest = afterDecl

		if next, ok := p.consume(rest, "="); ok {
			rhs, afterExpr := p.assign(next)
			lhs := p.newVarNode(v, declTok)
			assignNode := p.newBinary(ast.ND_ASSIGN, lhs, rhs, declTok)
			p.addType(assignNode)
			stmt := p.newUnary(ast.ND_EXPR_STMT, assignNode, declTok)
			appendStmt(stmt)
			rest = afterExpr
		}
	}

	return head, rest.Next
}

// stmt = "return" expr ";"
//      | "if" "(" expr ")" stmt ("else" stmt)?
//      | "for" "(" expr-stmt expr? ";" expr? ")" stmt
//      | "while" "(" expr ")" stmt
//      | "{" compound-stmt
//      | expr-stmt
func (p *Parser) stmt(tok *token.Token) (*ast.Node, *token.Token) {
	if p.equal(tok, "return") {
		e, rest := p.expr(tok.Next)
		n := p.newUnary(ast.ND_RETURN, e, tok)
		return n, p.skip(rest, ";")
	}

	if p.equal(tok, "if") {
		rest := p.skip(tok.Next, "(")
		cond, rest2 := p.expr(rest)
		rest2 = p.skip(rest2, ")")
		then, rest3 := p.stmt(rest2)

		n := p.newNode(ast.ND_IF, tok)
		n.Cond = cond
		n.Then = then
		if p.equal(rest3, "else") {
			els, rest4 := p.stmt(rest3.Next)
			n.Els = els
			rest3 = rest4
		}
		return n, rest3
	}

	if p.equal(tok, "for") {
		rest := p.skip(tok.Next, "(")
		n := p.newNode(ast.ND_FOR, tok)

		initStmt, rest2 := p.exprStmt(rest)
		n.Init = initStmt

		if !p.equal(rest2, ";") {
			n.Cond, rest2 = p.expr(rest2)
		}
		rest2 = p.skip(rest2, ";")

		if !p.equal(rest2, ")") {
			n.Inc, rest2 = p.expr(rest2)
		}
		rest2 = p.skip(rest2, ")")

		n.Then, rest2 = p.stmt(rest2)
		return n, rest2
	}

	if p.equal(tok, "while") {
		rest := p.skip(tok.Next, "(")
		cond, rest2 := p.expr(rest)
		rest2 = p.skip(rest2, ")")
		then, rest3 := p.stmt(rest2)

		n := p.newNode(ast.ND_FOR, tok)
		n.Cond = cond
		n.Then = then
		return n, rest3
	}

	if p.equal(tok, "{") {
		return p.compoundStmt(tok.Next)
	}

	return p.exprStmt(tok)
}

// expr-stmt = expr? ";"
func (p *Parser) exprStmt(tok *token.Token) (*ast.Node, *token.Token) {
	if p.equal(tok, ";") {
		return p.newNode(ast.ND_BLOCK, tok), tok.Next
	}
	e, rest := p.expr(tok)
	n := p.newUnary(ast.ND_EXPR_STMT, e, tok)
	return n, p.skip(rest, ";")
}

// --- expressions ---

// expr = assign
func (p *Parser) expr(tok *token.Token) (*ast.Node, *token.Token) {
	return p.assign(tok)
}

// assign = equality ("=" assign)?
func (p *Parser) assign(tok *token.Token) (*ast.Node, *token.Token) {
	lhs, rest := p.equality(tok)
	if next, ok := p.consume(rest, "="); ok {
		rhs, rest2 := p.assign(next)
		n := p.newBinary(ast.ND_ASSIGN, lhs, rhs, rest)
		return n, rest2
	}
	return lhs, rest
}

// equality = relational (("==" | "!=") relational)*
func (p *Parser) equality(tok *token.Token) (*ast.Node, *token.Token) {
	lhs, rest := p.relational(tok)
	for {
		switch {
		case p.equal(rest, "=="):
			opTok := rest
			rhs, rest2 := p.relational(rest.Next)
			lhs = p.newBinary(ast.ND_EQ, lhs, rhs, opTok)
			rest = rest2
		case p.equal(rest, "!="):
			opTok := rest
			rhs, rest2 := p.relational(rest.Next)
			lhs = p.newBinary(ast.ND_NE, lhs, rhs, opTok)
			rest = rest2
		default:
			return lhs, rest
		}
	}
}

// relational = add (("<"|"<="|">"|">=") add)*
//
// ">" and ">=" are handled by swapping operands onto "<" and "<=", rather
// than adding ND_GT/ND_GE
// node kinds codegen would need to know about.
func (p *Parser) relational(tok *token.Token) (*ast.Node, *token.Token) {
	lhs, rest := p.add(tok)
	for {
		switch {
		case p.equal(rest, "<"):
			opTok := rest
			rhs, rest2 := p.add(rest.Next)
			lhs = p.newBinary(ast.ND_LT, lhs, rhs, opTok)
			rest = rest2
		case p.equal(rest, "<="):
			opTok := rest
			rhs, rest2 := p.add(rest.Next)
			lhs = p.newBinary(ast.ND_LE, lhs, rhs, opTok)
			rest = rest2
		case p.equal(rest, ">"):
			opTok := rest
			rhs, rest2 := p.add(rest.Next)
			lhs = p.newBinary(ast.ND_LT, rhs, lhs, opTok)
			rest = rest2
		case p.equal(rest, ">="):
			opTok := rest
			rhs, rest2 := p.add(rest.Next)
			lhs = p.newBinary(ast.ND_LE, rhs, lhs, opTok)
			rest = rest2
		default:
			return lhs, rest
		}
	}
}

// add = mul (("+"|"-") mul)*
func (p *Parser) add(tok *token.Token) (*ast.Node, *token.Token) {
	lhs, rest := p.mul(tok)
	for {
		switch {
		case p.equal(rest, "+"):
			opTok := rest
			rhs, rest2 := p.mul(rest.Next)
			lhs = p.newAdd(lhs, rhs, opTok)
			rest = rest2
		case p.equal(rest, "-"):
			opTok := rest
			rhs, rest2 := p.mul(rest.Next)
			lhs = p.newSub(lhs, rhs, opTok)
			rest = rest2
		default:
			return lhs, rest
		}
	}
}

// mul = unary (("*"|"/") unary)*
func (p *Parser) mul(tok *token.Token) (*ast.Node, *token.Token) {
	lhs, rest := p.unary(tok)
	for {
		switch {
		case p.equal(rest, "*"):
			opTok := rest
			rhs, rest2 := p.unary(rest.Next)
			lhs = p.newBinary(ast.ND_MUL, lhs, rhs, opTok)
			rest = rest2
		case p.equal(rest, "/"):
			opTok := rest
			rhs, rest2 := p.unary(rest.Next)
			lhs = p.newBinary(ast.ND_DIV, lhs, rhs, opTok)
			rest = rest2
		default:
			return lhs, rest
		}
	}
}

// unary = ("+"|"-"|"*"|"&") unary | postfix
func (p *Parser) unary(tok *token.Token) (*ast.Node, *token.Token) {
	if p.equal(tok, "+") {
		return p.unary(tok.Next)
	}
	if p.equal(tok, "-") {
		operand, rest := p.unary(tok.Next)
		return p.newUnary(ast.ND_NEG, operand, tok), rest
	}
	if p.equal(tok, "&") {
		operand, rest := p.unary(tok.Next)
		return p.newUnary(ast.ND_ADDR, operand, tok), rest
	}
	if p.equal(tok, "*") {
		operand, rest := p.unary(tok.Next)
		return p.newUnary(ast.ND_DEREF, operand, tok), rest
	}
	return p.postfix(tok)
}

// postfix = primary ("[" expr "]")*
//
// `a[b]` is parsed as `*(a+b)` — array subscripting desugars directly into
// pointer arithmetic plus a dereference, so codegen never needs to know
// about subscript syntax at all.
func (p *Parser) postfix(tok *token.Token) (*ast.Node, *token.Token) {
	n, rest := p.primary(tok)
	for p.equal(rest, "[") {
		idxTok := rest
		idx, rest2 := p.expr(rest.Next)
		rest2 = p.skip(rest2, "]")
		sum := p.newAdd(n, idx, idxTok)
		n = p.newUnary(ast.ND_DEREF, sum, idxTok)
		rest = rest2
	}
	return n, rest
}

// primary = "(" expr ")" | "sizeof" unary | ident args? | str | num
func (p *Parser) primary(tok *token.Token) (*ast.Node, *token.Token) {
	if p.equal(tok, "(") {
		e, rest := p.expr(tok.Next)
		return e, p.skip(rest, ")")
	}

	if p.equal(tok, "sizeof") {
		operand, rest := p.unary(tok.Next)
		p.addType(operand)
		return p.newNum(operand.Ty.Size, tok), rest
	}

	if tok.Kind == token.NUM {
		return p.newNum(tok.Val, tok), tok.Next
	}

	if tok.Kind == token.STR {
		v := p.newAnonGVarName()
		g := p.newGVar(v, tok.Ty)
		g.InitData = []byte(tok.Str)
		return p.newVarNode(g, tok), tok.Next
	}

	if tok.Kind == token.IDENT {
		if p.equal(tok.Next, "(") {
			return p.funcall(tok)
		}
		v := p.findVar(tok.Text(p.src))
		if v == nil {
			p.errorTok(tok, "undeclared identifier %q", tok.Text(p.src))
		}
		return p.newVarNode(v, tok), tok.Next
	}

	p.errorTok(tok, "expected an expression")
	return nil, nil
}

// funcall = ident "(" (assign ("," assign)*)? ")"
func (p *Parser) funcall(tok *token.Token) (*ast.Node, *token.Token) {
	start := tok
	rest := tok.Next.Next // skip ident, skip "("

	var head, tail *ast.Node
	for !p.equal(rest, ")") {
		if head != nil {
			rest = p.skip(rest, ",")
		}
		arg, rest2 := p.assign(rest)
		if head == nil {
			head = arg
			tail = arg
		} else {
			tail.Next = arg
			tail = arg
		}
		rest = rest2
	}

	n := p.newNode(ast.ND_FUNCALL, start)
	n.FuncName = start.Text(p.src)
	n.Args = head
	return n, rest.Next
}
