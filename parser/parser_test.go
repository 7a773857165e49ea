package parser

import (
	"testing"

	"github.com/bagasjs/hotaru/ast"
	"github.com/bagasjs/hotaru/lexer"
)

func parse(source string) []ast.Stmt {
	p := New(lexer.New(source))
	return p.ParseProgram()
}

func TestParseVarInit(t *testing.T) {
	stmts := parse("var x = 1;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	init, ok := stmts[0].(*ast.VarInit)
	if !ok {
		t.Fatalf("got %T, want *ast.VarInit", stmts[0])
	}
	if init.Name != "x" {
		t.Errorf("Name = %q, want %q", init.Name, "x")
	}
	lit, ok := init.Value.(*ast.IntLit)
	if !ok || lit.Value != 1 {
		t.Errorf("Value = %v, want IntLit(1)", init.Value)
	}
}

func TestExprIsFlatAndRightAssociative(t *testing.T) {
	// "a - b - c" must parse as "a - (b - c)", not "(a - b) - c": the
	// grammar has one precedence level and binds right.
	stmts := parse("var a = 1 - 2 - 3;")
	init := stmts[0].(*ast.VarInit)

	outer, ok := init.Value.(*ast.BinOp)
	if !ok || outer.Type != ast.BINOP_SUB {
		t.Fatalf("outer = %v, want BinOp(SUB)", init.Value)
	}
	if _, ok := outer.Left.(*ast.IntLit); !ok {
		t.Fatalf("outer.Left = %T, want *ast.IntLit", outer.Left)
	}
	inner, ok := outer.Right.(*ast.BinOp)
	if !ok || inner.Type != ast.BINOP_SUB {
		t.Fatalf("outer.Right = %v, want BinOp(SUB)", outer.Right)
	}
}

func TestParseVarAssign(t *testing.T) {
	stmts := parse("x = x + 1;")
	assign, ok := stmts[0].(*ast.VarAssign)
	if !ok {
		t.Fatalf("got %T, want *ast.VarAssign", stmts[0])
	}
	if assign.Name != "x" {
		t.Errorf("Name = %q, want %q", assign.Name, "x")
	}
}

func TestParseWhile(t *testing.T) {
	stmts := parse("while (x) { dd x; }")
	loop, ok := stmts[0].(*ast.While)
	if !ok {
		t.Fatalf("got %T, want *ast.While", stmts[0])
	}
	if len(loop.Body.Items) != 1 {
		t.Fatalf("got %d body statements, want 1", len(loop.Body.Items))
	}
}

func TestParseIfElifElse(t *testing.T) {
	stmts := parse(`
		if (a) { dd 1; }
		elif (b) { dd 2; }
		else { dd 3; }
	`)
	stmt, ok := stmts[0].(*ast.If)
	if !ok {
		t.Fatalf("got %T, want *ast.If", stmts[0])
	}
	if len(stmt.Elifs) != 1 {
		t.Fatalf("got %d elifs, want 1", len(stmt.Elifs))
	}
	if !stmt.HasElse {
		t.Fatalf("HasElse = false, want true")
	}
}

func TestParseDump(t *testing.T) {
	stmts := parse("dd 7;")
	dump, ok := stmts[0].(*ast.Dump)
	if !ok {
		t.Fatalf("got %T, want *ast.Dump", stmts[0])
	}
	lit, ok := dump.Value.(*ast.IntLit)
	if !ok || lit.Value != 7 {
		t.Errorf("Value = %v, want IntLit(7)", dump.Value)
	}
}
