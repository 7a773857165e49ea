package ast

import "github.com/bagasjs/hotaru/token"

// BinOpType identifies which binary operation a BinOp node performs.
type BinOpType int

const (
	BINOP_NONE BinOpType = iota
	BINOP_ADD
	BINOP_SUB
	BINOP_MUL
	BINOP_EQ
	BINOP_NE
	BINOP_GT
	BINOP_GE
	BINOP_LT
	BINOP_LE
)

// IntLit is an integer literal expression (e.g. "489").
type IntLit struct {
	Pos   token.Position
	Value int64
}

func (e *IntLit) Position() token.Position { return e.Pos }

// FloatLit is a floating-point literal expression.
type FloatLit struct {
	Pos   token.Position
	Value float64
}

func (e *FloatLit) Position() token.Position { return e.Pos }

// VarRead reads the current value bound to a variable name.
type VarRead struct {
	Pos  token.Position
	Name string
}

func (e *VarRead) Position() token.Position { return e.Pos }

// BinOp applies a binary operator to a left and right operand.
//
// Grammar note: hotaru's expression grammar is flat and right-associative
// (every binop shares one precedence level and binds to everything to its
// right), so Left is always a single primary term while Right may itself
// be an arbitrarily deep BinOp chain.
type BinOp struct {
	Pos   token.Position
	Type  BinOpType
	Left  Expr
	Right Expr
}

func (e *BinOp) Position() token.Position { return e.Pos }
