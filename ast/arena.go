package ast

import (
	"github.com/bagasjs/hotaru/arena"
	"github.com/bagasjs/hotaru/token"
)

// Arena owns the per-node-type slab pools that every Expr/Stmt node in a
// parse is allocated from: nodes are valid for the arena's lifetime and are
// never freed individually, only released all at once with the Arena
// itself.
type Arena struct {
	intLits    arena.Pool[IntLit]
	floatLits  arena.Pool[FloatLit]
	varReads   arena.Pool[VarRead]
	binOps     arena.Pool[BinOp]
	varInits   arena.Pool[VarInit]
	varAssigns arena.Pool[VarAssign]
	whiles     arena.Pool[While]
	ifs        arena.Pool[If]
	dumps      arena.Pool[Dump]
}

// NewIntLit allocates an IntLit from a.
func (a *Arena) NewIntLit(pos token.Position, value int64) *IntLit {
	n := a.intLits.New()
	n.Pos = pos
	n.Value = value
	return n
}

// NewFloatLit allocates a FloatLit from a.
func (a *Arena) NewFloatLit(pos token.Position, value float64) *FloatLit {
	n := a.floatLits.New()
	n.Pos = pos
	n.Value = value
	return n
}

// NewVarRead allocates a VarRead from a.
func (a *Arena) NewVarRead(pos token.Position, name string) *VarRead {
	n := a.varReads.New()
	n.Pos = pos
	n.Name = name
	return n
}

// NewBinOp allocates a BinOp from a.
func (a *Arena) NewBinOp(pos token.Position, typ BinOpType, left, right Expr) *BinOp {
	n := a.binOps.New()
	n.Pos = pos
	n.Type = typ
	n.Left = left
	n.Right = right
	return n
}

// NewVarInit allocates a VarInit from a.
func (a *Arena) NewVarInit(pos token.Position, name string, value Expr) *VarInit {
	n := a.varInits.New()
	n.Pos = pos
	n.Name = name
	n.Value = value
	return n
}

// NewVarAssign allocates a VarAssign from a.
func (a *Arena) NewVarAssign(pos token.Position, name string, value Expr) *VarAssign {
	n := a.varAssigns.New()
	n.Pos = pos
	n.Name = name
	n.Value = value
	return n
}

// NewWhile allocates a While from a.
func (a *Arena) NewWhile(pos token.Position, cond Expr, body Block) *While {
	n := a.whiles.New()
	n.Pos = pos
	n.Condition = cond
	n.Body = body
	return n
}

// NewIf allocates an If from a. Elifs and Else are filled in by the caller
// after allocation, since an If's elif chain is discovered incrementally
// while parsing.
func (a *Arena) NewIf(pos token.Position, cond Expr, body Block) *If {
	n := a.ifs.New()
	n.Pos = pos
	n.Condition = cond
	n.Body = body
	return n
}

// NewDump allocates a Dump from a.
func (a *Arena) NewDump(pos token.Position, value Expr) *Dump {
	n := a.dumps.New()
	n.Pos = pos
	n.Value = value
	return n
}
