package hstate

import (
	"github.com/bagasjs/hotaru/ast"
	"github.com/bagasjs/hotaru/hvm"
)

// Executor implements hotaru's exec path: it walks the AST and drives the
// live VM directly, rather than emitting a module for later execution. This
// is what the REPL uses so that a variable declared at one prompt is still
// visible at the next.
type Executor struct {
	*State
}

// NewExecutor returns an Executor driving s.VM directly.
func NewExecutor(s *State) *Executor {
	return &Executor{State: s}
}

func (e *Executor) exec(inst hvm.Inst) error {
	if trap := e.VM.Exec(inst); trap != hvm.TrapNone {
		return &TrapError{Trap: trap}
	}
	return nil
}

// ExecExpr evaluates expr against the live VM, leaving its value on top of
// the real stack.
func (e *Executor) ExecExpr(expr ast.Expr) error {
	switch v := expr.(type) {
	case *ast.IntLit:
		return e.exec(hvm.Inst{Type: hvm.OpPush, Op: hvm.WordI64(v.Value)})

	case *ast.VarRead:
		bind, ok := ScopeFind(e.Current, v.Name)
		if !ok {
			return errInvalidVariable(v.Name, v.Pos)
		}
		return e.exec(hvm.Inst{Type: hvm.OpCopyAbs, Op: hvm.WordU64(uint64(bind.Pos))})

	case *ast.BinOp:
		if err := e.ExecExpr(v.Left); err != nil {
			return err
		}
		if err := e.ExecExpr(v.Right); err != nil {
			return err
		}
		return e.exec(hvm.Inst{Type: binopOpcodes[v.Type]})

	default:
		panic("hstate: unreachable expr kind in ExecExpr")
	}
}

// ExecBlock runs each statement of b under a fresh scope frame, using the
// real VM's BEGIN_SCOPE/END_SCOPE rather than a compiled one.
func (e *Executor) ExecBlock(b ast.Block) error {
	if err := e.exec(hvm.Inst{Type: hvm.OpBeginScope}); err != nil {
		return err
	}

	prev := e.Current
	e.Current = &Scope{Prev: prev}
	for _, stmt := range b.Items {
		if err := e.ExecStmt(stmt); err != nil {
			e.Current = prev
			return err
		}
	}
	e.Current = prev

	return e.exec(hvm.Inst{Type: hvm.OpEndScope})
}

// ExecStmt executes one statement immediately against the live VM.
//
// VarInit records the binding's position from the live VM (rather than a
// compile-time VSP shadow): the absolute index SS+SP that the initializer's
// value is about to occupy. At global scope (SS==0) that is simply VM.SP.
func (e *Executor) ExecStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarInit:
		last := e.VM.SS + e.VM.SP
		if err := e.ExecExpr(s.Value); err != nil {
			return err
		}
		e.ScopeAppend(e.Current, s.Name, last)

	case *ast.VarAssign:
		bind, ok := ScopeFind(e.Current, s.Name)
		if !ok {
			return errInvalidVariable(s.Name, s.Pos)
		}
		if err := e.ExecExpr(s.Value); err != nil {
			return err
		}
		if err := e.exec(hvm.Inst{Type: hvm.OpSwapAbs, Op: hvm.WordU64(uint64(bind.Pos))}); err != nil {
			return err
		}
		return e.exec(hvm.Inst{Type: hvm.OpPop})

	case *ast.If:
		return e.execViaThrowawayModule(s)

	case *ast.While:
		return e.execViaThrowawayModule(s)

	case *ast.Dump:
		if err := e.ExecExpr(s.Value); err != nil {
			return err
		}
		return e.exec(hvm.Inst{Type: hvm.OpDump})

	default:
		panic("hstate: unreachable stmt kind in ExecStmt")
	}
	return nil
}

// execViaThrowawayModule runs an If or While statement by compiling it into
// a fresh, throwaway module (reusing the Compiler's If/While lowering
// exactly) terminated by HALT, then running that module from pc=0 against
// the live VM before restoring the real pc. There is no separate "exec an
// if" interpreter, only the compiler plus a fresh Run.
func (e *Executor) execViaThrowawayModule(stmt ast.Stmt) error {
	savedModule := e.Module
	savedVSP := e.VSP
	e.Module = hvm.Module{}
	e.VSP = e.VM.SP

	c := &Compiler{State: e.State}
	if err := c.CompileStmt(stmt); err != nil {
		e.Module = savedModule
		e.VSP = savedVSP
		return err
	}
	e.Module.Append(hvm.Inst{Type: hvm.OpHalt})

	savedPC := e.VM.PC
	e.VM.PC = 0
	trap := e.VM.Run(&e.Module)
	e.VM.Halt = false
	e.VM.PC = savedPC

	e.Module = savedModule
	e.VSP = savedVSP

	if trap != hvm.TrapNone {
		return &TrapError{Trap: trap}
	}
	return nil
}
