package hstate

import (
	"fmt"

	"github.com/bagasjs/hotaru/hvm"
	"github.com/bagasjs/hotaru/token"
)

// SemanticError is the one semantic error class hotaru defines: an
// unresolved variable name, raised at compile or exec time.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string { return e.Message }

func errInvalidVariable(name string, pos token.Position) error {
	return &SemanticError{Message: fmt.Sprintf("invalid variable %q at %d:%d", name, pos.Row, pos.Col)}
}

// TrapError wraps a VM trap surfaced while a statement or expression was
// being exec'd or while a throwaway if/while module was being run.
type TrapError struct {
	Trap hvm.Trap
}

func (e *TrapError) Error() string { return fmt.Sprintf("vm trap: %s", e.Trap) }
