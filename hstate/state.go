// Package hstate implements hotaru's compiler/executor: the component that
// walks an AST and drives the VM, either by emitting a persistent bytecode
// module (the compile path) or by interpreting statements immediately
// against a live VM (the exec path used by the REPL).
package hstate

import (
	"github.com/bagasjs/hotaru/arena"
	"github.com/bagasjs/hotaru/hvm"
)

// VarBinding records where a variable's Word lives on the VM stack.
type VarBinding struct {
	Name string
	Pos  uint32
}

// Scope is one frame of the lexical scope chain. Bindings grows as `var`
// statements are seen; Prev points toward the enclosing scope, with the
// global scope's Prev being nil.
type Scope struct {
	Prev     *Scope
	Bindings []*VarBinding
}

// State owns everything a program needs to run: the VM, the global scope,
// and the module currently being emitted, plus the compile-time vsp shadow
// of the VM's runtime sp.
type State struct {
	VM hvm.VM

	bindPool arena.Pool[VarBinding]

	Global  Scope
	Current *Scope

	Module hvm.Module
	VSP    uint32
	VSS    uint32
}

// NewState returns a freshly initialized State: an empty VM, an empty
// global scope, and an empty module ready to receive instructions.
func NewState() *State {
	s := &State{}
	s.VM.Init()
	s.Current = &s.Global
	return s
}

// ScopeAppend allocates a new binding from the state's arena-backed pool
// and appends it to scope.
func (s *State) ScopeAppend(scope *Scope, name string, pos uint32) *VarBinding {
	b := s.bindPool.New()
	b.Name = name
	b.Pos = pos
	scope.Bindings = append(scope.Bindings, b)
	return b
}

// ScopeFind resolves name starting at scope and walking toward the root,
// returning the nearest enclosing binding. Within a single frame, a later
// declaration shadows an earlier one of the same name: last match wins,
// frame by frame.
func ScopeFind(scope *Scope, name string) (*VarBinding, bool) {
	for cur := scope; cur != nil; cur = cur.Prev {
		var found *VarBinding
		for _, b := range cur.Bindings {
			if b.Name == name {
				found = b
			}
		}
		if found != nil {
			return found, true
		}
	}
	return nil, false
}
