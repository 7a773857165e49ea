// Package ast defines hotaru's abstract syntax tree. Expression and
// statement nodes are tagged unions dispatched by their own concrete Go
// type: hstate.Compiler and hstate.Executor switch on a node's dynamic
// type directly rather than going through a visitor.
package ast

import "github.com/bagasjs/hotaru/token"

// Expr is any node that evaluates to a value.
type Expr interface {
	Position() token.Position
}

// Stmt is any node executed for effect; it does not itself produce a value.
type Stmt interface {
	Position() token.Position
}

// Block is an ordered sequence of statements sharing one lexical scope.
type Block struct {
	Pos   token.Position
	Items []Stmt
}
