// Package ast declares the syntax tree built by the parser and walked by the
// evaluator.
//
// Nodes are immutable once parsed. The only mutable state is the constant
// analysis memo held in every node's Base, which is written at most once
// and read with atomic operations.
package ast

import (
	"fmt"
	"sync/atomic"
)

// Location identifies the source line a node was parsed from.
type Location struct {
	Filename string
	Line     int
}

func (l Location) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("<unknown>:%d", l.Line)
	}
	return fmt.Sprintf("%s:%d", l.Filename, l.Line)
}

type Node interface {
	Loc() Location
	VisitableNode
}

// memo states
const (
	constUnknown uint32 = iota
	constFalse
	constTrue
)

// Base is embedded in every node.
type Base struct {
	Location Location
	isConst  atomic.Uint32
}

func (b *Base) Loc() Location { return b.Location }

// ConstMemo returns the memoised result of constant analysis. known is
// false if the node has not been analysed yet.
func (b *Base) ConstMemo() (value, known bool) {
	switch b.isConst.Load() {
	case constTrue:
		return true, true
	case constFalse:
		return false, true
	}
	return false, false
}

// SetConstMemo records the result of constant analysis. The first result
// recorded wins.
func (b *Base) SetConstMemo(value bool) {
	v := constFalse
	if value {
		v = constTrue
	}
	b.isConst.CompareAndSwap(constUnknown, v)
}

// LabelSet names the statement targeted by a break or continue. Labels
// that appear consecutively share one LabelSet, named by the first of
// them. Identity, not the name, is what matters.
type LabelSet struct {
	Name string
}

type (
	// Function describes a function's parameters and body. It is shared by
	// every closure created from it.
	Function struct {
		Base
		Name   string
		Params []string
		Body   *FunctionBody
	}

	// FunctionBody holds the source elements of a function or program.
	FunctionBody struct {
		Base
		// Functions are the function declarations, instantiated before
		// the statements run.
		Functions []*FunctionDeclaration
		// Vars are the names declared with var, in order of first
		// declaration.
		Vars       []string
		Statements []Stmt
		// IsProgram is set for the body of a Program.
		IsProgram bool
	}
)
