// Package ast holds the immutable expression and equation trees produced by
// the deck parser, together with the builders used to assemble them.
package ast

import (
	"fmt"

	"github.com/pacer/dckparse/internal/deck/lexer"
)

// Operand is anything accepted where an expression is expected: either an
// Expr or a raw Number, which is promoted to a Literal on construction.
type Operand interface {
	promote() Expr
}

// Expr is a node of an expression tree.
type Expr interface {
	Operand
	fmt.Stringer
	exprNode()
}

// Operator identifies the arithmetic operation of a BinaryOp.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

type Literal struct {
	Value Number
}

// Variable is a named value. Its name always matches lexer.IdentifierPattern;
// use NewVariable to create one.
type Variable struct {
	name string
}

func (v Variable) Name() string {
	return v.name
}

// UnitOutput references output Output of simulation unit Unit.
type UnitOutput struct {
	Unit   uint
	Output uint
}

type FunctionCall struct {
	Name string
	Args []Expr
}

type Negation struct {
	X Expr
}

type BinaryOp struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (Literal) exprNode()      {}
func (Variable) exprNode()     {}
func (UnitOutput) exprNode()   {}
func (FunctionCall) exprNode() {}
func (Negation) exprNode()     {}
func (BinaryOp) exprNode()     {}

func (l Literal) promote() Expr      { return l }
func (v Variable) promote() Expr     { return v }
func (u UnitOutput) promote() Expr   { return u }
func (f FunctionCall) promote() Expr { return f }
func (n Negation) promote() Expr     { return n }
func (b BinaryOp) promote() Expr     { return b }

// Equation assigns the value of RHS to the variable Name.
type Equation struct {
	Name string
	RHS  Expr
}

// Equations is an EQUATIONS block. DeclaredCount is the count written after
// the keyword; it is informative only and may differ from len(Equations).
type Equations struct {
	DeclaredCount *int
	Equations     []Equation
	Comments      []lexer.Comment
}
