// Package dckparse parses the expression language of simulation deck files:
// single expressions and EQUATIONS blocks.
//
// Parsing never panics. Success yields the tree and the offset of the first
// byte left unconsumed; failure yields a *Error carrying the message, the
// input and the offset of the offending token.
package dckparse

import (
	"errors"

	"github.com/pacer/dckparse/ast"
	"github.com/pacer/dckparse/internal/deck/lexer"
	"github.com/pacer/dckparse/internal/deck/parser"
)

type (
	Expr      = ast.Expr
	Equation  = ast.Equation
	Equations = ast.Equations
	Comment   = lexer.Comment
	Position  = lexer.Position
	Error     = parser.ParseError
	Option    = parser.Option
)

// Result is the success outcome of a parse.
type Result[T any] = parser.Result[T]

type ErrorKind = parser.ErrorKind

const (
	SyntaxError  = parser.SyntaxError
	LexicalError = parser.LexicalError
)

// Sentinels usable with errors.Is on any returned error.
var (
	ErrTrailingInput       = errors.New("unexpected input after expression")
	ErrUnrecognizedToken   = lexer.ErrUnrecognizedToken
	ErrNegativeUnitNumber  = parser.ErrNegativeUnitNumber
	ErrNumberOutOfRange    = parser.ErrNumberOutOfRange
	ErrMaxDepth            = parser.ErrMaxDepth
	ErrInvalidVariableName = ast.ErrInvalidVariableName
	ErrInvalidFunctionName = ast.ErrInvalidFunctionName
)

var (
	WithMaxDepth = parser.WithMaxDepth
	WithLogger   = parser.WithLogger
)

func ParseExpression(input string, opts ...Option) (Result[Expr], error) {
	return parser.ParseExpression(input, 0, opts...)
}

// ParseExpressionAt parses an expression starting at byte offset.
func ParseExpressionAt(input string, offset int, opts ...Option) (Result[Expr], error) {
	return parser.ParseExpression(input, offset, opts...)
}

func ParseEquations(input string, opts ...Option) (Result[Equations], error) {
	return parser.ParseEquations(input, 0, opts...)
}

// ParseEquationsAt parses an EQUATIONS block starting at byte offset.
func ParseEquationsAt(input string, offset int, opts ...Option) (Result[Equations], error) {
	return parser.ParseEquations(input, offset, opts...)
}

// CreateEquation builds an equation from a variable name and the source
// text of its right-hand side. Unlike ParseExpression, the whole of rhs must
// be consumed: anything but blanks and comments after the expression fails
// with a *Error wrapping ErrTrailingInput, positioned at the leftover text.
func CreateEquation(name string, rhs string, opts ...Option) (Equation, error) {
	variable, err := ast.NewVariable(name)
	if err != nil {
		return Equation{}, err
	}

	result, err := parser.ParseExpression(rhs, 0, opts...)
	if err != nil {
		return Equation{}, err
	}

	rest := lexer.New(rhs, result.Next, lexer.Identifier)
	if !rest.AtEnd() {
		return Equation{}, &Error{
			Kind:   SyntaxError,
			Err:    ErrTrailingInput,
			Input:  rhs,
			Offset: rest.Pos(),
		}
	}

	return ast.NewEquation(variable.Name(), result.Value), nil
}
