package ast

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/pacer/dckparse/internal/deck/lexer"
)

var (
	ErrInvalidVariableName = errors.New("variable names must match the pattern " + lexer.IdentifierPattern)
	ErrInvalidFunctionName = errors.New("function names must match the pattern " + lexer.IdentifierPattern)
)

var identifierRegex = regexp.MustCompile(`^(?:` + lexer.IdentifierPattern + `)$`)

// promote resolves an operand to an expression. A nil operand is a
// programming error.
func promote(x Operand) Expr {
	if x == nil {
		panic("ast: nil operand")
	}

	return x.promote()
}

func NewLiteral(n Number) Literal {
	return Literal{Value: n}
}

// NewVariable validates name against the identifier pattern.
func NewVariable(name string) (Variable, error) {
	if !identifierRegex.MatchString(name) {
		return Variable{}, fmt.Errorf("%w: %q", ErrInvalidVariableName, name)
	}

	return Variable{name: name}, nil
}

// MustVariable is like NewVariable but panics on an invalid name.
func MustVariable(name string) Variable {
	v, err := NewVariable(name)
	if err != nil {
		panic(err)
	}

	return v
}

// NewVariables creates one variable per whitespace separated name.
func NewVariables(names string) ([]Variable, error) {
	fields := strings.Fields(names)
	variables := make([]Variable, 0, len(fields))

	for _, name := range fields {
		v, err := NewVariable(name)
		if err != nil {
			return nil, err
		}

		variables = append(variables, v)
	}

	return variables, nil
}

func NewUnitOutput(unit, output uint) UnitOutput {
	return UnitOutput{Unit: unit, Output: output}
}

// Call builds a call to the function name. It panics when name is not an
// identifier; use NewFunction to validate names coming from callers.
func Call(name string, args ...Operand) FunctionCall {
	if !identifierRegex.MatchString(name) {
		panic(fmt.Errorf("%w: %q", ErrInvalidFunctionName, name))
	}

	exprs := make([]Expr, 0, len(args))
	for _, arg := range args {
		exprs = append(exprs, promote(arg))
	}

	return FunctionCall{Name: name, Args: exprs}
}

// Function is a named function usable to build calls.
type Function struct {
	Name string
}

// NewFunction validates name against the identifier pattern.
func NewFunction(name string) (Function, error) {
	if !identifierRegex.MatchString(name) {
		return Function{}, fmt.Errorf("%w: %q", ErrInvalidFunctionName, name)
	}

	return Function{Name: name}, nil
}

func (f Function) Call(args ...Operand) FunctionCall {
	return Call(f.Name, args...)
}

var (
	Sin = Function{Name: "SIN"}
	Cos = Function{Name: "COS"}
)

func Neg(x Operand) Negation {
	return Negation{X: promote(x)}
}

func Add(x, y Operand) BinaryOp {
	return binary(OpAdd, x, y)
}

func Sub(x, y Operand) BinaryOp {
	return binary(OpSub, x, y)
}

func Mul(x, y Operand) BinaryOp {
	return binary(OpMul, x, y)
}

func Div(x, y Operand) BinaryOp {
	return binary(OpDiv, x, y)
}

func Pow(x, y Operand) BinaryOp {
	return binary(OpPow, x, y)
}

func binary(op Operator, x, y Operand) BinaryOp {
	return BinaryOp{Op: op, Left: promote(x), Right: promote(y)}
}

func NewEquation(name string, rhs Operand) Equation {
	return Equation{Name: name, RHS: promote(rhs)}
}

// NewEquations copies its arguments; a nil declaredCount means no count was
// given.
func NewEquations(declaredCount *int, equations []Equation, comments []lexer.Comment) Equations {
	var count *int
	if declaredCount != nil {
		value := *declaredCount
		count = &value
	}

	return Equations{
		DeclaredCount: count,
		Equations:     slices.Clone(equations),
		Comments:      slices.Clone(comments),
	}
}
