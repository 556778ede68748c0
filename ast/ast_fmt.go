package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String forms are fully parenthesized deck source. For trees built by the
// parser, parsing the string back yields an equal tree; negative literals
// built by hand come back as negations.

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	}

	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

func (l Literal) String() string {
	return l.Value.String()
}

func (v Variable) String() string {
	return v.name
}

func (u UnitOutput) String() string {
	return fmt.Sprintf("[%d,%d]", u.Unit, u.Output)
}

func (f FunctionCall) String() string {
	args := make([]string, 0, len(f.Args))
	for _, arg := range f.Args {
		args = append(args, arg.String())
	}

	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n Negation) String() string {
	return "(-" + n.X.String() + ")"
}

func (b BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

func (e Equation) String() string {
	return e.Name + " = " + e.RHS.String()
}

func (e Equations) String() string {
	var sb strings.Builder

	count := len(e.Equations)
	if e.DeclaredCount != nil {
		count = *e.DeclaredCount
	}

	fmt.Fprintf(&sb, "EQUATIONS %d", count)
	for _, equation := range e.Equations {
		sb.WriteString("\n")
		sb.WriteString(equation.String())
	}

	return sb.String()
}
