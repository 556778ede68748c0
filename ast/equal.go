package ast

// Equal reports whether a and b have the same shape and the same leaf
// values. Integer and float literals never compare equal.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Value == y.Value

	case Variable:
		y, ok := b.(Variable)
		return ok && x.name == y.name

	case UnitOutput:
		y, ok := b.(UnitOutput)
		return ok && x == y

	case FunctionCall:
		y, ok := b.(FunctionCall)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}

		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}

		return true

	case Negation:
		y, ok := b.(Negation)
		return ok && Equal(x.X, y.X)

	case BinaryOp:
		y, ok := b.(BinaryOp)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)

	case nil:
		return b == nil
	}

	return false
}

// EqualEquations compares two blocks equation by equation. Comments are not
// part of the comparison.
func EqualEquations(a, b Equations) bool {
	if (a.DeclaredCount == nil) != (b.DeclaredCount == nil) {
		return false
	}

	if a.DeclaredCount != nil && *a.DeclaredCount != *b.DeclaredCount {
		return false
	}

	if len(a.Equations) != len(b.Equations) {
		return false
	}

	for i := range a.Equations {
		if a.Equations[i].Name != b.Equations[i].Name {
			return false
		}

		if !Equal(a.Equations[i].RHS, b.Equations[i].RHS) {
			return false
		}
	}

	return true
}
