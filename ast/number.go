package ast

import (
	"strconv"
	"strings"
)

// Number is a raw integer or floating point value.
// The zero value is the integer 0.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

func Int(v int64) Number {
	return Number{i: v}
}

func Float(v float64) Number {
	return Number{isFloat: true, f: v}
}

func (n Number) IsFloat() bool {
	return n.isFloat
}

// Int64 returns the integer value; floats are truncated.
func (n Number) Int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}

	return n.i
}

func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}

	return float64(n.i)
}

// String renders the number so that it lexes back to the same kind:
// floats always carry a decimal point.
func (n Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.i, 10)
	}

	str := strconv.FormatFloat(n.f, 'g', -1, 64)
	if strings.ContainsAny(str, ".IN") {
		return str
	}

	mantissa, exponent, found := strings.Cut(str, "e")
	if !found {
		return mantissa + ".0"
	}

	return mantissa + ".0e" + exponent
}

func (n Number) promote() Expr {
	return Literal{Value: n}
}
