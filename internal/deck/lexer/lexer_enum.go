package lexer

import (
	"math"
	"regexp"
)

// ----------
// Lexer Kind
// ----------

// IdentifierPattern matches variable and function names.
const IdentifierPattern = `[A-Za-z_][A-Za-z0-9_]*`

// Kinds shared by every grammar.
var (
	// End matches the empty string at the end of the input only.
	End = &Kind{
		Name:        "END",
		Description: "end of input",
		Regex:       regexp.MustCompile(`^$`),
		Priority:    math.MinInt,
	}

	Identifier = NewKind("IDENTIFIER", "identifier", IdentifierPattern, 0)

	// Integer is never signed; a leading '-' is always an operator.
	Integer = NewKind("INTEGER", "integer", `[0-9]+`, 1)
)
