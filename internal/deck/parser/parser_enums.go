package parser

import (
	"log/slog"

	"github.com/pacer/dckparse/internal/deck/lexer"
)

// Parser configuration constants
const (
	// defaultMaxRecursionDepth limits expression nesting to prevent stack overflow.
	defaultMaxRecursionDepth = 256
)

type config struct {
	maxDepth int
	logger   *slog.Logger
}

// Option configures a parse call.
type Option func(*config)

// WithMaxDepth sets how deeply expressions may nest (parentheses, unary
// minus and function arguments each add a level). Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithLogger sets the logger receiving debug records. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		maxDepth: defaultMaxRecursionDepth,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// -----------
// Token kinds
// -----------

var (
	Float              = lexer.NewKind("FLOAT", "floating point number", `(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`, 2)
	Power              = lexer.NewKind("POWER", `power ("**")`, `\*\*`, 1)
	LeftSquareBracket  = lexer.NewKind("LEFT_SQUARE_BRACKET", `opening square bracket ("[")`, `\[`, 0)
	RightSquareBracket = lexer.NewKind("RIGHT_SQUARE_BRACKET", `closing square bracket ("]")`, `\]`, 0)
	Comma              = lexer.NewKind("COMMA", `comma (",")`, `,`, 0)
	Plus               = lexer.NewKind("PLUS", `plus ("+")`, `\+`, 0)
	Minus              = lexer.NewKind("MINUS", `minus ("-")`, `-`, 0)
	Times              = lexer.NewKind("TIMES", `times ("*")`, `\*`, 0)
	Divide             = lexer.NewKind("DIVIDE", `divide ("/")`, `/`, 0)
	LeftParen          = lexer.NewKind("LEFT_PAREN", `opening parenthesis ("(")`, `\(`, 0)
	RightParen         = lexer.NewKind("RIGHT_PAREN", `closing parenthesis (")")`, `\)`, 0)

	// EquationsKeyword is case-insensitive and must be a whole word, so
	// "EQUATIONSX" stays an identifier.
	EquationsKeyword = lexer.NewKind("EQUATIONS", `keyword "EQUATIONS"`, `(?i:EQUATIONS)\b`, 1)
	Equals           = lexer.NewKind("EQUALS", `equals sign ("=")`, `=`, 0)
)

var expressionKinds = []*lexer.Kind{
	lexer.Integer,
	Float,
	LeftSquareBracket,
	RightSquareBracket,
	Comma,
	lexer.Identifier,
	Plus,
	Minus,
	Power,
	Times,
	Divide,
	LeftParen,
	RightParen,
}

var equationsKinds = []*lexer.Kind{
	EquationsKeyword,
	lexer.Integer,
	lexer.Identifier,
	Equals,
}

// ExpressionKinds returns the token table of the expression grammar.
func ExpressionKinds() []*lexer.Kind {
	return append([]*lexer.Kind(nil), expressionKinds...)
}

// EquationsKinds returns the token table of the equations block header and
// equation left-hand sides.
func EquationsKinds() []*lexer.Kind {
	return append([]*lexer.Kind(nil), equationsKinds...)
}
