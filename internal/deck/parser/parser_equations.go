package parser

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pacer/dckparse/ast"
	"github.com/pacer/dckparse/internal/deck/lexer"
)

// ParseEquations parses an EQUATIONS block starting at offset.
//
// After the first equation, equations are read until one fails to parse;
// that failure only marks the end of the block and is not reported.
// Result.Next is the end of the last equation read.
func ParseEquations(input string, offset int, opts ...Option) (Result[ast.Equations], error) {
	return run(newEquationsParser(input, offset, newConfig(opts)))
}

type equationsParser struct {
	core
}

func newEquationsParser(input string, offset int, cfg config) *equationsParser {
	return &equationsParser{
		core: newCore(input, offset, cfg, equationsKinds...),
	}
}

// equations := 'EQUATIONS' INTEGER equation+
func (p *equationsParser) root() ast.Equations {
	p.expect(EquationsKeyword)

	countToken := p.peek()
	value := p.expect(lexer.Integer)

	count, err := strconv.Atoi(value)
	if err != nil {
		p.failAt(countToken, fmt.Errorf("%w: %s", ErrNumberOutOfRange, value))
	}

	equations := []ast.Equation{p.equation()}

	for {
		equation, ok := p.tryEquation()
		if !ok {
			break
		}

		equations = append(equations, equation)
	}

	return ast.NewEquations(&count, equations, p.lexer.Comments())
}

// equation := IDENTIFIER '=' expression
func (p *equationsParser) equation() ast.Equation {
	name := p.expect(lexer.Identifier)
	p.expect(Equals)

	rhs := delegate(&p.core, newExpressionGrammar)

	return ast.NewEquation(name, rhs)
}

// tryEquation parses one more equation. A failure ends the block: the cursor
// goes back to the end of the previous equation and the error is dropped.
func (p *equationsParser) tryEquation() (equation ast.Equation, ok bool) {
	mark := p.consumed

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		b, isBailout := r.(bailout)
		if !isBailout {
			panic(r)
		}

		p.consumed = mark
		p.config.logger.Debug("end of equations block",
			slog.Int("offset", mark),
			slog.String("discarded_error", b.err.Message()),
			slog.Int("discarded_error_offset", b.err.Offset),
		)

		equation, ok = ast.Equation{}, false
	}()

	return p.equation(), true
}
