package parser

import (
	"fmt"
	"strconv"

	"github.com/pacer/dckparse/ast"
	"github.com/pacer/dckparse/internal/deck/lexer"
)

// ParseExpression parses one expression starting at offset. Parsing stops at
// the first token that cannot continue the expression; Result.Next tells
// where that is.
func ParseExpression(input string, offset int, opts ...Option) (Result[ast.Expr], error) {
	return run(newExpressionParser(input, offset, newConfig(opts)))
}

type expressionParser struct {
	core
}

func newExpressionParser(input string, offset int, cfg config) *expressionParser {
	return &expressionParser{
		core: newCore(input, offset, cfg, expressionKinds...),
	}
}

func newExpressionGrammar(input string, offset int, cfg config) grammar[ast.Expr] {
	return newExpressionParser(input, offset, cfg)
}

func (p *expressionParser) root() ast.Expr {
	return p.expression()
}

// expression := addend ( ('+' | '-') addend )*
func (p *expressionParser) expression() ast.Expr {
	p.incRecursionDepth()
	defer p.decRecursionDepth()

	addend := p.addend()

	for {
		if _, ok := p.accept(Plus); ok {
			addend = ast.Add(addend, p.addend())
		} else if _, ok := p.accept(Minus); ok {
			addend = ast.Sub(addend, p.addend())
		} else {
			return addend
		}
	}
}

// addend := multiplicand ( ('*' | '/') multiplicand )*
func (p *expressionParser) addend() ast.Expr {
	multiplicand := p.multiplicand()

	for {
		if _, ok := p.accept(Times); ok {
			multiplicand = ast.Mul(multiplicand, p.multiplicand())
		} else if _, ok := p.accept(Divide); ok {
			multiplicand = ast.Div(multiplicand, p.multiplicand())
		} else {
			return multiplicand
		}
	}
}

// multiplicand := powerOperand ( '**' powerOperand )?
//
// The power is applied once: "a**b**c" stops before the second '**'.
func (p *expressionParser) multiplicand() ast.Expr {
	base := p.powerOperand()

	if _, ok := p.accept(Power); !ok {
		return base
	}

	exponent := p.powerOperand()

	return ast.Pow(base, exponent)
}

// powerOperand := INTEGER | FLOAT
//
//	| IDENTIFIER ( '(' argumentList ')' )?
//	| '[' INTEGER ',' INTEGER ']'
//	| '-' expression
//	| '(' expression ')'
func (p *expressionParser) powerOperand() ast.Expr {
	token := p.peek()

	if value, ok := p.accept(lexer.Integer); ok {
		number, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			p.failAt(token, fmt.Errorf("%w: %s", ErrNumberOutOfRange, value))
		}

		return ast.NewLiteral(ast.Int(number))
	}

	if value, ok := p.accept(Float); ok {
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			p.failAt(token, fmt.Errorf("%w: %s", ErrNumberOutOfRange, value))
		}

		return ast.NewLiteral(ast.Float(number))
	}

	if name, ok := p.accept(lexer.Identifier); ok {
		if _, ok := p.accept(LeftParen); !ok {
			variable, err := ast.NewVariable(name)
			if err != nil {
				p.failAt(token, err)
			}

			return variable
		}

		arguments := p.argumentList()
		p.expect(RightParen)

		return ast.Call(name, arguments...)
	}

	if _, ok := p.accept(LeftSquareBracket); ok {
		unit := p.unitNumber()
		p.expect(Comma)
		output := p.unitNumber()
		p.expect(RightSquareBracket)

		return ast.NewUnitOutput(unit, output)
	}

	if _, ok := p.accept(Minus); ok {
		return ast.Neg(p.expression())
	}

	if _, ok := p.accept(LeftParen); ok {
		expression := p.expression()
		p.expect(RightParen)

		return expression
	}

	p.failAt(token, fmt.Errorf(
		"Expected number, variable, function call, opening square bracket or opening parenthesis but found %s",
		token.Kind.Description,
	))

	return nil
}

// argumentList := expression ( ',' expression )*
func (p *expressionParser) argumentList() []ast.Operand {
	arguments := []ast.Operand{p.expression()}

	for {
		if _, ok := p.accept(Comma); !ok {
			return arguments
		}

		arguments = append(arguments, p.expression())
	}
}

// unitNumber parses one number of a [unit,output] reference. Integers never
// carry a sign, so a negative number shows up as a leading minus.
func (p *expressionParser) unitNumber() uint {
	token := p.peek()

	if _, ok := p.accept(Minus); ok {
		p.expect(lexer.Integer)
		p.failAt(token, ErrNegativeUnitNumber)
	}

	value := p.expect(lexer.Integer)

	number, err := strconv.ParseUint(value, 10, strconv.IntSize)
	if err != nil {
		p.failAt(token, fmt.Errorf("%w: %s", ErrNumberOutOfRange, value))
	}

	return uint(number)
}
