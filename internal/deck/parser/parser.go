// Package parser implements the recursive-descent parsers of deck
// expressions and EQUATIONS blocks.
//
// Every grammar embeds core, which owns a lexer and the lookahead token.
// Errors deep inside a grammar unwind with a bailout panic that run turns
// back into a *ParseError; no panic escapes the package.
package parser

import (
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/pacer/dckparse/internal/deck/lexer"
)

// Result is the success outcome of a parse. Next is the offset of the first
// byte not consumed; callers wanting the whole input consumed must check it.
//
// Comments holds every comment scanned while looking for the end of the
// value, so it may include comments lying after Next. Callers resuming at
// Next see those comments again.
type Result[T any] struct {
	Value    T
	Next     int
	Comments []lexer.Comment
}

type core struct {
	lexer    *lexer.Lexer
	current  *lexer.Token // lookahead, fetched lazily
	consumed int          // end of the last consumed token
	depth    int
	config   config
}

func newCore(input string, offset int, cfg config, kinds ...*lexer.Kind) core {
	l := lexer.New(input, offset, kinds...)

	return core{
		lexer:    l,
		consumed: l.Pos(),
		config:   cfg,
	}
}

func (c *core) state() *core {
	return c
}

// grammar is a parser whose root production yields a T.
type grammar[T any] interface {
	state() *core
	root() T
}

// run is the only place where bailouts become errors.
func run[T any](g grammar[T]) (result Result[T], err error) {
	c := g.state()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}

		result = Result[T]{}
		err = b.err
	}()

	value := g.root()

	result = Result[T]{
		Value:    value,
		Next:     c.consumed,
		Comments: c.lexer.Comments(),
	}

	return result, nil
}

// delegate parses a nested grammar with a fresh parser over the same input,
// starting at the first byte c has not consumed. On success c resumes right
// after what the sub-parser consumed; on failure the sub-parser's error is
// raised unchanged.
func delegate[S any](c *core, newSub func(input string, offset int, cfg config) grammar[S]) S {
	start := c.consumed
	sub := newSub(c.lexer.Input(), start, c.config)

	result, err := run(sub)
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			log.Printf("sub-parser returned a foreign error\n err = %v\n", err)
			panic("sub-parser returned a foreign error: " + err.Error())
		}

		c.bail(parseErr)
	}

	c.lexer.Adopt(result.Comments, result.Next)
	c.lexer.Seek(result.Next)
	c.current = nil
	c.consumed = result.Next

	c.config.logger.Debug("delegated parse done",
		slog.Int("start", start),
		slog.Int("next", result.Next),
	)

	return result.Value
}

// peek returns the lookahead token, scanning it on first use.
func (c *core) peek() *lexer.Token {
	if c.current != nil {
		return c.current
	}

	token, err := c.lexer.Next()
	if err != nil {
		var lexErr *lexer.LexerError
		if !errors.As(err, &lexErr) {
			log.Printf("lexer returned a foreign error\n err = %v\n", err)
			panic("lexer returned a foreign error: " + err.Error())
		}

		c.bail(fromLexerError(lexErr))
	}

	c.current = &token

	return c.current
}

// accept consumes the lookahead when it is of the given kind and returns
// its text. Otherwise nothing is consumed.
func (c *core) accept(kind *lexer.Kind) (string, bool) {
	token := c.peek()
	if token.Kind != kind {
		return "", false
	}

	c.consumed = token.End
	c.current = nil

	return token.Value, true
}

// expect is accept, failing when the lookahead is of another kind.
func (c *core) expect(kind *lexer.Kind) string {
	if value, ok := c.accept(kind); ok {
		return value
	}

	actual := c.peek()
	c.failAt(actual, fmt.Errorf("Expected %s but found %s.", kind.Description, actual.Kind.Description))

	return ""
}

// fail raises err at the lookahead token.
func (c *core) fail(err error) {
	c.failAt(c.peek(), err)
}

func (c *core) failAt(token *lexer.Token, err error) {
	c.bail(&ParseError{
		Kind:   SyntaxError,
		Err:    err,
		Input:  c.lexer.Input(),
		Offset: token.Start,
		Token:  token,
	})
}

func (c *core) bail(err *ParseError) {
	panic(bailout{err: err})
}

func (c *core) incRecursionDepth() {
	c.depth++

	if c.depth > c.config.maxDepth {
		c.fail(fmt.Errorf("%w of %d.", ErrMaxDepth, c.config.maxDepth))
	}
}

func (c *core) decRecursionDepth() {
	c.depth--
}
