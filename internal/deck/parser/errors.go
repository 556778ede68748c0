package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pacer/dckparse/internal/deck/lexer"
)

// Messages below are shown to deck authors as is, hence the capitalization.
//
//nolint:staticcheck
var (
	ErrNegativeUnitNumber = errors.New("Unit numbers must be non-negative.")
	ErrNumberOutOfRange   = errors.New("Number out of range")
	ErrMaxDepth           = errors.New("Expression nesting exceeds the maximum depth")
)

type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	LexicalError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case LexicalError:
		return "lexical error"
	}

	return "unknown error"
}

// ParseError is the failure outcome of every parse entry point. Offset is
// the byte offset of the offending token in Input. Token is nil for lexical
// errors.
type ParseError struct {
	Kind   ErrorKind
	Err    error
	Input  string
	Offset int
	Token  *lexer.Token
}

var _ lexer.Error = (*ParseError)(nil)

func (p *ParseError) Error() string {
	return p.Err.Error()
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func (p *ParseError) GetError() string {
	return p.Err.Error()
}

func (p *ParseError) GetOffset() int {
	return p.Offset
}

// Message is the human readable error text.
func (p *ParseError) Message() string {
	return p.Err.Error()
}

// Remaining is the input starting at the offending token.
func (p *ParseError) Remaining() string {
	return p.Input[p.Offset:]
}

func (p *ParseError) Position() lexer.Position {
	return lexer.ConvertSingleIndexToTextEditorPosition(p.Input, p.Offset)
}

// Pretty renders the message followed by the offending line and a caret
// under the error offset.
func (p *ParseError) Pretty() string {
	pos := p.Position()
	line, lineStart := lexer.LineAt(p.Input, p.Offset)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d: %s\n", pos.Line+1, pos.Character+1, p.Message())
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", p.Offset-lineStart))
	sb.WriteString("^")

	return sb.String()
}

func (p *ParseError) String() string {
	to := `""`
	if p.Token != nil {
		to = p.Token.String()
	}

	return fmt.Sprintf(
		`{"Kind": %q, "Err": %q, "Offset": %d, "Token": %s}`,
		p.Kind,
		p.Err.Error(),
		p.Offset,
		to,
	)
}

func fromLexerError(err *lexer.LexerError) *ParseError {
	return &ParseError{
		Kind:   LexicalError,
		Err:    err.Err,
		Input:  err.Input,
		Offset: err.Offset,
	}
}

// bailout unwinds the recursive descent back to run.
type bailout struct {
	err *ParseError
}
