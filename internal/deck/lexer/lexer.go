package lexer

import (
	"cmp"
	"errors"
	"log"
	"slices"
)

// ----------------------
// Lexer Types definition
// ----------------------

// Position is a 0-based line/character location inside an input.
// Characters are counted in bytes.
type Position struct {
	Line      int
	Character int
}

// Token is a single lexeme. Start is inclusive, End exclusive, both byte
// offsets into Source.
type Token struct {
	Kind   *Kind
	Value  string
	Source string
	Start  int
	End    int
}

func (t Token) Position() Position {
	return ConvertSingleIndexToTextEditorPosition(t.Source, t.Start)
}

//nolint:staticcheck // message is reported to deck authors verbatim
var ErrUnrecognizedToken = errors.New("Not a recognized token.")

type LexerError struct {
	Err    error
	Input  string
	Offset int
}

func (l LexerError) Error() string {
	return l.Err.Error()
}

func (l LexerError) GetError() string {
	return l.Err.Error()
}

func (l LexerError) GetOffset() int {
	return l.Offset
}

func (l LexerError) Unwrap() error {
	return l.Err
}

// Error is implemented by every positioned error of the deck packages.
type Error interface {
	GetError() string
	GetOffset() int
	String() string
}

var _ Error = LexerError{}

// Lexer produces tokens on demand from a fixed table of kinds.
// Kinds are tried by descending priority, declaration order breaking ties;
// End is always tried last.
type Lexer struct {
	input    string
	kinds    []*Kind
	pos      int
	comments []Comment
}

// New creates a lexer over input positioned at offset.
func New(input string, offset int, kinds ...*Kind) *Lexer {
	if len(kinds) == 0 {
		log.Printf("lexer created without token kinds\n input = %q\n", input)
		panic("lexer created without token kinds")
	}

	table := make([]*Kind, 0, len(kinds)+1)
	for _, kind := range kinds {
		if kind == End {
			continue
		}

		table = append(table, kind)
	}

	slices.SortStableFunc(table, func(a, b *Kind) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	table = append(table, End)

	l := &Lexer{
		input: input,
		kinds: table,
	}
	l.Seek(offset)

	return l
}

func (l *Lexer) Input() string {
	return l.input
}

// Pos is the offset of the first byte not yet scanned.
func (l *Lexer) Pos() int {
	return l.pos
}

// Seek moves the lexer forward to offset. Requests to move backward are
// ignored; offsets past the input are clamped to its end.
func (l *Lexer) Seek(offset int) {
	offset = min(offset, len(l.input))
	if offset <= l.pos {
		return
	}

	l.pos = offset
}

// Comments returns the comments skipped so far, in input order.
func (l *Lexer) Comments() []Comment {
	return slices.Clone(l.comments)
}

// Adopt records comments found by another lexer over the same input.
// Only comments lying between the current position and limit are kept, so
// comments already seen (or still to be scanned) here are not duplicated.
func (l *Lexer) Adopt(comments []Comment, limit int) {
	for _, comment := range comments {
		if comment.Start < l.pos || comment.End > limit {
			continue
		}

		l.comments = append(l.comments, comment)
	}
}

// Tokenize scans the whole input, End token included.
func Tokenize(input string, kinds ...*Kind) ([]Token, error) {
	l := New(input, 0, kinds...)

	var tokens []Token
	for {
		token, err := l.Next()
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, token)
		if token.Kind == End {
			return tokens, nil
		}
	}
}
