package lexer

import "strings"

// Comment is a '!' comment skipped by the lexer. Text excludes the '!' and
// surrounding blanks. Inline is set when code precedes the comment on its
// line.
type Comment struct {
	Text     string
	Start    int
	End      int
	Position Position
	Inline   bool
}

func (l *Lexer) recordComment(start, end int) {
	lineStart := strings.LastIndexByte(l.input[:start], '\n') + 1
	before := l.input[lineStart:start]

	comment := Comment{
		Text:     strings.TrimSpace(l.input[start+1 : end]),
		Start:    start,
		End:      end,
		Position: ConvertSingleIndexToTextEditorPosition(l.input, start),
		Inline:   strings.TrimSpace(before) != "",
	}

	l.comments = append(l.comments, comment)
}
