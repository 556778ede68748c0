package lexer

// Next returns the next significant token. Whitespace and comments are
// skipped first. When no kind matches, a *LexerError positioned at the
// offending byte is returned and the lexer does not move.
func (l *Lexer) Next() (Token, error) {
	l.skipIgnored()

	rest := l.input[l.pos:]

	for _, kind := range l.kinds {
		loc := kind.Regex.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			continue
		}

		token := Token{
			Kind:   kind,
			Value:  rest[:loc[1]],
			Source: l.input,
			Start:  l.pos,
			End:    l.pos + loc[1],
		}
		l.pos = token.End

		return token, nil
	}

	err := &LexerError{
		Err:    ErrUnrecognizedToken,
		Input:  l.input,
		Offset: l.pos,
	}

	return Token{}, err
}

// skipIgnored advances past any run of whitespace and comments.
func (l *Lexer) skipIgnored() {
	for l.pos < len(l.input) {
		rest := l.input[l.pos:]

		if loc := compiledPatterns.whitespace.FindStringIndex(rest); loc != nil {
			l.pos += loc[1]
			continue
		}

		if loc := compiledPatterns.comment.FindStringIndex(rest); loc != nil {
			l.recordComment(l.pos, l.pos+loc[1])
			l.pos += loc[1]
			continue
		}

		return
	}
}

// AtEnd reports whether only whitespace and comments remain.
func (l *Lexer) AtEnd() bool {
	l.skipIgnored()

	return l.pos == len(l.input)
}
