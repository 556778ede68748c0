package lexer

import (
	"fmt"
)

func (e LexerError) String() string {
	return fmt.Sprintf(`{ "Err": %q, "Offset": %d }`, e.Err.Error(), e.Offset)
}

func (p Position) String() string {
	return fmt.Sprintf("{ \"Line\": %d, \"Character\": %d }", p.Line, p.Character)
}

func (t Token) String() string {
	return fmt.Sprintf(
		"{ \"Kind\": \"%s\", \"Start\": %d, \"End\": %d, \"Value\": %q }",
		t.Kind,
		t.Start,
		t.End,
		t.Value,
	)
}

func (c Comment) String() string {
	return fmt.Sprintf(
		"{ \"Text\": %q, \"Position\": %s, \"Inline\": %t }",
		c.Text,
		c.Position,
		c.Inline,
	)
}
