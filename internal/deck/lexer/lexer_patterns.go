package lexer

import (
	"log"
	"regexp"
)

// Kind describes a category of token: a pattern, the text used for it in
// error messages and the priority used when patterns overlap. Higher
// priorities are tried first.
type Kind struct {
	Name        string
	Description string
	Regex       *regexp.Regexp
	Priority    int
}

func (k *Kind) String() string {
	return k.Name
}

// NewKind compiles pattern anchored at the current position.
// A pattern able to match the empty string would let the lexer stall, so it
// is rejected.
func NewKind(name, description, pattern string, priority int) *Kind {
	regex := regexp.MustCompile(`^(?:` + pattern + `)`)

	if regex.MatchString("") {
		log.Printf("token pattern matches the empty string\n kind = %s\n pattern = %q\n", name, pattern)
		panic("token pattern for '" + name + "' matches the empty string")
	}

	return &Kind{
		Name:        name,
		Description: description,
		Regex:       regex,
		Priority:    priority,
	}
}

// compiledPatterns holds the patterns skipped between tokens.
var compiledPatterns struct {
	whitespace *regexp.Regexp
	comment    *regexp.Regexp
}

func init() {
	compiledPatterns.whitespace = regexp.MustCompile(`^[ \t\r\n\f\v]+`)

	// '!' starts a comment running to the end of the line
	compiledPatterns.comment = regexp.MustCompile(`^![^\n]*`)
}
