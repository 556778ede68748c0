package lexer

import (
	"log"
	"strings"
)

// ConvertSingleIndexToTextEditorPosition converts a byte index to a text editor position.
func ConvertSingleIndexToTextEditorPosition(buffer string, charIndex int) Position {
	var line, col int

	for i := range len(buffer) {
		if i == charIndex {
			break
		}

		if buffer[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}

	return Position{Line: line, Character: col}
}

// LineAt returns the line of buffer containing index, without its newline,
// and the offset at which that line starts.
func LineAt(buffer string, index int) (string, int) {
	if index < 0 || index > len(buffer) {
		log.Printf("index out of buffer\n index = %d\n size = %d\n", index, len(buffer))
		panic("index out of buffer while looking up its line")
	}

	start := strings.LastIndexByte(buffer[:index], '\n') + 1

	end := strings.IndexByte(buffer[index:], '\n')
	if end < 0 {
		end = len(buffer)
	} else {
		end += index
	}

	line := strings.TrimSuffix(buffer[start:end], "\r")

	return line, start
}
