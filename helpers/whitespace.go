package helpers

import (
	"unicode"

	"github.com/alecthomas/pex"
)

// Whitespace matches one or more Unicode whitespace characters.
func Whitespace(c pex.Cursor) pex.Result[string] {
	return c.MatchStrIf(unicode.IsSpace, "WHITESPACE")
}

// ASCIIWhitespace matches one or more of space, tab, CR, LF and form feed.
func ASCIIWhitespace(c pex.Cursor) pex.Result[string] {
	return c.MatchStrIf(isASCIISpace, "ASCII_WHITESPACE")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
