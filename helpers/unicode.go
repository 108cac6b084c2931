package helpers

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/pex"
)

// UnicodeEscape matches a unicode escape sequence and returns the character
// it denotes. Two forms are accepted:
//
//	\uXXXX      exactly four hex digits
//	\u{X...}    up to six hex digits, surrounding whitespace allowed
//
// "\u{}" denotes U+0000. Surrogates and values above U+10FFFF are rejected.
func UnicodeEscape(c pex.Cursor) pex.Result[rune] {
	start := c.Offset
	c, _, err := c.MatchStr(`\u`).Unpack()
	if err != nil {
		return pex.Stop[rune](err)
	}
	if r, ok := c.Peek(); ok && r == '{' {
		return bracedEscape(start, c.Advance(1))
	}
	n := 0
	for n < 4 && n < len(c.Residual) && isHex(c.Residual[n]) {
		n++
	}
	if n != 4 {
		return pex.Stop[rune](pex.Errorf(start, c.Offset+n, "unicode escape must have exactly 4 hex digits"))
	}
	return scalar(start, c.Advance(n), c.Residual[:n])
}

func bracedEscape(start int, c pex.Cursor) pex.Result[rune] {
	end := strings.IndexByte(c.Residual, '}')
	if end < 0 {
		return pex.Stop[rune](pex.MissingCharError{Expected: '}', Pos: c.End()})
	}
	next := c.Advance(end + 1)
	digits := strings.TrimSpace(c.Residual[:end])
	if len(digits) > 6 {
		return pex.Stop[rune](pex.Errorf(start, next.Offset, "unicode escape must have at most 6 hex digits"))
	}
	for i := 0; i < len(digits); i++ {
		if !isHex(digits[i]) {
			return pex.Stop[rune](pex.Errorf(start, next.Offset, "invalid hex digit %q in unicode escape", digits[i]))
		}
	}
	return scalar(start, next, digits)
}

// scalar converts validated hex digits to a rune.
func scalar(start int, next pex.Cursor, digits string) pex.Result[rune] {
	var value rune
	for i := 0; i < len(digits); i++ {
		value = value<<4 | rune(hexValue(digits[i]))
	}
	if !utf8.ValidRune(value) {
		return pex.Stop[rune](pex.Errorf(start, next.Offset, "U+%X is not a unicode scalar value", value))
	}
	return pex.Pending(next, value)
}
