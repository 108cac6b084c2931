package helpers

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/pex"
)

// EscapedQuote matches a string delimited by boundary in which escape
// causes the following character to be taken literally.
//
// The body is returned verbatim; escape sequences are not interpreted.
// When escape equals boundary, a doubled boundary is an escaped boundary,
// as in SQL: 'it''s'.
func EscapedQuote(c pex.Cursor, boundary, escape rune) pex.Result[SurroundPair] {
	body, _, err := c.MatchChar(boundary).Unpack()
	if err != nil {
		return pex.Stop[SurroundPair](err)
	}
	offset := 0
	for offset < len(body.Residual) {
		r, n := utf8.DecodeRuneInString(body.Residual[offset:])
		switch {
		case r == boundary && escape == boundary && strings.HasPrefix(body.Residual[offset+n:], string(boundary)):
			n *= 2
		case r == boundary:
			return pex.Pending(body.Advance(offset+n), SurroundPair{
				Head: c.View(body.Offset - c.Offset),
				Body: body.View(offset),
				Tail: pex.NewStringView(body.Residual[offset:offset+n], body.Offset+offset),
			})
		case r == escape:
			offset += n
			if offset < len(body.Residual) {
				_, n = utf8.DecodeRuneInString(body.Residual[offset:])
			} else {
				n = 0
			}
		}
		offset += n
	}
	return pex.Stop[SurroundPair](pex.MissingCharError{Expected: boundary, Pos: c.End()})
}

// SingleQuoted matches '...' with backslash escapes.
func SingleQuoted(c pex.Cursor) pex.Result[SurroundPair] {
	return EscapedQuote(c, '\'', '\\')
}

// DoubleQuoted matches "..." with backslash escapes.
func DoubleQuoted(c pex.Cursor) pex.Result[SurroundPair] {
	return EscapedQuote(c, '"', '\\')
}

// FencedQuote matches a run of one or more marker characters, followed by
// everything up to the next identical run. A run of exactly two markers is
// an empty string: the first marker opens it and the second closes it.
//
//	"abc"      body "abc"
//	""         body ""
//	"""a"b"""  body `a"b`
func FencedQuote(c pex.Cursor, marker rune) pex.Result[SurroundPair] {
	width := utf8.RuneLen(marker)
	count := 0
	for strings.HasPrefix(c.Residual[count*width:], string(marker)) {
		count++
	}
	switch count {
	case 0:
		return pex.Stop[SurroundPair](pex.MissingCharError{Expected: marker, Pos: c.Offset})
	case 2:
		first := c.Advance(width)
		return pex.Pending(first.Advance(width), SurroundPair{
			Head: c.View(width),
			Body: first.View(0),
			Tail: first.View(width),
		})
	}
	fence := c.Residual[:count*width]
	body := c.Advance(len(fence))
	start, end, ok := pex.Literal(fence).Find(body.Residual)
	if !ok {
		return pex.Stop[SurroundPair](pex.MissingCharError{Expected: marker, Pos: body.End()})
	}
	return pex.Pending(body.Advance(end), SurroundPair{
		Head: c.View(len(fence)),
		Body: body.View(start),
		Tail: pex.NewStringView(body.Residual[start:end], body.Offset+start),
	})
}
