package helpers

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/pex"
)

// CommentLine matches Head followed by everything up to, but not including,
// the next line break or the end of input. The Tail of the returned pair is
// always empty.
type CommentLine struct {
	Head string
}

// Parse a line comment.
func (l CommentLine) Parse(c pex.Cursor) pex.Result[SurroundPair] {
	body, _, err := c.MatchStr(l.Head).Unpack()
	if err != nil {
		return pex.Stop[SurroundPair](err)
	}
	end := strings.IndexAny(body.Residual, "\r\n")
	if end < 0 {
		end = len(body.Residual)
	}
	rest := body.Advance(end)
	return pex.Pending(rest, SurroundPair{
		Head: c.View(len(l.Head)),
		Body: body.View(end),
		Tail: rest.View(0),
	})
}

// CommentBlock matches Head, a body and Tail.
//
// When Nested is set, every Head inside the body opens a further level
// that must be closed by its own Tail before the block ends.
type CommentBlock struct {
	Head   string
	Tail   string
	Nested bool
}

// Parse a block comment.
func (b CommentBlock) Parse(c pex.Cursor) pex.Result[SurroundPair] {
	body, _, err := c.MatchStr(b.Head).Unpack()
	if err != nil {
		return pex.Stop[SurroundPair](err)
	}
	var end int
	if b.Nested {
		end = b.closeNested(body.Residual)
	} else {
		end = strings.Index(body.Residual, b.Tail)
	}
	if end < 0 {
		return pex.Stop[SurroundPair](pex.MissingStringError{Label: b.Tail, Pos: body.Offset})
	}
	tail := body.Advance(end)
	return pex.Pending(tail.Advance(len(b.Tail)), SurroundPair{
		Head: c.View(len(b.Head)),
		Body: body.View(end),
		Tail: tail.View(len(b.Tail)),
	})
}

// closeNested returns the offset of the Tail balancing an already consumed
// Head, or -1.
func (b CommentBlock) closeNested(s string) int {
	depth := 1
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], b.Tail):
			depth--
			if depth == 0 {
				return i
			}
			i += len(b.Tail)
		case strings.HasPrefix(s[i:], b.Head):
			depth++
			i += len(b.Head)
		default:
			_, n := utf8.DecodeRuneInString(s[i:])
			i += n
		}
	}
	return -1
}
