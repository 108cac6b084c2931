package helpers

import (
	"github.com/alecthomas/pex"
)

// SurroundPair is a three part match of an opening delimiter, a body and a
// closing delimiter. Each part carries its own absolute offset.
type SurroundPair struct {
	Head pex.StringView
	Body pex.StringView
	Tail pex.StringView
}

// Range covered by the whole pair.
func (s SurroundPair) Range() pex.Range {
	return pex.Range{Start: s.Head.Start, End: s.Tail.End()}
}

// SurroundPattern matches an opening pattern, then everything up to the
// first occurrence of the closing pattern. There is no escaping, which makes
// it suitable for raw strings such as r#"..."# or """...""".
//
// For interpolated strings, match the raw pair first and then parse the
// body with a Cursor positioned at Body.Start.
type SurroundPattern struct {
	LHS pex.NamedPattern
	RHS pex.NamedPattern
}

// Parse a surround pair at c.
func (p SurroundPattern) Parse(c pex.Cursor) pex.Result[SurroundPair] {
	body, head, err := c.MatchPattern(p.LHS).Unpack()
	if err != nil {
		return pex.Stop[SurroundPair](err)
	}
	start, end, ok := p.RHS.Find(body.Residual)
	if !ok {
		return pex.Stop[SurroundPair](pex.MissingStringError{Label: p.RHS.Label, Pos: body.End()})
	}
	return pex.Pending(body.Advance(end), SurroundPair{
		Head: pex.NewStringView(head, c.Offset),
		Body: body.View(start),
		Tail: pex.NewStringView(body.Residual[start:end], body.Offset+start),
	})
}
