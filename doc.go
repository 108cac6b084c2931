// Package pex is a zero-copy parser combinator runtime.
//
// A grammar is a set of functions of the form
//
//	func(c pex.Cursor) pex.Result[T]
//
// A Cursor is an immutable view of the unconsumed input and its absolute
// byte offset. Rules either return a new Cursor with a value, or stop with
// an Error that records which byte range failed and why. Values are slices
// of the original input, so nothing is copied while parsing.
//
// Rules are sequenced with ordinary early returns:
//
//	func assignment(c pex.Cursor) pex.Result[Assign] {
//		c, name, err := ident(c).Unpack()
//		if err != nil {
//			return pex.Stop[Assign](err)
//		}
//		c = pex.Skip(c, helpers.Whitespace)
//		c, _, err = c.MatchChar('=').Unpack()
//		if err != nil {
//			return pex.Stop[Assign](err)
//		}
//		c = pex.Skip(c, helpers.Whitespace)
//		return pex.Map(number(c), func(v float64) Assign { return Assign{name, v} })
//	}
//
// Ordered alternatives are tried with Choice, which restarts each
// alternative from the same Cursor and keeps the first success:
//
//	pex.BeginChoice[Value](c).Maybe(number).Maybe(str).End()
//
// Literal characters, literal strings, regular expressions and character
// sets (including *trie.Set tables) all implement Pattern and may be used
// interchangeably wherever a NamedPattern is accepted.
package pex
