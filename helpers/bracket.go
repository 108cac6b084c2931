package helpers

import (
	"github.com/alecthomas/pex"
)

// DanglingPolicy controls whether a delimiter may follow the last item of a
// bracketed list.
type DanglingPolicy int

const (
	// DanglingOptional accepts [a, b] and [a, b,].
	DanglingOptional DanglingPolicy = iota
	// DanglingRequired accepts [a, b,] but not [a, b]. The empty list [] is
	// always accepted.
	DanglingRequired
	// DanglingNever accepts [a, b] but not [a, b,].
	DanglingNever
)

func (d DanglingPolicy) String() string {
	switch d {
	case DanglingOptional:
		return "optional"
	case DanglingRequired:
		return "required"
	case DanglingNever:
		return "never"
	}
	return "DanglingPolicy(?)"
}

// BracketPattern describes a delimited list such as [a, b, c] or (x; y).
type BracketPattern struct {
	Open      pex.NamedPattern
	Close     pex.NamedPattern
	Delimiter pex.NamedPattern
	Dangling  DanglingPolicy
}

// BracketPair is a matched list and its enclosing brackets.
type BracketPair[T any] struct {
	LHS  pex.StringView
	RHS  pex.StringView
	Body []T
}

// Bracket matches p.Open, zero or more terms separated by p.Delimiter and
// p.Close. Input matched by ignore is skipped around every token.
//
// The empty form is attempted first and the populated form second, so a
// failure is reported from the populated form.
func Bracket[T, U any](c pex.Cursor, p BracketPattern, ignore pex.Rule[U], term pex.Rule[T]) pex.Result[BracketPair[T]] {
	return pex.BeginChoice[BracketPair[T]](c).
		Maybe(func(c pex.Cursor) pex.Result[BracketPair[T]] { return bracketEmpty[T](c, p, ignore) }).
		Maybe(func(c pex.Cursor) pex.Result[BracketPair[T]] { return bracketMany(c, p, ignore, term) }).
		End()
}

// BracketRule binds the arguments of Bracket into a Rule.
func BracketRule[T, U any](p BracketPattern, ignore pex.Rule[U], term pex.Rule[T]) pex.Rule[BracketPair[T]] {
	return func(c pex.Cursor) pex.Result[BracketPair[T]] { return Bracket(c, p, ignore, term) }
}

func bracketEmpty[T, U any](c pex.Cursor, p BracketPattern, ignore pex.Rule[U]) pex.Result[BracketPair[T]] {
	start := c
	c, _, err := c.MatchPattern(p.Open).Unpack()
	if err != nil {
		return pex.Stop[BracketPair[T]](err)
	}
	lhs := start.View(c.Offset - start.Offset)
	c = pex.Skip(c, ignore)
	return closeBracket(c, p, BracketPair[T]{LHS: lhs})
}

func bracketMany[T, U any](c pex.Cursor, p BracketPattern, ignore pex.Rule[U], term pex.Rule[T]) pex.Result[BracketPair[T]] {
	start := c
	c, _, err := c.MatchPattern(p.Open).Unpack()
	if err != nil {
		return pex.Stop[BracketPair[T]](err)
	}
	pair := BracketPair[T]{LHS: start.View(c.Offset - start.Offset)}
	c = pex.Skip(c, ignore)
	c, first, err := term(c).Unpack()
	if err != nil {
		return pex.Stop[BracketPair[T]](err)
	}
	pair.Body = append(pair.Body, first)
	dangling := false
	for {
		delim, _, err := pex.Skip(c, ignore).MatchPattern(p.Delimiter).Unpack()
		if err != nil {
			break
		}
		delim = pex.Skip(delim, ignore)
		next, value, err := term(delim).Unpack()
		if err != nil {
			if p.Dangling != DanglingNever {
				c = delim
				dangling = true
			}
			break
		}
		pair.Body = append(pair.Body, value)
		c = next
	}
	c = pex.Skip(c, ignore)
	if p.Dangling == DanglingRequired && !dangling {
		return pex.Stop[BracketPair[T]](pex.MissingStringError{Label: p.Delimiter.Label, Pos: c.Offset})
	}
	return closeBracket(c, p, pair)
}

func closeBracket[T any](c pex.Cursor, p BracketPattern, pair BracketPair[T]) pex.Result[BracketPair[T]] {
	next, _, err := c.MatchPattern(p.Close).Unpack()
	if err != nil {
		return pex.Stop[BracketPair[T]](err)
	}
	pair.RHS = c.View(next.Offset - c.Offset)
	return pex.Pending(next, pair)
}
