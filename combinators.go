package pex

import "github.com/alecthomas/pex/internal/invariant"

// Rule is the single interface every combinator consumes: it either
// consumes input and produces a value, or stops with an Error.
type Rule[T any] func(c Cursor) Result[T]

// Parse calls r, so that a Rule satisfies Parser.
func (r Rule[T]) Parse(c Cursor) Result[T] { return r(c) }

// Parser is implemented by grammar values that carry configuration, such
// as a comment syntax or a bracket style.
type Parser[T any] interface {
	Parse(c Cursor) Result[T]
}

// RuleOf converts a Parser to a Rule.
func RuleOf[T any](p Parser[T]) Rule[T] {
	if r, ok := p.(Rule[T]); ok {
		return r
	}
	return p.Parse
}

// Apply calls rule on c.
func Apply[T any](c Cursor, rule Rule[T]) Result[T] {
	return rule(c)
}

// Repeat applies rule until it fails and collects every value.
//
// It never fails. The failing attempt is discarded and the Cursor is left
// after the last success.
//
//	p*
func Repeat[T any](c Cursor, rule Rule[T]) Result[[]T] {
	var out []T
	for {
		next, value, err := rule(c).Unpack()
		if err != nil {
			break
		}
		invariant.Invariant(next.Offset >= c.Offset, "rule moved cursor backwards from %d to %d", c.Offset, next.Offset)
		out = append(out, value)
		if next.Offset == c.Offset {
			// A zero-width success would repeat forever.
			c = next
			break
		}
		c = next
	}
	return Pending(c, out)
}

// RepeatRange applies rule at most max times and fails if fewer than min
// succeeded. A negative max means unbounded.
//
//	p{min,max}
func RepeatRange[T any](c Cursor, min, max int, rule Rule[T]) Result[[]T] {
	invariant.Precondition(min >= 0, "repeat minimum must not be negative, got %d", min)
	invariant.Precondition(max < 0 || min <= max, "repeat minimum %d exceeds maximum %d", min, max)
	start := c.Offset
	var out []T
	for max < 0 || len(out) < max {
		next, value, err := rule(c).Unpack()
		if err != nil {
			break
		}
		invariant.Invariant(next.Offset >= c.Offset, "rule moved cursor backwards from %d to %d", c.Offset, next.Offset)
		out = append(out, value)
		progressed := next.Offset != c.Offset
		c = next
		if !progressed {
			break
		}
	}
	if len(out) < min {
		return Stop[[]T](RepeatCountError{Min: min, Got: len(out), Pos: start})
	}
	return Pending(c, out)
}

// Optional tries rule once. On failure it returns nil at the original Cursor.
//
//	p?
func Optional[T any](c Cursor, rule Rule[T]) Result[*T] {
	next, value, err := rule(c).Unpack()
	if err != nil {
		return Pending[*T](c, nil)
	}
	return Pending(next, &value)
}

// Skip tries rule once and returns the Cursor after it, or c if it failed.
func Skip[T any](c Cursor, rule Rule[T]) Cursor {
	if r := rule(c); r.Ok() {
		return r.Cursor()
	}
	return c
}

// Positive succeeds without consuming input if rule would match at c.
//
//	&p
func Positive[T any](c Cursor, rule Rule[T], label string) Result[struct{}] {
	if !rule(c).Ok() {
		return Stop[struct{}](MustBeError{Label: label, Pos: c.Offset})
	}
	return Pending(c, struct{}{})
}

// Negative succeeds without consuming input if rule would not match at c.
//
//	!p
func Negative[T any](c Cursor, rule Rule[T], label string) Result[struct{}] {
	if rule(c).Ok() {
		return Stop[struct{}](ShouldNotBeError{Label: label, Pos: c.Offset})
	}
	return Pending(c, struct{}{})
}
