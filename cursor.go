package pex

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/pex/internal/invariant"
)

// Cursor is an immutable snapshot of a parse position.
//
// Residual is always a suffix of the original input and Offset is the
// number of bytes consumed from its start. Cursors are passed by value;
// every operation returns a new Cursor and leaves the receiver untouched.
type Cursor struct {
	// Residual is the unconsumed suffix of the input.
	Residual string
	// Offset is the absolute byte offset of Residual in the input.
	Offset int

	stop  Error
	trace *tracer
}

// NewCursor creates a Cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{Residual: input}
}

// WithOffset returns a copy of c that reports positions relative to offset.
//
// This is useful when parsing a fragment that was cut out of a larger
// document, such as the body of a SurroundPair.
func (c Cursor) WithOffset(offset int) Cursor {
	c.Offset = offset
	return c
}

// IsEmpty returns true if no input remains.
func (c Cursor) IsEmpty() bool { return c.Residual == "" }

// End returns the absolute offset one past the last byte of the input.
func (c Cursor) End() int { return c.Offset + len(c.Residual) }

// Peek returns the next rune, or false at end of input.
func (c Cursor) Peek() (rune, bool) {
	r, n := c.next()
	return r, n > 0
}

// next decodes the next rune and its width in the input. Invalid UTF-8
// decodes as utf8.RuneError with width 1.
func (c Cursor) next() (rune, int) {
	return utf8.DecodeRuneInString(c.Residual)
}

// Advance consumes n bytes.
//
// n must not exceed the remaining input or split a valid UTF-8 sequence;
// violating either is a bug in the grammar and panics rather than producing
// an Error. Invalid bytes in the input may be consumed one at a time.
func (c Cursor) Advance(n int) Cursor {
	invariant.InRange(n, 0, len(c.Residual), "advance")
	invariant.Precondition(!splitsRune(c.Residual, n), "advance by %d splits a UTF-8 sequence at offset %d", n, c.Offset+n)
	return Cursor{
		Residual: c.Residual[n:],
		Offset:   c.Offset + n,
		stop:     c.stop,
		trace:    c.trace,
	}
}

// AdvanceRune consumes the UTF-8 length of r.
func (c Cursor) AdvanceRune(r rune) Cursor { return c.Advance(utf8.RuneLen(r)) }

// AdvanceString consumes the length of s.
func (c Cursor) AdvanceString(s string) Cursor { return c.Advance(len(s)) }

// AdvanceView consumes n bytes and returns them as the value.
func (c Cursor) AdvanceView(n int) Result[string] {
	next := c.Advance(n)
	return Pending(next, c.Residual[:n])
}

// View returns the next n bytes as a StringView without consuming them.
func (c Cursor) View(n int) StringView {
	invariant.InRange(n, 0, len(c.Residual), "view")
	return StringView{Text: c.Residual[:n], Start: c.Offset}
}

// AwayFrom returns the range consumed between origin and c.
func (c Cursor) AwayFrom(origin Cursor) Range {
	invariant.Precondition(origin.Offset <= c.Offset, "cursor at %d is behind origin %d", c.Offset, origin.Offset)
	return Range{Start: origin.Offset, End: c.Offset}
}

// GoString renders the cursor for tracing.
func (c Cursor) GoString() string {
	return fmt.Sprintf("Cursor@%d{%q}", c.Offset, c.Residual)
}

// Finish wraps value in a successful Result positioned at c.
//
// Go does not allow type parameters on methods, so this is a function.
func Finish[T any](c Cursor, value T) Result[T] { return Pending(c, value) }

// splitsRune returns true if n falls strictly inside a validly encoded rune.
func splitsRune(s string, n int) bool {
	if n == 0 || n == len(s) || utf8.RuneStart(s[n]) {
		return false
	}
	for i := n - 1; i >= 0 && i > n-utf8.UTFMax; i-- {
		if !utf8.RuneStart(s[i]) {
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		return !(r == utf8.RuneError && size == 1) && i+size > n
	}
	return false
}

// stopReason returns the error recorded by a Choice, or UninitializedError.
func (c Cursor) stopReason() Error {
	if c.stop == nil {
		return UninitializedError{}
	}
	return c.stop
}
