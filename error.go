package pex

import (
	"fmt"
	"unicode/utf8"
)

// Range is a half-open byte range [Start, End) into the original input.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// Len of the range in bytes.
func (r Range) Len() int { return r.End - r.Start }

// Error is the reason a rule stopped.
//
// The set of implementations is closed; use a type switch to inspect them.
type Error interface {
	error
	// Message without position information.
	Message() string
	// Range of input the error refers to.
	Range() Range

	stop()
}

func formatError(e Error) string {
	return fmt.Sprintf("%d: %s", e.Range().Start, e.Message())
}

// UninitializedError is held by a Choice before any alternative has run.
type UninitializedError struct{}

func (UninitializedError) stop() {}
func (UninitializedError) Message() string { return "uninitialized" }
func (UninitializedError) Range() Range { return Range{} }
func (e UninitializedError) Error() string { return formatError(e) }

// ExpectedEOFError is returned when input remains but none was expected.
type ExpectedEOFError struct {
	Pos int
}

func (ExpectedEOFError) stop() {}
func (ExpectedEOFError) Message() string { return "expected end of input" }
func (e ExpectedEOFError) Range() Range { return Range{e.Pos, e.Pos + 1} }
func (e ExpectedEOFError) Error() string { return formatError(e) }

// RepeatCountError is returned by RepeatRange when fewer than Min items matched.
type RepeatCountError struct {
	Min int
	Got int
	// Pos is where the repetition started.
	Pos int
}

func (RepeatCountError) stop() {}
func (e RepeatCountError) Message() string {
	return fmt.Sprintf("expected at least %d repeats (got %d)", e.Min, e.Got)
}
func (e RepeatCountError) Range() Range { return Range{e.Pos, e.Pos + 1} }
func (e RepeatCountError) Error() string { return formatError(e) }

// MissingCharError is returned when a specific character was expected.
type MissingCharError struct {
	Expected rune
	Pos      int
}

func (MissingCharError) stop() {}
func (e MissingCharError) Message() string { return fmt.Sprintf("missing character %q", e.Expected) }
func (e MissingCharError) Range() Range { return Range{e.Pos, e.Pos + runeLen(e.Expected)} }
func (e MissingCharError) Error() string { return formatError(e) }

// MissingCharRangeError is returned when a character in [Lo, Hi] was expected.
type MissingCharRangeError struct {
	Lo  rune
	Hi  rune
	Pos int
}

func (MissingCharRangeError) stop() {}
func (e MissingCharRangeError) Message() string {
	return fmt.Sprintf("expected character in range %q..=%q", e.Lo, e.Hi)
}
func (e MissingCharRangeError) Range() Range { return Range{e.Pos, e.Pos + 1} }
func (e MissingCharRangeError) Error() string { return formatError(e) }

// MissingCharSetError is returned when a character from a named set was expected.
type MissingCharSetError struct {
	Label string
	Pos   int
}

func (MissingCharSetError) stop() {}
func (e MissingCharSetError) Message() string { return fmt.Sprintf("expected one of %s", e.Label) }
func (e MissingCharSetError) Range() Range { return Range{e.Pos, e.Pos + 1} }
func (e MissingCharSetError) Error() string { return formatError(e) }

// MissingStringError is returned when a string or a named run was expected.
type MissingStringError struct {
	Label string
	Pos   int
}

func (MissingStringError) stop() {}
func (e MissingStringError) Message() string { return fmt.Sprintf("missing string %q", e.Label) }
func (e MissingStringError) Range() Range { return Range{e.Pos, e.Pos + len(e.Label)} }
func (e MissingStringError) Error() string { return formatError(e) }

// MustBeError is returned by a failed predicate or positive lookahead.
type MustBeError struct {
	Label string
	Pos   int
}

func (MustBeError) stop() {}
func (e MustBeError) Message() string { return fmt.Sprintf("must be %s", e.Label) }
func (e MustBeError) Range() Range { return Range{e.Pos, e.Pos + 1} }
func (e MustBeError) Error() string { return formatError(e) }

// ShouldNotBeError is returned by a failed negative lookahead.
type ShouldNotBeError struct {
	Label string
	Pos   int
}

func (ShouldNotBeError) stop() {}
func (e ShouldNotBeError) Message() string { return fmt.Sprintf("should not be %s", e.Label) }
func (e ShouldNotBeError) Range() Range { return Range{e.Pos, e.Pos + 1} }
func (e ShouldNotBeError) Error() string { return formatError(e) }

// CustomError carries a free-form message over an explicit range.
type CustomError struct {
	Msg   string
	Start int
	End   int
}

// Errorf creates a CustomError over [start, end).
func Errorf(start, end int, format string, args ...interface{}) CustomError {
	return CustomError{Msg: fmt.Sprintf(format, args...), Start: start, End: end}
}

func (CustomError) stop() {}
func (e CustomError) Message() string { return e.Msg }
func (e CustomError) Range() Range { return Range{e.Start, e.End} }
func (e CustomError) Error() string { return formatError(e) }

func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
