package pex

import "github.com/alecthomas/pex/internal/invariant"

// Choice evaluates ordered alternatives from the same starting Cursor.
//
// The first alternative to succeed wins and later ones are not attempted.
// If none succeed, the error of the alternative attempted last is
// returned, not the one that progressed furthest.
//
//	result := pex.BeginChoice[Value](c).
//		Maybe(parseNumber).
//		Maybe(parseString).
//		End()
type Choice[T any] struct {
	origin   Cursor
	recorded bool
	cursor   Cursor
	value    T
}

// BeginChoice starts a choice at c.
func BeginChoice[T any](c Cursor) *Choice[T] {
	c.stop = nil
	return &Choice[T]{origin: c}
}

// Maybe attempts rule from the original Cursor unless an earlier
// alternative already succeeded.
func (ch *Choice[T]) Maybe(rule Rule[T]) *Choice[T] {
	invariant.NotNil(rule, "choice alternative")
	if ch.recorded {
		return ch
	}
	start := ch.origin
	start.stop = nil
	next, value, err := rule(start).Unpack()
	if err != nil {
		ch.origin.stop = err
		return ch
	}
	ch.recorded = true
	ch.cursor = next
	ch.value = value
	return ch
}

// End returns the recorded success or the last error.
func (ch *Choice[T]) End() Result[T] {
	if ch.recorded {
		return Pending(ch.cursor, ch.value)
	}
	return Stop[T](ch.origin.stopReason())
}

// Choose tries each rule in order from c, as BeginChoice/Maybe/End.
func Choose[T any](c Cursor, rules ...Rule[T]) Result[T] {
	ch := BeginChoice[T](c)
	for _, rule := range rules {
		ch.Maybe(rule)
	}
	return ch.End()
}
