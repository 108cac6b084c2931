package pex

import "fmt"

// Result is the outcome of applying a rule: either a value and the Cursor
// after it, or the Error that stopped the rule.
type Result[T any] struct {
	cursor Cursor
	value  T
	err    Error
}

// Pending creates a successful Result.
func Pending[T any](c Cursor, value T) Result[T] {
	return Result[T]{cursor: c, value: value}
}

// Stop creates a failed Result.
func Stop[T any](err Error) Result[T] {
	if err == nil {
		err = UninitializedError{}
	}
	return Result[T]{err: err}
}

// Fail propagates the failure of r into a Result of a different type.
//
// It must only be called on a failed Result.
func Fail[U, T any](r Result[T]) Result[U] {
	return Stop[U](r.err)
}

// Ok returns true if the rule succeeded.
func (r Result[T]) Ok() bool { return r.err == nil }

// Cursor after the match. Zero if the rule failed.
func (r Result[T]) Cursor() Cursor { return r.cursor }

// Value produced by the rule. Zero if the rule failed.
func (r Result[T]) Value() T { return r.value }

// Err returns the reason the rule stopped, or nil.
func (r Result[T]) Err() Error { return r.err }

// Unpack a Result for sequencing.
//
//	c, name, err := ident(c).Unpack()
//	if err != nil {
//		return pex.Stop[Decl](err)
//	}
func (r Result[T]) Unpack() (Cursor, T, Error) {
	return r.cursor, r.value, r.err
}

// AsResult converts r to a plain (value, error) pair.
func (r Result[T]) AsResult() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// GoString renders the Result for tracing.
func (r Result[T]) GoString() string {
	if r.err != nil {
		return fmt.Sprintf("Stop{%s}", r.err)
	}
	return fmt.Sprintf("Pending@%d{%#v}", r.cursor.Offset, r.value)
}

// Map transforms the value of a successful Result.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Stop[U](r.err)
	}
	return Pending(r.cursor, fn(r.value))
}

// MapErr transforms the value of a successful Result with a conversion that
// may fail, such as strconv. The error replaces the result.
func MapErr[T, U any](r Result[T], fn func(T) (U, Error)) Result[U] {
	if r.err != nil {
		return Stop[U](r.err)
	}
	value, err := fn(r.value)
	if err != nil {
		return Stop[U](err)
	}
	return Pending(r.cursor, value)
}
