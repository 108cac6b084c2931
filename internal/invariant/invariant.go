// Package invariant provides contract assertions for pex.
//
// Violations are programming errors in the calling grammar, not parse
// failures, so every function here panics with a *Violation instead of
// returning an error.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Violation is the value panicked when a contract does not hold.
type Violation struct {
	Kind    string
	Message string
	// File and Line of the caller that broke the contract, if known.
	File string
	Line int
}

func (v *Violation) Error() string {
	if v.File == "" {
		return fmt.Sprintf("%s VIOLATION: %s", v.Kind, v.Message)
	}
	return fmt.Sprintf("%s VIOLATION: %s\n  at %s:%d", v.Kind, v.Message, v.File, v.Line)
}

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks an internal consistency condition.
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// InRange panics if value is outside [minVal, maxVal].
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d", name, minVal, maxVal, value)
	}
}

// NotNil panics if value is nil, including typed nil funcs and pointers.
func NotNil(value interface{}, name string) {
	if value == nil {
		fail("PRECONDITION", "%s must not be nil", name)
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if v.IsNil() {
			fail("PRECONDITION", "%s must not be nil", name)
		}
	}
}

func fail(kind, format string, args ...interface{}) {
	v := &Violation{Kind: kind, Message: fmt.Sprintf(format, args...)}
	// Skip fail and the public wrapper.
	if _, file, line, ok := runtime.Caller(2); ok {
		v.File, v.Line = file, line
	}
	panic(v)
}
