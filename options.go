package pex

import (
	"errors"
	"io"

	"github.com/alecthomas/pex/internal/invariant"
)

// An Option to modify the behaviour of Parse.
type Option func(p *config) error

type config struct {
	trace         io.Writer
	allowTrailing bool
	skip          Rule[struct{}]
}

// Trace the parse to w.
//
// Every rule wrapped with Traced reports its attempts and outcomes.
func Trace(w io.Writer) Option {
	return func(p *config) error {
		if w == nil {
			return errors.New("trace writer must not be nil")
		}
		p.trace = w
		return nil
	}
}

// AllowTrailing allows input to remain after the root rule has matched.
func AllowTrailing() Option {
	return func(p *config) error {
		p.allowTrailing = true
		return nil
	}
}

// SkipAround skips ignorable input, such as whitespace, before and after the
// root rule.
func SkipAround[U any](ignore Rule[U]) Option {
	return func(p *config) error {
		if ignore == nil {
			return errors.New("skip rule must not be nil")
		}
		p.skip = Ignore(ignore)
		return nil
	}
}

// Parse applies rule to the whole of input.
//
// Unless AllowTrailing is given, input left over after rule succeeds is
// reported as an ExpectedEOFError. Parse failures are returned as Error
// values.
func Parse[T any](input string, rule Rule[T], options ...Option) (T, error) {
	invariant.NotNil(rule, "rule")
	var zero T
	p := &config{}
	for _, option := range options {
		if err := option(p); err != nil {
			return zero, err
		}
	}
	c := NewCursor(input)
	if p.trace != nil {
		c = c.WithTrace(p.trace)
		rule = Traced("<root>", rule)
	}
	if p.skip != nil {
		c = Skip(c, p.skip)
	}
	c, value, err := rule(c).Unpack()
	if err != nil {
		return zero, err
	}
	if p.skip != nil {
		c = Skip(c, p.skip)
	}
	if !p.allowTrailing && !c.IsEmpty() {
		return zero, ExpectedEOFError{Pos: c.Offset}
	}
	return value, nil
}

// MustParse is like Parse but panics on error.
func MustParse[T any](input string, rule Rule[T], options ...Option) T {
	value, err := Parse(input, rule, options...)
	if err != nil {
		panic(err)
	}
	return value
}
