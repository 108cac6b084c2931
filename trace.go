package pex

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/repr"
)

// tracer is shared by every Cursor derived from one traced Cursor. A parse
// is single-threaded, so the depth counter needs no locking.
type tracer struct {
	w     io.Writer
	depth int
}

const tracePreview = 16

// WithTrace returns a copy of c that reports Traced rules to w.
func (c Cursor) WithTrace(w io.Writer) Cursor {
	c.trace = &tracer{w: w}
	return c
}

// Traced wraps rule so that attempts and outcomes are written to the trace
// writer of the Cursor, if it has one. Without a writer it is a plain call.
func Traced[T any](name string, rule Rule[T]) Rule[T] {
	return func(c Cursor) Result[T] {
		t := c.trace
		if t == nil {
			return rule(c)
		}
		indent := strings.Repeat(" ", t.depth*2)
		fmt.Fprintf(t.w, "%s%d %s %q\n", indent, c.Offset, name, preview(c.Residual))
		t.depth++
		r := rule(c)
		t.depth--
		if err := r.Err(); err != nil {
			fmt.Fprintf(t.w, "%s%d %s ! %s\n", indent, c.Offset, name, err.Message())
		} else {
			fmt.Fprintf(t.w, "%s%d %s = %s\n", indent, r.Cursor().Offset, name, repr.String(r.Value()))
		}
		return r
	}
}

func preview(s string) string {
	if len(s) <= tracePreview {
		return s
	}
	end := tracePreview
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end] + "…"
}
