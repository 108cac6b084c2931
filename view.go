package pex

import "fmt"

// StringView is a borrowed slice of the input along with its absolute offset.
type StringView struct {
	Text  string
	Start int
}

// NewStringView creates a view of text starting at offset start.
func NewStringView(text string, start int) StringView {
	return StringView{Text: text, Start: start}
}

// End offset, one past the last byte.
func (s StringView) End() int { return s.Start + len(s.Text) }

// Range covered by the view.
func (s StringView) Range() Range { return Range{s.Start, s.End()} }

// Len of the view in bytes.
func (s StringView) Len() int { return len(s.Text) }

func (s StringView) String() string { return s.Text }

// GoString renders the view with its range.
func (s StringView) GoString() string {
	return fmt.Sprintf("StringView@%d..%d{%q}", s.Start, s.End(), s.Text)
}
