package pex

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MatchChar matches the character target.
func (c Cursor) MatchChar(target rune) Result[rune] {
	if r, n := c.next(); n > 0 && r == target {
		return Pending(c.Advance(n), r)
	}
	return Stop[rune](MissingCharError{Expected: target, Pos: c.Offset})
}

// MatchCharRange matches a character in the inclusive range [lo, hi].
func (c Cursor) MatchCharRange(lo, hi rune) Result[rune] {
	if r, n := c.next(); n > 0 && r >= lo && r <= hi {
		return Pending(c.Advance(n), r)
	}
	return Stop[rune](MissingCharRangeError{Lo: lo, Hi: hi, Pos: c.Offset})
}

// MatchCharIf matches a character satisfying predicate.
func (c Cursor) MatchCharIf(predicate func(rune) bool, label string) Result[rune] {
	if r, n := c.next(); n > 0 && predicate(r) {
		return Pending(c.Advance(n), r)
	}
	return Stop[rune](MustBeError{Label: label, Pos: c.Offset})
}

// MatchCharAny matches any character except end of input.
func (c Cursor) MatchCharAny() Result[rune] {
	return c.MatchCharIf(func(rune) bool { return true }, "ANY")
}

// MatchCharSet matches a character contained in set.
func (c Cursor) MatchCharSet(set Membership, label string) Result[rune] {
	if r, n := c.next(); n > 0 && set.Contains(r) {
		return Pending(c.Advance(n), r)
	}
	return Stop[rune](MissingCharSetError{Label: label, Pos: c.Offset})
}

// MatchEOF succeeds only at end of input.
func (c Cursor) MatchEOF() Result[struct{}] {
	if !c.IsEmpty() {
		return Stop[struct{}](ExpectedEOFError{Pos: c.Offset})
	}
	return Pending(c, struct{}{})
}

// MatchStr matches target byte for byte.
func (c Cursor) MatchStr(target string) Result[string] {
	if !strings.HasPrefix(c.Residual, target) {
		return Stop[string](MissingStringError{Label: target, Pos: c.Offset})
	}
	return c.AdvanceView(len(target))
}

// MatchStrInsensitive matches target ignoring ASCII case.
//
// The returned value is the text as it appears in the input.
func (c Cursor) MatchStrInsensitive(target string) Result[string] {
	if len(c.Residual) < len(target) || !equalFoldASCII(c.Residual[:len(target)], target) {
		return Stop[string](MissingStringError{Label: target, Pos: c.Offset})
	}
	return c.AdvanceView(len(target))
}

// MatchStrIf matches the longest non-empty run of characters satisfying predicate.
func (c Cursor) MatchStrIf(predicate func(rune) bool, label string) Result[string] {
	offset := 0
	for offset < len(c.Residual) {
		r, n := utf8.DecodeRuneInString(c.Residual[offset:])
		if !predicate(r) {
			break
		}
		offset += n
	}
	if offset == 0 {
		return Stop[string](MissingStringError{Label: label, Pos: c.Offset})
	}
	return c.AdvanceView(offset)
}

// MatchPattern matches pattern at the current position.
func (c Cursor) MatchPattern(pattern NamedPattern) Result[string] {
	n, ok := pattern.MatchPrefix(c.Residual)
	if !ok {
		return Stop[string](MissingStringError{Label: pattern.Label, Pos: c.Offset})
	}
	return c.AdvanceView(n)
}

// MatchRegexp matches re at the current position and returns the submatch
// indices relative to the start of the match.
//
// The anchored form of re is compiled once and cached, so re should be a
// long-lived package level expression.
func (c Cursor) MatchRegexp(re *regexp.Regexp, label string) Result[[]int] {
	loc := anchored(re).FindStringSubmatchIndex(c.Residual)
	if loc == nil {
		return Stop[[]int](MustBeError{Label: label, Pos: c.Offset})
	}
	return Pending(c.Advance(loc[1]), loc)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
