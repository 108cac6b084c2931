package pex

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// A Pattern can locate itself in a haystack.
type Pattern interface {
	// MatchPrefix returns the length of the match at offset 0.
	MatchPrefix(haystack string) (n int, ok bool)
	// Find returns the leftmost match [start, end) anywhere in haystack.
	Find(haystack string) (start, end int, ok bool)
}

// NamedPattern pairs a Pattern with the label used in diagnostics.
type NamedPattern struct {
	Pattern
	Label string
}

// Named attaches a diagnostic label to a Pattern.
func Named(pattern Pattern, label string) NamedPattern {
	return NamedPattern{Pattern: pattern, Label: label}
}

// Rune matches a single literal character.
func Rune(r rune) Pattern { return runePattern(r) }

type runePattern rune

func (p runePattern) MatchPrefix(haystack string) (int, bool) {
	r, n := utf8.DecodeRuneInString(haystack)
	if n == 0 || r != rune(p) {
		return 0, false
	}
	return n, true
}

func (p runePattern) Find(haystack string) (int, int, bool) {
	i := strings.IndexRune(haystack, rune(p))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + utf8.RuneLen(rune(p)), true
}

// Literal matches a literal string, byte for byte.
func Literal(s string) Pattern { return literalPattern(s) }

type literalPattern string

func (p literalPattern) MatchPrefix(haystack string) (int, bool) {
	if !strings.HasPrefix(haystack, string(p)) {
		return 0, false
	}
	return len(p), true
}

func (p literalPattern) Find(haystack string) (int, int, bool) {
	i := strings.Index(haystack, string(p))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(p), true
}

// Regexp matches a compiled regular expression.
//
// The expression is shared read-only and may be used by concurrent parses.
func Regexp(re *regexp.Regexp) Pattern { return regexpPattern{re: re, prefix: anchor(re)} }

// MustRegexp compiles expr and returns it as a Pattern, panicking on error.
func MustRegexp(expr string) Pattern { return Regexp(regexp.MustCompile(expr)) }

type regexpPattern struct {
	re *regexp.Regexp
	// prefix is re anchored at the start of the haystack.
	prefix *regexp.Regexp
}

func (p regexpPattern) MatchPrefix(haystack string) (int, bool) {
	loc := p.prefix.FindStringIndex(haystack)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

func (p regexpPattern) Find(haystack string) (int, int, bool) {
	loc := p.re.FindStringIndex(haystack)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// anchor compiles re so that it only matches at the start of the haystack
// and a failed prefix match does not scan the rest of it.
func anchor(re *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + re.String() + ")")
}

// anchoredRegexps caches anchor for expressions passed to MatchRegexp.
var anchoredRegexps sync.Map

func anchored(re *regexp.Regexp) *regexp.Regexp {
	if a, ok := anchoredRegexps.Load(re); ok {
		return a.(*regexp.Regexp)
	}
	actual, _ := anchoredRegexps.LoadOrStore(re, anchor(re))
	return actual.(*regexp.Regexp)
}

// Membership tests whether a character belongs to a set.
//
// *trie.Set implements it, as do the adapters below.
type Membership interface {
	Contains(r rune) bool
}

// MembershipFunc adapts a predicate to Membership.
type MembershipFunc func(r rune) bool

func (f MembershipFunc) Contains(r rune) bool { return f(r) }

// RangeTable adapts a unicode.RangeTable to Membership.
type RangeTable struct {
	*unicode.RangeTable
}

func (t RangeTable) Contains(r rune) bool { return unicode.Is(t.RangeTable, r) }

// Runes builds a Membership from an explicit list of characters.
func Runes(runes ...rune) RangeTable {
	return RangeTable{rangetable.New(runes...)}
}

// Tables merges several range tables into one Membership.
func Tables(tables ...*unicode.RangeTable) RangeTable {
	return RangeTable{rangetable.Merge(tables...)}
}

// InSet matches one character belonging to set.
func InSet(set Membership) Pattern { return setPattern{set} }

type setPattern struct {
	set Membership
}

func (p setPattern) MatchPrefix(haystack string) (int, bool) {
	r, n := utf8.DecodeRuneInString(haystack)
	if n == 0 || !p.set.Contains(r) {
		return 0, false
	}
	return n, true
}

func (p setPattern) Find(haystack string) (int, int, bool) {
	i := strings.IndexFunc(haystack, p.set.Contains)
	if i < 0 {
		return 0, 0, false
	}
	_, n := utf8.DecodeRuneInString(haystack[i:])
	return i, i + n, true
}
