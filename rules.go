package pex

// Char is a Rule matching the character target.
func Char(target rune) Rule[rune] {
	return func(c Cursor) Result[rune] { return c.MatchChar(target) }
}

// CharRange is a Rule matching a character in [lo, hi].
func CharRange(lo, hi rune) Rule[rune] {
	return func(c Cursor) Result[rune] { return c.MatchCharRange(lo, hi) }
}

// CharIf is a Rule matching one character satisfying predicate.
func CharIf(predicate func(rune) bool, label string) Rule[rune] {
	return func(c Cursor) Result[rune] { return c.MatchCharIf(predicate, label) }
}

// Str is a Rule matching target byte for byte.
func Str(target string) Rule[string] {
	return func(c Cursor) Result[string] { return c.MatchStr(target) }
}

// StrInsensitive is a Rule matching target ignoring ASCII case.
func StrInsensitive(target string) Rule[string] {
	return func(c Cursor) Result[string] { return c.MatchStrInsensitive(target) }
}

// StrIf is a Rule matching a non-empty run of characters satisfying predicate.
func StrIf(predicate func(rune) bool, label string) Rule[string] {
	return func(c Cursor) Result[string] { return c.MatchStrIf(predicate, label) }
}

// Pat is a Rule matching pattern at the current position.
func Pat(pattern NamedPattern) Rule[string] {
	return func(c Cursor) Result[string] { return c.MatchPattern(pattern) }
}

// EOF is a Rule matching the end of input.
func EOF() Rule[struct{}] {
	return func(c Cursor) Result[struct{}] { return c.MatchEOF() }
}

// Ignore discards the value produced by rule.
func Ignore[T any](rule Rule[T]) Rule[struct{}] {
	return func(c Cursor) Result[struct{}] {
		return Map(rule(c), func(T) struct{} { return struct{}{} })
	}
}

// Mapped transforms the value produced by rule.
func Mapped[T, U any](rule Rule[T], fn func(T) U) Rule[U] {
	return func(c Cursor) Result[U] { return Map(rule(c), fn) }
}
