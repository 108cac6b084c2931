package pex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/pex"
)

func never(c pex.Cursor) pex.Result[rune] {
	return pex.Stop[rune](pex.MustBeError{Label: "NEVER", Pos: c.Offset})
}

func TestApply(t *testing.T) {
	c := pex.NewCursor("ab")
	require.Equal(t, c.MatchChar('a'), pex.Apply(c, pex.Char('a')))
}

func TestRepeat(t *testing.T) {
	c := pex.NewCursor("aaab")
	next, values, err := pex.Repeat(c, pex.Char('a')).Unpack()
	require.Nil(t, err)
	require.Equal(t, []rune{'a', 'a', 'a'}, values)
	require.Equal(t, 3, next.Offset)
}

func TestRepeatNeverFails(t *testing.T) {
	c := pex.NewCursor("xyz").Advance(1)
	next, values, err := pex.Repeat(c, never).Unpack()
	require.Nil(t, err)
	require.Empty(t, values)
	require.Equal(t, c, next)
}

func TestRepeatStopsOnZeroWidthSuccess(t *testing.T) {
	empty := func(c pex.Cursor) pex.Result[int] { return pex.Pending(c, 1) }
	next, values, err := pex.Repeat(pex.NewCursor("abc"), empty).Unpack()
	require.Nil(t, err)
	require.Equal(t, []int{1}, values)
	require.Equal(t, 0, next.Offset)
}

func TestRepeatRange(t *testing.T) {
	next, values, err := pex.RepeatRange(pex.NewCursor("aaaa"), 2, 3, pex.Char('a')).Unpack()
	require.Nil(t, err)
	require.Len(t, values, 3)
	require.Equal(t, "a", next.Residual)

	next, values, err = pex.RepeatRange(pex.NewCursor("aab"), 2, -1, pex.Char('a')).Unpack()
	require.Nil(t, err)
	require.Len(t, values, 2)
	require.Equal(t, 2, next.Offset)

	c := pex.NewCursor("xxab").Advance(2)
	err = pex.RepeatRange(c, 2, 3, pex.Char('a')).Err()
	require.Equal(t, pex.RepeatCountError{Min: 2, Got: 1, Pos: 2}, err)
}

func TestRepeatRangeInvalidBoundsPanics(t *testing.T) {
	require.Panics(t, func() {
		pex.RepeatRange(pex.NewCursor("a"), 3, 2, pex.Char('a'))
	})
}

func TestRepeatBackwardsRulePanics(t *testing.T) {
	origin := pex.NewCursor("abc")
	backwards := func(c pex.Cursor) pex.Result[int] { return pex.Pending(origin, 0) }
	c := origin.Advance(2)
	require.Panics(t, func() { pex.Repeat(c, backwards) })
	require.Panics(t, func() { pex.RepeatRange(c, 0, -1, backwards) })
}

func TestOptional(t *testing.T) {
	c := pex.NewCursor("ab")
	next, value, err := pex.Optional(c, pex.Char('a')).Unpack()
	require.Nil(t, err)
	require.NotNil(t, value)
	require.Equal(t, 'a', *value)
	require.Equal(t, 1, next.Offset)

	next, value, err = pex.Optional(c, pex.Char('b')).Unpack()
	require.Nil(t, err)
	require.Nil(t, value)
	require.Equal(t, c, next)
}

func TestSkip(t *testing.T) {
	c := pex.NewCursor("  x")
	spaces := pex.StrIf(func(r rune) bool { return r == ' ' }, "SPACE")
	require.Equal(t, 2, pex.Skip(c, spaces).Offset)
	require.Equal(t, c, pex.Skip(c, pex.Char('y')))
}

func TestPositive(t *testing.T) {
	c := pex.NewCursor("abc")
	next, _, err := pex.Positive(c, pex.Str("ab"), "AB").Unpack()
	require.Nil(t, err)
	require.Equal(t, c, next, "lookahead should not consume")

	err = pex.Positive(c, pex.Str("bc"), "BC").Err()
	require.Equal(t, pex.MustBeError{Label: "BC", Pos: 0}, err)
}

func TestNegative(t *testing.T) {
	c := pex.NewCursor("abc").Advance(1)
	next, _, err := pex.Negative(c, pex.Str("x"), "X").Unpack()
	require.Nil(t, err)
	require.Equal(t, c, next)

	err = pex.Negative(c, pex.Str("bc"), "KEYWORD").Err()
	require.Equal(t, pex.ShouldNotBeError{Label: "KEYWORD", Pos: 1}, err)
}

func TestMapAndFail(t *testing.T) {
	r := pex.Map(pex.NewCursor("7").MatchCharRange('0', '9'), func(r rune) int { return int(r - '0') })
	require.Equal(t, 7, r.Value())

	failed := pex.NewCursor("x").MatchChar('7')
	mapped := pex.Map(failed, func(r rune) int { return int(r) })
	require.Equal(t, failed.Err(), mapped.Err())
	require.Equal(t, failed.Err(), pex.Fail[string](failed).Err())

	value, err := failed.AsResult()
	require.Error(t, err)
	require.Zero(t, value)
	value, err = pex.NewCursor("7").MatchChar('7').AsResult()
	require.NoError(t, err)
	require.Equal(t, '7', value)
}

func TestMapErr(t *testing.T) {
	digits := pex.NewCursor("12x").MatchStrIf(func(r rune) bool { return r >= '0' && r <= '9' }, "DIGITS")
	r := pex.MapErr(digits, func(s string) (int, pex.Error) {
		if s == "12" {
			return 12, nil
		}
		return 0, pex.Errorf(0, len(s), "bad")
	})
	require.Equal(t, 12, r.Value())
	require.Equal(t, 2, r.Cursor().Offset)

	r = pex.MapErr(digits, func(s string) (int, pex.Error) { return 0, pex.Errorf(0, 2, "overflow") })
	require.Equal(t, pex.CustomError{Msg: "overflow", Start: 0, End: 2}, r.Err())
}

func TestRuleAsParser(t *testing.T) {
	var p pex.Parser[string] = pex.Str("ab")
	require.Equal(t, "ab", p.Parse(pex.NewCursor("abc")).Value())
	require.Equal(t, "ab", pex.RuleOf(p)(pex.NewCursor("ab")).Value())
	require.Equal(t, "ab", pex.Mapped(pex.Str("a"), func(s string) string { return s + "b" })(pex.NewCursor("a")).Value())
	require.True(t, pex.Ignore(pex.Str("a"))(pex.NewCursor("a")).Ok())
}
