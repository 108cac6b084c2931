package helpers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/pex"
	"github.com/alecthomas/pex/helpers"
)

func sqlQuoted(c pex.Cursor) pex.Result[helpers.SurroundPair] {
	return helpers.EscapedQuote(c, '\'', '\'')
}

func TestEscapedQuote(t *testing.T) {
	tests := []struct {
		name   string
		rule   pex.Rule[helpers.SurroundPair]
		input  string
		body   string
		offset int
		fail   pex.Error
	}{
		{name: "Simple", rule: helpers.SingleQuoted, input: `'abc' x`, body: "abc", offset: 5},
		{name: "EscapedBoundary", rule: helpers.SingleQuoted, input: `'it\'s'`, body: `it\'s`, offset: 7},
		{name: "EscapedEscape", rule: helpers.DoubleQuoted, input: `"a\\" b"`, body: `a\\`, offset: 5},
		{name: "Empty", rule: helpers.DoubleQuoted, input: `""`, body: "", offset: 2},
		{name: "Multibyte", rule: helpers.DoubleQuoted, input: `"héllo"`, body: "héllo", offset: 8},
		{name: "DoubledBoundary", rule: sqlQuoted, input: `'it''s' x`, body: `it''s`, offset: 7},
		{name: "DoubledBoundaryEmpty", rule: sqlQuoted, input: `'' x`, body: "", offset: 2},
		{name: "DoubledBoundaryOnly", rule: sqlQuoted, input: `''''`, body: `''`, offset: 4},
		{name: "Unclosed", rule: helpers.SingleQuoted, input: `'abc`,
			fail: pex.MissingCharError{Expected: '\'', Pos: 4}},
		{name: "EscapeAtEnd", rule: helpers.SingleQuoted, input: `'ab\`,
			fail: pex.MissingCharError{Expected: '\'', Pos: 4}},
		{name: "NoOpening", rule: helpers.SingleQuoted, input: `abc'`,
			fail: pex.MissingCharError{Expected: '\'', Pos: 0}},
		{name: "DoubledBoundaryUnclosed", rule: sqlQuoted, input: `'a''`,
			fail: pex.MissingCharError{Expected: '\'', Pos: 4}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, pair, err := test.rule(pex.NewCursor(test.input)).Unpack()
			if test.fail != nil {
				require.Equal(t, test.fail, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.body, pair.Body.Text)
			require.Equal(t, test.offset, c.Offset)
			require.Equal(t, 1, pair.Head.Len())
			require.Equal(t, 1, pair.Tail.Len())
			requireContiguous(t, test.input, pair)
		})
	}
}

func TestFencedQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected helpers.SurroundPair
		offset   int
		fail     pex.Error
	}{
		{name: "Single", input: `"abc" x`, offset: 5, expected: helpers.SurroundPair{
			Head: view(`"`, 0), Body: view("abc", 1), Tail: view(`"`, 4),
		}},
		{name: "EmptyPair", input: `""x`, offset: 2, expected: helpers.SurroundPair{
			Head: view(`"`, 0), Body: view("", 1), Tail: view(`"`, 1),
		}},
		{name: "Triple", input: `"""a"b"""`, offset: 9, expected: helpers.SurroundPair{
			Head: view(`"""`, 0), Body: view(`a"b`, 3), Tail: view(`"""`, 6),
		}},
		{name: "Unclosed", input: `"""abc`, fail: pex.MissingCharError{Expected: '"', Pos: 6}},
		{name: "NoMarker", input: `abc`, fail: pex.MissingCharError{Expected: '"', Pos: 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, pair, err := helpers.FencedQuote(pex.NewCursor(test.input), '"').Unpack()
			if test.fail != nil {
				require.Equal(t, test.fail, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(test.expected, pair); diff != "" {
				t.Fatal(diff)
			}
			require.Equal(t, test.offset, c.Offset)
			requireContiguous(t, test.input, pair)
		})
	}
}

func TestFencedQuoteBacktick(t *testing.T) {
	input := "```go\nx := 1\n```"
	c, pair, err := helpers.FencedQuote(pex.NewCursor(input), '`').Unpack()
	require.NoError(t, err)
	require.Equal(t, "go\nx := 1\n", pair.Body.Text)
	require.True(t, c.IsEmpty())
}
