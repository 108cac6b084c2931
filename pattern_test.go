package pex_test

import (
	"regexp"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/pex"
)

type location struct {
	Start, End int
	OK         bool
}

func find(p pex.Pattern, haystack string) location {
	start, end, ok := p.Find(haystack)
	return location{start, end, ok}
}

func prefix(p pex.Pattern, haystack string) location {
	n, ok := p.MatchPrefix(haystack)
	return location{0, n, ok}
}

func TestRunePattern(t *testing.T) {
	p := pex.Rune('→')
	require.Equal(t, location{0, 3, true}, prefix(p, "→x"))
	require.Equal(t, location{0, 0, false}, prefix(p, "x→"))
	require.Equal(t, location{1, 4, true}, find(p, "x→"))
	require.Equal(t, location{0, 0, false}, find(p, "xyz"))
}

func TestLiteralPattern(t *testing.T) {
	p := pex.Literal(`"""`)
	require.Equal(t, location{0, 3, true}, prefix(p, `"""abc`))
	require.Equal(t, location{0, 0, false}, prefix(p, `""abc`))
	require.Equal(t, location{3, 6, true}, find(p, `abc"""`))
}

func TestRegexpPattern(t *testing.T) {
	p := pex.Regexp(regexp.MustCompile(`\*+/`))
	require.Equal(t, location{0, 3, true}, prefix(p, `**/ rest`))
	require.Equal(t, location{0, 0, false}, prefix(p, ` **/`))
	require.Equal(t, location{9, 11, true}, find(p, `body *** */`), "leftmost match")
}

func TestRegexpPatternAnchoring(t *testing.T) {
	p := pex.MustRegexp(`(?i)b|ab`)
	require.Equal(t, location{0, 2, true}, prefix(p, "ABc"))
	require.Equal(t, location{0, 0, false}, prefix(p, "cab"))
	require.Equal(t, location{1, 3, true}, find(p, "cab"))

	// A pattern that can only match at the end of a long input must fail
	// at every earlier offset.
	digits := pex.MustRegexp(`[0-9]+`)
	input := strings.Repeat("a", 4096) + "1"
	for i := 0; i < len(input)-1; i++ {
		require.Equal(t, location{0, 0, false}, prefix(digits, input[i:]))
	}
	require.Equal(t, location{0, 1, true}, prefix(digits, input[len(input)-1:]))
}

func BenchmarkRegexpPrefixScan(b *testing.B) {
	digits := pex.MustRegexp(`[0-9]+`)
	input := strings.Repeat("a", 8192) + "1"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range input {
			digits.MatchPrefix(input[j:])
		}
	}
}

func TestSetPattern(t *testing.T) {
	p := pex.InSet(pex.Tables(unicode.Greek))
	require.Equal(t, location{0, 2, true}, prefix(p, "λx"))
	require.Equal(t, location{0, 0, false}, prefix(p, "xλ"))
	require.Equal(t, location{1, 3, true}, find(p, "xλ"))

	digits := pex.InSet(pex.MembershipFunc(unicode.IsDigit))
	require.Equal(t, location{2, 3, true}, find(digits, "ab3"))
}

func TestNamedPatternDiagnostic(t *testing.T) {
	closing := pex.Named(pex.Rune('}'), "RBRACE")
	require.Equal(t, "RBRACE", closing.Label)
	require.Equal(t, pex.MissingStringError{Label: "RBRACE", Pos: 0}, pex.NewCursor("]").MatchPattern(closing).Err())
}
