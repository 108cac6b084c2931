package helpers

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/alecthomas/pex"
)

// Number is any type a decimal literal can be converted to.
type Number interface {
	constraints.Integer | constraints.Float
}

// DecimalString matches a run of ASCII digits containing at most one '.'.
func DecimalString(c pex.Cursor) pex.Result[string] {
	dot := false
	n := 0
	for ; n < len(c.Residual); n++ {
		b := c.Residual[n]
		if b == '.' && !dot {
			dot = true
			continue
		}
		if b < '0' || b > '9' {
			break
		}
	}
	if n == 0 {
		return pex.Stop[string](pex.MissingStringError{Label: "DECIMAL_LITERAL", Pos: c.Offset})
	}
	return c.AdvanceView(n)
}

// Decimal matches a DecimalString and converts it to T.
//
// Text that does not fit T, such as "1.5" for an integer type or "." on its
// own, is reported as a CustomError covering the literal.
func Decimal[T Number](c pex.Cursor) pex.Result[T] {
	next, text, err := DecimalString(c).Unpack()
	if err != nil {
		return pex.Stop[T](err)
	}
	return convert[T](c, next, text)
}

// DecimalInteger matches a run of ASCII digits and converts it to T.
func DecimalInteger[T constraints.Integer](c pex.Cursor) pex.Result[T] {
	next, text, err := c.MatchStrIf(isDigit, "DECIMAL_DIGITS").Unpack()
	if err != nil {
		return pex.Stop[T](err)
	}
	return convert[T](c, next, text)
}

func convert[T Number](start, next pex.Cursor, text string) pex.Result[T] {
	var zero T
	t := reflect.TypeOf(zero)
	var (
		value T
		err   error
	)
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		var f float64
		f, err = strconv.ParseFloat(text, t.Bits())
		value = T(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		i, err = strconv.ParseInt(text, 10, t.Bits())
		value = T(i)
	default:
		var u uint64
		u, err = strconv.ParseUint(text, 10, t.Bits())
		value = T(u)
	}
	if err != nil {
		return pex.Stop[T](pex.Errorf(start.Offset, next.Offset, "invalid %s literal %q", t, text))
	}
	return pex.Pending(next, value)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// Base is a radix mark such as the x in 0x.
type Base struct {
	Mark  rune
	Radix int
}

// Common radix marks.
var (
	Hexadecimal = Base{'x', 16}
	Octal       = Base{'o', 8}
	Binary      = Base{'b', 2}
)

// BasedLiteral is an integer written with an explicit radix, such as 0x1F.
type BasedLiteral struct {
	Base   Base
	Digits pex.StringView
}

// Uint64 value of the literal.
func (b BasedLiteral) Uint64() (uint64, error) {
	return strconv.ParseUint(b.Digits.Text, b.Base.Radix, 64)
}

// BasedInteger matches leading, one of marks and then one or more digits
// valid in that radix. Underscores are not accepted.
//
//	helpers.BasedInteger(c, '0', helpers.Hexadecimal, helpers.Binary)
func BasedInteger(c pex.Cursor, leading rune, marks ...Base) pex.Result[BasedLiteral] {
	next, _, err := c.MatchChar(leading).Unpack()
	if err != nil {
		return pex.Stop[BasedLiteral](err)
	}
	r, ok := next.Peek()
	for _, base := range marks {
		if !ok || r != base.Mark {
			continue
		}
		body := next.AdvanceRune(r)
		end, digits, err := body.MatchStrIf(radixDigit(base.Radix), radixLabel(base.Radix)).Unpack()
		if err != nil {
			return pex.Stop[BasedLiteral](err)
		}
		return pex.Pending(end, BasedLiteral{Base: base, Digits: pex.NewStringView(digits, body.Offset)})
	}
	return pex.Stop[BasedLiteral](pex.MissingCharSetError{Label: markLabel(marks), Pos: next.Offset})
}

func radixDigit(radix int) func(rune) bool {
	return func(r rune) bool {
		var v int
		switch {
		case '0' <= r && r <= '9':
			v = int(r - '0')
		case 'a' <= r && r <= 'z':
			v = int(r-'a') + 10
		case 'A' <= r && r <= 'Z':
			v = int(r-'A') + 10
		default:
			return false
		}
		return v < radix
	}
}

func radixLabel(radix int) string {
	return "BASE" + strconv.Itoa(radix) + "_DIGITS"
}

func markLabel(marks []Base) string {
	out := make([]rune, 0, len(marks)*2+1)
	out = append(out, '[')
	for _, base := range marks {
		out = append(out, base.Mark)
	}
	return string(append(out, ']'))
}
