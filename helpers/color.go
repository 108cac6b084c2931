package helpers

import (
	"image/color"

	"github.com/alecthomas/pex"
)

// HexColor matches prefix, ignoring ASCII case, followed by 1, 2, 3, 4, 6 or
// 8 hexadecimal digits.
//
//	#F      grey level, repeated: #FFFFFF
//	#7F     grey level: #7F7F7F
//	#F80    RGB, each digit repeated: #FF8800
//	#F80C   RGBA, each digit repeated
//	#FF8800 RGB
//	#FF8800CC RGBA
//
// Colours without an alpha component are opaque. Any other number of
// digits, including none, is an error.
func HexColor(c pex.Cursor, prefix string) pex.Result[color.RGBA] {
	if prefix != "" {
		var err pex.Error
		c, _, err = c.MatchStrInsensitive(prefix).Unpack()
		if err != nil {
			return pex.Stop[color.RGBA](err)
		}
	}
	n := 0
	for n < len(c.Residual) && isHex(c.Residual[n]) {
		n++
	}
	d := c.Residual[:n]
	var out color.RGBA
	switch n {
	case 1:
		g := short(d[0])
		out = color.RGBA{g, g, g, 0xFF}
	case 2:
		g := long(d[0], d[1])
		out = color.RGBA{g, g, g, 0xFF}
	case 3:
		out = color.RGBA{short(d[0]), short(d[1]), short(d[2]), 0xFF}
	case 4:
		out = color.RGBA{short(d[0]), short(d[1]), short(d[2]), short(d[3])}
	case 6:
		out = color.RGBA{long(d[0], d[1]), long(d[2], d[3]), long(d[4], d[5]), 0xFF}
	case 8:
		out = color.RGBA{long(d[0], d[1]), long(d[2], d[3]), long(d[4], d[5]), long(d[6], d[7])}
	default:
		return pex.Stop[color.RGBA](pex.Errorf(c.Offset, c.Offset+n,
			"hex colour must have 1, 2, 3, 4, 6 or 8 digits, got %d", n))
	}
	return pex.Pending(c.Advance(n), out)
}

func isHex(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// hexValue of an ASCII hex digit, which must satisfy isHex.
func hexValue(b byte) uint8 {
	switch {
	case b <= '9':
		return b - '0'
	case b >= 'a':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func short(b byte) uint8 { return hexValue(b) * 0x11 }

func long(hi, lo byte) uint8 { return hexValue(hi)<<4 | hexValue(lo) }
