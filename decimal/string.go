package decimal

import (
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// two96 is 2^96, the modulus of the 96 bit layout.
var two96 = uint128.New(0, 1<<32)

// String returns the exact base 10 representation of d. Trailing fractional
// zeros are omitted and there is no fractional part for integral values. The
// precision is ignored; see Text.
func (d Decimal) String() string {
	return d.Text(false)
}

// Text returns the exact base 10 representation of d. If significant is true
// the magnitude bits below the precision are cleared first, rendering d up to
// its declared precision.
func (d Decimal) Text(significant bool) string {
	if significant {
		d = d.truncate()
	}

	neg := d.Signbit()

	// abs is |d| * 2^64: the integer part in Hi and the fraction in Lo.
	abs := d.bits()
	if neg {
		abs = two96.Sub(abs)
	}

	sb := &strings.Builder{}

	if neg {
		sb.WriteByte('-')
	}

	sb.WriteString(strconv.FormatUint(abs.Hi, 10))

	// Every multiplication by 10 shifts in a trailing zero bit, so a 64 bit
	// fraction runs out after at most 64 digits.
	frac := abs.Lo
	if frac != 0 {
		sb.WriteByte('.')
	}

	for frac != 0 {
		p := uint128.From64(frac).Mul64(10)

		sb.WriteByte('0' + byte(p.Hi))
		frac = p.Lo
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}
