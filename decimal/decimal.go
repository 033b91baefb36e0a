package decimal

import (
	"github.com/zeebo/errs"
	"lukechampine.com/uint128"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// ErrInvalidPrecision is the class of errors for a precision outside
// [MinPrec, MaxPrec].
var ErrInvalidPrecision = errs.Class("invalid precision")

// Precision limits.
const (
	MinPrec = 1
	MaxPrec = 95
)

const signBit = 0b_1000_0000_0000_0000_0000_0000_0000_0000

// Decimal is a fixed point signed number. See the package documentation for
// the layout.
//
// Decimals are immutable values. The zero value is not a valid Decimal (its
// precision is 0); use Zero.
type Decimal struct {
	high uint32
	med  uint32
	low  uint32
	prec uint8
}

var (
	// Max is the largest value at full precision.
	Max = Decimal{
		high: 0b_0111_1111_1111_1111_1111_1111_1111_1111,
		med:  0b_1111_1111_1111_1111_1111_1111_1111_1111,
		low:  0b_1111_1111_1111_1111_1111_1111_1111_1111,
		prec: MaxPrec,
	}

	// Min has every bit set at full precision. In two's complement that
	// is -2^-64, the negative value closest to zero.
	Min = Decimal{
		high: 0b_1111_1111_1111_1111_1111_1111_1111_1111,
		med:  0b_1111_1111_1111_1111_1111_1111_1111_1111,
		low:  0b_1111_1111_1111_1111_1111_1111_1111_1111,
		prec: MaxPrec,
	}

	// Zero is zero at full precision.
	Zero = Decimal{
		prec: MaxPrec,
	}
)

// New returns the decimal with the given words and precision. The words are
// stored verbatim. It returns an error of class ErrInvalidPrecision if prec is
// not within [MinPrec, MaxPrec].
func New(high, med, low uint32, prec uint8) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	if prec < MinPrec || prec > MaxPrec {
		return Decimal{}, ErrInvalidPrecision.New(
			"prec=%d must be in [%d, %d]",
			prec,
			MinPrec,
			MaxPrec,
		)
	}

	return Decimal{
		high: high,
		med:  med,
		low:  low,
		prec: prec,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(high, med, low uint32, prec uint8) Decimal {
	d, err := New(high, med, low, prec)
	if err != nil {
		panic(err)
	}

	return d
}

// Words returns the three words of d.
func (d Decimal) Words() (high, med, low uint32) {
	return d.high, d.med, d.low
}

// Prec returns the number of significant magnitude bits.
func (d Decimal) Prec() uint8 {
	return d.prec
}

// Signbit reports whether the sign bit is set.
func (d Decimal) Signbit() bool {
	return d.high&signBit != 0
}

// Unsign returns d with the sign bit cleared.
func (d Decimal) Unsign() Decimal {
	d.high &^= signBit

	return d
}

// bits returns all 96 bits of d right aligned.
func (d Decimal) bits() uint128.Uint128 {
	return uint128.New(uint64(d.med)<<32|uint64(d.low), uint64(d.high))
}

// magnitude returns the 95 magnitude bits of d right aligned.
func (d Decimal) magnitude() uint128.Uint128 {
	return d.Unsign().bits()
}

// insignificant returns the number of magnitude bits below the precision.
func (d Decimal) insignificant() uint {
	return uint(MaxPrec - d.prec)
}

// IsZero reports whether every bit is zero. The precision is ignored.
func (d Decimal) IsZero() bool {
	return d.high == 0 && d.med == 0 && d.low == 0
}

// IsPositive reports whether the sign bit is clear and d is not zero. The
// precision is ignored.
func (d Decimal) IsPositive() bool {
	return !d.Signbit() && !d.IsZero()
}

// IsNegative reports whether the sign bit is set. The precision is ignored and
// a set sign bit over a zero magnitude is negative.
func (d Decimal) IsNegative() bool {
	return d.Signbit()
}

// IsApproxZero reports whether the significant magnitude bits are all zero.
// Bits below the precision are ignored.
func (d Decimal) IsApproxZero() bool {
	return d.magnitude().Rsh(d.insignificant()).IsZero()
}

// IsApproxPositive reports whether d is positive and not approximately zero.
func (d Decimal) IsApproxPositive() bool {
	return d.IsPositive() && !d.IsApproxZero()
}

// IsApproxNegative reports whether d is negative and not approximately zero.
func (d Decimal) IsApproxNegative() bool {
	return d.IsNegative() && !d.IsApproxZero()
}

// truncate returns d with the magnitude bits below the precision cleared.
func (d Decimal) truncate() Decimal {
	b := d.bits().And(uint128.Max.Lsh(d.insignificant()))

	d.high = uint32(b.Hi)
	d.med = uint32(b.Lo >> 32)
	d.low = uint32(b.Lo)

	return d
}
