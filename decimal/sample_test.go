package decimal_test

import (
	"math/rand"

	"github.com/calebcase/fixed96/decimal"
)

// samples returns decimals covering the constants, word boundaries at every
// precision and a fixed set of pseudo-random bit patterns.
func samples() (ds []decimal.Decimal) {
	ds = append(ds, decimal.Max, decimal.Min, decimal.Zero)

	patterns := [][3]uint32{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0x8000_0000, 0, 0},
		{0x8000_0000, 0, 1},
		{0x4000_0000, 0, 0},
		{0x7fff_ffff, 0xffff_ffff, 0xffff_ffff},
		{0xffff_ffff, 0xffff_ffff, 0xffff_ffff},
		{0, 0x8000_0000, 0},
		{0, 0, 0x8000_0000},
	}

	rng := rand.New(rand.NewSource(96))
	for i := 0; i < 16; i++ {
		patterns = append(patterns, [3]uint32{
			rng.Uint32(),
			rng.Uint32(),
			rng.Uint32(),
		})
	}

	for _, p := range patterns {
		for _, prec := range []uint8{1, 2, 10, 30, 31, 32, 33, 62, 63, 64, 94, 95} {
			ds = append(ds, decimal.MustNew(p[0], p[1], p[2], prec))
		}
	}

	return ds
}
