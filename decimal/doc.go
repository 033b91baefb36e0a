// Package decimal provides a 96 bit fixed point signed number with a
// precision tag.
//
// The number is laid out across three 32 bit words, high, med and low. The
// first bit of high is the sign bit. The equation for the number is:
//
//  sign = 0: number =         high + med * 2^-32 + low * 2^-64
//  sign = 1: number = -2^32 + high + med * 2^-32 + low * 2^-64
//
// For example:
//
//  | high        | med         | low         | number          |
//  |-------------|-------------|-------------|-----------------|
//  | 0x0000_0003 | 0x4000_0000 | 0x0000_0000 | 3.25            |
//  | 0xffff_ffff | 0x0000_0000 | 0x0000_0000 | -1              |
//  | 0xffff_fffe | 0x8000_0000 | 0x0000_0000 | -1.5            |
//  | 0x8000_0000 | 0x0000_0000 | 0x0000_0000 | -2147483648     |
//  |-------------|-------------|-------------|-----------------|
//
// Precision
//
// The remaining 95 bits are the magnitude. The precision (1 through 95)
// indicates how many magnitude bits are significant, counted from the most
// significant magnitude bit downward and including leading zeros:
//
//  | 0 | 1 ...                  31 | 32 ...                 63 | 64 ...                 95 |
//  |---|---------------------------|---------------------------|---------------------------|
//  | s | high                      | med                       | low                       |
//  |---|---------------------------|---------------------------|---------------------------|
//      |<-- prec significant bits -->|<-- insignificant padding ----------------------->|
//
// Exact predicates (IsZero, IsPositive, IsNegative) look at every bit and
// ignore the precision. Approximate predicates (IsApproxZero,
// IsApproxPositive, IsApproxNegative) only look at the significant magnitude
// bits, so a number may be approximately zero without being zero.
//
// IsNegative only checks the sign bit. A set sign bit over an all-zero
// magnitude is negative, while IsPositive excludes zero.
//
// Encoding
//
// MarshalBinary writes the three words big-endian followed by the precision
// (13 bytes). Encoder and Decoder write decimals as BSV fields: the precision
// in a Data control block followed by the sign and magnitude as a signed
// integer field (see the integer and control packages):
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 | 1 . 0 . 1 . 1 . 1 . 1 . 1 | Data Control Block with precision 95.
//  |-------------------------------|
//  | 1 | 0 . 0 . 0 . 0 . 0 . 0 . 0 | Data Control Block with value of +0.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// A nil decimal in a nullable field is a single Null control block.
package decimal
