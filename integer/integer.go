// Package integer provides the BSV signed integer field.
//
// Integers are encoded big-endian. Signed integers carry the sign in the
// trailing bit (the magnitude is shifted left by one), so small magnitudes of
// either sign stay small on the wire:
//
//  +0 = 0b_0000_0000
//  -0 = 0b_0000_0001
//  +1 = 0b_0000_0010
//  -1 = 0b_0000_0011
//
// A negative zero is representable and round-trips. fixed96 relies on this to
// carry a set sign bit over an all-zero magnitude.
package integer

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed96/control"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return bytesOf(i), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	b.Value = bytesOf(i)

	return nil
}

// bytesOf returns the big-endian bytes of i.
//
// Note: big.Int encodes zero as an empty byte array, but we desire zero to be
// an actual zero byte.
func bytesOf(i *big.Int) (data []byte) {
	data = i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// Schema for an integer.
type Schema struct {
	// Bits is the maximum number of magnitude bits. Zero means unbounded.
	Bits uint64

	Signed   bool
	Nullable bool
}

func (s Schema) check(b *Block) (err error) {
	if b.Negative && !s.Signed {
		return Error.New("negative value for unsigned integer")
	}

	if s.Bits != 0 {
		bits := new(big.Int).SetBytes(b.Value).BitLen()
		if uint64(bits) > s.Bits {
			return Error.New("too large: bits=%d max=%d", bits, s.Bits)
		}
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next field into b. A Null field (allowed only by nullable
// schemas) leaves b.Value nil. At the end of the input the returned error
// matches io.EOF (errors.Is).
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return io.EOF
	}

	t := d.cd.Type()

	switch {
	case t == control.Null:
		if !d.schema.Nullable {
			return Error.New("null value for non-nullable integer")
		}

		b.Value = nil
		b.Negative = false

		return nil
	case !t.IsData():
		return Error.New("unexpected field: %s", t)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		err = b.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	} else {
		b.Value = bytesOf(new(big.Int).SetBytes(data))
		b.Negative = false
	}

	return d.schema.check(b)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block. A nil block or a nil value is written as Null when
// the schema is nullable.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("null value for non-nullable integer")
		}

		return e.ce.Null()
	}

	err = e.schema.check(b)
	if err != nil {
		return err
	}

	var data []byte

	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = bytesOf(new(big.Int).SetBytes(b.Value))
	}

	return e.ce.Data(data)
}
