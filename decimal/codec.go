package decimal

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/calebcase/fixed96/control"
	"github.com/calebcase/fixed96/integer"
)

// magnitudeSchema is the integer field carrying the sign and magnitude.
var magnitudeSchema = integer.Schema{
	Bits:   MaxPrec,
	Signed: true,
}

// Schema represents a configured decimal field.
type Schema struct {
	Nullable bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
	id     *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
		id:     integer.NewDecoder(magnitudeSchema, cd),
	}
}

// Decode reads the next decimal. A Null field (allowed only by nullable
// schemas) decodes as nil. At the end of the input the returned error matches
// io.EOF (errors.Is). Input ending after the precision field matches
// io.ErrUnexpectedEOF instead.
func (d *Decoder) Decode() (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, d.cd.Err()
		}

		return nil, io.EOF
	}

	switch t := d.cd.Type(); t {
	case control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null value for non-nullable decimal")
		}

		return nil, nil
	case control.Data:
	default:
		return nil, Error.New("unexpected precision field: %s", t)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}
	prec := data[0]

	b := &integer.Block{}

	err = d.id.Decode(b)
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	// The schema limits the magnitude to 95 bits.
	mag := make([]byte, 12)
	copy(mag[len(mag)-len(b.Value):], b.Value)

	high := binary.BigEndian.Uint32(mag[0:])
	if b.Negative {
		high |= signBit
	}

	v, err := New(
		high,
		binary.BigEndian.Uint32(mag[4:]),
		binary.BigEndian.Uint32(mag[8:]),
		prec,
	)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
	ie     *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
		ie:     integer.NewEncoder(magnitudeSchema, ce),
	}
}

// Encode writes a decimal. A nil decimal is written as Null when the schema is
// nullable.
func (e *Encoder) Encode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if d == nil {
		if !e.schema.Nullable {
			return Error.New("null value for non-nullable decimal")
		}

		return e.ce.Null()
	}

	if d.prec < MinPrec || d.prec > MaxPrec {
		return ErrInvalidPrecision.New("prec=%d", d.prec)
	}

	err = e.ce.Data([]byte{d.prec})
	if err != nil {
		return err
	}

	mag := make([]byte, 12)
	binary.BigEndian.PutUint32(mag[0:], d.high&^signBit)
	binary.BigEndian.PutUint32(mag[4:], d.med)
	binary.BigEndian.PutUint32(mag[8:], d.low)

	return e.ie.Encode(&integer.Block{
		Value:    mag,
		Negative: d.Signbit(),
	})
}
