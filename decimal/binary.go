package decimal

import "encoding/binary"

// binarySize is the size of the MarshalBinary encoding.
const binarySize = 4 + 4 + 4 + 1

// MarshalBinary implements encoding.BinaryMarshaler. The words are written
// big-endian followed by the precision.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	data = make([]byte, binarySize)

	binary.BigEndian.PutUint32(data[0:], d.high)
	binary.BigEndian.PutUint32(data[4:], d.med)
	binary.BigEndian.PutUint32(data[8:], d.low)
	data[12] = d.prec

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) != binarySize {
		return Error.New("invalid: size=%d want=%d", len(data), binarySize)
	}

	v, err := New(
		binary.BigEndian.Uint32(data[0:]),
		binary.BigEndian.Uint32(data[4:]),
		binary.BigEndian.Uint32(data[8:]),
		data[12],
	)
	if err != nil {
		return err
	}

	*d = v

	return nil
}
