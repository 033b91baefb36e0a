package control_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixed96/control"
	"github.com/calebcase/oops"
)

// reader hides any io.Seeker implementation of the underlying reader.
type reader struct {
	io.Reader
}

func TestDecoder(t *testing.T) {
	type TC struct {
		Input    []byte
		Types    []control.Type
		Data     [][]byte
		Consumed uint64
		Mark     error
	}

	tcs := []TC{
		{
			Input:    []byte{},
			Types:    nil,
			Data:     nil,
			Consumed: 0,
			Mark:     oops.New("unexpected"),
		},
		{
			Input:    []byte{0b_1000_0000},
			Types:    []control.Type{control.Data},
			Data:     [][]byte{{0b_0000_0000}},
			Consumed: 1,
			Mark:     oops.New("unexpected"),
		},
		{
			Input: []byte{
				0b_1101_1111,
				0b_0000_0000,
				0b_0000_0001,
			},
			Types: []control.Type{
				control.Data,
				control.Null,
				control.Empty,
			},
			Data: [][]byte{
				{0b_0101_1111},
				nil,
				nil,
			},
			Consumed: 3,
			Mark:     oops.New("unexpected"),
		},
		{
			Input: []byte{
				0b_0011_0000, 0b_1010_1010,
				0b_0001_1000, 0b_0000_0000, 0b_0000_0001,
				0b_0100_0001, 0b_0010_0000, 0b_0000_0000,
			},
			Types: []control.Type{
				control.Data1,
				control.Data2,
				control.DataSize,
			},
			Data: [][]byte{
				{0b_0001_0000, 0b_1010_1010},
				{0b_0000_1000, 0b_0000_0000, 0b_0000_0001},
				{0b_0010_0000, 0b_0000_0000},
			},
			Consumed: 8,
			Mark:     oops.New("unexpected"),
		},
		{
			Input: append(
				[]byte{0b_0000_1000, 0b_0100_0000},
				repeat(0b_0000_0001, 65)...,
			),
			Types: []control.Type{
				control.DataSizeSize,
			},
			Data: [][]byte{
				repeat(0b_0000_0001, 65),
			},
			Consumed: 67,
			Mark:     oops.New("unexpected"),
		},
	}

	t.Run("data", func(t *testing.T) {
		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewReader(tc.Input))

				var types []control.Type
				var data [][]byte

				for d.Next() {
					field := d.Type()
					types = append(types, field)

					t.Logf("Type: %s\n", field)

					if !field.IsData() {
						data = append(data, nil)

						continue
					}

					tmp, err := d.Data()
					require.NoError(t, err, tc.Mark)

					t.Logf("Data: %s\n", spew.Sdump(tmp))

					data = append(data, tmp)
				}
				require.NoError(t, d.Err(), tc.Mark)

				require.Equal(t, tc.Types, types, tc.Mark)
				require.Equal(t, tc.Data, data, tc.Mark)
				require.Equal(t, tc.Consumed, d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("next", func(t *testing.T) {
		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				for _, r := range []io.Reader{
					bytes.NewReader(tc.Input),
					&reader{bytes.NewReader(tc.Input)},
				} {
					d := control.NewDecoder(r)

					var types []control.Type
					for d.Next() {
						types = append(types, d.Type())
					}
					require.NoError(t, d.Err(), tc.Mark)

					require.Equal(t, tc.Types, types, tc.Mark)
					require.Equal(t, tc.Consumed, d.Consumed(), tc.Mark)
				}
			})
		}
	})

	t.Run("size", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader([]byte{
			0b_0000_1001, 0b_0000_0011, 0b_1111_1111,
		}))

		require.True(t, d.Next())
		require.Equal(t, control.DataSizeSize, d.Type())

		size, err := d.Size()
		require.NoError(t, err)
		require.Equal(t, uint64(1024), size)
		require.Equal(t, uint64(3), d.Consumed())
	})

	t.Run("invalid", func(t *testing.T) {
		type TC struct {
			Input []byte
			Mark  error
		}

		tcs := []TC{
			{
				// Reserved container block.
				Input: []byte{0b_0000_0101},
				Mark:  oops.New("unexpected"),
			},
			{
				// Reserved skip size block.
				Input: []byte{0b_0000_0010, 0b_0000_0001},
				Mark:  oops.New("unexpected"),
			},
			{
				// Truncated data size.
				Input: []byte{0b_0100_0010, 0b_0000_0001},
				Mark:  oops.New("unexpected"),
			},
			{
				// Truncated data + 2.
				Input: []byte{0b_0001_0000, 0b_0000_0001},
				Mark:  oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				d := control.NewDecoder(&reader{bytes.NewReader(tc.Input)})

				for d.Next() {
					if d.Type().IsData() {
						_, err := d.Data()
						require.Error(t, err, tc.Mark)
					}
				}
				require.Error(t, d.Err(), tc.Mark)
			})
		}
	})

	t.Run("oversized skip", func(t *testing.T) {
		// Declares 2^63 data bytes.
		input := append(
			[]byte{0b_0000_1111, 0b_0111_1111},
			bytes.Repeat([]byte{0b_1111_1111}, 7)...,
		)
		input = append(input, 0b_1000_0001)

		for _, r := range []io.Reader{
			bytes.NewReader(input),
			&reader{bytes.NewReader(input)},
		} {
			d := control.NewDecoder(r)

			require.True(t, d.Next())
			require.Equal(t, control.DataSizeSize, d.Type())

			require.False(t, d.Next())
			require.Error(t, d.Err())
			require.True(t, control.Error.Has(d.Err()))
			require.Contains(t, d.Err().Error(), "unimplemented")
		}
	})

	t.Run("invalid operation", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader([]byte{0b_0000_0000}))

		require.True(t, d.Next())
		require.Equal(t, control.Null, d.Type())

		_, err := d.Data()
		require.Error(t, err)

		_, err = d.Size()
		require.Error(t, err)
	})
}
