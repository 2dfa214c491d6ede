package ecfuzz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var errInputBytesTooShort = errors.New("input bytes too short")

// headerLen covers the curve id and the two size bytes.
const headerLen = 4

// Serialize encodes the input for replay:
//
//	u16 curve id | u8 coordSize | u8 scalarSize |
//	coordX | coordY | coord2X | coord2Y | scalar
//
// Coordinates are written with exactly CoordSize bytes, left-padded or
// truncated to their low-order bytes; the scalar likewise with ScalarSize.
func Serialize(in *Input) ([]byte, error) {
	if in.CoordSize < 0 || in.CoordSize > 0xff {
		return nil, fmt.Errorf("coordinate size %d does not fit the layout", in.CoordSize)
	}
	if in.ScalarSize < 0 || in.ScalarSize > 0xff {
		return nil, fmt.Errorf("scalar size %d does not fit the layout", in.ScalarSize)
	}

	b := make([]byte, headerLen, headerLen+4*in.CoordSize+in.ScalarSize)
	binary.BigEndian.PutUint16(b, in.CurveID)
	b[2] = byte(in.CoordSize)
	b[3] = byte(in.ScalarSize)

	b = append(b, fixed(in.X(), in.CoordSize)...)
	b = append(b, fixed(in.Y(), in.CoordSize)...)
	b = append(b, fixed(in.X2(), in.CoordSize)...)
	b = append(b, fixed(in.Y2(), in.CoordSize)...)
	b = append(b, fixed(in.K(), in.ScalarSize)...)
	return b, nil
}

// Deserialize decodes an input written by Serialize. Bytes after the
// scalar are ignored.
func Deserialize(b []byte) (*Input, error) {
	reader := bytes.NewBuffer(b)
	if reader.Len() < headerLen {
		return nil, errInputBytesTooShort
	}

	in := &Input{
		CurveID: binary.BigEndian.Uint16(reader.Next(2)),
	}
	in.CoordSize = int(reader.Next(1)[0])
	in.ScalarSize = int(reader.Next(1)[0])

	if reader.Len() < 4*in.CoordSize+in.ScalarSize {
		return nil, errInputBytesTooShort
	}

	in.CoordX = clone(reader.Next(in.CoordSize))
	in.CoordY = clone(reader.Next(in.CoordSize))
	in.Coord2X = clone(reader.Next(in.CoordSize))
	in.Coord2Y = clone(reader.Next(in.CoordSize))
	in.Scalar = clone(reader.Next(in.ScalarSize))
	return in, nil
}

// fixed returns b as exactly n bytes.
func fixed(b []byte, n int) []byte {
	out := make([]byte, n)
	if len(b) > n {
		b = b[len(b)-n:]
	}
	copy(out[n-len(b):], b)
	return out
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
