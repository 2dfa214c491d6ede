package types

import "math/big"

const (
	// NumPoints is the capacity of Output.Points.
	NumPoints = 1
	// MaxPointLen fits an uncompressed secp521r1 point.
	MaxPointLen = 1 + 2*66
)

// Output is the result of one backend call. Points are only meaningful
// when Error is ErrorNone.
type Output struct {
	Points     [NumPoints][MaxPointLen]byte
	PointSizes [NumPoints]int
	Error      ErrorCode
}

// NewErrorOutput returns an output carrying only an error classification.
func NewErrorOutput(code ErrorCode) *Output {
	out := new(Output)
	out.SetError(code)
	return out
}

// Point returns the encoding of point i.
func (o *Output) Point(i int) []byte {
	return o.Points[i][:o.PointSizes[i]]
}

// SetError records a classification and drops any encoded points.
func (o *Output) SetError(code ErrorCode) {
	o.Points = [NumPoints][MaxPointLen]byte{}
	o.PointSizes = [NumPoints]int{}
	o.Error = code
}

// SetInfinity encodes the identity element as the single byte 0x00.
func (o *Output) SetInfinity(i int) {
	o.Points[i] = [MaxPointLen]byte{}
	o.PointSizes[i] = 1
}

// SetUncompressed encodes 0x04 || x || y with each coordinate left-padded
// to size bytes. Coordinates wider than size are classified as
// ErrorUnknown: a backend returned a value outside its own field.
func (o *Output) SetUncompressed(i, size int, x, y []byte) {
	x, y = TrimLeadingZeros(x), TrimLeadingZeros(y)
	if len(x) > size || len(y) > size || 1+2*size > MaxPointLen {
		o.SetError(ErrorUnknown)
		return
	}

	p := &o.Points[i]
	*p = [MaxPointLen]byte{}
	p[0] = 0x04
	copy(p[1+size-len(x):1+size], x)
	copy(p[1+2*size-len(y):1+2*size], y)
	o.PointSizes[i] = 1 + 2*size
}

// SetAffine encodes a crypto/elliptic style affine result, where (0, 0)
// stands for the point at infinity.
func (o *Output) SetAffine(i, size int, x, y *big.Int) {
	if x.Sign() == 0 && y.Sign() == 0 {
		o.SetInfinity(i)
		return
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		o.SetError(ErrorUnknown)
		return
	}
	o.SetUncompressed(i, size, x.Bytes(), y.Bytes())
}

// SetXOnly encodes the fixed-width coordinate of an x-only curve; an
// all-zero coordinate is the point at infinity.
func (o *Output) SetXOnly(i, size int, u []byte) {
	u = TrimLeadingZeros(u)
	if len(u) == 0 {
		o.SetInfinity(i)
		return
	}
	if len(u) > size || size > MaxPointLen {
		o.SetError(ErrorUnknown)
		return
	}

	p := &o.Points[i]
	*p = [MaxPointLen]byte{}
	copy(p[size-len(u):size], u)
	o.PointSizes[i] = size
}
