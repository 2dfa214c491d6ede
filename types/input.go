package types

// Input is one test vector, shared read-only by every backend.
//
// CoordSize and ScalarSize come from the fuzzer and are not trusted: the
// accessors never return more than the declared size, nor more than the
// underlying slice holds.
type Input struct {
	CurveID uint16

	CoordX, CoordY   []byte
	Coord2X, Coord2Y []byte
	CoordSize        int

	Scalar     []byte
	ScalarSize int
}

// X returns the first point's x coordinate.
func (in *Input) X() []byte {
	return bounded(in.CoordX, in.CoordSize)
}

// Y returns the first point's y coordinate.
func (in *Input) Y() []byte {
	return bounded(in.CoordY, in.CoordSize)
}

// X2 returns the second point's x coordinate.
func (in *Input) X2() []byte {
	return bounded(in.Coord2X, in.CoordSize)
}

// Y2 returns the second point's y coordinate.
func (in *Input) Y2() []byte {
	return bounded(in.Coord2Y, in.CoordSize)
}

// K returns the scalar.
func (in *Input) K() []byte {
	return bounded(in.Scalar, in.ScalarSize)
}

func bounded(b []byte, n int) []byte {
	if n < 0 {
		return nil
	}
	if n > len(b) {
		n = len(b)
	}
	return b[:n:n]
}

// TrimLeadingZeros returns b without its leading zero bytes. The result
// aliases b.
func TrimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

// IsZero reports whether the big-endian integer b is zero. An empty slice
// is zero.
func IsZero(b []byte) bool {
	return len(TrimLeadingZeros(b)) == 0
}
