// Package weierstrass holds the adapter steps shared by backends whose
// library exposes the crypto/elliptic.Curve interface.
package weierstrass

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecfuzz/types"
)

// Size returns the byte length of a field element of c.
func Size(c elliptic.Curve) int {
	return (c.Params().BitSize + 7) / 8
}

// ParsePoint decodes big-endian affine coordinates and checks them against
// c. The (0, 0) pair, which crypto/elliptic uses for the point at
// infinity, is rejected along with coordinates outside the field and
// points off the curve. Some implementations panic on such points.
func ParsePoint(c elliptic.Curve, xb, yb []byte) (*big.Int, *big.Int, error) {
	x := new(big.Int).SetBytes(xb)
	y := new(big.Int).SetBytes(yb)

	p := c.Params().P
	if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return nil, nil, fmt.Errorf("coordinate not below field prime: %w", types.ErrInvalidPoint)
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil, fmt.Errorf("(0, 0) has no affine meaning: %w", types.ErrInvalidPoint)
	}
	if !c.IsOnCurve(x, y) {
		return nil, nil, fmt.Errorf("point not on %s: %w", c.Params().Name, types.ErrInvalidPoint)
	}
	return x, y, nil
}

// ScalarMult computes k*(x, y) and encodes the result. maxScalarLen bounds
// the significant bytes of k the library accepts; zero means unbounded.
func ScalarMult(c elliptic.Curve, in *types.Input, maxScalarLen int) (*types.Output, error) {
	x, y, err := ParsePoint(c, in.X(), in.Y())
	if err != nil {
		return nil, err
	}

	k := types.TrimLeadingZeros(in.K())
	if maxScalarLen > 0 && len(k) > maxScalarLen {
		return nil, fmt.Errorf("%d byte scalar exceeds %d: %w", len(k), maxScalarLen, types.ErrScalarRange)
	}

	rx, ry := c.ScalarMult(x, y, k)
	return encode(c, rx, ry), nil
}

// Add computes (x1, y1) + (x2, y2) and encodes the result.
func Add(c elliptic.Curve, in *types.Input) (*types.Output, error) {
	x1, y1, err := ParsePoint(c, in.X(), in.Y())
	if err != nil {
		return nil, err
	}
	x2, y2, err := ParsePoint(c, in.X2(), in.Y2())
	if err != nil {
		return nil, err
	}

	rx, ry := c.Add(x1, y1, x2, y2)
	return encode(c, rx, ry), nil
}

func encode(c elliptic.Curve, x, y *big.Int) *types.Output {
	out := new(types.Output)
	if x == nil || y == nil {
		out.SetError(types.ErrorUnknown)
		return out
	}
	out.SetAffine(0, Size(c), x, y)
	return out
}
