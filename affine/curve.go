//go:build !ecfuzz_no_affine

package affine

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the affine reference backend.
func NewBackend() Backend {
	return &BackendImpl{}
}

func (*BackendImpl) Name() string {
	return Name
}

func (*BackendImpl) Process(in *Input) *Output {
	c, err := curveFromTLSID(in.CurveID)
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	p, err := c.parsePoint(in.X(), in.Y())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	k := new(big.Int).SetBytes(in.K())
	return c.encode(c.mul(k, p))
}

func (*BackendImpl) Add(in *Input) *Output {
	c, err := curveFromTLSID(in.CurveID)
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	p1, err := c.parsePoint(in.X(), in.Y())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	p2, err := c.parsePoint(in.X2(), in.Y2())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	return c.encode(c.add(p1, p2))
}

// point is an affine point; nil is the point at infinity.
type point struct {
	x, y *big.Int
}

// curve is y^2 = x^3 + a*x + b over GF(p) with a prime order n group.
type curve struct {
	p, a, b, n *big.Int
	size       int
}

// curveFromTLSID builds the curve from crypto/elliptic style parameters.
// Every curve with known parameters has cofactor one, so scalars can be
// reduced modulo n.
func curveFromTLSID(id uint16) (*curve, error) {
	params, ok := curves.Params(id)
	if !ok {
		return nil, types.ErrUnsupportedCurve
	}

	p := params.P
	// a = (Gy^2 - Gx^3 - b) / Gx
	a := new(big.Int).Mul(params.Gy, params.Gy)
	gx3 := new(big.Int).Exp(params.Gx, big.NewInt(3), p)
	a.Sub(a, gx3)
	a.Sub(a, params.B)
	a.Mul(a, new(big.Int).ModInverse(params.Gx, p))
	a.Mod(a, p)

	return &curve{
		p:    p,
		a:    a,
		b:    params.B,
		n:    params.N,
		size: (params.BitSize + 7) / 8,
	}, nil
}

func (c *curve) parsePoint(xb, yb []byte) (*point, error) {
	x := new(big.Int).SetBytes(xb)
	y := new(big.Int).SetBytes(yb)
	if x.Cmp(c.p) >= 0 || y.Cmp(c.p) >= 0 {
		return nil, fmt.Errorf("coordinate not below field prime: %w", types.ErrInvalidPoint)
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, fmt.Errorf("(0, 0) has no affine meaning: %w", types.ErrInvalidPoint)
	}
	if !c.isOnCurve(x, y) {
		return nil, fmt.Errorf("point not on curve: %w", types.ErrInvalidPoint)
	}
	return &point{x: x, y: y}, nil
}

func (c *curve) isOnCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, c.p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Add(rhs, c.a)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)
	return lhs.Cmp(rhs) == 0
}

func (c *curve) add(p1, p2 *point) *point {
	switch {
	case p1 == nil:
		return p2
	case p2 == nil:
		return p1
	}

	if p1.x.Cmp(p2.x) == 0 {
		sum := new(big.Int).Add(p1.y, p2.y)
		if sum.Mod(sum, c.p).Sign() == 0 {
			return nil
		}
		return c.double(p1)
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(p2.y, p1.y)
	den := new(big.Int).Sub(p2.x, p1.x)
	den.Mod(den, c.p)
	return c.chord(p1, p2.x, num.Mul(num, den.ModInverse(den, c.p)))
}

func (c *curve) double(p *point) *point {
	if p == nil || p.y.Sign() == 0 {
		return nil
	}

	// lambda = (3*x^2 + a) / (2*y)
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.a)
	den := new(big.Int).Lsh(p.y, 1)
	den.Mod(den, c.p)
	return c.chord(p, p.x, num.Mul(num, den.ModInverse(den, c.p)))
}

// chord returns the third intersection of the line with slope lambda
// through p1 and the point with x coordinate x2, reflected.
func (c *curve) chord(p1 *point, x2, lambda *big.Int) *point {
	lambda.Mod(lambda, c.p)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)
	return &point{x: x3, y: y3}
}

// mul is left-to-right double-and-add on k mod n.
func (c *curve) mul(k *big.Int, p *point) *point {
	k = new(big.Int).Mod(k, c.n)

	var r *point
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.double(r)
		if k.Bit(i) == 1 {
			r = c.add(r, p)
		}
	}
	return r
}

func (c *curve) encode(p *point) *Output {
	out := new(Output)
	if p == nil {
		out.SetInfinity(0)
		return out
	}
	out.SetUncompressed(0, c.size, p.x.Bytes(), p.y.Bytes())
	return out
}

func errorCode(err error) types.ErrorCode {
	switch {
	case err == nil:
		return types.ErrorNone
	case errors.Is(err, types.ErrUnsupportedCurve),
		errors.Is(err, types.ErrInvalidPoint):
		return types.ErrorUnsupported
	default:
		return types.ErrorUnknown
	}
}
