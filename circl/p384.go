//go:build !ecfuzz_no_circl

package circl

import (
	"errors"
	"math/big"

	"github.com/cloudflare/circl/ecc/p384"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/weierstrass"
	"github.com/athanorlabs/go-ecfuzz/types"
)

const scalarSize = 48

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the circl P-384 backend.
func NewBackend() Backend {
	return &BackendImpl{}
}

func (*BackendImpl) Name() string {
	return Name
}

func (*BackendImpl) Process(in *Input) *Output {
	if in.CurveID != curves.Secp384r1 {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	c := p384.P384()
	x, y, err := weierstrass.ParsePoint(c, in.X(), in.Y())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	// The group has prime order, so k*P is the identity exactly when k is
	// a multiple of n. The library has no affine spelling for it.
	k := new(big.Int).SetBytes(in.K())
	k.Mod(k, c.Params().N)
	out := new(Output)
	if k.Sign() == 0 {
		out.SetInfinity(0)
		return out
	}

	rx, ry := c.ScalarMult(x, y, k.FillBytes(make([]byte, scalarSize)))
	out.SetAffine(0, scalarSize, rx, ry)
	return out
}

func (*BackendImpl) Add(in *Input) *Output {
	if in.CurveID != curves.Secp384r1 {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	c := p384.P384()
	x1, y1, err := weierstrass.ParsePoint(c, in.X(), in.Y())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	x2, y2, err := weierstrass.ParsePoint(c, in.X2(), in.Y2())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	out := new(Output)
	var rx, ry *big.Int
	switch {
	case x1.Cmp(x2) != 0:
		rx, ry = c.Add(x1, y1, x2, y2)
	case y1.Cmp(y2) == 0:
		rx, ry = c.Double(x1, y1)
	default:
		// P + (-P)
		out.SetInfinity(0)
		return out
	}
	out.SetAffine(0, scalarSize, rx, ry)
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
