//go:build !ecfuzz_no_gnark

package gnark

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the gnark-crypto backend.
func NewBackend() Backend {
	return &BackendImpl{}
}

func (*BackendImpl) Name() string {
	return Name
}

func (*BackendImpl) Process(in *Input) *Output {
	if !supported(in.CurveID) {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	p, err := parsePoint(in.X(), in.Y())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	// The GLV split is only exercised on reduced scalars upstream.
	k := new(big.Int).SetBytes(in.K())
	k.Mod(k, fr.Modulus())

	var pj, res secp256k1.G1Jac
	pj.FromAffine(p)
	res.ScalarMultiplication(&pj, k)
	return encode(&res)
}

func (*BackendImpl) Add(in *Input) *Output {
	if !supported(in.CurveID) {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	p1, err := parsePoint(in.X(), in.Y())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	p2, err := parsePoint(in.X2(), in.Y2())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	var res, q secp256k1.G1Jac
	res.FromAffine(p1)
	q.FromAffine(p2)
	res.AddAssign(&q)
	return encode(&res)
}

// supported is the curve identity map: gnark-crypto implements many
// pairing and cycle curves but only secp256k1 is in the TLS registry.
func supported(id uint16) bool {
	return id == curves.Secp256k1
}

func parsePoint(xb, yb []byte) (*secp256k1.G1Affine, error) {
	x := new(big.Int).SetBytes(xb)
	y := new(big.Int).SetBytes(yb)

	// fp.Element.SetBigInt reduces silently.
	p := fp.Modulus()
	if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return nil, fmt.Errorf("coordinate not below field prime: %w", types.ErrInvalidPoint)
	}
	// (0, 0) is how G1Affine spells infinity.
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, fmt.Errorf("(0, 0) has no affine meaning: %w", types.ErrInvalidPoint)
	}

	var pt secp256k1.G1Affine
	pt.X.SetBigInt(x)
	pt.Y.SetBigInt(y)
	if !pt.IsOnCurve() {
		return nil, fmt.Errorf("point not on secp256k1: %w", types.ErrInvalidPoint)
	}
	return &pt, nil
}

func encode(p *secp256k1.G1Jac) *Output {
	out := new(Output)
	if p.Z.IsZero() {
		out.SetInfinity(0)
		return out
	}

	var aff secp256k1.G1Affine
	aff.FromJacobian(p)
	if aff.IsInfinity() {
		out.SetInfinity(0)
		return out
	}

	x, y := aff.X.Bytes(), aff.Y.Bytes()
	out.SetUncompressed(0, fp.Bytes, x[:], y[:])
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
