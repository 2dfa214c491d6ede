//go:build !ecfuzz_no_secp256k1

package secp256k1

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

const fieldSize = 32

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the decred secp256k1 backend.
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
	k, err := parseScalar(in.K())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	// 0*P is the identity; handled here so the result never depends on how
	// the multiplication routine treats a zero scalar.
	if k.IsZero() {
		out := new(Output)
		out.SetInfinity(0)
		return out
	}

	var res secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, p, &res)
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

	var res secp256k1.JacobianPoint
	secp256k1.AddNonConst(p1, p2, &res)
	return encode(&res)
}

func supported(id uint16) bool {
	return id == curves.Secp256k1
}

// parsePoint builds a Jacobian point with Z = 1 from affine coordinates.
func parsePoint(xb, yb []byte) (*secp256k1.JacobianPoint, error) {
	x, err := parseFieldVal(xb)
	if err != nil {
		return nil, err
	}
	y, err := parseFieldVal(yb)
	if err != nil {
		return nil, err
	}
	if x.IsZero() && y.IsZero() {
		return nil, fmt.Errorf("(0, 0) has no affine meaning: %w", types.ErrInvalidPoint)
	}
	if !isOnCurve(x, y) {
		return nil, fmt.Errorf("point not on secp256k1: %w", types.ErrInvalidPoint)
	}

	var one secp256k1.FieldVal
	one.SetInt(1)
	p := secp256k1.MakeJacobianPoint(x, y, &one)
	return &p, nil
}

// parseFieldVal rejects values the library would truncate or reduce.
func parseFieldVal(b []byte) (*secp256k1.FieldVal, error) {
	b = types.TrimLeadingZeros(b)
	if len(b) > fieldSize {
		return nil, fmt.Errorf("%d byte coordinate: %w", len(b), types.ErrInvalidPoint)
	}

	f := new(secp256k1.FieldVal)
	if overflow := f.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("coordinate not below field prime: %w", types.ErrInvalidPoint)
	}
	return f.Normalize(), nil
}

// parseScalar only accepts scalars strictly below the group order.
func parseScalar(b []byte) (*secp256k1.ModNScalar, error) {
	b = types.TrimLeadingZeros(b)
	if len(b) > fieldSize {
		return nil, fmt.Errorf("%d byte scalar: %w", len(b), types.ErrScalarRange)
	}

	k := new(secp256k1.ModNScalar)
	if overflow := k.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("scalar not below group order: %w", types.ErrScalarRange)
	}
	return k, nil
}

// isOnCurve checks y^2 = x^3 + 7 for normalized x and y.
func isOnCurve(x, y *secp256k1.FieldVal) bool {
	var lhs, rhs secp256k1.FieldVal
	lhs.SquareVal(y).Normalize()
	rhs.SquareVal(x).Mul(x).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

func encode(p *secp256k1.JacobianPoint) *Output {
	out := new(Output)
	// The add and multiply routines leave X = Y = 0 or Z = 0 for infinity.
	if p.Z.Normalize().IsZero() || (p.X.Normalize().IsZero() && p.Y.Normalize().IsZero()) {
		out.SetInfinity(0)
		return out
	}

	p.ToAffine()
	out.SetUncompressed(0, fieldSize, p.X.Bytes()[:], p.Y.Bytes()[:])
	return out
}

func errorCode(err error) types.ErrorCode {
	switch {
	case err == nil:
		return types.ErrorNone
	case errors.Is(err, types.ErrUnsupportedCurve),
		errors.Is(err, types.ErrInvalidPoint),
		errors.Is(err, types.ErrScalarRange):
		return types.ErrorUnsupported
	default:
		return types.ErrorUnknown
	}
}
