//go:build !ecfuzz_no_ed25519

package ed25519

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/montgomery"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the edwards25519 backend.
func NewBackend() Backend {
	return &BackendImpl{}
}

func (*BackendImpl) Name() string {
	return Name
}

func (*BackendImpl) Process(in *Input) *Output {
	if in.CurveID != curves.X25519 {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	u, err := montgomery.ParseU(in.X())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	k, err := montgomery.ParseScalar(in.K())
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	p, err := pointFromU(u)
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	// A clamped scalar is 8*k' with k' < 2^252. Computing k' * (8*P) keeps
	// the small-order component of P out of the reduction modulo l.
	montgomery.Clamp(&k)
	var wide [64]byte
	for i := 0; i < montgomery.Size; i++ {
		wide[i] = k[i] >> 3
		if i+1 < montgomery.Size {
			wide[i] |= k[i+1] << 5
		}
	}
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}

	q := new(edwards25519.Point).MultByCofactor(p)
	r := new(edwards25519.Point).ScalarMult(s, q)
	return montgomery.Encode(r.BytesMontgomery())
}

func (*BackendImpl) Add(in *Input) *Output {
	if in.CurveID != curves.X25519 {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}
	return types.NewErrorOutput(errorCode(montgomery.ErrNoAdd))
}

// pointFromU maps a Curve25519 u-coordinate to one of the two Edwards
// points sharing it, using y = (u - 1) / (u + 1). Coordinates on the
// quadratic twist have no Edwards counterpart and are rejected.
func pointFromU(u [montgomery.Size]byte) (*edwards25519.Point, error) {
	uf, err := new(field.Element).SetBytes(u[:])
	if err != nil {
		return nil, fmt.Errorf("u-coordinate: %v: %w", err, types.ErrInvalidPoint)
	}

	one := new(field.Element).One()
	den := new(field.Element).Add(uf, one)
	if den.Equal(new(field.Element).Zero()) == 1 {
		return nil, fmt.Errorf("u = -1 has no Edwards image: %w", types.ErrInvalidPoint)
	}
	num := new(field.Element).Subtract(uf, one)
	y := new(field.Element).Multiply(num, den.Invert(den))

	p, err := new(edwards25519.Point).SetBytes(y.Bytes())
	if err != nil {
		return nil, fmt.Errorf("u-coordinate on the twist: %w", types.ErrInvalidPoint)
	}
	return p, nil
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
