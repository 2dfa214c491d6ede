//go:build !ecfuzz_no_btcec

package btcec

import (
	"crypto/elliptic"
	"errors"

	btcecv2 "github.com/btcsuite/btcd/btcec/v2"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/weierstrass"
	"github.com/athanorlabs/go-ecfuzz/types"
)

// maxScalarLen is the widest scalar the facade reads: ScalarMult silently
// truncates anything longer to its first 32 bytes, so wider scalars are
// declined instead.
const maxScalarLen = 32

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the btcec backend.
func NewBackend() Backend {
	return &BackendImpl{}
}

func (*BackendImpl) Name() string {
	return Name
}

func (*BackendImpl) Process(in *Input) *Output {
	c, ok := curveFromTLSID(in.CurveID)
	if !ok {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	out, err := weierstrass.ScalarMult(c, in, maxScalarLen)
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	return out
}

func (*BackendImpl) Add(in *Input) *Output {
	c, ok := curveFromTLSID(in.CurveID)
	if !ok {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}

	out, err := weierstrass.Add(c, in)
	if err != nil {
		return types.NewErrorOutput(errorCode(err))
	}
	return out
}

func curveFromTLSID(id uint16) (elliptic.Curve, bool) {
	if id == curves.Secp256k1 {
		return btcecv2.S256(), true
	}
	return nil, false
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
