//go:build !ecfuzz_no_nist

package nist

import (
	"crypto/elliptic"
	"errors"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/weierstrass"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the crypto/elliptic backend.
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

	out, err := weierstrass.ScalarMult(c, in, 0)
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

// curveFromTLSID maps the NIST prime curves. P-192 has no optimized
// implementation in the standard library and runs on the generic
// CurveParams arithmetic.
func curveFromTLSID(id uint16) (elliptic.Curve, bool) {
	switch id {
	case curves.Secp192r1:
		return curves.Secp192r1Params(), true
	case curves.Secp224r1:
		return elliptic.P224(), true
	case curves.Secp256r1:
		return elliptic.P256(), true
	case curves.Secp384r1:
		return elliptic.P384(), true
	case curves.Secp521r1:
		return elliptic.P521(), true
	}
	return nil, false
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
