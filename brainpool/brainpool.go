//go:build !ecfuzz_no_brainpool

package brainpool

import (
	"crypto/elliptic"
	"errors"

	"github.com/ProtonMail/go-crypto/brainpool"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/weierstrass"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the brainpool backend.
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

func curveFromTLSID(id uint16) (elliptic.Curve, bool) {
	switch id {
	case curves.BrainpoolP256r1:
		return brainpool.P256r1(), true
	case curves.BrainpoolP384r1:
		return brainpool.P384r1(), true
	case curves.BrainpoolP512r1:
		return brainpool.P512r1(), true
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
