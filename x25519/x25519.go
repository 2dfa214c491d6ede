//go:build !ecfuzz_no_x25519

package x25519

import (
	"errors"

	"golang.org/x/crypto/curve25519"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/montgomery"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var _ Backend = &BackendImpl{}

type BackendImpl struct{}

// NewBackend returns the x/crypto curve25519 backend.
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

	r, err := curve25519.X25519(k[:], u[:])
	if err != nil {
		// Both inputs are exactly 32 bytes, so the only error left is the
		// all-zero result, which is the identity.
		return montgomery.Encode(make([]byte, montgomery.Size))
	}
	return montgomery.Encode(r)
}

func (*BackendImpl) Add(in *Input) *Output {
	if in.CurveID != curves.X25519 {
		return types.NewErrorOutput(errorCode(types.ErrUnsupportedCurve))
	}
	return types.NewErrorOutput(errorCode(montgomery.ErrNoAdd))
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
