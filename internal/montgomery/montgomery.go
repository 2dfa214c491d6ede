// Package montgomery holds the input and output conventions shared by the
// x25519 backends.
//
// Inputs stay big-endian like every other curve; the u-coordinate and the
// scalar are converted to the little-endian strings of RFC 7748 here, and
// results are converted back.
package montgomery

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-ecfuzz/types"
)

// Size is the byte length of a u-coordinate and of a scalar.
const Size = 32

// ErrNoAdd is returned for Add: an x-only ladder cannot add two points
// without their difference.
var ErrNoAdd = fmt.Errorf("x-only curve has no point addition: %w", types.ErrUnsupportedCurve)

var errZeroScalar = errors.New("clamping makes a zero scalar meaningless")

var fieldPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// ParseU returns the little-endian encoding of the big-endian
// u-coordinate b. Values at or above 2^255-19 are rejected so that no
// backend has to pick a reduction convention.
func ParseU(b []byte) ([Size]byte, error) {
	var u [Size]byte
	b = types.TrimLeadingZeros(b)
	if len(b) > Size || new(big.Int).SetBytes(b).Cmp(fieldPrime) >= 0 {
		return u, fmt.Errorf("u-coordinate not below field prime: %w", types.ErrInvalidPoint)
	}
	for i, c := range b {
		u[len(b)-1-i] = c
	}
	return u, nil
}

// ParseScalar returns the little-endian, unclamped encoding of the
// big-endian scalar b.
func ParseScalar(b []byte) ([Size]byte, error) {
	var k [Size]byte
	b = types.TrimLeadingZeros(b)
	if len(b) == 0 {
		return k, fmt.Errorf("%v: %w", errZeroScalar, types.ErrScalarRange)
	}
	if len(b) > Size {
		return k, fmt.Errorf("%d byte scalar: %w", len(b), types.ErrScalarRange)
	}
	for i, c := range b {
		k[len(b)-1-i] = c
	}
	return k, nil
}

// Clamp applies the RFC 7748 decodeScalar25519 bit fixups in place.
func Clamp(k *[Size]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// Encode writes the little-endian u-coordinate u as a big-endian x-only
// point. The all-zero coordinate is the point at infinity.
func Encode(u []byte) *types.Output {
	out := new(types.Output)
	if len(u) != Size {
		out.SetError(types.ErrorUnknown)
		return out
	}

	var be [Size]byte
	for i, c := range u {
		be[Size-1-i] = c
	}
	out.SetXOnly(0, Size, be[:])
	return out
}
