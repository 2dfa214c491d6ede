// Package ectest builds inputs and expected encodings for backend tests.
package ectest

import (
	"crypto/elliptic"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

// Infinity is the canonical encoding of the identity.
var Infinity = []byte{0x00}

// UnassignedCurveID is outside the TLS registry.
const UnassignedCurveID uint16 = 9999

// Params returns the domain parameters of id or fails the test.
func Params(t testing.TB, id uint16) *elliptic.CurveParams {
	t.Helper()
	params, ok := curves.Params(id)
	require.True(t, ok, "no parameters for %s", curves.Name(id))
	return params
}

// Size returns the field byte length of id.
func Size(t testing.TB, id uint16) int {
	t.Helper()
	info, ok := curves.Lookup(id)
	require.True(t, ok)
	return info.Size
}

// MulInput returns an input for k*G.
func MulInput(t testing.TB, id uint16, k *big.Int) *types.Input {
	t.Helper()
	gx, gy, ok := curves.Generator(id)
	require.True(t, ok)
	return MulPointInput(t, id, gx, gy, k.Bytes())
}

// MulPointInput returns an input for k*(x, y).
func MulPointInput(t testing.TB, id uint16, x, y, k []byte) *types.Input {
	t.Helper()
	size := Size(t, id)
	return &types.Input{
		CurveID:    id,
		CoordX:     Pad(x, size),
		CoordY:     Pad(y, size),
		CoordSize:  size,
		Scalar:     k,
		ScalarSize: len(k),
	}
}

// AddInput returns an input for (x1, y1) + (x2, y2).
func AddInput(t testing.TB, id uint16, x1, y1, x2, y2 []byte) *types.Input {
	t.Helper()
	size := Size(t, id)
	return &types.Input{
		CurveID:   id,
		CoordX:    Pad(x1, size),
		CoordY:    Pad(y1, size),
		Coord2X:   Pad(x2, size),
		Coord2Y:   Pad(y2, size),
		CoordSize: size,
	}
}

// Generator returns the base point of id.
func Generator(t testing.TB, id uint16) ([]byte, []byte) {
	t.Helper()
	gx, gy, ok := curves.Generator(id)
	require.True(t, ok)
	return gx, gy
}

// NegGenerator returns -G = (Gx, p - Gy).
func NegGenerator(t testing.TB, id uint16) ([]byte, []byte) {
	t.Helper()
	params := Params(t, id)
	size := Size(t, id)
	return Pad(params.Gx.Bytes(), size), Pad(new(big.Int).Sub(params.P, params.Gy).Bytes(), size)
}

// OrderMinus returns n - d.
func OrderMinus(t testing.TB, id uint16, d int64) *big.Int {
	t.Helper()
	n, ok := curves.Order(id)
	require.True(t, ok)
	return n.Sub(n, big.NewInt(d))
}

// Uncompressed returns 0x04 || x || y for id.
func Uncompressed(t testing.TB, id uint16, x, y []byte) []byte {
	t.Helper()
	size := Size(t, id)
	out := []byte{0x04}
	out = append(out, Pad(x, size)...)
	return append(out, Pad(y, size)...)
}

// ScalarBaseMult computes k*G with the generic crypto/elliptic arithmetic
// on the curve's parameters, independent of any backend. The generic code
// assumes a = -3, so it only fits the NIST curves.
func ScalarBaseMult(t testing.TB, id uint16, k *big.Int) []byte {
	t.Helper()
	params := Params(t, id)
	generic := &elliptic.CurveParams{
		Name:    params.Name + "-generic",
		P:       params.P,
		N:       params.N,
		B:       params.B,
		Gx:      params.Gx,
		Gy:      params.Gy,
		BitSize: params.BitSize,
	}
	x, y := generic.ScalarBaseMult(k.Bytes())
	if x.Sign() == 0 && y.Sign() == 0 {
		return Infinity
	}
	return Uncompressed(t, id, x.Bytes(), y.Bytes())
}

// Pad left-pads b with zeros to size bytes.
func Pad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// LittleEndian decodes an RFC 7748 style little-endian hex string and
// returns it big-endian, the byte order inputs and outputs use.
func LittleEndian(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// XOnlyInput returns an input for k*u on x25519.
func XOnlyInput(u, k []byte) *types.Input {
	return &types.Input{
		CurveID:    curves.X25519,
		CoordX:     Pad(u, 32),
		CoordSize:  32,
		Scalar:     k,
		ScalarSize: len(k),
	}
}

// RFC 7748 section 6.1 key agreement vectors, little-endian hex.
const (
	AlicePrivate = "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	AlicePublic  = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"
	BobPrivate   = "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb"
	BobPublic    = "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f"
	SharedSecret = "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742"
)
