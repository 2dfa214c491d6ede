package secp256k1

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/ectest"
	"github.com/athanorlabs/go-ecfuzz/types"
)

const (
	twoGx = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	twoGy = "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"
)

func twoG(t *testing.T) []byte {
	x, err := hex.DecodeString(twoGx)
	require.NoError(t, err)
	y, err := hex.DecodeString(twoGy)
	require.NoError(t, err)
	return ectest.Uncompressed(t, curves.Secp256k1, x, y)
}

func TestProcess(t *testing.T) {
	b := NewBackend()
	out := b.Process(ectest.MulInput(t, curves.Secp256k1, big.NewInt(2)))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, twoG(t), out.Point(0))

	out = b.Process(ectest.MulInput(t, curves.Secp256k1, big.NewInt(1)))
	gx, gy := ectest.Generator(t, curves.Secp256k1)
	require.Equal(t, ectest.Uncompressed(t, curves.Secp256k1, gx, gy), out.Point(0))
}

func TestProcess_OrderMinusOne(t *testing.T) {
	b := NewBackend()
	out := b.Process(ectest.MulInput(t, curves.Secp256k1, ectest.OrderMinus(t, curves.Secp256k1, 1)))
	require.Equal(t, types.ErrorNone, out.Error)

	nx, ny := ectest.NegGenerator(t, curves.Secp256k1)
	require.Equal(t, ectest.Uncompressed(t, curves.Secp256k1, nx, ny), out.Point(0))
}

func TestProcess_ZeroScalar(t *testing.T) {
	b := NewBackend()
	for _, k := range [][]byte{nil, {0}, make([]byte, 40)} {
		gx, gy := ectest.Generator(t, curves.Secp256k1)
		out := b.Process(ectest.MulPointInput(t, curves.Secp256k1, gx, gy, k))
		require.Equal(t, types.ErrorNone, out.Error)
		require.Equal(t, ectest.Infinity, out.Point(0))
	}
}

func TestProcess_ScalarOutOfRange(t *testing.T) {
	b := NewBackend()
	gx, gy := ectest.Generator(t, curves.Secp256k1)

	n := ectest.OrderMinus(t, curves.Secp256k1, 0)
	out := b.Process(ectest.MulPointInput(t, curves.Secp256k1, gx, gy, n.Bytes()))
	require.Equal(t, types.ErrorUnsupported, out.Error)

	wide := make([]byte, 33)
	wide[0], wide[32] = 1, 1
	out = b.Process(ectest.MulPointInput(t, curves.Secp256k1, gx, gy, wide))
	require.Equal(t, types.ErrorUnsupported, out.Error)

	// leading zeros do not count against the width
	padded := ectest.Pad([]byte{2}, 48)
	out = b.Process(ectest.MulPointInput(t, curves.Secp256k1, gx, gy, padded))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, twoG(t), out.Point(0))
}

func TestProcess_InvalidPoint(t *testing.T) {
	b := NewBackend()
	gx, gy := ectest.Generator(t, curves.Secp256k1)

	bad := append([]byte{}, gx...)
	bad[0] ^= 0x80
	out := b.Process(ectest.MulPointInput(t, curves.Secp256k1, bad, gy, []byte{5}))
	require.Equal(t, types.ErrorUnsupported, out.Error)

	zero := make([]byte, 32)
	out = b.Process(ectest.MulPointInput(t, curves.Secp256k1, zero, zero, []byte{5}))
	require.Equal(t, types.ErrorUnsupported, out.Error)

	p := ectest.Params(t, curves.Secp256k1).P
	out = b.Process(ectest.MulPointInput(t, curves.Secp256k1, p.Bytes(), gy, []byte{5}))
	require.Equal(t, types.ErrorUnsupported, out.Error)
}

func TestProcess_UnsupportedCurve(t *testing.T) {
	b := NewBackend()
	for _, id := range []uint16{curves.Secp256r1, curves.Secp224k1, ectest.UnassignedCurveID} {
		in := &types.Input{CurveID: id, Scalar: []byte{1}, ScalarSize: 1}
		require.Equal(t, types.ErrorUnsupported, b.Process(in).Error)
		require.Equal(t, types.ErrorUnsupported, b.Add(in).Error)
	}
}

func TestAdd(t *testing.T) {
	b := NewBackend()
	gx, gy := ectest.Generator(t, curves.Secp256k1)
	nx, ny := ectest.NegGenerator(t, curves.Secp256k1)

	out := b.Add(ectest.AddInput(t, curves.Secp256k1, gx, gy, gx, gy))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, twoG(t), out.Point(0))

	out = b.Add(ectest.AddInput(t, curves.Secp256k1, gx, gy, nx, ny))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.Infinity, out.Point(0))

	two := twoG(t)
	out = b.Add(ectest.AddInput(t, curves.Secp256k1, two[1:33], two[33:], gx, gy))
	require.Equal(t, types.ErrorNone, out.Error)
	three := b.Process(ectest.MulInput(t, curves.Secp256k1, big.NewInt(3)))
	require.Equal(t, three.Point(0), out.Point(0))
}
