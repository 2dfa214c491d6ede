package btcec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/ectest"
	"github.com/athanorlabs/go-ecfuzz/types"
)

func TestProcess_Order(t *testing.T) {
	b := NewBackend()
	gx, gy := ectest.Generator(t, curves.Secp256k1)

	out := b.Process(ectest.MulInput(t, curves.Secp256k1, ectest.OrderMinus(t, curves.Secp256k1, 0)))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.Infinity, out.Point(0))

	out = b.Process(ectest.MulInput(t, curves.Secp256k1, ectest.OrderMinus(t, curves.Secp256k1, -1)))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.Uncompressed(t, curves.Secp256k1, gx, gy), out.Point(0))

	out = b.Process(ectest.MulInput(t, curves.Secp256k1, ectest.OrderMinus(t, curves.Secp256k1, 1)))
	require.Equal(t, types.ErrorNone, out.Error)
	nx, ny := ectest.NegGenerator(t, curves.Secp256k1)
	require.Equal(t, ectest.Uncompressed(t, curves.Secp256k1, nx, ny), out.Point(0))
}

func TestProcess_ZeroScalar(t *testing.T) {
	b := NewBackend()
	out := b.Process(ectest.MulInput(t, curves.Secp256k1, big.NewInt(0)))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.Infinity, out.Point(0))
}

func TestProcess_WideScalar(t *testing.T) {
	b := NewBackend()
	gx, gy := ectest.Generator(t, curves.Secp256k1)

	wide := make([]byte, 33)
	wide[0], wide[32] = 1, 2
	out := b.Process(ectest.MulPointInput(t, curves.Secp256k1, gx, gy, wide))
	require.Equal(t, types.ErrorUnsupported, out.Error)

	out = b.Process(ectest.MulPointInput(t, curves.Secp256k1, gx, gy, ectest.Pad([]byte{2}, 33)))
	require.Equal(t, types.ErrorNone, out.Error)
	two := b.Process(ectest.MulInput(t, curves.Secp256k1, big.NewInt(2)))
	require.Equal(t, two.Point(0), out.Point(0))
}

func TestAdd(t *testing.T) {
	b := NewBackend()
	gx, gy := ectest.Generator(t, curves.Secp256k1)
	nx, ny := ectest.NegGenerator(t, curves.Secp256k1)

	out := b.Add(ectest.AddInput(t, curves.Secp256k1, gx, gy, nx, ny))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.Infinity, out.Point(0))

	out = b.Add(ectest.AddInput(t, curves.Secp256k1, gx, gy, gx, gy))
	require.Equal(t, types.ErrorNone, out.Error)
	two := b.Process(ectest.MulInput(t, curves.Secp256k1, big.NewInt(2)))
	require.Equal(t, two.Point(0), out.Point(0))
}

func TestUnsupported(t *testing.T) {
	b := NewBackend()
	in := ectest.MulInput(t, curves.Secp256r1, big.NewInt(3))
	require.Equal(t, types.ErrorUnsupported, b.Process(in).Error)
	require.Equal(t, types.ErrorUnsupported, b.Add(in).Error)

	gx, _ := ectest.Generator(t, curves.Secp256k1)
	offCurve := ectest.MulPointInput(t, curves.Secp256k1, gx, gx, []byte{3})
	require.Equal(t, types.ErrorUnsupported, b.Process(offCurve).Error)
}
