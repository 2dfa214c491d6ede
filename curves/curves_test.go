package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	info, ok := Lookup(Secp521r1)
	require.True(t, ok)
	require.Equal(t, "secp521r1", info.Name)
	require.Equal(t, 66, info.Size)

	_, ok = Lookup(9999)
	require.False(t, ok)
	require.Equal(t, "unknown(9999)", Name(9999))
}

func TestRegistryOrdered(t *testing.T) {
	ids := IDs()
	require.Len(t, ids, 12)
	for i, id := range ids {
		require.Equal(t, uint16(18+i), id)
	}
}

func TestParamsMatchSize(t *testing.T) {
	for _, info := range All() {
		params, ok := Params(info.ID)
		if !ok {
			continue
		}
		require.Equal(t, info.Size, (params.BitSize+7)/8, info.Name)
		require.Equal(t, -1, params.Gx.Cmp(params.P), info.Name)
		require.Equal(t, -1, params.Gy.Cmp(params.P), info.Name)
	}
}

func TestSecp192r1Params(t *testing.T) {
	params := Secp192r1Params()
	require.True(t, params.IsOnCurve(params.Gx, params.Gy))

	// n*G is the identity
	x, y := params.ScalarBaseMult(params.N.Bytes())
	require.Zero(t, x.Sign())
	require.Zero(t, y.Sign())

	// fresh value on every call
	require.NotSame(t, params, Secp192r1Params())
}

func TestGenerator(t *testing.T) {
	x, y, ok := Generator(X25519)
	require.True(t, ok)
	require.Nil(t, y)
	require.Equal(t, big.NewInt(9), new(big.Int).SetBytes(x))

	_, _, ok = Generator(Secp192k1)
	require.False(t, ok)

	x, y, ok = Generator(Secp256r1)
	require.True(t, ok)
	require.Len(t, x, 32)
	require.Len(t, y, 32)
}

func TestParams_BrainpoolCoefficientB(t *testing.T) {
	for _, id := range []uint16{BrainpoolP256r1, BrainpoolP384r1, BrainpoolP512r1} {
		params, ok := Params(id)
		require.True(t, ok)
		require.NotNil(t, params.B, Name(id))
		require.Equal(t, -1, params.B.Cmp(params.P), Name(id))

		params.B.SetInt64(1)
		again, _ := Params(id)
		require.NotEqual(t, 0, again.B.Cmp(big.NewInt(1)), Name(id))
	}
}
