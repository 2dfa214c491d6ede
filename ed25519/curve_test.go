package ed25519

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/internal/ectest"
	"github.com/athanorlabs/go-ecfuzz/types"
	"github.com/athanorlabs/go-ecfuzz/x25519"
)

func TestProcess_RFC7748(t *testing.T) {
	b := NewBackend()
	base, _ := ectest.Generator(t, curves.X25519)

	out := b.Process(ectest.XOnlyInput(base, ectest.LittleEndian(t, ectest.AlicePrivate)))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.LittleEndian(t, ectest.AlicePublic), out.Point(0))

	out = b.Process(ectest.XOnlyInput(base, ectest.LittleEndian(t, ectest.BobPrivate)))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.LittleEndian(t, ectest.BobPublic), out.Point(0))

	out = b.Process(ectest.XOnlyInput(
		ectest.LittleEndian(t, ectest.AlicePublic),
		ectest.LittleEndian(t, ectest.BobPrivate),
	))
	require.Equal(t, types.ErrorNone, out.Error)
	require.Equal(t, ectest.LittleEndian(t, ectest.SharedSecret), out.Point(0))
}

// Every u either maps onto the Edwards curve and agrees with the ladder,
// or lies on the twist and is declined.
func TestProcess_AgreesWithLadder(t *testing.T) {
	b, ladder := NewBackend(), x25519.NewBackend()
	k := ectest.LittleEndian(t, ectest.AlicePrivate)

	var agreed, declined int
	for u := 0; u <= 40; u++ {
		in := ectest.XOnlyInput([]byte{byte(u)}, k)
		got := b.Process(in)
		if got.Error == types.ErrorUnsupported {
			declined++
			continue
		}
		require.Equal(t, types.ErrorNone, got.Error, "u=%d", u)

		want := ladder.Process(in)
		require.Equal(t, types.ErrorNone, want.Error, "u=%d", u)
		require.Equal(t, want.Point(0), got.Point(0), "u=%d", u)
		agreed++
	}
	require.NotZero(t, agreed)
	require.NotZero(t, declined)
}

func TestProcess_Unsupported(t *testing.T) {
	b := NewBackend()
	base, _ := ectest.Generator(t, curves.X25519)

	require.Equal(t, types.ErrorUnsupported, b.Process(ectest.XOnlyInput(base, []byte{0, 0})).Error)

	// u = -1 is where the birational map is undefined
	minusOne := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(20))
	require.Equal(t, types.ErrorUnsupported, b.Process(ectest.XOnlyInput(minusOne.Bytes(), []byte{9})).Error)

	require.Equal(t, types.ErrorUnsupported, b.Add(ectest.XOnlyInput(base, []byte{9})).Error)

	in := ectest.MulInput(t, curves.Secp256k1, big.NewInt(9))
	require.Equal(t, types.ErrorUnsupported, b.Process(in).Error)
}
