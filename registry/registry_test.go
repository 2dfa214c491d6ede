package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t,
		[]string{"nist", "circl", "secp256k1", "btcec", "gnark", "brainpool", "affine", "x25519", "ed25519"},
		Names(),
	)
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	require.Len(t, all, len(Names()))

	selected, err := Select([]string{" btcec", "nist", "btcec"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	require.Equal(t, "btcec", selected[0].Name())
	require.Equal(t, "nist", selected[1].Name())

	_, err = Select([]string{"openssl"})
	require.ErrorContains(t, err, `unknown backend "openssl"`)
}
