package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ecfuzz "github.com/athanorlabs/go-ecfuzz"
	"github.com/athanorlabs/go-ecfuzz/curves"
)

func TestSeedsFor(t *testing.T) {
	for id, want := range map[uint16]int{
		curves.Secp192k1: 0,
		curves.Secp256r1: 7,
		curves.X25519:    5,
	} {
		info, ok := curves.Lookup(id)
		require.True(t, ok)
		require.Len(t, seedsFor(info), want, info.Name)
	}
}

func TestSeedThenReplay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newApp().Run([]string{"ecfuzz", "seed", dir}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	b, err := os.ReadFile(filepath.Join(dir, "secp256k1-mul-two.bin"))
	require.NoError(t, err)
	in, err := ecfuzz.Deserialize(b)
	require.NoError(t, err)
	require.Equal(t, curves.Secp256k1, in.CurveID)
	require.Equal(t, []byte{2}, in.K())

	require.NoError(t, newApp().Run([]string{"ecfuzz", "replay", dir}))
	require.NoError(t, newApp().Run([]string{"ecfuzz", "replay", "--parallel", dir}))
}

func TestReplay_Raw(t *testing.T) {
	dir := t.TempDir()
	for i, data := range []string{"", "a", "some fuzzer bytes", "\x05\x01\xff\x00\x10"} {
		path := filepath.Join(dir, string(rune('a'+i)))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	}
	require.NoError(t, newApp().Run([]string{"ecfuzz", "--backends", "secp256k1,btcec,gnark", "replay", "--raw", dir}))
}

func TestList(t *testing.T) {
	require.NoError(t, newApp().Run([]string{"ecfuzz", "list"}))
}
