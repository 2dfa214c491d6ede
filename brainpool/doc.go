// Package brainpool adapts github.com/ProtonMail/go-crypto/brainpool to the
// harness contract for brainpoolP256r1, brainpoolP384r1 and
// brainpoolP512r1.
//
// The library computes on the isomorphic t1 curve and maps points back and
// forth, which makes it a useful independent implementation even though no
// other backend here covers these curves yet.
package brainpool

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "brainpool"
