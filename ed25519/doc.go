// Package ed25519 adapts filippo.io/edwards25519 to the harness contract
// for the x25519 entry of the TLS registry.
//
// The u-coordinate is mapped onto the birationally equivalent twisted
// Edwards curve, multiplied there, and mapped back with BytesMontgomery.
// That gives an implementation of X25519 independent of the Montgomery
// ladder in golang.org/x/crypto/curve25519.
package ed25519

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "ed25519"
