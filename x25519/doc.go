// Package x25519 adapts golang.org/x/crypto/curve25519 to the harness
// contract for the x25519 entry of the TLS registry.
//
// Results are x-only: the output is the 32-byte big-endian u-coordinate,
// or 0x00 for the identity. Add is always unsupported.
package x25519

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "x25519"
