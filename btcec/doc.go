// Package btcec adapts github.com/btcsuite/btcd/btcec/v2 to the harness
// contract. It drives the library through its crypto/elliptic facade,
// which is a separate code path from the decred field and group types
// exercised by the secp256k1 backend.
package btcec

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "btcec"
