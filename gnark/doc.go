// Package gnark adapts github.com/consensys/gnark-crypto/ecc/secp256k1 to
// the harness contract. Scalars are handed to the library as big.Int
// values of arbitrary width; the GLV decomposition it uses is exactly the
// kind of code path differential fuzzing is good at reaching.
package gnark

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "gnark"
