// Package secp256k1 adapts github.com/decred/dcrd/dcrec/secp256k1/v4 to the
// harness contract, working directly on the library's FieldVal, ModNScalar
// and JacobianPoint types.
//
// This is the strict backend: like mbedTLS it refuses scalars that are not
// below the group order and reports them as unsupported, and it treats a
// zero scalar as an explicit special case.
package secp256k1

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "secp256k1"
