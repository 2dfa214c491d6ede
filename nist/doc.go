// Package nist adapts the standard library's crypto/elliptic to the
// harness contract for secp192r1, secp224r1, secp256r1, secp384r1 and
// secp521r1.
//
// Scalars of any length are accepted: crypto/elliptic reduces scalars
// wider than the group order itself. Build with ecfuzz_no_nist to compile
// the backend out.
package nist

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "nist"
