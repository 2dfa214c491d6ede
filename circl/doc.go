// Package circl adapts github.com/cloudflare/circl/ecc/p384 to the harness
// contract for secp384r1.
//
// circl carries its own P-384 field and group code, independent of the
// standard library's nistec. Build with ecfuzz_no_circl to compile the
// backend out.
package circl

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "circl"
