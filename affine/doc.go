// Package affine is a textbook short Weierstrass backend: affine
// coordinates, one field inversion per group operation, double-and-add
// scalar multiplication, all over math/big.
//
// It shares no arithmetic with the libraries under test and covers every
// curve whose domain parameters the curves package knows, which gives the
// NIST and brainpool curves a second opinion. The coefficient a is not
// exposed by crypto/elliptic and is recovered from the generator.
// Build with ecfuzz_no_affine to compile the backend out.
package affine

import "github.com/athanorlabs/go-ecfuzz/types"

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Name is the backend name used by the registry and the CLI.
const Name = "affine"
