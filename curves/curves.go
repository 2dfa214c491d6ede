// Package curves holds the subset of the TLS named-curve registry the
// harness knows about, along with domain parameters where a Go library
// exposes them.
package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/ProtonMail/go-crypto/brainpool"
	"github.com/btcsuite/btcd/btcec/v2"
)

// TLS named-curve identifiers.
const (
	Secp192k1       uint16 = 18
	Secp192r1       uint16 = 19
	Secp224k1       uint16 = 20
	Secp224r1       uint16 = 21
	Secp256k1       uint16 = 22
	Secp256r1       uint16 = 23
	Secp384r1       uint16 = 24
	Secp521r1       uint16 = 25
	BrainpoolP256r1 uint16 = 26
	BrainpoolP384r1 uint16 = 27
	BrainpoolP512r1 uint16 = 28
	X25519          uint16 = 29
)

// Info describes a registered curve.
type Info struct {
	ID   uint16
	Name string
	// Size is the byte length of a field element.
	Size int
	// XOnly is set for Montgomery curves whose points are encoded by
	// their u-coordinate alone.
	XOnly bool
}

var registry = []Info{
	{ID: Secp192k1, Name: "secp192k1", Size: 24},
	{ID: Secp192r1, Name: "secp192r1", Size: 24},
	{ID: Secp224k1, Name: "secp224k1", Size: 28},
	{ID: Secp224r1, Name: "secp224r1", Size: 28},
	{ID: Secp256k1, Name: "secp256k1", Size: 32},
	{ID: Secp256r1, Name: "secp256r1", Size: 32},
	{ID: Secp384r1, Name: "secp384r1", Size: 48},
	{ID: Secp521r1, Name: "secp521r1", Size: 66},
	{ID: BrainpoolP256r1, Name: "brainpoolP256r1", Size: 32},
	{ID: BrainpoolP384r1, Name: "brainpoolP384r1", Size: 48},
	{ID: BrainpoolP512r1, Name: "brainpoolP512r1", Size: 64},
	{ID: X25519, Name: "x25519", Size: 32, XOnly: true},
}

// All returns every registered curve ordered by id.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registry entry for id.
func Lookup(id uint16) (Info, bool) {
	for _, info := range registry {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Name returns the curve name for id, or a placeholder for unknown ids.
func Name(id uint16) string {
	if info, ok := Lookup(id); ok {
		return info.Name
	}
	return fmt.Sprintf("unknown(%d)", id)
}

// IDs returns the ids of every registered curve.
func IDs() []uint16 {
	ids := make([]uint16, len(registry))
	for i, info := range registry {
		ids[i] = info.ID
	}
	return ids
}

// Secp192r1Params returns the NIST P-192 domain parameters. A fresh value
// is built on every call.
func Secp192r1Params() *elliptic.CurveParams {
	return &elliptic.CurveParams{
		Name:    "P-192",
		BitSize: 192,
		P:       mustHex("fffffffffffffffffffffffffffffffeffffffffffffffff"),
		N:       mustHex("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		B:       mustHex("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		Gx:      mustHex("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		Gy:      mustHex("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
	}
}

// Params returns the short Weierstrass domain parameters for id, when a
// library in this module exposes them.
func Params(id uint16) (*elliptic.CurveParams, bool) {
	switch id {
	case Secp192r1:
		return Secp192r1Params(), true
	case Secp224r1:
		return elliptic.P224().Params(), true
	case Secp256k1:
		return btcec.S256().Params(), true
	case Secp256r1:
		return elliptic.P256().Params(), true
	case Secp384r1:
		return elliptic.P384().Params(), true
	case Secp521r1:
		return elliptic.P521().Params(), true
	case BrainpoolP256r1:
		return withB(brainpool.P256r1().Params(), brainpoolP256r1B), true
	case BrainpoolP384r1:
		return withB(brainpool.P384r1().Params(), brainpoolP384r1B), true
	case BrainpoolP512r1:
		return withB(brainpool.P512r1().Params(), brainpoolP512r1B), true
	}
	return nil, false
}

// The brainpool r1 curves are implemented through their twisted t1
// counterparts and their parameters are not guaranteed to carry the r1
// coefficient b (RFC 5639).
var (
	brainpoolP256r1B = mustHex("26dc5c6ce94a4b44f330b5d9bbd77cbf958416295cf7e1ce6bccdc18ff8c07b6")
	brainpoolP384r1B = mustHex("04a8c7dd22ce28268b39b55416f0447c2fb77de107dcd2a62e880ea53eeb62d5" +
		"7cb4390295dbc9943ab78696fa504c11")
	brainpoolP512r1B = mustHex("3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a7" +
		"2bf2c7b9e7c1ac4d77fc94cadc083e67984050b75ebae5dd2809bd638016f723")
)

// withB returns a copy of params with the coefficient b set.
func withB(params *elliptic.CurveParams, b *big.Int) *elliptic.CurveParams {
	cp := *params
	cp.B = new(big.Int).Set(b)
	return &cp
}

// Generator returns the big-endian base point coordinates for id. For
// x25519 y is nil.
func Generator(id uint16) (x, y []byte, ok bool) {
	if id == X25519 {
		u := make([]byte, 32)
		u[31] = 9
		return u, nil, true
	}

	params, ok := Params(id)
	if !ok {
		return nil, nil, false
	}
	size := (params.BitSize + 7) / 8
	return params.Gx.FillBytes(make([]byte, size)), params.Gy.FillBytes(make([]byte, size)), true
}

// Order returns the group order for id. For x25519 it is the order of the
// prime subgroup.
func Order(id uint16) (*big.Int, bool) {
	if id == X25519 {
		return new(big.Int).Set(x25519Order), true
	}
	params, ok := Params(id)
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(params.N), true
}

var x25519Order = mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid constant " + s)
	}
	return n
}
