// Package registry lists the backends compiled into this build.
//
// The set is fixed at build time; a backend excluded with its
// ecfuzz_no_<name> tag is still listed and answers every call with
// ErrorUnsupported.
package registry

import (
	"fmt"
	"strings"

	"github.com/athanorlabs/go-ecfuzz/affine"
	"github.com/athanorlabs/go-ecfuzz/brainpool"
	"github.com/athanorlabs/go-ecfuzz/btcec"
	"github.com/athanorlabs/go-ecfuzz/circl"
	"github.com/athanorlabs/go-ecfuzz/ed25519"
	"github.com/athanorlabs/go-ecfuzz/gnark"
	"github.com/athanorlabs/go-ecfuzz/nist"
	"github.com/athanorlabs/go-ecfuzz/secp256k1"
	"github.com/athanorlabs/go-ecfuzz/types"
	"github.com/athanorlabs/go-ecfuzz/x25519"
)

// All returns one instance of every backend, in a stable order.
func All() []types.Backend {
	return []types.Backend{
		nist.NewBackend(),
		circl.NewBackend(),
		secp256k1.NewBackend(),
		btcec.NewBackend(),
		gnark.NewBackend(),
		brainpool.NewBackend(),
		affine.NewBackend(),
		x25519.NewBackend(),
		ed25519.NewBackend(),
	}
}

// Names returns the names of every backend.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, b := range all {
		names[i] = b.Name()
	}
	return names
}

// Select returns the named backends in the order given. An empty list
// selects everything.
func Select(names []string) ([]types.Backend, error) {
	if len(names) == 0 {
		return All(), nil
	}

	byName := make(map[string]types.Backend)
	for _, b := range All() {
		byName[b.Name()] = b
	}

	selected := make([]types.Backend, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		b, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown backend %q (have %s)", name, strings.Join(Names(), ", "))
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		selected = append(selected, b)
	}
	return selected, nil
}
