//go:build ecfuzz_no_btcec

package btcec

import "github.com/athanorlabs/go-ecfuzz/types"

// NewBackend returns a stand-in that reports every call as unsupported.
func NewBackend() Backend {
	return types.Disabled(Name)
}
