// Package crypto provides the hash primitives the rest of this module
// treats as black boxes: Pedersen, Poseidon, and the Keccak-based
// selector hash. All three are implemented over the Starknet prime
// field from github.com/consensys/gnark-crypto.
package crypto

import "github.com/NethermindEth/starknet-typedtx/felt"

// Digest is a streaming hash accumulator. Update folds felts into the
// running digest in order; Finish produces the final hash.
type Digest interface {
	Update(...*felt.Felt) Digest
	Finish() *felt.Felt
}
