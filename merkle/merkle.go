// Package merkle computes the binary Merkle root over a list of
// felts, generalising the teacher's height-indexed Merkle-Patricia
// trie hash-function selection down to a flat tree over an arbitrary
// leaf list.
package merkle

import (
	"errors"

	"github.com/NethermindEth/starknet-typedtx/felt"
)

// ErrEmpty is returned when Root is called with no leaves.
var ErrEmpty = errors.New("merkle: root of empty leaf list")

// HashFunc is a pairwise hash primitive, satisfied by crypto.Pedersen
// and crypto.Poseidon.
type HashFunc func(a, b *felt.Felt) *felt.Felt

// Root builds the tree bottom-up: each level pairs consecutive
// elements (the last element of an odd-length level pairs with ZERO),
// and each pair (a,b) hashes as hash(min(a,b), max(a,b)) so that
// within-pair operand order never affects the result. Returns the
// single remaining element once a level has length 1.
func Root(leaves []*felt.Felt, hash HashFunc) (*felt.Felt, error) {
	if len(leaves) == 0 {
		return nil, ErrEmpty
	}
	level := leaves
	for len(level) > 1 {
		next := make([]*felt.Felt, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			a := level[i]
			b := &felt.Zero
			if i+1 < len(level) {
				b = level[i+1]
			}
			if a.Cmp(b) > 0 {
				a, b = b, a
			}
			next = append(next, hash(a, b))
		}
		level = next
	}
	return level[0], nil
}
