package crypto

import (
	"github.com/NethermindEth/starknet-typedtx/felt"
	"golang.org/x/crypto/sha3"
)

// StarknetKeccak implements [Starknet keccak]: Keccak-256 of b with
// the top 6 bits of the digest masked off so the result fits the
// 251-bit field (250 usable bits after masking).
//
// Unlike the teacher, a fresh hash.Hash is created per call rather
// than reused through Reset: this package's contract (§5 of the
// spec) is that every operation is safe to call concurrently on
// shared data, and a package-level *sha3.state is not.
//
// [Starknet keccak]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#starknet_keccak
func StarknetKeccak(b []byte) (*felt.Felt, error) {
	h := sha3.NewLegacyKeccak256()
	if _, err := h.Write(b); err != nil {
		return nil, err
	}
	d := h.Sum(nil)
	d[0] &= 0x03
	return felt.FromBytes(d), nil
}

// SelectorFromName computes the Starknet function/type selector for
// name: Keccak-256 of its UTF-8 bytes, masked to 250 bits.
func SelectorFromName(name string) (*felt.Felt, error) {
	return StarknetKeccak([]byte(name))
}
