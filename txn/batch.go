package txn

import (
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/sourcegraph/conc/pool"
)

// Hashable is implemented by every transaction type in this package.
// v1/v2 transactions hash without error (Pedersen cascades over
// already-validated felts); v3 transactions can fail if a resource
// bound fails to pack, so both are expressed through this single
// fallible signature.
type Hashable interface {
	Hash() (*felt.Felt, error)
}

type hashFunc func() *felt.Felt
type hashErrFunc func() (*felt.Felt, error)

func (f hashFunc) Hash() (*felt.Felt, error)    { return f(), nil }
func (f hashErrFunc) Hash() (*felt.Felt, error) { return f() }

// AsHashable adapts a v1/v2 transaction's infallible Hash() into the
// Hashable interface, so HashAll can batch v1/v2 and v3 transactions
// together.
func AsHashable(h func() *felt.Felt) Hashable {
	return hashFunc(h)
}

// HashAll computes hashes for a batch of independent transactions
// concurrently: each transaction's Hash is pure and self-contained, so
// workers share no mutable state.
func HashAll(txs []Hashable) ([]*felt.Felt, error) {
	out := make([]*felt.Felt, len(txs))
	errs := make([]error, len(txs))

	p := pool.New()
	for i, tx := range txs {
		i, tx := i, tx
		p.Go(func() {
			out[i], errs[i] = tx.Hash()
		})
	}
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
