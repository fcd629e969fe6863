package typeddata

import (
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/jinzhu/copier"
	"github.com/sourcegraph/conc/pool"
)

// Clone produces an independent deep copy of td: CustomTypes, Domain
// and Message are copied recursively so the clone can be handed to a
// caller that wants a mutable working copy without disturbing the
// original's immutability invariant (§5). The type-hash cache is not
// copied — td.cache may be mid-populate on another goroutine, and a
// fresh cache is always a valid (if cold) substitute, since it is
// pure memoisation over otherwise-identical data.
func (td *TypedData) Clone() (*TypedData, error) {
	clone := &TypedData{}
	if err := copier.CopyWithOption(clone, td, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	clone.cache = newTypeHashCache()
	return clone, nil
}

// HashAllRequest pairs a TypedData instance with the account address
// its message hash should be computed for.
type HashAllRequest struct {
	TypedData *TypedData
	Account   *felt.Felt
}

// HashAll computes message hashes for a batch of independent
// instances concurrently: per §5, instances are free to share across
// threads without synchronisation, so there is no coordination needed
// beyond collecting each worker's result.
func HashAll(reqs []HashAllRequest) ([]*felt.Felt, error) {
	out := make([]*felt.Felt, len(reqs))
	errs := make([]error, len(reqs))

	p := pool.New()
	for i, req := range reqs {
		i, req := i, req
		p.Go(func() {
			out[i], errs[i] = req.TypedData.GetMessageHash(req.Account)
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
