package typeddata

import (
	"sync"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var typeHashCacheCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "starknet_typedtx_typehash_cache",
	Help: "TypedData type-hash memoisation hit/miss counts.",
}, []string{"hit"})

type typeHashEntry struct {
	once sync.Once
	val  *felt.Felt
	err  error
}

// TypeHashCache is a lazily-populated, effectively-final memoisation
// of type_hash per type name: the first caller to ask for a given
// name computes it under that name's sync.Once, every later caller
// (on any goroutine) observes the published result without
// recomputation. Per §5, an instance's cache must be equivalent to
// always recomputing — it is pure memoisation, never a source of
// observable state.
type TypeHashCache struct {
	entries sync.Map
}

func newTypeHashCache() *TypeHashCache {
	return &TypeHashCache{}
}

func (c *TypeHashCache) get(name string, compute func() (*felt.Felt, error)) (*felt.Felt, error) {
	v, loaded := c.entries.LoadOrStore(name, &typeHashEntry{})
	entry := v.(*typeHashEntry)
	entry.once.Do(func() {
		entry.val, entry.err = compute()
	})
	if loaded {
		typeHashCacheCounter.WithLabelValues("true").Inc()
	} else {
		typeHashCacheCounter.WithLabelValues("false").Inc()
	}
	return entry.val, entry.err
}
