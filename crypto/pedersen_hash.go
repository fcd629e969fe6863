package crypto

import (
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// pedersenCacheSize bounds the pair-result cache; Pedersen pairs are
// 64 bytes of key plus a felt of value, so this caps memory at a few
// hundred MB in the worst case instead of the unbounded growth an
// uncapped map would allow.
const pedersenCacheSize = 1 << 20

// PedersenArray implements [Pedersen array hashing]: a sequential fold
// of the elements followed by a final fold with the element count.
//
// [Pedersen array hashing]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#array_hashing
func PedersenArray(elems ...*felt.Felt) *felt.Felt {
	var digest PedersenDigest
	return digest.Update(elems...).Finish()
}

type lruKey struct {
	x, y felt.Felt
}

var lruPedersen, _ = lru.New(pedersenCacheSize)

var pedersenCacheCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "starknet_typedtx_pedersen_cache",
	Help: "Pedersen pair-hash cache hit/miss counts.",
}, []string{"hit"})

// Pedersen implements the [Pedersen hash] of a pair of elements.
//
// [Pedersen hash]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#pedersen_hash
func Pedersen(a, b *felt.Felt) *felt.Felt {
	key := lruKey{x: *a, y: *b}

	if res, ok := lruPedersen.Get(key); ok {
		pedersenCacheCounter.WithLabelValues("true").Inc()
		return res.(*felt.Felt)
	}

	hash := pedersenhash.Pedersen(a.Impl(), b.Impl())
	result := felt.FromImpl(&hash)
	lruPedersen.Add(key, result)
	pedersenCacheCounter.WithLabelValues("false").Inc()
	return result
}

var _ Digest = (*PedersenDigest)(nil)

// PedersenDigest accumulates a Pedersen array hash incrementally:
// h_0 = 0; h_{i+1} = pedersen(h_i, x_i); Finish folds in the count.
type PedersenDigest struct {
	digest fp.Element
	count  uint64
}

func (d *PedersenDigest) Update(elems ...*felt.Felt) Digest {
	for _, e := range elems {
		d.digest = pedersenhash.Pedersen(&d.digest, e.Impl())
	}
	d.count += uint64(len(elems))
	return d
}

func (d *PedersenDigest) Finish() *felt.Felt {
	d.digest = pedersenhash.Pedersen(&d.digest, new(fp.Element).SetUint64(d.count))
	return felt.FromImpl(&d.digest)
}
