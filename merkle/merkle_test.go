package merkle_test

import (
	"testing"

	"github.com/NethermindEth/starknet-typedtx/crypto"
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/merkle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootSingleLeaf(t *testing.T) {
	leaf := felt.FromUint64(42)
	root, err := merkle.Root([]*felt.Felt{leaf}, crypto.Pedersen)
	require.NoError(t, err)
	assert.True(t, leaf.Equal(root))
}

func TestRootEmpty(t *testing.T) {
	_, err := merkle.Root(nil, crypto.Pedersen)
	assert.ErrorIs(t, err, merkle.ErrEmpty)
}

func TestRootOrderingWithinPairDoesNotMatter(t *testing.T) {
	a := felt.FromUint64(1)
	b := felt.FromUint64(2)

	r1, err := merkle.Root([]*felt.Felt{a, b}, crypto.Pedersen)
	require.NoError(t, err)
	r2, err := merkle.Root([]*felt.Felt{b, a}, crypto.Pedersen)
	require.NoError(t, err)

	assert.True(t, r1.Equal(r2), "pair ordering within a pair must not affect the hash")
}

func TestRootOverallLeafOrderMatters(t *testing.T) {
	a := felt.FromUint64(1)
	b := felt.FromUint64(2)
	c := felt.FromUint64(3)

	r1, err := merkle.Root([]*felt.Felt{a, b, c}, crypto.Pedersen)
	require.NoError(t, err)
	r2, err := merkle.Root([]*felt.Felt{c, b, a}, crypto.Pedersen)
	require.NoError(t, err)

	assert.False(t, r1.Equal(r2), "overall leaf ordering changes the tree shape and must change the root")
}

func TestRootOddLevelPadsWithZero(t *testing.T) {
	a := felt.FromUint64(1)
	b := felt.FromUint64(2)
	c := felt.FromUint64(3)

	got, err := merkle.Root([]*felt.Felt{a, b, c}, crypto.Pedersen)
	require.NoError(t, err)

	level1a := crypto.Pedersen(a, b)
	level1b := crypto.Pedersen(&felt.Zero, c)
	var want *felt.Felt
	if level1a.Cmp(level1b) > 0 {
		want = crypto.Pedersen(level1b, level1a)
	} else {
		want = crypto.Pedersen(level1a, level1b)
	}
	assert.True(t, want.Equal(got))
}

func TestRootWithPoseidon(t *testing.T) {
	leaves := []*felt.Felt{felt.FromUint64(10), felt.FromUint64(20), felt.FromUint64(30), felt.FromUint64(40)}
	pedersenRoot, err := merkle.Root(leaves, crypto.Pedersen)
	require.NoError(t, err)
	poseidonRoot, err := merkle.Root(leaves, crypto.Poseidon)
	require.NoError(t, err)
	assert.False(t, pedersenRoot.Equal(poseidonRoot))
}
