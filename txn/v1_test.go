package txn_test

import (
	"testing"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/txn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFelt(t *testing.T, hex string) *felt.Felt {
	t.Helper()
	f, err := felt.FromHex(hex)
	require.NoError(t, err)
	return f
}

func TestInvokeV1HashDeterministic(t *testing.T) {
	tx := &txn.InvokeV1{
		Version:       felt.FromUint64(1),
		SenderAddress: mustFelt(t, "0x1"),
		Calldata:      []*felt.Felt{mustFelt(t, "0x2"), mustFelt(t, "0x3")},
		MaxFee:        mustFelt(t, "0x4"),
		ChainID:       mustFelt(t, "0x534e5f5345504f4c4941"),
		Nonce:         felt.FromUint64(5),
	}
	h1 := tx.Hash()
	h2 := tx.Hash()
	assert.True(t, h1.Equal(h2))
	assert.False(t, h1.IsZero())
}

func TestInvokeV1HashChangesWithNonce(t *testing.T) {
	base := txn.InvokeV1{
		Version:       felt.FromUint64(1),
		SenderAddress: mustFelt(t, "0x1"),
		Calldata:      []*felt.Felt{mustFelt(t, "0x2")},
		MaxFee:        mustFelt(t, "0x100"),
		ChainID:       mustFelt(t, "0x1"),
		Nonce:         felt.FromUint64(0),
	}
	tx1 := base
	tx1.Nonce = felt.FromUint64(0)
	tx2 := base
	tx2.Nonce = felt.FromUint64(1)

	assert.False(t, tx1.Hash().Equal(tx2.Hash()))
}

func TestDeclareV2DiffersFromDeclareV1(t *testing.T) {
	v1 := &txn.DeclareV1{
		Version:       felt.FromUint64(1),
		SenderAddress: mustFelt(t, "0x1"),
		ClassHash:     mustFelt(t, "0x2"),
		MaxFee:        mustFelt(t, "0x100"),
		ChainID:       mustFelt(t, "0x1"),
		Nonce:         felt.FromUint64(0),
	}
	v2 := &txn.DeclareV2{
		Version:           felt.FromUint64(2),
		SenderAddress:     mustFelt(t, "0x1"),
		ClassHash:         mustFelt(t, "0x2"),
		CompiledClassHash: mustFelt(t, "0x3"),
		MaxFee:            mustFelt(t, "0x100"),
		ChainID:           mustFelt(t, "0x1"),
		Nonce:             felt.FromUint64(0),
	}
	assert.False(t, v1.Hash().Equal(v2.Hash()))
}

func TestDeployAccountV1AddressFeedsHash(t *testing.T) {
	tx := &txn.DeployAccountV1{
		Version:             felt.FromUint64(1),
		ClassHash:           mustFelt(t, "0x1"),
		Salt:                mustFelt(t, "0x2"),
		ConstructorCalldata: []*felt.Felt{mustFelt(t, "0x3")},
		MaxFee:              mustFelt(t, "0x100"),
		ChainID:             mustFelt(t, "0x1"),
		Nonce:               felt.FromUint64(0),
	}
	addr := tx.Address()
	assert.False(t, addr.IsZero())

	other := *tx
	other.Salt = mustFelt(t, "0x4")
	assert.False(t, addr.Equal(other.Address()))
	assert.False(t, tx.Hash().Equal(other.Hash()))
}

func TestHashAllMixesV1Transactions(t *testing.T) {
	tx1 := &txn.InvokeV1{
		Version:       felt.FromUint64(1),
		SenderAddress: mustFelt(t, "0x1"),
		Calldata:      []*felt.Felt{mustFelt(t, "0x2")},
		MaxFee:        mustFelt(t, "0x100"),
		ChainID:       mustFelt(t, "0x1"),
		Nonce:         felt.FromUint64(0),
	}
	tx2 := &txn.DeclareV1{
		Version:       felt.FromUint64(1),
		SenderAddress: mustFelt(t, "0x1"),
		ClassHash:     mustFelt(t, "0x2"),
		MaxFee:        mustFelt(t, "0x100"),
		ChainID:       mustFelt(t, "0x1"),
		Nonce:         felt.FromUint64(0),
	}

	got, err := txn.HashAll([]txn.Hashable{
		txn.AsHashable(tx1.Hash),
		txn.AsHashable(tx2.Hash),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(tx1.Hash()))
	assert.True(t, got[1].Equal(tx2.Hash()))
}
