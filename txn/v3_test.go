package txn_test

import (
	"testing"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/sizedint"
	"github.com/NethermindEth/starknet-typedtx/txn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoundsV0() txn.ResourceBoundsV0 {
	return txn.ResourceBoundsV0{
		L1Gas: txn.ResourceBound{MaxAmount: sizedint.NewUint64(1000), MaxPricePerUnit: sizedint.NewUint128(0, 100)},
		L2Gas: txn.ResourceBound{MaxAmount: sizedint.NewUint64(2000), MaxPricePerUnit: sizedint.NewUint128(0, 200)},
	}
}

func sampleBoundsV1() txn.ResourceBoundsV1 {
	return txn.ResourceBoundsV1{
		L1Gas:     txn.ResourceBound{MaxAmount: sizedint.NewUint64(1000), MaxPricePerUnit: sizedint.NewUint128(0, 100)},
		L2Gas:     txn.ResourceBound{MaxAmount: sizedint.NewUint64(2000), MaxPricePerUnit: sizedint.NewUint128(0, 200)},
		L1DataGas: txn.ResourceBound{MaxAmount: sizedint.NewUint64(3000), MaxPricePerUnit: sizedint.NewUint128(0, 300)},
	}
}

func TestInvokeV3HashDeterministicAndBoundsSensitive(t *testing.T) {
	mkTx := func(bounds txn.ResourceBounds, nonce uint64) *txn.InvokeV3 {
		tx := &txn.InvokeV3{
			SenderAddress:         mustFelt(t, "0x1"),
			Calldata:              []*felt.Felt{mustFelt(t, "0x2"), mustFelt(t, "0x3")},
			AccountDeploymentData: nil,
		}
		tx.Tip = sizedint.NewUint64(5)
		tx.ResourceBounds = bounds
		tx.PaymasterData = nil
		tx.ChainID = mustFelt(t, "0x1")
		tx.Nonce = felt.FromUint64(nonce)
		tx.Version = felt.FromUint64(3)
		tx.NonceDAMode = txn.DAModeL1
		tx.FeeDAMode = txn.DAModeL1
		return tx
	}

	tx1 := mkTx(sampleBoundsV0(), 0)
	h1, err := tx1.Hash()
	require.NoError(t, err)
	h1b, err := tx1.Hash()
	require.NoError(t, err)
	assert.True(t, h1.Equal(h1b))

	tx2 := mkTx(sampleBoundsV0(), 1)
	h2, err := tx2.Hash()
	require.NoError(t, err)
	assert.False(t, h1.Equal(h2))

	tx3 := mkTx(sampleBoundsV1(), 0)
	h3, err := tx3.Hash()
	require.NoError(t, err)
	assert.False(t, h1.Equal(h3), "two-bound and three-bound resource forms must hash differently")
}

func TestDeployAccountV3AddressFeedsHash(t *testing.T) {
	mk := func(salt *felt.Felt) *txn.DeployAccountV3 {
		tx := &txn.DeployAccountV3{
			ClassHash:           mustFelt(t, "0x1"),
			Salt:                salt,
			ConstructorCalldata: []*felt.Felt{mustFelt(t, "0x2")},
		}
		tx.Tip = sizedint.NewUint64(1)
		tx.ResourceBounds = sampleBoundsV0()
		tx.ChainID = mustFelt(t, "0x1")
		tx.Nonce = felt.FromUint64(0)
		tx.Version = felt.FromUint64(3)
		return tx
	}

	tx1 := mk(mustFelt(t, "0x10"))
	tx2 := mk(mustFelt(t, "0x11"))

	assert.False(t, tx1.Address().Equal(tx2.Address()))

	h1, err := tx1.Hash()
	require.NoError(t, err)
	h2, err := tx2.Hash()
	require.NoError(t, err)
	assert.False(t, h1.Equal(h2))
}

func TestDeclareV3DiffersFromInvokeV3WithSameFields(t *testing.T) {
	invoke := &txn.InvokeV3{
		SenderAddress: mustFelt(t, "0x1"),
		Calldata:      []*felt.Felt{mustFelt(t, "0x2")},
	}
	invoke.Tip = sizedint.NewUint64(1)
	invoke.ResourceBounds = sampleBoundsV0()
	invoke.ChainID = mustFelt(t, "0x1")
	invoke.Nonce = felt.FromUint64(0)
	invoke.Version = felt.FromUint64(3)

	declare := &txn.DeclareV3{
		SenderAddress:     mustFelt(t, "0x1"),
		ClassHash:         mustFelt(t, "0x2"),
		CompiledClassHash: mustFelt(t, "0x3"),
	}
	declare.Tip = sizedint.NewUint64(1)
	declare.ResourceBounds = sampleBoundsV0()
	declare.ChainID = mustFelt(t, "0x1")
	declare.Nonce = felt.FromUint64(0)
	declare.Version = felt.FromUint64(3)

	h1, err := invoke.Hash()
	require.NoError(t, err)
	h2, err := declare.Hash()
	require.NoError(t, err)
	assert.False(t, h1.Equal(h2))
}
