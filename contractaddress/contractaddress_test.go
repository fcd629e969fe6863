package contractaddress_test

import (
	"testing"

	"github.com/NethermindEth/starknet-typedtx/contractaddress"
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	// https://docs.starknet.io/architecture-and-concepts/smart-contracts/contract-address/
	salt, err := felt.FromHex("0x5bebda1b28ba6daa824126577b9fbc984033e8b18360f5e1ef694cb172c7aa5")
	require.NoError(t, err)
	classHash, err := felt.FromHex("0x439218681f9108b470d2379cf589ef47e60dc5888ee49ec70071671d74ca9c6")
	require.NoError(t, err)
	want, err := felt.FromHex("0x43c6817e70b3fd99a4f120790b2e82c6843df62b573fdadf9e2d677b60ac5eb")
	require.NoError(t, err)

	got := contractaddress.Calculate(classHash, salt, nil)
	assert.True(t, want.Equal(got))
}

func TestCalculateManyMatchesCalculate(t *testing.T) {
	reqs := make([]contractaddress.Request, 8)
	for i := range reqs {
		reqs[i] = contractaddress.Request{
			ClassHash: felt.FromUint64(uint64(i + 1)),
			Salt:      felt.FromUint64(uint64(i)),
			Calldata:  []*felt.Felt{felt.FromUint64(uint64(i * 7))},
		}
	}

	got, err := contractaddress.CalculateMany(reqs)
	require.NoError(t, err)
	require.Len(t, got, len(reqs))
	for i, req := range reqs {
		want := contractaddress.Calculate(req.ClassHash, req.Salt, req.Calldata)
		assert.True(t, want.Equal(got[i]), "request %d", i)
	}
}
