package utils_test

import (
	"strings"
	"testing"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var networkStrings = map[utils.Network]string{
	utils.Mainnet:            "mainnet",
	utils.Sepolia:            "sepolia",
	utils.SepoliaIntegration: "sepolia-integration",
}

func TestNetworkString(t *testing.T) {
	for network, str := range networkStrings {
		assert.Equal(t, str, network.String())
	}
}

func TestNetworkChainID(t *testing.T) {
	for n := range networkStrings {
		want, err := felt.FromShortString(n.ChainIDString())
		require.NoError(t, err)
		assert.True(t, want.Equal(n.ChainID()))
	}
}

//nolint:dupl // see comment in utils/log_test.go
func TestNetworkSet(t *testing.T) {
	for network, str := range networkStrings {
		t.Run("network "+str, func(t *testing.T) {
			n := new(utils.Network)
			require.NoError(t, n.Set(str))
			assert.Equal(t, network, *n)
		})
		uppercase := strings.ToUpper(str)
		t.Run("network "+uppercase, func(t *testing.T) {
			n := new(utils.Network)
			require.NoError(t, n.Set(uppercase))
			assert.Equal(t, network, *n)
		})
	}

	t.Run("unknown network", func(t *testing.T) {
		n := new(utils.Network)
		require.ErrorIs(t, n.Set("blah"), utils.ErrUnknownNetwork)
	})
}

func TestNetworkUnmarshalText(t *testing.T) {
	for network, str := range networkStrings {
		t.Run("network "+str, func(t *testing.T) {
			n := new(utils.Network)
			require.NoError(t, n.UnmarshalText([]byte(str)))
			assert.Equal(t, network, *n)
		})
		uppercase := strings.ToUpper(str)
		t.Run("network "+uppercase, func(t *testing.T) {
			n := new(utils.Network)
			require.NoError(t, n.UnmarshalText([]byte(uppercase)))
			assert.Equal(t, network, *n)
		})
	}

	t.Run("unknown network", func(t *testing.T) {
		l := new(utils.Network)
		require.ErrorIs(t, l.UnmarshalText([]byte("blah")), utils.ErrUnknownNetwork)
	})
}

func TestNetworkType(t *testing.T) {
	assert.Equal(t, "Network", new(utils.Network).Type())
}
