package txn_test

import (
	"testing"

	"github.com/NethermindEth/starknet-typedtx/txn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONInvokeV1(t *testing.T) {
	doc := []byte(`{
		"type": "INVOKE",
		"version": "0x1",
		"sender_address": "0x1",
		"calldata": ["0x2", "0x3"],
		"max_fee": "0x100",
		"chain_id": "0x534e5f4d41494e",
		"nonce": "0x0"
	}`)

	hashable, err := txn.FromJSON(doc)
	require.NoError(t, err)
	h, err := hashable.Hash()
	require.NoError(t, err)
	assert.False(t, h.IsZero())
}

func TestFromJSONInvokeV3(t *testing.T) {
	doc := []byte(`{
		"type": "INVOKE",
		"version": "0x3",
		"sender_address": "0x1",
		"calldata": ["0x2"],
		"chain_id": "0x534e5f4d41494e",
		"nonce": "0x0",
		"tip": "0x0",
		"resource_bounds": {
			"L1_GAS": {"max_amount": "0x1000", "max_price_per_unit": "0x64"},
			"L2_GAS": {"max_amount": "0x2000", "max_price_per_unit": "0xc8"}
		},
		"nonce_data_availability_mode": "L1",
		"fee_data_availability_mode": "L1"
	}`)

	hashable, err := txn.FromJSON(doc)
	require.NoError(t, err)
	h, err := hashable.Hash()
	require.NoError(t, err)
	assert.False(t, h.IsZero())
}

func TestFromJSONDeployAccountV3WithThreeBounds(t *testing.T) {
	doc := []byte(`{
		"type": "DEPLOY_ACCOUNT",
		"version": "0x3",
		"class_hash": "0x1",
		"contract_address_salt": "0x2",
		"constructor_calldata": ["0x3"],
		"chain_id": "0x534e5f4d41494e",
		"nonce": "0x0",
		"tip": "0x0",
		"resource_bounds": {
			"L1_GAS": {"max_amount": "0x1000", "max_price_per_unit": "0x64"},
			"L2_GAS": {"max_amount": "0x2000", "max_price_per_unit": "0xc8"},
			"L1_DATA_GAS": {"max_amount": "0x3000", "max_price_per_unit": "0x12c"}
		},
		"nonce_data_availability_mode": "L1",
		"fee_data_availability_mode": "L2"
	}`)

	hashable, err := txn.FromJSON(doc)
	require.NoError(t, err)
	h, err := hashable.Hash()
	require.NoError(t, err)
	assert.False(t, h.IsZero())
}

func TestFromJSONUnknownVersionFails(t *testing.T) {
	doc := []byte(`{"type": "INVOKE", "version": "0x9", "chain_id": "0x1"}`)
	_, err := txn.FromJSON(doc)
	require.Error(t, err)
}

func TestFromJSONMissingResourceBoundFails(t *testing.T) {
	doc := []byte(`{
		"type": "INVOKE",
		"version": "0x3",
		"sender_address": "0x1",
		"chain_id": "0x1",
		"nonce": "0x0",
		"tip": "0x0",
		"resource_bounds": {
			"L1_GAS": {"max_amount": "0x1000", "max_price_per_unit": "0x64"}
		}
	}`)
	_, err := txn.FromJSON(doc)
	require.ErrorIs(t, err, txn.ErrUnknownResource)
}
