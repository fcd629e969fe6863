package txn

import (
	"github.com/NethermindEth/starknet-typedtx/contractaddress"
	"github.com/NethermindEth/starknet-typedtx/crypto"
	"github.com/NethermindEth/starknet-typedtx/felt"
)

// InvokeV1 is an invoke_v1 transaction, hashed as:
//
//	pedersen_on_elements([
//	  "invoke", version, senderAddress, 0,
//	  pedersen_on_elements(calldata), maxFee, chainId, nonce,
//	])
type InvokeV1 struct {
	Version       *felt.Felt
	SenderAddress *felt.Felt
	Calldata      []*felt.Felt
	MaxFee        *felt.Felt
	ChainID       *felt.Felt
	Nonce         *felt.Felt
}

// Hash computes this transaction's hash.
func (tx *InvokeV1) Hash() *felt.Felt {
	calldataHash := crypto.PedersenArray(tx.Calldata...)
	return crypto.PedersenArray(
		invokePrefix, tx.Version, tx.SenderAddress, &felt.Zero,
		calldataHash, tx.MaxFee, tx.ChainID, tx.Nonce,
	)
}

// DeclareV1 is a declare_v1 transaction, hashed the same way as
// InvokeV1 with calldata fixed to [classHash] and address set to the
// declaring account.
type DeclareV1 struct {
	Version       *felt.Felt
	SenderAddress *felt.Felt
	ClassHash     *felt.Felt
	MaxFee        *felt.Felt
	ChainID       *felt.Felt
	Nonce         *felt.Felt
}

// Hash computes this transaction's hash.
func (tx *DeclareV1) Hash() *felt.Felt {
	calldataHash := crypto.PedersenArray(tx.ClassHash)
	return crypto.PedersenArray(
		declarePrefix, tx.Version, tx.SenderAddress, &felt.Zero,
		calldataHash, tx.MaxFee, tx.ChainID, tx.Nonce,
	)
}

// DeclareV2 is a declare_v2 transaction: DeclareV1 with an extra
// compiledClassHash element appended to the cascade.
type DeclareV2 struct {
	Version           *felt.Felt
	SenderAddress     *felt.Felt
	ClassHash         *felt.Felt
	CompiledClassHash *felt.Felt
	MaxFee            *felt.Felt
	ChainID           *felt.Felt
	Nonce             *felt.Felt
}

// Hash computes this transaction's hash.
func (tx *DeclareV2) Hash() *felt.Felt {
	calldataHash := crypto.PedersenArray(tx.ClassHash)
	return crypto.PedersenArray(
		declarePrefix, tx.Version, tx.SenderAddress, &felt.Zero,
		calldataHash, tx.MaxFee, tx.ChainID, tx.Nonce, tx.CompiledClassHash,
	)
}

// DeployAccountV1 is a deploy_account_v1 transaction. Its address is
// derived from classHash/salt/constructorCalldata rather than supplied
// directly, since the account doesn't exist on chain yet.
type DeployAccountV1 struct {
	Version             *felt.Felt
	ClassHash           *felt.Felt
	Salt                *felt.Felt
	ConstructorCalldata []*felt.Felt
	MaxFee              *felt.Felt
	ChainID             *felt.Felt
	Nonce               *felt.Felt
}

// Address computes the account address this transaction deploys to.
func (tx *DeployAccountV1) Address() *felt.Felt {
	return contractaddress.Calculate(tx.ClassHash, tx.Salt, tx.ConstructorCalldata)
}

// Hash computes this transaction's hash.
func (tx *DeployAccountV1) Hash() *felt.Felt {
	address := tx.Address()
	calldata := make([]*felt.Felt, 0, 2+len(tx.ConstructorCalldata))
	calldata = append(calldata, tx.ClassHash, tx.Salt)
	calldata = append(calldata, tx.ConstructorCalldata...)
	calldataHash := crypto.PedersenArray(calldata...)
	return crypto.PedersenArray(
		deployAccountPrefix, tx.Version, address, &felt.Zero,
		calldataHash, tx.MaxFee, tx.ChainID, tx.Nonce,
	)
}
