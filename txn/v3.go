package txn

import (
	"github.com/NethermindEth/starknet-typedtx/contractaddress"
	"github.com/NethermindEth/starknet-typedtx/crypto"
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/sizedint"
)

// v3Common holds the fields every v3 transaction hashes identically:
// the common prefix is
//
//	[txPrefix, version, address,
//	 poseidon_hash_many([tip, *resourceBounds.elements()]),
//	 poseidon_hash_many(paymasterData),
//	 chainId, nonce, da_modes_packed]
type v3Common struct {
	Tip            sizedint.Uint64
	ResourceBounds ResourceBounds
	PaymasterData  []*felt.Felt
	ChainID        *felt.Felt
	Nonce          *felt.Felt
	Version        *felt.Felt
	NonceDAMode    DAMode
	FeeDAMode      DAMode
}

func (c v3Common) prefix(txPrefix, address *felt.Felt) ([]*felt.Felt, error) {
	bounds, err := c.ResourceBounds.elements()
	if err != nil {
		return nil, err
	}
	resourceInput := make([]*felt.Felt, 0, 1+len(bounds))
	resourceInput = append(resourceInput, c.Tip.ToFelt())
	resourceInput = append(resourceInput, bounds...)
	resourceHash := crypto.PoseidonArray(resourceInput...)
	paymasterHash := crypto.PoseidonArray(c.PaymasterData...)
	daModes := packDAModes(c.NonceDAMode, c.FeeDAMode)

	return []*felt.Felt{
		txPrefix, c.Version, address, resourceHash, paymasterHash,
		c.ChainID, c.Nonce, daModes,
	}, nil
}

// InvokeV3 is an invoke_v3 transaction.
type InvokeV3 struct {
	v3Common
	SenderAddress         *felt.Felt
	Calldata              []*felt.Felt
	AccountDeploymentData []*felt.Felt
}

// Hash computes this transaction's hash.
func (tx *InvokeV3) Hash() (*felt.Felt, error) {
	common, err := tx.v3Common.prefix(invokePrefix, tx.SenderAddress)
	if err != nil {
		return nil, err
	}
	elems := append(common,
		crypto.PoseidonArray(tx.AccountDeploymentData...),
		crypto.PoseidonArray(tx.Calldata...),
	)
	return crypto.PoseidonArray(elems...), nil
}

// DeclareV3 is a declare_v3 transaction.
type DeclareV3 struct {
	v3Common
	SenderAddress         *felt.Felt
	ClassHash             *felt.Felt
	CompiledClassHash     *felt.Felt
	AccountDeploymentData []*felt.Felt
}

// Hash computes this transaction's hash.
func (tx *DeclareV3) Hash() (*felt.Felt, error) {
	common, err := tx.v3Common.prefix(declarePrefix, tx.SenderAddress)
	if err != nil {
		return nil, err
	}
	elems := append(common,
		crypto.PoseidonArray(tx.AccountDeploymentData...),
		tx.ClassHash,
		tx.CompiledClassHash,
	)
	return crypto.PoseidonArray(elems...), nil
}

// DeployAccountV3 is a deploy_account_v3 transaction. Like
// DeployAccountV1, its address is derived rather than supplied.
type DeployAccountV3 struct {
	v3Common
	ClassHash           *felt.Felt
	Salt                *felt.Felt
	ConstructorCalldata []*felt.Felt
}

// Address computes the account address this transaction deploys to.
func (tx *DeployAccountV3) Address() *felt.Felt {
	return contractaddress.Calculate(tx.ClassHash, tx.Salt, tx.ConstructorCalldata)
}

// Hash computes this transaction's hash.
func (tx *DeployAccountV3) Hash() (*felt.Felt, error) {
	address := tx.Address()
	common, err := tx.v3Common.prefix(deployAccountPrefix, address)
	if err != nil {
		return nil, err
	}
	elems := append(common,
		crypto.PoseidonArray(tx.ConstructorCalldata...),
		tx.ClassHash,
		tx.Salt,
	)
	return crypto.PoseidonArray(elems...), nil
}
