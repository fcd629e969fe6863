// Package contractaddress derives a Starknet contract address
// deterministically from its class hash, salt, and constructor
// calldata, following the ContractAddress construction also used by
// the teacher for computing deployed-contract addresses.
package contractaddress

import (
	"math/big"

	"github.com/NethermindEth/starknet-typedtx/crypto"
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/sourcegraph/conc/pool"
)

// contractAddressPrefix is short_string("STARKNET_CONTRACT_ADDRESS").
var contractAddressPrefix = func() *felt.Felt {
	f, err := felt.FromShortString("STARKNET_CONTRACT_ADDRESS")
	if err != nil {
		panic(err)
	}
	return f
}()

// deployerAddress is always zero for a universal-deployer-free
// address calculation (the deployer-address argument only matters
// for the UDC's own salt derivation, which is out of scope here).
var deployerAddress = &felt.Zero

// addressMask truncates the Pedersen digest to [0, 2^251): a contract
// address is not the raw digest, since the digest can legally land
// anywhere in [0, P) and P > 2^251.
var addressMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 251), big.NewInt(1))

// Calculate computes:
//
//	pedersen_on_elements([PREFIX, deployer=0, salt, classHash, pedersen_on_elements(calldata)]) mod 2^251
func Calculate(classHash, salt *felt.Felt, calldata []*felt.Felt) *felt.Felt {
	calldataHash := crypto.PedersenArray(calldata...)
	digest := crypto.PedersenArray(contractAddressPrefix, deployerAddress, salt, classHash, calldataHash)

	var raw big.Int
	digest.BigInt(&raw)
	raw.And(&raw, addressMask)

	address, err := felt.FromBigInt(&raw)
	if err != nil {
		panic(err)
	}
	return address
}

// Request is one (classHash, salt, calldata) triple for CalculateMany.
type Request struct {
	ClassHash *felt.Felt
	Salt      *felt.Felt
	Calldata  []*felt.Felt
}

// CalculateMany computes addresses for a batch of independent
// requests concurrently, returning results in the same order as reqs.
// Calculate never fails, so the error return is always nil; it is
// kept so callers can treat this the same as the other batch helpers
// in this module (typeddata.HashAll, txn.HashAll).
func CalculateMany(reqs []Request) ([]*felt.Felt, error) {
	out := make([]*felt.Felt, len(reqs))
	p := pool.New()
	for i, req := range reqs {
		i, req := i, req
		p.Go(func() {
			out[i] = Calculate(req.ClassHash, req.Salt, req.Calldata)
		})
	}
	p.Wait()
	return out, nil
}
