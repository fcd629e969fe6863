// Package txn computes Starknet transaction hashes for invoke,
// declare and deploy-account transactions at versions v1/v2 (Pedersen
// cascades) and v3 (Poseidon, resource bounds, DA-mode packing).
package txn

import "github.com/NethermindEth/starknet-typedtx/felt"

func mustShortString(s string) *felt.Felt {
	f, err := felt.FromShortString(s)
	if err != nil {
		panic(err)
	}
	return f
}

var (
	invokePrefix        = mustShortString("invoke")
	declarePrefix       = mustShortString("declare")
	deployAccountPrefix = mustShortString("deploy_account")
)
