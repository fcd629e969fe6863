package txn

import (
	"math/big"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/sizedint"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// ResourceBound is one resource's (max_amount, max_price_per_unit) pair
// as carried in a v3 transaction's resource_bounds mapping.
type ResourceBound struct {
	MaxAmount       sizedint.Uint64
	MaxPricePerUnit sizedint.Uint128
}

// ResourceBounds is implemented by ResourceBoundsV0 (the original
// two-resource L1_GAS/L2_GAS form) and ResourceBoundsV1 (the
// three-resource form adding L1_DATA_GAS). The hashers use whichever
// type the transaction carries; FromJSON picks ResourceBoundsV1 when
// the decoded mapping has an L1_DATA_GAS entry and ResourceBoundsV0
// otherwise.
type ResourceBounds interface {
	elements() ([]*felt.Felt, error)
}

// ResourceBoundsV0 is the two-bound resource_bounds form.
type ResourceBoundsV0 struct {
	L1Gas ResourceBound
	L2Gas ResourceBound
}

func (b ResourceBoundsV0) elements() ([]*felt.Felt, error) {
	l1, err := packResourceBound("L1_GAS", b.L1Gas)
	if err != nil {
		return nil, err
	}
	l2, err := packResourceBound("L2_GAS", b.L2Gas)
	if err != nil {
		return nil, err
	}
	return []*felt.Felt{l1, l2}, nil
}

// ResourceBoundsV1 is the three-bound resource_bounds form, adding
// L1_DATA_GAS alongside L1_GAS and L2_GAS.
type ResourceBoundsV1 struct {
	L1Gas     ResourceBound
	L2Gas     ResourceBound
	L1DataGas ResourceBound
}

func (b ResourceBoundsV1) elements() ([]*felt.Felt, error) {
	l1, err := packResourceBound("L1_GAS", b.L1Gas)
	if err != nil {
		return nil, err
	}
	l2, err := packResourceBound("L2_GAS", b.L2Gas)
	if err != nil {
		return nil, err
	}
	l1d, err := packResourceBound("L1_DATA", b.L1DataGas)
	if err != nil {
		return nil, err
	}
	return []*felt.Felt{l1, l2, l1d}, nil
}

// packResourceBound computes:
//
//	R_BOUND = (short_string(R) << (64+128)) | (max_amount << 128) | max_price_per_unit
//
// reduced modulo P, for R in {"L1_GAS", "L2_GAS", "L1_DATA"}.
func packResourceBound(resource string, b ResourceBound) (*felt.Felt, error) {
	prefix, err := felt.FromShortString(resource)
	if err != nil {
		return nil, err
	}
	var prefixInt big.Int
	prefix.BigInt(&prefixInt)

	packed := new(big.Int).Lsh(&prefixInt, 64+128)
	amount := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(b.MaxAmount)), 128)
	packed.Add(packed, amount)
	packed.Add(packed, b.MaxPricePerUnit.BigInt())
	packed.Mod(packed, fp.Modulus())

	return felt.FromBigInt(packed)
}

// DAMode selects the data-availability mode (L1 or L2) a v3
// transaction's nonce or fee uses.
type DAMode uint32

const (
	DAModeL1 DAMode = 0
	DAModeL2 DAMode = 1
)

// packDAModes computes da_modes_packed = (nonceMode << 32) | feeMode.
func packDAModes(nonceMode, feeMode DAMode) *felt.Felt {
	return felt.FromUint64(uint64(nonceMode)<<32 | uint64(feeMode))
}
