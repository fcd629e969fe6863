package txn

import (
	"encoding/json"
	"fmt"

	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/sizedint"
)

// rawResourceBound is one entry of a v3 transaction's resource_bounds
// JSON mapping.
type rawResourceBound struct {
	MaxAmount       string `json:"max_amount" validate:"required"`
	MaxPricePerUnit string `json:"max_price_per_unit" validate:"required"`
}

// rawTransaction is the union of every field any supported transaction
// type/version combination needs; FromJSON picks out only the fields
// relevant to the (type, version) pair it finds.
type rawTransaction struct {
	Type                  string                      `json:"type" validate:"required"`
	Version               string                      `json:"version" validate:"required"`
	SenderAddress         string                      `json:"sender_address"`
	ClassHash             string                      `json:"class_hash"`
	CompiledClassHash     string                      `json:"compiled_class_hash"`
	ContractAddressSalt   string                      `json:"contract_address_salt"`
	ConstructorCalldata   []string                    `json:"constructor_calldata"`
	Calldata              []string                    `json:"calldata"`
	MaxFee                string                      `json:"max_fee"`
	ChainID               string                      `json:"chain_id" validate:"required"`
	Nonce                 string                      `json:"nonce"`
	Tip                   string                      `json:"tip"`
	ResourceBounds        map[string]rawResourceBound `json:"resource_bounds"`
	PaymasterData         []string                    `json:"paymaster_data"`
	AccountDeploymentData []string                    `json:"account_deployment_data"`
	NonceDAMode           string                      `json:"nonce_data_availability_mode"`
	FeeDAMode             string                      `json:"fee_data_availability_mode"`
}

// FromJSON decodes a transaction envelope and returns the Hashable it
// describes. The "type"/"version" pair selects among INVOKE (v1/v3),
// DECLARE (v1/v2/v3) and DEPLOY_ACCOUNT (v1/v3); any other combination
// fails with errInvalidTransactionVersion.
func FromJSON(data []byte) (Hashable, error) {
	var raw rawTransaction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("txn: %w", err)
	}

	switch raw.Type {
	case "INVOKE", "INVOKE_FUNCTION":
		switch raw.Version {
		case "0x1", "0x100000000000000000000000000000001":
			tx, err := decodeInvokeV1(raw)
			if err != nil {
				return nil, err
			}
			return AsHashable(tx.Hash), nil
		case "0x3", "0x100000000000000000000000000000003":
			tx, err := decodeInvokeV3(raw)
			if err != nil {
				return nil, err
			}
			return tx, nil
		}
	case "DECLARE":
		switch raw.Version {
		case "0x1":
			tx, err := decodeDeclareV1(raw)
			if err != nil {
				return nil, err
			}
			return AsHashable(tx.Hash), nil
		case "0x2":
			tx, err := decodeDeclareV2(raw)
			if err != nil {
				return nil, err
			}
			return AsHashable(tx.Hash), nil
		case "0x3":
			tx, err := decodeDeclareV3(raw)
			if err != nil {
				return nil, err
			}
			return tx, nil
		}
	case "DEPLOY_ACCOUNT":
		switch raw.Version {
		case "0x1":
			tx, err := decodeDeployAccountV1(raw)
			if err != nil {
				return nil, err
			}
			return AsHashable(tx.Hash), nil
		case "0x3":
			tx, err := decodeDeployAccountV3(raw)
			if err != nil {
				return nil, err
			}
			return tx, nil
		}
	}
	return nil, fmt.Errorf("%w: type=%q version=%q", errInvalidTransactionVersion, raw.Type, raw.Version)
}

func decodeFelt(s string) (*felt.Felt, error) {
	if s == "" {
		return &felt.Zero, nil
	}
	return felt.FromHex(s)
}

func decodeFeltSlice(ss []string) ([]*felt.Felt, error) {
	out := make([]*felt.Felt, len(ss))
	for i, s := range ss {
		f, err := decodeFelt(s)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func decodeResourceBound(raw rawResourceBound) (ResourceBound, error) {
	amount, err := sizedint.Uint64FromHex(raw.MaxAmount)
	if err != nil {
		return ResourceBound{}, err
	}
	price, err := sizedint.Uint128FromHex(raw.MaxPricePerUnit)
	if err != nil {
		return ResourceBound{}, err
	}
	return ResourceBound{MaxAmount: amount, MaxPricePerUnit: price}, nil
}

func decodeResourceBounds(m map[string]rawResourceBound) (ResourceBounds, error) {
	l1, ok := m["L1_GAS"]
	if !ok {
		return nil, fmt.Errorf("%w: L1_GAS", ErrUnknownResource)
	}
	l2, ok := m["L2_GAS"]
	if !ok {
		return nil, fmt.Errorf("%w: L2_GAS", ErrUnknownResource)
	}
	l1Bound, err := decodeResourceBound(l1)
	if err != nil {
		return nil, err
	}
	l2Bound, err := decodeResourceBound(l2)
	if err != nil {
		return nil, err
	}

	l1data, ok := m["L1_DATA_GAS"]
	if !ok {
		return ResourceBoundsV0{L1Gas: l1Bound, L2Gas: l2Bound}, nil
	}
	l1dataBound, err := decodeResourceBound(l1data)
	if err != nil {
		return nil, err
	}
	return ResourceBoundsV1{L1Gas: l1Bound, L2Gas: l2Bound, L1DataGas: l1dataBound}, nil
}

func decodeDAMode(s string) (DAMode, error) {
	switch s {
	case "L1", "l1", "0x0", "":
		return DAModeL1, nil
	case "L2", "l2", "0x1":
		return DAModeL2, nil
	default:
		return 0, fmt.Errorf("txn: unknown data-availability mode %q", s)
	}
}

func decodeInvokeV1(raw rawTransaction) (*InvokeV1, error) {
	version, err := decodeFelt(raw.Version)
	if err != nil {
		return nil, err
	}
	sender, err := decodeFelt(raw.SenderAddress)
	if err != nil {
		return nil, err
	}
	calldata, err := decodeFeltSlice(raw.Calldata)
	if err != nil {
		return nil, err
	}
	maxFee, err := decodeFelt(raw.MaxFee)
	if err != nil {
		return nil, err
	}
	chainID, err := decodeFelt(raw.ChainID)
	if err != nil {
		return nil, err
	}
	nonce, err := decodeFelt(raw.Nonce)
	if err != nil {
		return nil, err
	}
	return &InvokeV1{
		Version: version, SenderAddress: sender, Calldata: calldata,
		MaxFee: maxFee, ChainID: chainID, Nonce: nonce,
	}, nil
}

func decodeDeclareV1(raw rawTransaction) (*DeclareV1, error) {
	version, err := decodeFelt(raw.Version)
	if err != nil {
		return nil, err
	}
	sender, err := decodeFelt(raw.SenderAddress)
	if err != nil {
		return nil, err
	}
	classHash, err := decodeFelt(raw.ClassHash)
	if err != nil {
		return nil, err
	}
	maxFee, err := decodeFelt(raw.MaxFee)
	if err != nil {
		return nil, err
	}
	chainID, err := decodeFelt(raw.ChainID)
	if err != nil {
		return nil, err
	}
	nonce, err := decodeFelt(raw.Nonce)
	if err != nil {
		return nil, err
	}
	return &DeclareV1{
		Version: version, SenderAddress: sender, ClassHash: classHash,
		MaxFee: maxFee, ChainID: chainID, Nonce: nonce,
	}, nil
}

func decodeDeclareV2(raw rawTransaction) (*DeclareV2, error) {
	v1, err := decodeDeclareV1(raw)
	if err != nil {
		return nil, err
	}
	compiledClassHash, err := decodeFelt(raw.CompiledClassHash)
	if err != nil {
		return nil, err
	}
	return &DeclareV2{
		Version: v1.Version, SenderAddress: v1.SenderAddress, ClassHash: v1.ClassHash,
		CompiledClassHash: compiledClassHash, MaxFee: v1.MaxFee, ChainID: v1.ChainID, Nonce: v1.Nonce,
	}, nil
}

func decodeDeployAccountV1(raw rawTransaction) (*DeployAccountV1, error) {
	version, err := decodeFelt(raw.Version)
	if err != nil {
		return nil, err
	}
	classHash, err := decodeFelt(raw.ClassHash)
	if err != nil {
		return nil, err
	}
	salt, err := decodeFelt(raw.ContractAddressSalt)
	if err != nil {
		return nil, err
	}
	constructorCalldata, err := decodeFeltSlice(raw.ConstructorCalldata)
	if err != nil {
		return nil, err
	}
	maxFee, err := decodeFelt(raw.MaxFee)
	if err != nil {
		return nil, err
	}
	chainID, err := decodeFelt(raw.ChainID)
	if err != nil {
		return nil, err
	}
	nonce, err := decodeFelt(raw.Nonce)
	if err != nil {
		return nil, err
	}
	return &DeployAccountV1{
		Version: version, ClassHash: classHash, Salt: salt,
		ConstructorCalldata: constructorCalldata, MaxFee: maxFee, ChainID: chainID, Nonce: nonce,
	}, nil
}

func decodeV3Common(raw rawTransaction) (v3Common, error) {
	version, err := decodeFelt(raw.Version)
	if err != nil {
		return v3Common{}, err
	}
	chainID, err := decodeFelt(raw.ChainID)
	if err != nil {
		return v3Common{}, err
	}
	nonce, err := decodeFelt(raw.Nonce)
	if err != nil {
		return v3Common{}, err
	}
	tip, err := sizedint.Uint64FromHex(raw.Tip)
	if err != nil {
		return v3Common{}, err
	}
	bounds, err := decodeResourceBounds(raw.ResourceBounds)
	if err != nil {
		return v3Common{}, err
	}
	paymasterData, err := decodeFeltSlice(raw.PaymasterData)
	if err != nil {
		return v3Common{}, err
	}
	nonceDAMode, err := decodeDAMode(raw.NonceDAMode)
	if err != nil {
		return v3Common{}, err
	}
	feeDAMode, err := decodeDAMode(raw.FeeDAMode)
	if err != nil {
		return v3Common{}, err
	}
	return v3Common{
		Tip: tip, ResourceBounds: bounds, PaymasterData: paymasterData,
		ChainID: chainID, Nonce: nonce, Version: version,
		NonceDAMode: nonceDAMode, FeeDAMode: feeDAMode,
	}, nil
}

func decodeInvokeV3(raw rawTransaction) (*InvokeV3, error) {
	common, err := decodeV3Common(raw)
	if err != nil {
		return nil, err
	}
	sender, err := decodeFelt(raw.SenderAddress)
	if err != nil {
		return nil, err
	}
	calldata, err := decodeFeltSlice(raw.Calldata)
	if err != nil {
		return nil, err
	}
	accountDeploymentData, err := decodeFeltSlice(raw.AccountDeploymentData)
	if err != nil {
		return nil, err
	}
	return &InvokeV3{
		v3Common: common, SenderAddress: sender, Calldata: calldata,
		AccountDeploymentData: accountDeploymentData,
	}, nil
}

func decodeDeclareV3(raw rawTransaction) (*DeclareV3, error) {
	common, err := decodeV3Common(raw)
	if err != nil {
		return nil, err
	}
	sender, err := decodeFelt(raw.SenderAddress)
	if err != nil {
		return nil, err
	}
	classHash, err := decodeFelt(raw.ClassHash)
	if err != nil {
		return nil, err
	}
	compiledClassHash, err := decodeFelt(raw.CompiledClassHash)
	if err != nil {
		return nil, err
	}
	accountDeploymentData, err := decodeFeltSlice(raw.AccountDeploymentData)
	if err != nil {
		return nil, err
	}
	return &DeclareV3{
		v3Common: common, SenderAddress: sender, ClassHash: classHash,
		CompiledClassHash: compiledClassHash, AccountDeploymentData: accountDeploymentData,
	}, nil
}

func decodeDeployAccountV3(raw rawTransaction) (*DeployAccountV3, error) {
	common, err := decodeV3Common(raw)
	if err != nil {
		return nil, err
	}
	classHash, err := decodeFelt(raw.ClassHash)
	if err != nil {
		return nil, err
	}
	salt, err := decodeFelt(raw.ContractAddressSalt)
	if err != nil {
		return nil, err
	}
	constructorCalldata, err := decodeFeltSlice(raw.ConstructorCalldata)
	if err != nil {
		return nil, err
	}
	return &DeployAccountV3{
		v3Common: common, ClassHash: classHash, Salt: salt,
		ConstructorCalldata: constructorCalldata,
	}, nil
}
