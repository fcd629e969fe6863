package typeddata

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/NethermindEth/starknet-typedtx/bytearray"
	"github.com/NethermindEth/starknet-typedtx/crypto"
	"github.com/NethermindEth/starknet-typedtx/felt"
	"github.com/NethermindEth/starknet-typedtx/merkle"
	"github.com/NethermindEth/starknet-typedtx/sizedint"
)

// hashArray folds elems with the revision's array-hash primitive:
// Pedersen in V0, Poseidon in V1.
func (td *TypedData) hashArray(elems ...*felt.Felt) *felt.Felt {
	if td.Revision == RevisionV1 {
		return crypto.PoseidonArray(elems...)
	}
	return crypto.PedersenArray(elems...)
}

// hashPair is the two-argument form of hashArray's primitive, used by
// the Merkle tree over this instance's revision.
func (td *TypedData) hashPair(a, b *felt.Felt) *felt.Felt {
	if td.Revision == RevisionV1 {
		return crypto.Poseidon(a, b)
	}
	return crypto.Pedersen(a, b)
}

// structHash computes struct_hash(t, obj) = hash_array([type_hash(t)]
// ++ [encode_value(field.type, obj[field.name]) for field in
// types[t]]), in the type's declaration order.
func (td *TypedData) structHash(typeName string, obj map[string]any) (*felt.Felt, error) {
	fields, ok := td.allTypes()[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}
	th, err := td.typeHash(typeName)
	if err != nil {
		return nil, err
	}

	hashes := make([]*felt.Felt, 0, 1+len(fields))
	hashes = append(hashes, th)
	for _, f := range fields {
		name := f.FieldName()
		val, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s missing from message", ErrSchema, typeName, name)
		}
		h, err := td.encodeValue(fieldTypeName(f), val, f)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", typeName, name, err)
		}
		hashes = append(hashes, h)
	}
	return td.hashArray(hashes...), nil
}

func fieldTypeName(f Type) string {
	switch ft := f.(type) {
	case StandardType:
		return ft.Kind
	case MerkleTreeType:
		return "merkletree"
	case EnumType:
		return "enum"
	default:
		return ""
	}
}

// encodeValue implements encode_value(typeName, value, context) -> felt,
// per §4.5's four-branch dispatch.
func (td *TypedData) encodeValue(typeName string, value any, ctx Type) (*felt.Felt, error) {
	all := td.allTypes()

	if _, ok := all[typeName]; ok {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected object for type %s", ErrSchema, typeName)
		}
		return td.structHash(typeName, obj)
	}

	if isArrayType(typeName) {
		elemType := strings.TrimSuffix(typeName, "*")
		arr, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected array for type %s", ErrSchema, typeName)
		}
		hashes := make([]*felt.Felt, len(arr))
		for i, v := range arr {
			h, err := td.encodeValue(elemType, v, nil)
			if err != nil {
				return nil, err
			}
			hashes[i] = h
		}
		return td.hashArray(hashes...), nil
	}

	switch typeName {
	case "felt", "bool":
		return feltFromPrimitive(value)
	case "string":
		if td.Revision == RevisionV1 {
			return td.encodeByteArrayString(value)
		}
		return feltFromPrimitive(value)
	case "selector":
		return encodeSelector(value)
	case "merkletree":
		return td.encodeMerkleTree(ctx, value)
	case "enum":
		return td.encodeEnum(ctx, value)
	case "i128":
		if td.Revision != RevisionV1 {
			return nil, fmt.Errorf("%w: i128 requires revision 1", ErrRevisionMismatch)
		}
		return encodeI128(value)
	case "u128":
		if td.Revision != RevisionV1 {
			return nil, fmt.Errorf("%w: u128 requires revision 1", ErrRevisionMismatch)
		}
		return encodeU128(value)
	case "ContractAddress", "ClassHash", "timestamp", "shortstring":
		if td.Revision != RevisionV1 {
			return nil, fmt.Errorf("%w: %s requires revision 1", ErrRevisionMismatch, typeName)
		}
		return feltFromPrimitive(value)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}
}

func (td *TypedData) encodeByteArrayString(value any) (*felt.Felt, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: string field must be a JSON string", ErrSchema)
	}
	ba := bytearray.FromString(s)
	return td.hashArray(ba.ToCalldata()...), nil
}

func (td *TypedData) encodeMerkleTree(ctx Type, value any) (*felt.Felt, error) {
	mt, ok := ctx.(MerkleTreeType)
	if !ok {
		return nil, fmt.Errorf("%w: merkletree field used without a MerkleTreeType context", ErrSchema)
	}
	arr, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array for merkletree field %q", ErrSchema, mt.Name)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("%w: merkletree field %q has no elements", ErrEmpty, mt.Name)
	}
	leaves := make([]*felt.Felt, len(arr))
	for i, v := range arr {
		h, err := td.encodeValue(mt.Contains, v, nil)
		if err != nil {
			return nil, err
		}
		leaves[i] = h
	}
	root, err := merkle.Root(leaves, td.hashPair)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (td *TypedData) encodeEnum(ctx Type, value any) (*felt.Felt, error) {
	if td.Revision != RevisionV1 {
		return nil, fmt.Errorf("%w: enum requires revision 1", ErrRevisionMismatch)
	}
	et, ok := ctx.(EnumType)
	if !ok {
		return nil, fmt.Errorf("%w: enum field used without an EnumType context", ErrSchema)
	}
	obj, ok := value.(map[string]any)
	if !ok || len(obj) != 1 {
		return nil, fmt.Errorf("%w: enum value for %q must be a single-keyed object", ErrSchema, et.Name)
	}

	var variantName string
	var rawArgs any
	for k, v := range obj {
		variantName = k
		rawArgs = v
	}

	variants, ok := td.allTypes()[et.Contains]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, et.Contains)
	}

	idx := -1
	var variantKind string
	matches := 0
	for i, v := range variants {
		st, ok := v.(StandardType)
		if !ok || st.Name != variantName {
			continue
		}
		idx = i
		variantKind = st.Kind
		matches++
	}
	if matches != 1 {
		return nil, fmt.Errorf("%w: variant %q missing or ambiguous in %s", ErrSchema, variantName, et.Contains)
	}

	argTypes := decomposeTypeNames(variantKind)
	args, ok := rawArgs.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: variant %q args must be an array", ErrSchema, variantName)
	}
	if len(args) != len(argTypes) {
		return nil, fmt.Errorf("%w: variant %q expects %d args, got %d", ErrSchema, variantName, len(argTypes), len(args))
	}

	hashes := make([]*felt.Felt, 0, 1+len(args))
	hashes = append(hashes, felt.FromUint64(uint64(idx)))
	for i, argType := range argTypes {
		h, err := td.encodeValue(argType, args[i], nil)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return td.hashArray(hashes...), nil
}

// messageHashPrefix is short_string("StarkNet Message"), the constant
// first element of every V0 and V1 message hash.
var messageHashPrefix = func() *felt.Felt {
	f, err := felt.FromShortString("StarkNet Message")
	if err != nil {
		panic(err)
	}
	return f
}()

// GetMessageHash computes:
//
//	hash_array([short_string("StarkNet Message"),
//	            struct_hash(domain.separatorName, domain),
//	            accountAddress,
//	            struct_hash(primaryType, message)])
func (td *TypedData) GetMessageHash(accountAddress *felt.Felt) (*felt.Felt, error) {
	domainHash, err := td.structHash(td.domainSeparatorName(), td.Domain)
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}
	messageHash, err := td.structHash(td.PrimaryType, td.Message)
	if err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	return td.hashArray(messageHashPrefix, domainHash, accountAddress, messageHash), nil
}

func feltFromPrimitive(v any) (*felt.Felt, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return felt.FromUint64(1), nil
		}
		return felt.FromUint64(0), nil
	case float64:
		bi, err := numberToBigInt(t)
		if err != nil {
			return nil, err
		}
		f, err := felt.FromBigInt(bi)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return f, nil
	case string:
		if t == "" {
			return &felt.Zero, nil
		}
		if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
			return felt.FromHex(t)
		}
		if isDecimalDigits(t) {
			return felt.FromDecimal(t)
		}
		return felt.FromShortString(t)
	default:
		return nil, fmt.Errorf("%w: unsupported primitive value of type %T", ErrSchema, v)
	}
}

// isDecimalDigits reports whether s is a non-empty run of ASCII
// decimal digits, i.e. a plain integer string rather than short text
// meant to be ASCII-encoded.
func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func encodeSelector(v any) (*felt.Felt, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: selector must be a string", ErrSchema)
	}
	if f, err := felt.FromHex(s); err == nil {
		return f, nil
	}
	return crypto.SelectorFromName(s)
}

var i128Bound = new(big.Int).Lsh(big.NewInt(1), 127)

func encodeI128(v any) (*felt.Felt, error) {
	bi, err := toBigInt(v)
	if err != nil {
		return nil, err
	}
	if new(big.Int).Abs(bi).Cmp(i128Bound) >= 0 {
		return nil, fmt.Errorf("%w: i128 value %s out of range", ErrOutOfRange, bi.String())
	}
	if bi.Sign() >= 0 {
		return felt.FromBigInt(bi)
	}
	return felt.FromSignedBigInt(bi)
}

func encodeU128(v any) (*felt.Felt, error) {
	bi, err := toBigInt(v)
	if err != nil {
		return nil, err
	}
	if bi.Sign() < 0 {
		return nil, fmt.Errorf("%w: u128 value %s must be non-negative", ErrOutOfRange, bi.String())
	}
	if _, err := sizedint.Uint128FromBigInt(bi); err != nil {
		return nil, err
	}
	return felt.FromBigInt(bi)
}

func numberToBigInt(f float64) (*big.Int, error) {
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %v is not an integer", ErrSchema, f)
	}
	bi, _ := new(big.Float).SetFloat64(f).Int(nil)
	return bi, nil
}

func toBigInt(v any) (*big.Int, error) {
	switch t := v.(type) {
	case float64:
		return numberToBigInt(t)
	case bool:
		if t {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case string:
		if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
			bi, ok := new(big.Int).SetString(t[2:], 16)
			if !ok {
				return nil, fmt.Errorf("%w: invalid hex integer %q", ErrSchema, t)
			}
			return bi, nil
		}
		bi, ok := new(big.Int).SetString(t, 10)
		if !ok {
			return nil, fmt.Errorf("%w: invalid integer %q", ErrSchema, t)
		}
		return bi, nil
	default:
		return nil, fmt.Errorf("%w: unsupported integer value of type %T", ErrSchema, v)
	}
}
