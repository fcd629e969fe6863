// Package typeddata implements Starknet's SNIP-12-style structured
// message hashing: type-graph validation, canonical type-string
// encoding, and the V0 (Pedersen) / V1 (Poseidon) message-hash
// schemes. There is no direct equivalent in the teacher repo (a full
// node doesn't sign off-chain messages); this package follows the
// teacher's structural idioms — sealed-variant decoding, wrapped
// sentinel errors, lazily-populated memoisation — applied fresh to
// this domain.
package typeddata

import "strings"

// Revision selects the typed-data syntax and hash primitive: V0 is
// the pre-standardisation form (Pedersen, "StarkNetDomain" casing),
// V1 is the post-SNIP-12 form (Poseidon, "StarknetDomain" casing,
// escaped identifiers, enums, presets, byte-array strings).
type Revision int

const (
	RevisionV0 Revision = 0
	RevisionV1 Revision = 1
)

func (r Revision) String() string {
	if r == RevisionV1 {
		return "1"
	}
	return "0"
}

// Type is a sealed variant over the three shapes a type-table entry
// can take. The concrete variant is chosen at decode time by the
// presence of "contains" and the value of "type", the same dispatch
// style core/felt.UnmarshalJSON uses to special-case string vs
// number JSON payloads.
type Type interface {
	// FieldName is the field/type-table-entry name common to every
	// variant.
	FieldName() string
	sealedType()
}

// StandardType is an ordinary named field: Kind is the raw type
// string as declared — a basic type name, a custom type name, an
// array form ("Foo*"), or a parenthesised tuple form ("(A,B,C)").
type StandardType struct {
	Name string
	Kind string
}

func (t StandardType) FieldName() string { return t.Name }
func (StandardType) sealedType()         {}

// MerkleTreeType is a field whose value is an array to be folded into
// a Merkle root; Contains names the type every leaf is encoded under.
type MerkleTreeType struct {
	Name     string
	Contains string
}

func (t MerkleTreeType) FieldName() string { return t.Name }
func (MerkleTreeType) sealedType()         {}

// EnumType (V1 only) is a field whose value is a single-keyed
// {variant: [args...]} object; Contains names the custom type whose
// field list enumerates the variants in declaration order.
type EnumType struct {
	Name     string
	Contains string
}

func (t EnumType) FieldName() string { return t.Name }
func (EnumType) sealedType()         {}

// TypedData is a validated structured-message instance. It is
// immutable once constructed (§5): every hashing operation is a pure
// function of its fields, safe to call repeatedly and concurrently.
type TypedData struct {
	CustomTypes map[string][]Type
	PrimaryType string
	Domain      map[string]any
	Message     map[string]any
	Revision    Revision

	cache *TypeHashCache
}

// basicTypesV0 and basicTypesV1 are the reserved type names no custom
// type may shadow (§3 invariant 2).
var (
	basicTypesV0 = map[string]bool{
		"felt": true, "bool": true, "string": true, "selector": true, "merkletree": true,
	}
	basicTypesV1 = map[string]bool{
		"felt": true, "bool": true, "string": true, "selector": true, "merkletree": true,
		"enum": true, "i128": true, "u128": true, "ContractAddress": true,
		"ClassHash": true, "timestamp": true, "shortstring": true,
	}
)

// presetsV1 are the V1-only implicitly-defined types (§6): merged
// into the type table for dependency resolution and encoding, but not
// user-redefinable (enforced by the basic/preset shadow check).
var presetsV1 = map[string][]Type{
	"u256": {
		StandardType{Name: "low", Kind: "u128"},
		StandardType{Name: "high", Kind: "u128"},
	},
	"TokenAmount": {
		StandardType{Name: "token_address", Kind: "ContractAddress"},
		StandardType{Name: "amount", Kind: "u256"},
	},
	"NftId": {
		StandardType{Name: "collection_address", Kind: "ContractAddress"},
		StandardType{Name: "token_id", Kind: "u256"},
	},
}

func presetNames(rev Revision) map[string]bool {
	names := make(map[string]bool, len(presetsV1))
	if rev == RevisionV1 {
		for name := range presetsV1 {
			names[name] = true
		}
	}
	return names
}

func basicTypes(rev Revision) map[string]bool {
	if rev == RevisionV1 {
		return basicTypesV1
	}
	return basicTypesV0
}

// domainSeparatorName is the key CustomTypes must carry for the
// domain type: casing differs by revision and is load-bearing.
func (td *TypedData) domainSeparatorName() string {
	if td.Revision == RevisionV1 {
		return "StarknetDomain"
	}
	return "StarkNetDomain"
}

// allTypes returns CustomTypes merged with the V1 presets (a no-op
// merge in V0, since presetsV1 is only ever folded in under V1).
func (td *TypedData) allTypes() map[string][]Type {
	if td.Revision != RevisionV1 {
		return td.CustomTypes
	}
	merged := make(map[string][]Type, len(td.CustomTypes)+len(presetsV1))
	for k, v := range td.CustomTypes {
		merged[k] = v
	}
	for k, v := range presetsV1 {
		merged[k] = v
	}
	return merged
}

// decomposeTypeNames splits a raw type string into the type names it
// references: an array form "Foo*" decomposes to "Foo"; a
// parenthesised tuple "(A,B,C)" decomposes to ["A","B","C"] (and "()"
// to nil); anything else decomposes to itself.
func decomposeTypeNames(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "*")
	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		inner := strings.TrimSpace(raw[1 : len(raw)-1])
		if inner == "" {
			return nil
		}
		parts := strings.Split(inner, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{raw}
}

func isArrayType(raw string) bool {
	return strings.HasSuffix(strings.TrimSpace(raw), "*")
}

func isTupleType(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")")
}
