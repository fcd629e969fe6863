package typeddata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NethermindEth/starknet-typedtx/crypto"
	"github.com/NethermindEth/starknet-typedtx/felt"
)

// esc is the identity function in V0 and wraps name in ASCII double
// quotes in V1.
func esc(name string, rev Revision) string {
	if rev == RevisionV1 {
		return `"` + name + `"`
	}
	return name
}

// typeHash computes selector_from_name(encode(t)), memoised per
// TypedData instance via td.cache.
func (td *TypedData) typeHash(name string) (*felt.Felt, error) {
	return td.cache.get(name, func() (*felt.Felt, error) {
		encoded, err := td.encodeType(name)
		if err != nil {
			return nil, err
		}
		return crypto.SelectorFromName(encoded)
	})
}

// encodeType computes encode(t) = enc_dep(t) . concat(sort(enc_dep(d)
// for d in deps(t) \ {t})): the root's own fields first, then every
// transitively-referenced custom type in lexicographic order.
func (td *TypedData) encodeType(name string) (string, error) {
	all := td.allTypes()
	if _, ok := all[name]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	deps := typeDependencies(name, all)
	sort.Strings(deps)

	var sb strings.Builder
	root, err := td.encDep(name, all)
	if err != nil {
		return "", err
	}
	sb.WriteString(root)
	for _, d := range deps {
		enc, err := td.encDep(d, all)
		if err != nil {
			return "", err
		}
		sb.WriteString(enc)
	}
	return sb.String(), nil
}

// encDep renders one type-table entry: esc(name)(esc(f1):t1,esc(f2):t2,...).
func (td *TypedData) encDep(name string, all map[string][]Type) (string, error) {
	fields, ok := all[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		repr, err := td.fieldTypeRepr(f, all)
		if err != nil {
			return "", err
		}
		parts[i] = esc(f.FieldName(), td.Revision) + ":" + repr
	}
	return esc(name, td.Revision) + "(" + strings.Join(parts, ",") + ")", nil
}

// fieldTypeRepr is the type_repr half of one encoded field.
func (td *TypedData) fieldTypeRepr(f Type, all map[string][]Type) (string, error) {
	switch ft := f.(type) {
	case StandardType:
		if isTupleType(ft.Kind) {
			names := decomposeTypeNames(ft.Kind)
			escaped := make([]string, len(names))
			for i, n := range names {
				escaped[i] = esc(n, td.Revision)
			}
			return "(" + strings.Join(escaped, ",") + ")", nil
		}
		return ft.Kind, nil
	case MerkleTreeType:
		return "merkletree", nil
	case EnumType:
		variants, ok := all[ft.Contains]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownType, ft.Contains)
		}
		escaped := make([]string, len(variants))
		for i, v := range variants {
			escaped[i] = esc(v.FieldName(), td.Revision)
		}
		return "(" + strings.Join(escaped, ",") + ")", nil
	default:
		return "", fmt.Errorf("%w: unrecognised type entry for %q", ErrSchema, f.FieldName())
	}
}
