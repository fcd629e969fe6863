package typeddata

import (
	"fmt"
	"strings"
)

// validate enforces §3's six construction-time invariants. Hashing
// operations assume a validated instance and never re-check these.
func (td *TypedData) validate() error {
	if err := td.validateNames(); err != nil {
		return err
	}
	if err := td.validateNoShadowing(); err != nil {
		return err
	}
	if err := td.validateRevisionSyntax(); err != nil {
		return err
	}
	if err := td.validateMerkleContains(); err != nil {
		return err
	}
	if err := td.validateDomainSeparatorPresent(); err != nil {
		return err
	}
	if err := td.validateReachability(); err != nil {
		return err
	}
	return nil
}

func validTypeName(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasSuffix(name, "*") {
		return false
	}
	if isTupleType(name) {
		return false
	}
	if strings.Contains(name, ",") {
		return false
	}
	return true
}

// validateNames enforces invariant 3: custom type names are
// non-empty, don't end in "*", aren't parenthesised, contain no comma.
func (td *TypedData) validateNames() error {
	for name := range td.CustomTypes {
		if !validTypeName(name) {
			return fmt.Errorf("%w: invalid custom type name %q", ErrInvalidTypeDefinition, name)
		}
	}
	return nil
}

// validateNoShadowing enforces invariant 2: no custom type may shadow
// a basic type or (V1 only) a preset type.
func (td *TypedData) validateNoShadowing() error {
	basics := basicTypes(td.Revision)
	presets := presetNames(td.Revision)
	for name := range td.CustomTypes {
		if basics[name] {
			return fmt.Errorf("%w: custom type %q shadows a basic type", ErrInvalidTypeDefinition, name)
		}
		if presets[name] {
			return fmt.Errorf("%w: custom type %q shadows a preset type", ErrInvalidTypeDefinition, name)
		}
	}
	return nil
}

// validateRevisionSyntax enforces invariant 6: enum syntax (the
// "(A,B,C)" tuple form and EnumType fields) is V1-only.
func (td *TypedData) validateRevisionSyntax() error {
	if td.Revision == RevisionV1 {
		return nil
	}
	for typeName, fields := range td.CustomTypes {
		for _, f := range fields {
			switch ft := f.(type) {
			case EnumType:
				return fmt.Errorf("%w: enum field %q.%q requires revision 1", ErrRevisionMismatch, typeName, ft.Name)
			case StandardType:
				if isTupleType(ft.Kind) || ft.Kind == "enum" {
					return fmt.Errorf("%w: field %q.%q uses enum syntax, requires revision 1", ErrRevisionMismatch, typeName, ft.Name)
				}
			}
		}
	}
	return nil
}

// validateMerkleContains enforces invariant 5: a merkletree field's
// contains type must not itself be an array type.
func (td *TypedData) validateMerkleContains() error {
	for typeName, fields := range td.CustomTypes {
		for _, f := range fields {
			mt, ok := f.(MerkleTreeType)
			if !ok {
				continue
			}
			if isArrayType(mt.Contains) {
				return fmt.Errorf("%w: merkletree field %q.%q contains an array type", ErrInvalidTypeDefinition, typeName, mt.Name)
			}
		}
	}
	return nil
}

// validateDomainSeparatorPresent enforces invariant 1.
func (td *TypedData) validateDomainSeparatorPresent() error {
	if _, ok := td.CustomTypes[td.domainSeparatorName()]; !ok {
		return fmt.Errorf("%w: missing domain separator type %q", ErrInvalidTypeDefinition, td.domainSeparatorName())
	}
	return nil
}

// validateReachability enforces invariant 4: every custom type must
// be reachable from primaryType or the domain separator.
func (td *TypedData) validateReachability() error {
	all := td.allTypes()
	if _, ok := all[td.PrimaryType]; !ok {
		return fmt.Errorf("%w: primaryType %q is not a defined type", ErrInvalidTypeDefinition, td.PrimaryType)
	}

	reachable := map[string]bool{td.PrimaryType: true, td.domainSeparatorName(): true}
	for _, root := range []string{td.PrimaryType, td.domainSeparatorName()} {
		for _, dep := range typeDependencies(root, all) {
			reachable[dep] = true
		}
	}
	for name := range td.CustomTypes {
		if !reachable[name] {
			return fmt.Errorf("%w: custom type %q is never referenced", ErrInvalidTypeDefinition, name)
		}
	}
	return nil
}

// typeDependencies returns the BFS closure of root's field types over
// all, excluding root itself, decomposing array and tuple forms and
// keeping only names that are themselves defined types.
func typeDependencies(root string, all map[string][]Type) []string {
	visited := map[string]bool{root: true}
	queue := []string{root}
	var order []string

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, f := range all[cur] {
			var candidates []string
			switch ft := f.(type) {
			case StandardType:
				candidates = decomposeTypeNames(ft.Kind)
			case MerkleTreeType:
				candidates = []string{ft.Contains}
			case EnumType:
				candidates = []string{ft.Contains}
			}
			for _, name := range candidates {
				if name == "" || visited[name] {
					continue
				}
				if _, defined := all[name]; !defined {
					continue
				}
				visited[name] = true
				queue = append(queue, name)
				order = append(order, name)
			}
		}
	}
	return order
}
