package typeddata

import "errors"

// Error kinds returned by construction and hashing. All are sentinel
// values meant to be matched with errors.Is against a wrapped
// fmt.Errorf("%w: ...", ...).
var (
	// ErrOutOfRange mirrors felt.ErrOutOfRange/sizedint.ErrOutOfRange
	// for values that don't fit their declared bound.
	ErrOutOfRange = errors.New("typeddata: value out of range")

	// ErrSchema is a JSON shape mismatch: missing field, wrong JSON
	// kind, a non-single-keyed enum value, or an unknown/ambiguous
	// variant name.
	ErrSchema = errors.New("typeddata: schema mismatch")

	// ErrUnknownType is returned when a referenced type name is
	// neither a basic type, a preset, nor a custom type.
	ErrUnknownType = errors.New("typeddata: unknown type")

	// ErrInvalidTypeDefinition is returned when the customTypes table
	// violates one of the construction-time invariants.
	ErrInvalidTypeDefinition = errors.New("typeddata: invalid type definition")

	// ErrRevisionMismatch is returned when a syntax element is used
	// outside the revision that permits it.
	ErrRevisionMismatch = errors.New("typeddata: revision mismatch")

	// ErrEmpty is returned by a merkletree field with no elements.
	ErrEmpty = errors.New("typeddata: empty merkle tree")
)
