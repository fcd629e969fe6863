package typeddata

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

type rawField struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Contains string `json:"contains"`
}

type rawDocument struct {
	Types       map[string][]rawField `json:"types" validate:"required"`
	PrimaryType string                 `json:"primaryType" validate:"required"`
	Domain      map[string]any         `json:"domain" validate:"required"`
	Message     map[string]any         `json:"message" validate:"required"`
}

// domainProbe pulls just the revision out of the domain object;
// WeaklyTypedInput lets "revision" arrive as a JSON number, a quoted
// number, or be absent entirely.
type domainProbe struct {
	Revision string `mapstructure:"revision" validate:"omitempty,oneof=0 1"`
}

func decodeRevision(domain map[string]any) (Revision, error) {
	var probe domainProbe
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &probe,
	})
	if err != nil {
		return RevisionV0, err
	}
	if err := dec.Decode(domain); err != nil {
		return RevisionV0, fmt.Errorf("%w: domain.revision: %s", ErrSchema, err)
	}
	if err := validate.Struct(probe); err != nil {
		return RevisionV0, fmt.Errorf("%w: domain.revision: %s", ErrSchema, err)
	}
	if probe.Revision == "1" {
		return RevisionV1, nil
	}
	return RevisionV0, nil
}

func toType(f rawField) Type {
	switch f.Type {
	case "merkletree":
		return MerkleTreeType{Name: f.Name, Contains: f.Contains}
	case "enum":
		if f.Contains != "" {
			return EnumType{Name: f.Name, Contains: f.Contains}
		}
		return StandardType{Name: f.Name, Kind: f.Type}
	default:
		return StandardType{Name: f.Name, Kind: f.Type}
	}
}

// FromJSON parses a Typed Data JSON document (§6) into a validated
// TypedData instance.
func FromJSON(data []byte) (*TypedData, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchema, err)
	}
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchema, err)
	}

	rev, err := decodeRevision(raw.Domain)
	if err != nil {
		return nil, err
	}

	customTypes := make(map[string][]Type, len(raw.Types))
	for name, fields := range raw.Types {
		converted := make([]Type, len(fields))
		for i, f := range fields {
			converted[i] = toType(f)
		}
		customTypes[name] = converted
	}

	return New(customTypes, raw.PrimaryType, raw.Domain, raw.Message, rev)
}

// New validates and constructs a TypedData instance from already-
// decoded components.
func New(customTypes map[string][]Type, primaryType string, domain, message map[string]any, rev Revision) (*TypedData, error) {
	td := &TypedData{
		CustomTypes: customTypes,
		PrimaryType: primaryType,
		Domain:      domain,
		Message:     message,
		Revision:    rev,
		cache:       newTypeHashCache(),
	}
	if err := td.validate(); err != nil {
		return nil, err
	}
	return td, nil
}
