package jsonvalue

import (
	"gopkg.in/yaml.v3"
)

// FromYAML decodes YAML bytes into the same value model. Mappings with
// string keys, sequences, and scalars map onto the JSON kinds; shapes YAML
// can express but JSON cannot (non-string map keys, timestamps) degrade to
// nested invalid values carrying ErrUnsupportedType.
//
// A document-level decode failure produces a top-level invalid value
// carrying ErrInvalidJSON, matching FromBytes.
func FromYAML(data []byte) *Value {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newInvalid(NewNull(), newParseError("decode_yaml", err))
	}
	return fromRaw(raw)
}
