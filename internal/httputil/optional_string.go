package httputil

import (
	"bytes"
	"encoding/json"

	"scholarportal/internal/domain/models"
)

// OptionalString tracks presence and value for JSON PATCH semantics (RFC 7396).
// This enables proper tri-state handling that Go's *string cannot express:
//   - Present=false: field absent from JSON (don't change)
//   - Present=true, Value=nil: field is JSON null (clear/set to NULL)
//   - Present=true, Value=&"": field is empty string (also clears)
//   - Present=true, Value=&"text": field has value
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON implements json.Unmarshaler.
// When this method is called, the field was present in the JSON.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// ToDomain converts to the wire-independent domain type.
func (o OptionalString) ToDomain() models.OptionalString {
	return models.OptionalString{Present: o.Present, Value: o.Value}
}

// OptionalStringSlice is OptionalString for JSON arrays of strings such as tags.
// JSON null clears the list.
type OptionalStringSlice struct {
	Present bool
	Value   []string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalStringSlice) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(bytes.TrimSpace(data)) == "null" {
		o.Value = nil
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	o.Value = values
	return nil
}

// ToDomain converts to the wire-independent domain type.
func (o OptionalStringSlice) ToDomain() models.OptionalStrings {
	return models.OptionalStrings{Present: o.Present, Value: o.Value}
}
