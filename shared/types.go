package shared

import (
	"encoding/json"
	"fmt"
)

// Fields is a payload of named values, the unit of exchange on both sides of
// a signature execution: decoded from the caller's JSON input and encoded
// back as the result.
type Fields map[string]any

// DecodeFields parses a JSON object into a Fields payload. Anything other
// than a top-level object is rejected.
func DecodeFields(data string) (Fields, error) {
	var fields Fields
	err := json.Unmarshal([]byte(data), &fields)
	if err != nil {
		return nil, fmt.Errorf("decode input fields: %w", err)
	}
	return fields, nil
}

// EncodeJSON renders v as a single-line JSON document.
func EncodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ErrorEnvelope is the failure shape written to stdout: {"error": <message>}.
func ErrorEnvelope(msg string) Fields {
	return Fields{"error": msg}
}
