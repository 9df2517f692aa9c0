package catalog

import (
	"bytes"
	"encoding/json"
)

// The catalog service is inconsistent about response envelopes: the same
// resource may arrive as a bare array, as {data: ...}, as {data: {data: ...}}
// (two levels), or keyed by resource name ({regions: [...]}). unwrap
// pattern-matches the shape once at the boundary so nothing past this file
// ever sees a raw envelope.
func unwrap(raw []byte, resource string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedFormat
	}
	if trimmed[0] == '[' {
		return trimmed, nil
	}
	if trimmed[0] != '{' {
		return nil, ErrUnexpectedFormat
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, ErrUnexpectedFormat
	}

	if data, ok := envelope["data"]; ok {
		inner := bytes.TrimSpace(data)
		// {data: {data: ...}} — one more level down.
		if len(inner) > 0 && inner[0] == '{' {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(inner, &nested); err == nil {
				if deep, ok := nested["data"]; ok {
					return deep, nil
				}
			}
		}
		return inner, nil
	}

	if resource != "" {
		if data, ok := envelope[resource]; ok {
			return bytes.TrimSpace(data), nil
		}
	}

	// A bare object (e.g. a single product served without an envelope).
	if resource == "" {
		return trimmed, nil
	}
	return nil, ErrUnexpectedFormat
}

// decodeInto unwraps the envelope and unmarshals the payload. A payload
// that unwraps but does not fit the target shape is still an
// ErrUnexpectedFormat: the caller can't use it either way.
func decodeInto(raw []byte, resource string, v any) error {
	payload, err := unwrap(raw, resource)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return ErrUnexpectedFormat
	}
	return nil
}
