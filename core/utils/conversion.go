package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ToJSONValue converts val into the shape it would have after being written
// to JSON and read back with UseNumber: structs become map[string]any,
// numbers become json.Number, slices become []any.
func ToJSONValue(val any) (any, error) {
	switch v := val.(type) {
	case nil, string, bool, json.Number:
		return v, nil
	}

	data, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("value of type %T is not JSON encodable: %w", val, err)
	}
	return DecodeJSONValue(data)
}

// DecodeJSONValue decodes data into a generic value keeping numbers as json.Number.
func DecodeJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// CanonicalString renders a normalized value as compact JSON. Object keys are
// sorted by encoding/json, so equal values always render identically.
func CanonicalString(val any) string {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Sprintf("%v", val)
	}
	return string(data)
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
