// Package payload provides type probes over dynamically-typed JSON payloads.
//
// The stubbed backends validate request bodies field by field, where "absent",
// "present but null", and "present with the wrong type" are three distinct
// outcomes. Bodies are therefore decoded into map[string]any with
// json.Number preserved, and probed with the helpers here.
package payload

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrNotObject is returned by Decode when the body is not a JSON object.
var ErrNotObject = errors.New("payload is not a JSON object")

// Decode reads the full body and decodes it into a map, keeping numbers as
// json.Number so integers and floats stay distinguishable.
func Decode(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

// String reports whether v is a JSON string and returns it.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Number reports whether v is a JSON number and returns it as float64.
func Number(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int reports whether v is a JSON integer and returns it. A number with a
// fractional or exponent part is not an integer, even when its value is whole.
func Int(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return int(i), true
}

// Object reports whether v is a JSON object and returns it.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// List reports whether v is a JSON array and returns it.
func List(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}
