package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value is a decoded JSON document exactly as the Insight server returned it:
// map[string]any, []any, string, json.Number, bool or nil.
type Value = any

// Response is a raw reply produced by a Transport
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Lookup walks nested objects following keys and returns the value found at
// the end of the path. A missing key, or a non-object on the way, is a *KeyError.
func Lookup(v Value, keys ...string) (Value, error) {
	cur := v
	for i, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, &KeyError{Path: keys[:i+1], Reason: fmt.Sprintf("expected object, got %T", cur)}
		}
		next, exists := obj[key]
		if !exists {
			return nil, &KeyError{Path: keys[:i+1], Reason: "key not found"}
		}
		cur = next
	}
	return cur, nil
}

// LookupString is Lookup for values that must be JSON strings
func LookupString(v Value, keys ...string) (string, error) {
	found, err := Lookup(v, keys...)
	if err != nil {
		return "", err
	}
	s, ok := found.(string)
	if !ok {
		return "", &KeyError{Path: keys, Reason: fmt.Sprintf("expected string, got %T", found)}
	}
	return s, nil
}

// Satoshis converts a decoded scalar into an integer amount.
// Numbers and numeric strings are accepted.
func Satoshis(v Value) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("satoshi value %v is not an integer", n)
		}
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected satoshi value of type %T", v)
	}
}
