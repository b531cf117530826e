package api

import (
	"bytes"
	"encoding/json"
)

// Envelope is the wrapping object returned by every backend endpoint.
//
// The backend is not entirely consistent about where it puts the payload:
// lists arrive under "results", sometimes under "data", and a few endpoints
// return a bare array with no envelope at all. Result and Data are kept as
// raw JSON so normalization can decide which one to trust.
type Envelope struct {
	Success bool            `json:"success"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result,omitempty"`
	Results json.RawMessage `json:"results,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ListResponse is a decoded list payload plus the server's confirmation text.
type ListResponse[T any] struct {
	Items   []T
	Message string
}

// ItemResponse is a decoded single-entity payload plus the server's
// confirmation text. Item is nil when the envelope carried no entity.
type ItemResponse[T any] struct {
	Item    *T
	Message string
}

// DecodeList normalizes a list response body into a slice.
//
// Precedence is fixed: "results", then "data", then a bare top-level array.
// A body that matches none of these decodes to an empty slice rather than an
// error, so backend drift degrades to an empty view instead of breaking
// callers.
func DecodeList[T any](body []byte) (*ListResponse[T], error) {
	if isArray(body) {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return &ListResponse[T]{Items: []T{}}, nil
		}
		return &ListResponse[T]{Items: items}, nil
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ListResponse[T]{Items: []T{}}, nil
	}

	for _, raw := range []json.RawMessage{env.Results, env.Data} {
		if len(raw) == 0 {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err == nil {
			return &ListResponse[T]{Items: items, Message: env.Message}, nil
		}
	}
	return &ListResponse[T]{Items: []T{}, Message: env.Message}, nil
}

// DecodeItem normalizes a single-entity response body.
//
// Precedence: "result", then "data". A missing or malformed payload yields a
// nil Item, never an error; the caller decides whether that matters.
func DecodeItem[T any](body []byte) (*ItemResponse[T], error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ItemResponse[T]{}, nil
	}

	for _, raw := range []json.RawMessage{env.Result, env.Data} {
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			continue
		}
		var item T
		if err := json.Unmarshal(raw, &item); err == nil {
			return &ItemResponse[T]{Item: &item, Message: env.Message}, nil
		}
	}
	return &ItemResponse[T]{Message: env.Message}, nil
}

// isArray reports whether the body's first non-space byte opens a JSON array.
func isArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
