package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Document is an arbitrary JSON-compatible record. Every document stored in
// a container must carry a non-empty string "id" field; all other fields are
// opaque to the store.
//
// Documents are cloned on write and on every read. Callers may freely mutate
// documents they pass in or get back without affecting stored state.
type Document map[string]any

// cloneDocument deep-copies a document via a JSON round trip. The round trip
// also canonicalizes values to the JSON type set (string, float64, bool,
// nil, []any, map[string]any), which keeps path resolution and predicate
// evaluation type-stable regardless of what the caller stored.
func cloneDocument(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docstore: document is not JSON-compatible: %w", err)
	}
	var clone Document
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, fmt.Errorf("docstore: clone document: %w", err)
	}
	return clone, nil
}

// canonicalValue canonicalizes a single value (a partition key or query
// parameter supplied by the caller) to the JSON type set, so comparisons
// against stored documents compare like with like.
func canonicalValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: value is not JSON-compatible: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// deepEqual compares two canonicalized values by their serialized form.
// Go's JSON encoder writes map keys in sorted order, so this is a canonical
// structural comparison for objects, not an insertion-order-sensitive one.
func deepEqual(a, b any) bool {
	rawA, errA := json.Marshal(a)
	rawB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(rawA, rawB)
}

// resolvePath descends through nested maps following a dotted field path
// (e.g. "address.city"). It reports false the moment a segment is missing
// or the current value is not a map. Array index segments are not supported.
func resolvePath(doc Document, path string) (any, bool) {
	var current any = map[string]any(doc)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
