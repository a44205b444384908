package docstore

import (
	"testing"
)

func TestResolvePath_TopLevelField(t *testing.T) {
	doc := Document{"tenantId": "x"}

	value, ok := resolvePath(doc, "tenantId")
	if !ok {
		t.Fatal("expected path to resolve")
	}
	if value != "x" {
		t.Errorf("expected %q, got %v", "x", value)
	}
}

func TestResolvePath_NestedField(t *testing.T) {
	doc := Document{
		"meta": map[string]any{
			"tenant": map[string]any{"id": "t-1"},
		},
	}

	value, ok := resolvePath(doc, "meta.tenant.id")
	if !ok {
		t.Fatal("expected path to resolve")
	}
	if value != "t-1" {
		t.Errorf("expected %q, got %v", "t-1", value)
	}
}

func TestResolvePath_MissingSegment(t *testing.T) {
	doc := Document{"meta": map[string]any{}}

	if _, ok := resolvePath(doc, "meta.tenant.id"); ok {
		t.Error("expected missing segment to not resolve")
	}
}

func TestResolvePath_NonMapIntermediate(t *testing.T) {
	doc := Document{"meta": "not-a-map"}

	if _, ok := resolvePath(doc, "meta.tenant"); ok {
		t.Error("expected non-map intermediate to not resolve")
	}
}

func TestResolvePath_NullFieldResolves(t *testing.T) {
	doc := Document{"tenantId": nil}

	value, ok := resolvePath(doc, "tenantId")
	if !ok {
		t.Fatal("expected null field to resolve")
	}
	if value != nil {
		t.Errorf("expected nil, got %v", value)
	}
}

func TestCloneDocument_IsolatesNestedState(t *testing.T) {
	original := Document{
		"id":   "1",
		"tags": []any{"a", "b"},
		"meta": map[string]any{"owner": "alice"},
	}

	clone, err := cloneDocument(original)
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}

	clone["meta"].(map[string]any)["owner"] = "bob"
	clone["tags"].([]any)[0] = "z"

	if original["meta"].(map[string]any)["owner"] != "alice" {
		t.Error("mutating the clone changed the original's nested map")
	}
	if original["tags"].([]any)[0] != "a" {
		t.Error("mutating the clone changed the original's array")
	}
}

func TestCloneDocument_CanonicalizesNumbers(t *testing.T) {
	clone, err := cloneDocument(Document{"id": "1", "score": 3})
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}

	if _, ok := clone["score"].(float64); !ok {
		t.Errorf("expected score to canonicalize to float64, got %T", clone["score"])
	}
}

func TestDeepEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "a", "a", true},
		{"int equals float", float64(5), float64(5), true},
		{"different numbers", float64(5), float64(6), false},
		{"nil equals nil", nil, nil, true},
		{"nested maps key order independent", map[string]any{"a": 1.0, "b": 2.0}, map[string]any{"b": 2.0, "a": 1.0}, true},
		{"arrays are order sensitive", []any{"a", "b"}, []any{"b", "a"}, false},
		{"string vs number", "5", float64(5), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deepEqual(tc.a, tc.b); got != tc.want {
				t.Errorf("deepEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
