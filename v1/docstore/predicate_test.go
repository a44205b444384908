package docstore

import (
	"errors"
	"testing"
)

func TestEvalCondition_ContainsIsCaseInsensitive(t *testing.T) {
	doc := Document{"title": "Annual REPORT 2024"}

	ok, err := evalCondition(doc, "CONTAINS(c.title, 'report', true)", nil)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if !ok {
		t.Error("expected case-insensitive substring match")
	}
}

func TestEvalCondition_ContainsWithParameter(t *testing.T) {
	doc := Document{"title": "Quarterly Summary"}

	ok, err := evalCondition(doc, "CONTAINS(c.title, @term, true)", map[string]any{"@term": "summ"})
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if !ok {
		t.Error("expected parameterized substring match")
	}
}

func TestEvalCondition_ContainsNonStringIsFalse(t *testing.T) {
	cases := []struct {
		name     string
		doc      Document
		fragment string
		params   map[string]any
	}{
		{"numeric field", Document{"title": float64(42)}, "CONTAINS(c.title, 'a', true)", nil},
		{"missing field", Document{}, "CONTAINS(c.title, 'a', true)", nil},
		{"non-string needle", Document{"title": "abc"}, "CONTAINS(c.title, @n, true)", map[string]any{"@n": 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := evalCondition(tc.doc, tc.fragment, tc.params)
			if err != nil {
				t.Fatalf("evaluation failed: %v", err)
			}
			if ok {
				t.Error("expected false, got true")
			}
		})
	}
}

func TestEvalCondition_Equality(t *testing.T) {
	doc := Document{
		"tenantId": "x",
		"score":    float64(9),
		"active":   true,
		"note":     nil,
	}

	cases := []struct {
		name     string
		fragment string
		params   map[string]any
		want     bool
	}{
		{"string literal", "c.tenantId = 'x'", nil, true},
		{"string literal mismatch", "c.tenantId = 'y'", nil, false},
		{"numeric literal", "c.score = 9", nil, true},
		{"bool literal", "c.active = true", nil, true},
		{"null matches null field", "c.note = null", nil, true},
		{"null does not match unset field", "c.missing = null", nil, false},
		{"parameter canonicalized", "c.score = @s", map[string]any{"@s": 9}, true},
		{"string never equals number", "c.tenantId = 0", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := evalCondition(doc, tc.fragment, tc.params)
			if err != nil {
				t.Fatalf("evaluation failed: %v", err)
			}
			if ok != tc.want {
				t.Errorf("expected %v, got %v", tc.want, ok)
			}
		})
	}
}

func TestEvalCondition_EqualityOnNestedObjects(t *testing.T) {
	doc := Document{"meta": map[string]any{"owner": "alice", "rank": float64(1)}}

	params := map[string]any{"@meta": map[string]any{"rank": 1, "owner": "alice"}}
	ok, err := evalCondition(doc, "c.meta = @meta", params)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if !ok {
		t.Error("expected structural equality regardless of key order")
	}
}

func TestEvalCondition_OrderingComparisons(t *testing.T) {
	doc := Document{"score": float64(9)}

	cases := []struct {
		fragment string
		want     bool
	}{
		{"c.score > 5", true},
		{"c.score > 9", false},
		{"c.score >= 9", true},
		{"c.score < 10", true},
		{"c.score <= 8", false},
	}

	for _, tc := range cases {
		ok, err := evalCondition(doc, tc.fragment, nil)
		if err != nil {
			t.Fatalf("%q failed: %v", tc.fragment, err)
		}
		if ok != tc.want {
			t.Errorf("%q = %v, want %v", tc.fragment, ok, tc.want)
		}
	}
}

func TestEvalCondition_OrderingRequiresNumericSides(t *testing.T) {
	cases := []struct {
		name string
		doc  Document
	}{
		{"string field", Document{"score": "9"}},
		{"missing field", Document{}},
		{"bool field", Document{"score": true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := evalCondition(tc.doc, "c.score > 5", nil)
			if err != nil {
				t.Fatalf("evaluation failed: %v", err)
			}
			if ok {
				t.Error("expected non-numeric comparison to be false")
			}
		})
	}
}

func TestEvalCondition_NestedPath(t *testing.T) {
	doc := Document{"meta": map[string]any{"score": float64(7)}}

	ok, err := evalCondition(doc, "c.meta.score >= 7", nil)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if !ok {
		t.Error("expected dotted path to resolve into nested object")
	}
}

func TestEvalCondition_MissingParameter(t *testing.T) {
	_, err := evalCondition(Document{"score": float64(1)}, "c.score = @missing", nil)
	if !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter, got %v", err)
	}
}

func TestEvalCondition_UnsupportedFragment(t *testing.T) {
	fragments := []string{
		"c.score != 5",
		"STARTSWITH(c.title, 'a')",
		"CONTAINS(c.title, 'a', false)",
		"score > 5",
		"not a condition",
	}

	for _, fragment := range fragments {
		if _, err := evalCondition(Document{}, fragment, nil); !errors.Is(err, ErrUnsupportedCondition) {
			t.Errorf("expected ErrUnsupportedCondition for %q, got %v", fragment, err)
		}
	}
}

func TestResolveOperand_Literals(t *testing.T) {
	cases := []struct {
		token string
		want  any
	}{
		{"'hello'", "hello"},
		{`"hello"`, "hello"},
		{"true", true},
		{"false", false},
		{"null", nil},
		{"42", float64(42)},
		{"-3.5", float64(-3.5)},
	}

	for _, tc := range cases {
		got, err := resolveOperand(tc.token, nil)
		if err != nil {
			t.Fatalf("resolve %q failed: %v", tc.token, err)
		}
		if got != tc.want {
			t.Errorf("resolve %q = %v (%T), want %v (%T)", tc.token, got, got, tc.want, tc.want)
		}
	}
}

func TestResolveOperand_RejectsBareWords(t *testing.T) {
	if _, err := resolveOperand("banana", nil); !errors.Is(err, ErrUnsupportedCondition) {
		t.Errorf("expected ErrUnsupportedCondition, got %v", err)
	}
}
