package validate_test

import (
	"strings"
	"testing"

	valjson "github.com/yatagawa/valjson"
	"github.com/yatagawa/valjson/validate"
)

func mustValidator(t *testing.T, schemaJSON string) *validate.Validator {
	t.Helper()
	v, err := validate.CompileJSON([]byte(schemaJSON))
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return v
}

func mustDoc(t *testing.T, docJSON string) any {
	t.Helper()
	doc, err := valjson.DecodeJSON([]byte(docJSON))
	if err != nil {
		t.Fatalf("decode doc: %v", err)
	}
	return doc
}

func codesOf(iss valjson.Issues) []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}

func TestArray_MinMaxItems(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		doc    string
		want   []string
	}{
		{"below min", `{"type":"array","minItems":2}`, `[1]`, []string{valjson.CodeMinItems}},
		{"above max", `{"type":"array","maxItems":1}`, `[1,2]`, []string{valjson.CodeMaxItems}},
		{"in range", `{"type":"array","minItems":1,"maxItems":3}`, `[1,2]`, nil},
		{"absent keywords skip", `{"type":"array"}`, `[]`, nil},
		// min > max is an inconsistent schema; both issues surface.
		{"inconsistent schema", `{"type":"array","minItems":3,"maxItems":1}`, `[1,2]`, []string{valjson.CodeMinItems, valjson.CodeMaxItems}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iss := mustValidator(t, tc.schema).Validate(mustDoc(t, tc.doc))
			got := codesOf(iss)
			if len(got) != len(tc.want) {
				t.Fatalf("issues = %v, want codes %v", iss, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("issues = %v, want codes %v", iss, tc.want)
				}
			}
		})
	}
}

func TestArray_MinItemsIndependentOfItems(t *testing.T) {
	v := mustValidator(t, `{"type":"array","minItems":3,"items":{"type":"integer"}}`)
	iss := v.Validate(mustDoc(t, `[1,"x"]`))
	if len(iss) != 2 {
		t.Fatalf("expected minItems and type issues, got %v", iss)
	}
	if iss[0].Code != valjson.CodeMinItems || iss[1].Code != valjson.CodeType {
		t.Fatalf("unexpected codes: %v", codesOf(iss))
	}
}

func TestArray_UniqueItems(t *testing.T) {
	v := mustValidator(t, `{"type":"array","uniqueItems":true}`)

	// Exactly one issue regardless of how many duplicates exist, never
	// identifying which elements collided.
	iss := v.Validate(mustDoc(t, `[1,2,2,2,1]`))
	if len(iss) != 1 || iss[0].Code != valjson.CodeUniqueItems {
		t.Fatalf("expected a single uniqueItems issue, got %v", iss)
	}
	if iss[0].Path != "/" {
		t.Fatalf("uniqueItems issue should point at the array, got %q", iss[0].Path)
	}

	// Distinct kinds must not canonicalize identically.
	if iss := v.Validate(mustDoc(t, `[1,"1"]`)); len(iss) != 0 {
		t.Fatalf("1 and \"1\" are distinct, got %v", iss)
	}
	if iss := v.Validate(mustDoc(t, `[true,"true",null,"null"]`)); len(iss) != 0 {
		t.Fatalf("kinds that stringify alike must stay distinct, got %v", iss)
	}

	// Numerically equal representations are duplicates.
	if iss := v.Validate(mustDoc(t, `[1,1.0]`)); len(iss) != 1 {
		t.Fatalf("1 and 1.0 are the same number, got %v", iss)
	}

	// Deep structural equality for composite elements.
	if iss := v.Validate(mustDoc(t, `[{"a":1,"b":2},{"b":2,"a":1}]`)); len(iss) != 1 {
		t.Fatalf("structurally equal objects are duplicates, got %v", iss)
	}
}

func TestArray_ListFastPath(t *testing.T) {
	v := mustValidator(t, `{"type":"array","items":{"type":"integer"}}`)
	iss := v.Validate(mustDoc(t, `[1,2,"3"]`))
	if len(iss) != 1 {
		t.Fatalf("expected one type issue, got %v", iss)
	}
	it := iss[0]
	if it.Code != valjson.CodeType || it.Path != "/2" {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if !strings.Contains(it.Message, "string") || !strings.Contains(it.Message, "integer") {
		t.Fatalf("message should name found kind and required type: %q", it.Message)
	}
}

func TestArray_ListFastPath_BatchesInstanceIssues(t *testing.T) {
	// Kind mismatches surface immediately; the shared instance's own issues
	// (here: minimum) merge once at the end, after every element was seen.
	v := mustValidator(t, `{"type":"array","items":{"type":"integer","minimum":10}}`)
	iss := v.Validate(mustDoc(t, `[1,"x",20]`))
	if len(iss) != 2 {
		t.Fatalf("expected type and minimum issues, got %v", iss)
	}
	if iss[0].Code != valjson.CodeType || iss[0].Path != "/1" {
		t.Fatalf("mismatch should be reported first: %v", iss)
	}
	if iss[1].Code != valjson.CodeMinimum || iss[1].Path != "/0" {
		t.Fatalf("batched instance issue should flush last: %v", iss)
	}
}

func TestArray_ListGeneralPath_RetryAgainstAdditionalItems(t *testing.T) {
	// additionalItems alongside a single-schema items blocks the fast path
	// and arms the speculative retry.
	v := mustValidator(t, `{"type":"array","items":{"type":"string"},"additionalItems":{"type":"number"}}`)

	// 5 fails items (1 issue) but passes additionalItems (0): retry wins.
	if iss := v.Validate(mustDoc(t, `["ab",5]`)); len(iss) != 0 {
		t.Fatalf("element passing additionalItems should be accepted, got %v", iss)
	}

	// Retry with MORE issues than the first attempt keeps the first attempt.
	v = mustValidator(t, `{"type":"array","items":{"type":"number"},"additionalItems":{"type":"string","minLength":5,"pattern":"^[a-z]+$"}}`)
	iss := v.Validate(mustDoc(t, `["A1"]`))
	if len(iss) != 1 || iss[0].Code != valjson.CodeType {
		t.Fatalf("first attempt should be kept when retry is worse, got %v", iss)
	}
}

func TestArray_ListGeneralPath_EqualCountTieDiscardsBoth(t *testing.T) {
	// Reproduced compatibility behavior, not assumed-correct: when both
	// attempts produce the same number of new issues, BOTH are discarded and
	// the element is treated as passing.
	v := mustValidator(t, `{"type":"array","items":{"type":"string"},"additionalItems":{"type":"number"}}`)
	iss := v.Validate(mustDoc(t, `[true]`))
	if len(iss) != 0 {
		t.Fatalf("equal-count tie must discard both attempts, got %v", iss)
	}
}

func TestArray_ListGeneralPath_ForbiddenAdditionalItemsDisablesRetry(t *testing.T) {
	// additionalItems:false is present (general path) but offers no schema
	// to retry against: the first attempt's issues stand.
	v := mustValidator(t, `{"type":"array","items":{"type":"string"},"additionalItems":false}`)
	iss := v.Validate(mustDoc(t, `[5]`))
	if len(iss) != 1 || iss[0].Code != valjson.CodeType {
		t.Fatalf("expected the items type issue to be kept, got %v", iss)
	}
}

func TestArray_ListGeneralPath_NoAdditionalItemsKeepsFirst(t *testing.T) {
	// Non-primitive item schema, no additionalItems: nothing to retry.
	v := mustValidator(t, `{"type":"array","items":{"type":"object","required":["a"]}}`)
	iss := v.Validate(mustDoc(t, `[{"b":1}]`))
	if len(iss) != 1 || iss[0].Code != valjson.CodeRequired {
		t.Fatalf("expected the required issue at /0/a, got %v", iss)
	}
	if iss[0].Path != "/0/a" {
		t.Fatalf("unexpected path: %q", iss[0].Path)
	}
}

func TestArray_Tuple_AdditionalItemsForbidden(t *testing.T) {
	v := mustValidator(t, `{"type":"array","items":[{"type":"string"},{"type":"number"}],"additionalItems":false}`)

	iss := v.Validate(mustDoc(t, `["a",1,true]`))
	if len(iss) != 1 {
		t.Fatalf("expected exactly one additionalItems issue, got %v", iss)
	}
	it := iss[0]
	if it.Code != valjson.CodeAdditionalItems || it.Path != "/2" {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if !strings.Contains(it.Message, "2") {
		t.Fatalf("message should reference the offending index: %q", it.Message)
	}
	if got, ok := it.Params["additionalItems"].(bool); !ok || got {
		t.Fatalf("params should carry additionalItems:false, got %v", it.Params)
	}

	if iss := v.Validate(mustDoc(t, `["a",1]`)); len(iss) != 0 {
		t.Fatalf("tuple-arity array must pass, got %v", iss)
	}
}

func TestArray_Tuple_ForbiddenMessageNamesContext(t *testing.T) {
	v := mustValidator(t, `{"type":"object","properties":{"coords":{"type":"array","items":[{"type":"number"}],"additionalItems":false}}}`)
	iss := v.Validate(mustDoc(t, `{"coords":[1,2]}`))
	if len(iss) != 1 || iss[0].Path != "/coords/1" {
		t.Fatalf("expected one issue at /coords/1, got %v", iss)
	}
	if !strings.Contains(iss[0].Message, `"coords"`) {
		t.Fatalf("message should name the containing context: %q", iss[0].Message)
	}
}

func TestArray_Tuple_AdditionalItemsSchema(t *testing.T) {
	v := mustValidator(t, `{"type":"array","items":[{"type":"string"}],"additionalItems":{"type":"number"}}`)
	if iss := v.Validate(mustDoc(t, `["a",1,2]`)); len(iss) != 0 {
		t.Fatalf("extras matching the additionalItems schema must pass, got %v", iss)
	}
	iss := v.Validate(mustDoc(t, `["a",1,"b"]`))
	if len(iss) != 1 || iss[0].Code != valjson.CodeType || iss[0].Path != "/2" {
		t.Fatalf("extras are validated against the additionalItems schema, got %v", iss)
	}
}

func TestArray_Tuple_PermissiveBeyondArity(t *testing.T) {
	v := mustValidator(t, `{"type":"array","items":[{"type":"string"}]}`)
	if iss := v.Validate(mustDoc(t, `["a",true,{"x":1}]`)); len(iss) != 0 {
		t.Fatalf("absent additionalItems accepts extras unconditionally, got %v", iss)
	}
}

func TestArray_Tuple_SynthesizedTrailingPositions(t *testing.T) {
	schemaJSON := `{"type":"array","items":[{"type":"string"},{"type":"number"},{"type":"boolean"}]}`
	v := mustValidator(t, schemaJSON)

	// Empty arrays synthesize nothing even though the tuple arity exceeds
	// the length; minItems alone governs emptiness.
	if iss := v.Validate(mustDoc(t, `[]`)); len(iss) != 0 {
		t.Fatalf("empty-array exemption violated: %v", iss)
	}

	// A non-empty short array checks an undefined placeholder against every
	// omitted positional schema, attributed at those indices.
	iss := v.Validate(mustDoc(t, `["a"]`))
	if len(iss) != 2 {
		t.Fatalf("expected issues for positions 1 and 2, got %v", iss)
	}
	if iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("unexpected paths: %q, %q", iss[0].Path, iss[1].Path)
	}
	for _, it := range iss {
		if it.Code != valjson.CodeType || !strings.Contains(it.Message, "undefined") {
			t.Fatalf("placeholder should fail the positional type check: %+v", it)
		}
	}
}

func TestArray_NestedArraysAttributePaths(t *testing.T) {
	v := mustValidator(t, `{"type":"array","items":{"type":"array","items":{"type":"integer"}}}`)
	iss := v.Validate(mustDoc(t, `[[1,2],[3,"x"]]`))
	if len(iss) != 1 || iss[0].Path != "/1/1" {
		t.Fatalf("expected one issue at /1/1, got %v", iss)
	}
}
