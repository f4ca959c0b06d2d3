package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestQuestionTypeValid(t *testing.T) {
	for _, typ := range []QuestionType{QuestionTypeCoding, QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeCodeOutputMCQ} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if QuestionType("essay").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestQuestionMarshalFlat(t *testing.T) {
	q := Question{
		ID:              "q1",
		DifficultyLevel: "easy",
		QuestionText:    QuestionText{Text: "Pick one"},
		Topic:           "arrays",
		Variant: &MCQVariant{Options: []Option{
			{ID: "o1", Text: "A", IsCorrect: true},
			{ID: "o2", Text: "B"},
		}},
	}

	raw, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// The variant payload must sit at the top level, no nesting.
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flat); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	if string(flat["type"]) != `"mcq"` {
		t.Errorf("type field = %s", flat["type"])
	}
	if _, ok := flat["options"]; !ok {
		t.Error("options not flattened into the envelope")
	}
	if _, ok := flat["variant"]; ok {
		t.Error("variant leaked as its own field")
	}
	// Fields of other variants must be absent.
	for _, key := range []string{"correct_option", "code_snippet", "output_options"} {
		if _, ok := flat[key]; ok {
			t.Errorf("%s present on an mcq question", key)
		}
	}
}

func TestQuestionMarshalEmptyCollections(t *testing.T) {
	q := Question{ID: "q1", Variant: CodingVariant{}}

	raw, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)

	// nil slices serialize as [] so the dashboard never sees null.
	for _, want := range []string{`"test_cases":[]`, `"question":[]`, `"explanation":[]`} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %s: %s", want, s)
		}
	}
}

func TestQuestionRoundTripAllVariants(t *testing.T) {
	questions := []Question{
		{ID: "c1", Variant: CodingVariant{}, TestCases: []TestCase{{Input: LiteralValue("1"), ExpectedOutput: LiteralValue("2")}}},
		{ID: "m1", Variant: &MCQVariant{Options: []Option{{ID: "o1", Text: "x", IsCorrect: true}}}},
		{ID: "t1", Variant: &TrueFalseVariant{CorrectOption: true}},
		{ID: "o1", Variant: &CodeOutputMCQVariant{CodeSnippet: "print(1)", OutputOptions: []Option{{ID: "a", Text: "1"}}}},
	}

	for _, q := range questions {
		raw, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("marshal %s: %v", q.ID, err)
		}

		var got Question
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", q.ID, err)
		}

		if got.Type() != q.Type() {
			t.Errorf("%s: type = %q, want %q", q.ID, got.Type(), q.Type())
		}
	}
}

func TestQuestionRoundTripVariantPayload(t *testing.T) {
	q := Question{
		ID:      "o1",
		Variant: &CodeOutputMCQVariant{CodeSnippet: "x = 1", OutputOptions: []Option{{ID: "a", Text: "1", IsCorrect: true}}},
	}

	raw, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Question
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	v, ok := got.Variant.(*CodeOutputMCQVariant)
	if !ok {
		t.Fatalf("variant type = %T", got.Variant)
	}
	if v.CodeSnippet != "x = 1" {
		t.Errorf("code snippet = %q", v.CodeSnippet)
	}
	if len(v.OutputOptions) != 1 || !v.OutputOptions[0].IsCorrect {
		t.Errorf("output options = %+v", v.OutputOptions)
	}
}

func TestQuestionUnmarshalUnknownType(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id": "x", "type": "essay"}`), &q)
	if err == nil {
		t.Fatal("unknown type accepted")
	}
}

func TestQuestionMarshalWithoutVariant(t *testing.T) {
	q := Question{ID: "x"}
	if _, err := json.Marshal(q); err == nil {
		t.Fatal("marshal succeeded without a variant")
	}
}

func TestNewVariant(t *testing.T) {
	for _, typ := range []QuestionType{QuestionTypeCoding, QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeCodeOutputMCQ} {
		v, err := NewVariant(typ)
		if err != nil {
			t.Fatalf("NewVariant(%q): %v", typ, err)
		}
		if v.Type() != typ {
			t.Errorf("NewVariant(%q).Type() = %q", typ, v.Type())
		}
	}
	if _, err := NewVariant("nope"); err == nil {
		t.Error("NewVariant accepted an unknown type")
	}
}
