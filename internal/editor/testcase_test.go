package editor

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/model"
)

func TestAddTestCaseSelectsNewEntry(t *testing.T) {
	d := NewBlankDraft()

	d.AddTestCase()
	if len(d.Question.TestCases) != 1 || d.SelectedTestCase != 0 {
		t.Fatalf("after first add: %d cases, selection %d", len(d.Question.TestCases), d.SelectedTestCase)
	}

	d.AddTestCase()
	if len(d.Question.TestCases) != 2 || d.SelectedTestCase != 1 {
		t.Fatalf("after second add: %d cases, selection %d", len(d.Question.TestCases), d.SelectedTestCase)
	}

	tc := d.Question.TestCases[1]
	if tc.Input.IsStructured() || tc.Input.Literal() != "" {
		t.Errorf("new test case input not a blank literal: %+v", tc.Input)
	}
	if tc.IsDefault {
		t.Error("new test case flagged default")
	}
}

func TestDeleteTestCase(t *testing.T) {
	d := NewBlankDraft()
	d.AddTestCase()
	d.AddTestCase()
	d.SetTestCaseField(0, FieldDescription, "first")
	d.SetTestCaseField(1, FieldDescription, "second")

	if err := d.DeleteTestCase(0); err != nil {
		t.Fatalf("DeleteTestCase: %v", err)
	}
	if len(d.Question.TestCases) != 1 || d.Question.TestCases[0].Description != "second" {
		t.Errorf("cases after delete: %+v", d.Question.TestCases)
	}
	if d.SelectedTestCase != NoSelection {
		t.Errorf("selection not cleared: %d", d.SelectedTestCase)
	}

	if err := d.DeleteTestCase(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out-of-range err = %v", err)
	}
}

func TestSetTestCaseFieldParsesValues(t *testing.T) {
	d := NewBlankDraft()
	d.AddTestCase()

	if err := d.SetTestCaseField(0, FieldInput, `[1, 2, 3]`); err != nil {
		t.Fatalf("set input: %v", err)
	}
	if err := d.SetTestCaseField(0, FieldExpectedOutput, "not json"); err != nil {
		t.Fatalf("set output: %v", err)
	}
	if err := d.SetTestCaseField(0, FieldIsDefault, "true"); err != nil {
		t.Fatalf("set is_default: %v", err)
	}

	tc := d.Question.TestCases[0]
	if !tc.Input.IsStructured() {
		t.Error("JSON input stored as literal")
	}
	if tc.ExpectedOutput.IsStructured() {
		t.Error("plain-text output stored as structured")
	}
	if !tc.IsDefault {
		t.Error("is_default not set from \"true\"")
	}

	// Editing the text to stop being valid JSON flips the cell back.
	if err := d.SetTestCaseField(0, FieldInput, `[1, 2,`); err != nil {
		t.Fatalf("set input: %v", err)
	}
	if d.Question.TestCases[0].Input.IsStructured() {
		t.Error("truncated JSON still structured")
	}
}

func TestSetTestCaseFieldOutOfRange(t *testing.T) {
	d := NewBlankDraft()
	if err := d.SetTestCaseField(0, FieldInput, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetTestCasesJSONReplacesList(t *testing.T) {
	d := NewBlankDraft()
	doc := []byte(`[
  {"input": "a", "expected_output": "b", "description": "one", "is_default": true},
  {"input": [1, 2], "expected_output": 3, "description": "two", "is_default": false}
]`)

	if err := d.SetTestCasesJSON(doc); err != nil {
		t.Fatalf("SetTestCasesJSON: %v", err)
	}
	if len(d.Question.TestCases) != 2 {
		t.Fatalf("cases = %d", len(d.Question.TestCases))
	}
	if d.Question.TestCases[0].Input.IsStructured() {
		t.Error("string input decoded as structured")
	}
	if !d.Question.TestCases[1].Input.IsStructured() {
		t.Error("array input decoded as literal")
	}
}

func TestSetTestCasesJSONInvalidKeepsState(t *testing.T) {
	d := NewBlankDraft()
	d.AddTestCase()
	d.SetTestCaseField(0, FieldDescription, "survivor")

	err := d.SetTestCasesJSON([]byte(`{"not": "an array"`))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("err = %v, want ErrInvalidJSON", err)
	}

	if len(d.Question.TestCases) != 1 || d.Question.TestCases[0].Description != "survivor" {
		t.Errorf("previous list not retained: %+v", d.Question.TestCases)
	}
}

func TestTestCasesJSONRoundTrip(t *testing.T) {
	d := NewBlankDraft()
	d.AddTestCase()
	d.SetTestCaseField(0, FieldInput, `{"n": 5}`)
	d.SetTestCaseField(0, FieldExpectedOutput, "25")
	d.SetTestCaseField(0, FieldDescription, "squares n")

	doc, err := d.TestCasesJSON()
	if err != nil {
		t.Fatalf("TestCasesJSON: %v", err)
	}

	// The document must decode back into the same list.
	var cases []model.TestCase
	if err := json.Unmarshal(doc, &cases); err != nil {
		t.Fatalf("document does not parse: %v", err)
	}
	if len(cases) != 1 || cases[0].Description != "squares n" {
		t.Errorf("round trip changed the list: %+v", cases)
	}
	if !cases[0].Input.IsStructured() || !cases[0].ExpectedOutput.IsStructured() {
		t.Errorf("value forms changed: %+v", cases[0])
	}
}
