package editor

import (
	"testing"

	"github.com/quizforge/quizforge-backend/internal/model"
)

func TestValidateBlankDraft(t *testing.T) {
	d := NewBlankDraft()
	errs := d.Validate()

	want := map[string]string{
		"questionText":  "Question text is required",
		"topic":         "Topic is required",
		"correctAnswer": "Correct answer is required",
		"testCases":     "At least one test case is required",
	}
	if len(errs) != len(want) {
		t.Fatalf("errs = %v", errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("%s = %q, want %q", field, errs[field], msg)
		}
	}
}

func TestValidateWhitespaceOnly(t *testing.T) {
	d := NewBlankDraft()
	d.SetQuestionText("   ")
	d.SetTopic("\t\n")

	errs := d.Validate()
	if _, ok := errs["questionText"]; !ok {
		t.Error("whitespace question text passed")
	}
	if _, ok := errs["topic"]; !ok {
		t.Error("whitespace topic passed")
	}
}

func TestValidateCompleteDraft(t *testing.T) {
	d := NewBlankDraft()
	d.SetQuestionText("Sum two numbers")
	d.SetTopic("arithmetic")
	d.SetCorrectAnswer("def solution(a, b): return a + b")
	d.AddTestCase()

	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("complete draft rejected: %v", errs)
	}
}

// Option correctness is not validated: zero or several is_correct entries
// both pass.
func TestValidateIgnoresOptionCorrectness(t *testing.T) {
	d := NewBlankDraft()
	if err := d.SetType(model.QuestionTypeMCQ); err != nil {
		t.Fatalf("SetType: %v", err)
	}
	d.SetQuestionText("Which of these are slices?")
	d.SetTopic("go")
	d.SetCorrectAnswer("A and B")
	d.AddTestCase()

	a, _ := d.AddOption()
	b, _ := d.AddOption()

	// No correct option at all.
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("zero correct options rejected: %v", errs)
	}

	// Several correct options.
	if err := d.SetOptionCorrect(a.ID, true); err != nil {
		t.Fatalf("SetOptionCorrect: %v", err)
	}
	if err := d.SetOptionCorrect(b.ID, true); err != nil {
		t.Fatalf("SetOptionCorrect: %v", err)
	}
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("multiple correct options rejected: %v", errs)
	}
}

// The rules are uniform across variants: a true-false question still needs a
// correct answer string and at least one test case.
func TestValidateUniformAcrossVariants(t *testing.T) {
	d := NewBlankDraft()
	d.SetType(model.QuestionTypeTrueFalse)
	d.SetQuestionText("Go has classes")
	d.SetTopic("go")

	errs := d.Validate()
	if _, ok := errs["correctAnswer"]; !ok {
		t.Error("true-false draft skipped the correct answer rule")
	}
	if _, ok := errs["testCases"]; !ok {
		t.Error("true-false draft skipped the test case rule")
	}
}
