package editor

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/model"
)

func TestNewBlankDraft(t *testing.T) {
	d := NewBlankDraft()

	if d.Question.ID == "" {
		t.Error("blank draft has no identifier")
	}
	if d.Question.Type() != model.QuestionTypeCoding {
		t.Errorf("blank draft type = %q, want coding", d.Question.Type())
	}
	if d.Question.DifficultyLevel != "medium" {
		t.Errorf("blank draft difficulty = %q", d.Question.DifficultyLevel)
	}
	if d.SelectedTestCase != NoSelection {
		t.Errorf("blank draft selection = %d", d.SelectedTestCase)
	}
	if d.Question.TestCases == nil || d.Question.Images.Question == nil {
		t.Error("blank draft collections should be empty, not nil")
	}
}

func TestSetTypeSameTypeIsNoOp(t *testing.T) {
	d := NewBlankDraft()
	d.Question.Variant = &model.MCQVariant{Options: []model.Option{{ID: "o1", Text: "keep"}}}

	if err := d.SetType(model.QuestionTypeMCQ); err != nil {
		t.Fatalf("SetType: %v", err)
	}

	opts, err := d.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(opts) != 1 || opts[0].Text != "keep" {
		t.Errorf("same-type switch dropped options: %+v", opts)
	}
}

func TestSetTypeResetsVariantPayload(t *testing.T) {
	d := NewBlankDraft()
	d.Question.Variant = &model.MCQVariant{Options: []model.Option{{ID: "o1", Text: "lost"}}}

	// mcq -> true-false -> mcq: the option list does not come back.
	if err := d.SetType(model.QuestionTypeTrueFalse); err != nil {
		t.Fatalf("SetType true-false: %v", err)
	}
	if err := d.SetType(model.QuestionTypeMCQ); err != nil {
		t.Fatalf("SetType mcq: %v", err)
	}

	opts, err := d.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("options survived a type round trip: %+v", opts)
	}
}

func TestSetTypeKeepsSharedFields(t *testing.T) {
	d := NewBlankDraft()
	d.SetQuestionText("What is 2+2?")
	d.SetTopic("arithmetic")
	d.SetCorrectAnswer("4")
	d.SetExplanation("Basic addition")

	if err := d.SetType(model.QuestionTypeTrueFalse); err != nil {
		t.Fatalf("SetType: %v", err)
	}

	if d.Question.QuestionText.Text != "What is 2+2?" {
		t.Error("question text lost on type switch")
	}
	if d.Question.Topic != "arithmetic" || d.Question.CorrectAnswer != "4" {
		t.Error("topic or correct answer lost on type switch")
	}
	if d.Question.Explanation.Text != "Basic addition" {
		t.Error("explanation lost on type switch")
	}
}

func TestSetTypeUnknown(t *testing.T) {
	d := NewBlankDraft()
	err := d.SetType("essay")
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("err = %v, want ErrUnknownType", err)
	}
	if d.Question.Type() != model.QuestionTypeCoding {
		t.Error("failed switch changed the variant")
	}
}

func TestSetCodeSnippetRequiresCodeOutputMCQ(t *testing.T) {
	d := NewBlankDraft()
	if err := d.SetCodeSnippet("print(1)"); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("err = %v, want ErrVariantMismatch", err)
	}

	if err := d.SetType(model.QuestionTypeCodeOutputMCQ); err != nil {
		t.Fatalf("SetType: %v", err)
	}
	if err := d.SetCodeSnippet("print(1)"); err != nil {
		t.Fatalf("SetCodeSnippet: %v", err)
	}

	v := d.Question.Variant.(*model.CodeOutputMCQVariant)
	if v.CodeSnippet != "print(1)" {
		t.Errorf("code snippet = %q", v.CodeSnippet)
	}
}

func TestSetCorrectOptionRequiresTrueFalse(t *testing.T) {
	d := NewBlankDraft()
	if err := d.SetCorrectOption(true); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("err = %v, want ErrVariantMismatch", err)
	}

	if err := d.SetType(model.QuestionTypeTrueFalse); err != nil {
		t.Fatalf("SetType: %v", err)
	}
	if err := d.SetCorrectOption(true); err != nil {
		t.Fatalf("SetCorrectOption: %v", err)
	}

	v := d.Question.Variant.(*model.TrueFalseVariant)
	if !v.CorrectOption {
		t.Error("correct option not set")
	}
}
