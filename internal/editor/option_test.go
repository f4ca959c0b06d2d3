package editor

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/model"
)

func TestOptionOpsRequireChoiceVariant(t *testing.T) {
	d := NewBlankDraft() // coding

	if _, err := d.AddOption(); !errors.Is(err, ErrNoOptionSlot) {
		t.Errorf("AddOption err = %v, want ErrNoOptionSlot", err)
	}
	if err := d.RemoveOption("x"); !errors.Is(err, ErrNoOptionSlot) {
		t.Errorf("RemoveOption err = %v, want ErrNoOptionSlot", err)
	}
	if err := d.SetOptionText("x", "y"); !errors.Is(err, ErrNoOptionSlot) {
		t.Errorf("SetOptionText err = %v, want ErrNoOptionSlot", err)
	}
}

func TestAddOption(t *testing.T) {
	d := NewBlankDraft()
	if err := d.SetType(model.QuestionTypeMCQ); err != nil {
		t.Fatalf("SetType: %v", err)
	}

	opt, err := d.AddOption()
	if err != nil {
		t.Fatalf("AddOption: %v", err)
	}
	if opt.ID == "" {
		t.Error("new option has no identifier")
	}
	if opt.Text != "" || opt.IsCorrect {
		t.Errorf("new option not blank: %+v", opt)
	}

	opts, _ := d.Options()
	if len(opts) != 1 || opts[0].ID != opt.ID {
		t.Errorf("option list = %+v", opts)
	}
}

func TestOptionOpsOnCodeOutputMCQ(t *testing.T) {
	// code-output-mcq shares the option editor through its output_options.
	d := NewBlankDraft()
	if err := d.SetType(model.QuestionTypeCodeOutputMCQ); err != nil {
		t.Fatalf("SetType: %v", err)
	}

	opt, err := d.AddOption()
	if err != nil {
		t.Fatalf("AddOption: %v", err)
	}

	v := d.Question.Variant.(*model.CodeOutputMCQVariant)
	if len(v.OutputOptions) != 1 || v.OutputOptions[0].ID != opt.ID {
		t.Errorf("output options = %+v", v.OutputOptions)
	}
}

func TestSetOptionTextAndCorrect(t *testing.T) {
	d := NewBlankDraft()
	d.SetType(model.QuestionTypeMCQ)
	a, _ := d.AddOption()
	b, _ := d.AddOption()

	if err := d.SetOptionText(a.ID, "first"); err != nil {
		t.Fatalf("SetOptionText: %v", err)
	}
	if err := d.SetOptionCorrect(b.ID, true); err != nil {
		t.Fatalf("SetOptionCorrect: %v", err)
	}

	opts, _ := d.Options()
	if opts[0].Text != "first" || opts[0].IsCorrect {
		t.Errorf("option a = %+v", opts[0])
	}
	if opts[1].Text != "" || !opts[1].IsCorrect {
		t.Errorf("option b = %+v", opts[1])
	}

	if err := d.SetOptionText("missing", "x"); !errors.Is(err, ErrOptionNotFound) {
		t.Errorf("missing option err = %v", err)
	}
}

func TestRemoveOption(t *testing.T) {
	d := NewBlankDraft()
	d.SetType(model.QuestionTypeMCQ)
	a, _ := d.AddOption()
	b, _ := d.AddOption()

	if err := d.RemoveOption(a.ID); err != nil {
		t.Fatalf("RemoveOption: %v", err)
	}

	opts, _ := d.Options()
	if len(opts) != 1 || opts[0].ID != b.ID {
		t.Errorf("options after remove = %+v", opts)
	}

	if err := d.RemoveOption(a.ID); !errors.Is(err, ErrOptionNotFound) {
		t.Errorf("double remove err = %v", err)
	}
}
