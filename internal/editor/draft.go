// Package editor implements the in-memory editing model for a question
// draft: the variant-aware state machine, the test-case and option
// sub-editors, image attachment, and pre-commit validation. Everything here
// is pure state manipulation; persistence and transport live elsewhere.
package editor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// NoSelection marks a draft with no test case selected.
const NoSelection = -1

// Draft is a question mid-edit. It wraps the question with editing-session
// state (the active test-case selection) and exposes all mutation as
// methods so the variant invariant cannot be broken from outside.
type Draft struct {
	Question model.Question `json:"question"`

	// SelectedTestCase is the index of the active test case, or NoSelection.
	SelectedTestCase int `json:"selected_test_case"`
}

// NewDraft opens a draft over an existing question.
func NewDraft(q model.Question) *Draft {
	return &Draft{Question: q, SelectedTestCase: NoSelection}
}

// NewBlankDraft opens a fresh coding draft with a server-minted identifier.
func NewBlankDraft() *Draft {
	return &Draft{
		Question: model.Question{
			ID:              uuid.New().String(),
			DifficultyLevel: "medium",
			Images:          model.ImageSet{Question: []string{}, Explanation: []string{}},
			TestCases:       []model.TestCase{},
			Variant:         model.CodingVariant{},
		},
		SelectedTestCase: NoSelection,
	}
}

// SetType switches the draft to a different question variant. The previous
// variant's payload is replaced by a zero-value payload, so switching from
// mcq to true-false and back yields an empty option list rather than the
// previously entered options.
func (d *Draft) SetType(t model.QuestionType) error {
	if t == d.Question.Type() {
		return nil
	}
	v, err := model.NewVariant(t)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	d.Question.Variant = v
	return nil
}

// SetQuestionText replaces the prompt body.
func (d *Draft) SetQuestionText(text string) {
	d.Question.QuestionText.Text = text
}

// SetStarterCode replaces the starter snippet.
func (d *Draft) SetStarterCode(code string) {
	d.Question.QuestionText.StarterCode = code
}

// SetTopic replaces the topic.
func (d *Draft) SetTopic(topic string) {
	d.Question.Topic = topic
}

// SetDifficulty replaces the difficulty level. The value is free-form; the
// dashboard constrains it to easy/medium/hard.
func (d *Draft) SetDifficulty(level string) {
	d.Question.DifficultyLevel = level
}

// SetCorrectAnswer replaces the reference answer.
func (d *Draft) SetCorrectAnswer(answer string) {
	d.Question.CorrectAnswer = answer
}

// SetExplanation replaces the explanation body.
func (d *Draft) SetExplanation(text string) {
	d.Question.Explanation.Text = text
}

// SetCodeSnippet replaces the snippet on a code-output-mcq draft.
func (d *Draft) SetCodeSnippet(snippet string) error {
	v, ok := d.Question.Variant.(*model.CodeOutputMCQVariant)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVariantMismatch, d.Question.Type())
	}
	v.CodeSnippet = snippet
	return nil
}

// SetCorrectOption sets the boolean answer on a true-false draft.
func (d *Draft) SetCorrectOption(correct bool) error {
	v, ok := d.Question.Variant.(*model.TrueFalseVariant)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVariantMismatch, d.Question.Type())
	}
	v.CorrectOption = correct
	return nil
}
