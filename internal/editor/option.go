package editor

import (
	"fmt"

	"github.com/quizforge/quizforge-backend/internal/model"
)

// optionSlot returns a pointer to whichever option list applies to the
// current variant: options for mcq, output_options for code-output-mcq.
// Coding and true-false drafts have no option list.
func (d *Draft) optionSlot() (*[]model.Option, error) {
	switch v := d.Question.Variant.(type) {
	case *model.MCQVariant:
		return &v.Options, nil
	case *model.CodeOutputMCQVariant:
		return &v.OutputOptions, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoOptionSlot, d.Question.Type())
	}
}

// AddOption appends a new option with a fresh identifier, empty text and
// is_correct=false, returning it.
func (d *Draft) AddOption() (model.Option, error) {
	slot, err := d.optionSlot()
	if err != nil {
		return model.Option{}, err
	}
	opt := model.NewOption()
	*slot = append(*slot, opt)
	return opt, nil
}

// RemoveOption deletes the option with the given identifier.
func (d *Draft) RemoveOption(optionID string) error {
	slot, err := d.optionSlot()
	if err != nil {
		return err
	}
	for i, opt := range *slot {
		if opt.ID == optionID {
			*slot = append((*slot)[:i:i], (*slot)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOptionNotFound, optionID)
}

// SetOptionText updates the label of one option.
func (d *Draft) SetOptionText(optionID, text string) error {
	return d.updateOption(optionID, func(opt *model.Option) {
		opt.Text = text
	})
}

// SetOptionCorrect updates the is_correct flag of one option. Several
// options may be flagged correct at once; single-correct is a dashboard
// convention, not a rule here.
func (d *Draft) SetOptionCorrect(optionID string, correct bool) error {
	return d.updateOption(optionID, func(opt *model.Option) {
		opt.IsCorrect = correct
	})
}

func (d *Draft) updateOption(optionID string, apply func(*model.Option)) error {
	slot, err := d.optionSlot()
	if err != nil {
		return err
	}
	for i := range *slot {
		if (*slot)[i].ID == optionID {
			apply(&(*slot)[i])
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOptionNotFound, optionID)
}

// Options returns the option list of the current variant.
func (d *Draft) Options() ([]model.Option, error) {
	slot, err := d.optionSlot()
	if err != nil {
		return nil, err
	}
	return *slot, nil
}
