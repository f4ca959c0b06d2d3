package model

import "github.com/google/uuid"

// Option is one labeled choice on an mcq or code-output-mcq question.
// Nothing enforces that exactly one option is correct; zero or several
// correct options are representable and persist as entered.
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// NewOption returns a blank option with a freshly minted identifier.
func NewOption() Option {
	return Option{ID: uuid.New().String()}
}
