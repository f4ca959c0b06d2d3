package editor

import (
	"strings"

	"github.com/quizforge/quizforge-backend/internal/model"
)

// ValidateQuestion checks a composed question against the pre-commit rules
// and returns a field-name to message mapping; an empty map means valid.
//
// The correct_answer and test_cases rules apply to every variant, including
// mcq and true-false.
func ValidateQuestion(q *model.Question) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(q.QuestionText.Text) == "" {
		errs["questionText"] = "Question text is required"
	}
	if strings.TrimSpace(q.Topic) == "" {
		errs["topic"] = "Topic is required"
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		errs["correctAnswer"] = "Correct answer is required"
	}
	if len(q.TestCases) == 0 {
		errs["testCases"] = "At least one test case is required"
	}

	return errs
}

// Validate runs the pre-commit rules against the draft's question.
func (d *Draft) Validate() map[string]string {
	return ValidateQuestion(&d.Question)
}
