package model

import (
	"encoding/json"
	"fmt"
)

// QuestionType discriminates the four question variants.
type QuestionType string

const (
	QuestionTypeCoding        QuestionType = "coding"
	QuestionTypeMCQ           QuestionType = "mcq"
	QuestionTypeTrueFalse     QuestionType = "true-false"
	QuestionTypeCodeOutputMCQ QuestionType = "code-output-mcq"
)

// Valid reports whether t is one of the four known variants.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeCoding, QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeCodeOutputMCQ:
		return true
	}
	return false
}

// QuestionText is the prompt body, with an optional starter snippet for
// coding questions.
type QuestionText struct {
	Text        string `json:"text"`
	StarterCode string `json:"starter_code,omitempty"`
}

// Explanation is the rationale shown after answering.
type Explanation struct {
	Text string `json:"text"`
}

// ImageSet holds the ordered data-URI image lists attached to a question.
type ImageSet struct {
	Question    []string `json:"question"`
	Explanation []string `json:"explanation"`
}

// Question is a single authored question. The variant payload is a closed
// sum: exactly one Variant implementation is populated and the discriminator
// is the variant's Type. The wire format stays flat (variant payload fields
// are merged into the top-level object), so custom JSON marshalling handles
// the split.
type Question struct {
	ID              string       `json:"id"`
	DifficultyLevel string       `json:"difficulty_level"`
	QuestionText    QuestionText `json:"question_text"`
	CorrectAnswer   string       `json:"correct_answer"`
	Topic           string       `json:"topic"`
	Explanation     Explanation  `json:"explanation"`
	Images          ImageSet     `json:"images"`
	TestCases       []TestCase   `json:"test_cases"`

	Variant Variant `json:"-"`
}

// Type returns the discriminator of the active variant.
func (q *Question) Type() QuestionType {
	if q.Variant == nil {
		return ""
	}
	return q.Variant.Type()
}

// Variant is the closed set of per-type payloads.
type Variant interface {
	Type() QuestionType
}

// CodingVariant has no extra payload; the coding-specific data (starter code,
// reference solution, test cases) lives in the shared envelope.
type CodingVariant struct{}

func (CodingVariant) Type() QuestionType { return QuestionTypeCoding }

// MCQVariant carries the ordered answer options.
type MCQVariant struct {
	Options []Option `json:"options"`
}

func (*MCQVariant) Type() QuestionType { return QuestionTypeMCQ }

// TrueFalseVariant carries the single boolean answer.
type TrueFalseVariant struct {
	CorrectOption bool `json:"correct_option"`
}

func (*TrueFalseVariant) Type() QuestionType { return QuestionTypeTrueFalse }

// CodeOutputMCQVariant carries a code snippet plus the ordered output options.
type CodeOutputMCQVariant struct {
	CodeSnippet   string   `json:"code_snippet"`
	OutputOptions []Option `json:"output_options"`
}

func (*CodeOutputMCQVariant) Type() QuestionType { return QuestionTypeCodeOutputMCQ }

// NewVariant returns a zero-value payload for the given type. The editor uses
// this when a draft's type changes: the previous payload is dropped wholesale
// so no stale fields survive the switch.
func NewVariant(t QuestionType) (Variant, error) {
	switch t {
	case QuestionTypeCoding:
		return CodingVariant{}, nil
	case QuestionTypeMCQ:
		return &MCQVariant{Options: []Option{}}, nil
	case QuestionTypeTrueFalse:
		return &TrueFalseVariant{}, nil
	case QuestionTypeCodeOutputMCQ:
		return &CodeOutputMCQVariant{OutputOptions: []Option{}}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}

// questionWire is the flat JSON shape shared with the dashboard and the
// stored payloads. Only one set of variant fields is present at a time.
type questionWire struct {
	ID              string       `json:"id"`
	Type            QuestionType `json:"type"`
	DifficultyLevel string       `json:"difficulty_level"`
	QuestionText    QuestionText `json:"question_text"`
	CorrectAnswer   string       `json:"correct_answer"`
	Topic           string       `json:"topic"`
	Explanation     Explanation  `json:"explanation"`
	Images          ImageSet     `json:"images"`
	TestCases       []TestCase   `json:"test_cases"`

	Options       []Option `json:"options,omitempty"`
	CorrectOption *bool    `json:"correct_option,omitempty"`
	CodeSnippet   *string  `json:"code_snippet,omitempty"`
	OutputOptions []Option `json:"output_options,omitempty"`
}

// MarshalJSON flattens the variant payload into the envelope.
func (q Question) MarshalJSON() ([]byte, error) {
	w := questionWire{
		ID:              q.ID,
		Type:            q.Type(),
		DifficultyLevel: q.DifficultyLevel,
		QuestionText:    q.QuestionText,
		CorrectAnswer:   q.CorrectAnswer,
		Topic:           q.Topic,
		Explanation:     q.Explanation,
		Images:          q.Images,
		TestCases:       q.TestCases,
	}
	if w.Images.Question == nil {
		w.Images.Question = []string{}
	}
	if w.Images.Explanation == nil {
		w.Images.Explanation = []string{}
	}
	if w.TestCases == nil {
		w.TestCases = []TestCase{}
	}

	switch v := q.Variant.(type) {
	case CodingVariant:
		// No extra payload.
	case *MCQVariant:
		w.Options = v.Options
		if w.Options == nil {
			w.Options = []Option{}
		}
	case *TrueFalseVariant:
		w.CorrectOption = &v.CorrectOption
	case *CodeOutputMCQVariant:
		w.CodeSnippet = &v.CodeSnippet
		w.OutputOptions = v.OutputOptions
		if w.OutputOptions == nil {
			w.OutputOptions = []Option{}
		}
	case nil:
		return nil, fmt.Errorf("question %q has no variant", q.ID)
	}

	return json.Marshal(w)
}

// UnmarshalJSON rebuilds the variant payload from the flat wire shape.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	q.ID = w.ID
	q.DifficultyLevel = w.DifficultyLevel
	q.QuestionText = w.QuestionText
	q.CorrectAnswer = w.CorrectAnswer
	q.Topic = w.Topic
	q.Explanation = w.Explanation
	q.Images = w.Images
	q.TestCases = w.TestCases

	switch w.Type {
	case QuestionTypeCoding:
		q.Variant = CodingVariant{}
	case QuestionTypeMCQ:
		opts := w.Options
		if opts == nil {
			opts = []Option{}
		}
		q.Variant = &MCQVariant{Options: opts}
	case QuestionTypeTrueFalse:
		var correct bool
		if w.CorrectOption != nil {
			correct = *w.CorrectOption
		}
		q.Variant = &TrueFalseVariant{CorrectOption: correct}
	case QuestionTypeCodeOutputMCQ:
		var snippet string
		if w.CodeSnippet != nil {
			snippet = *w.CodeSnippet
		}
		opts := w.OutputOptions
		if opts == nil {
			opts = []Option{}
		}
		q.Variant = &CodeOutputMCQVariant{CodeSnippet: snippet, OutputOptions: opts}
	default:
		return fmt.Errorf("unknown question type %q", w.Type)
	}

	return nil
}
