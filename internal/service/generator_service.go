package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// Generation batch size bounds.
const (
	MinGeneratedQuestions = 10
	MaxGeneratedQuestions = 30
)

// ErrInvalidGenerationParams rejects a request before any generation work.
var ErrInvalidGenerationParams = errors.New("invalid generation parameters")

// GenerateRequest is the payload for a question generation batch.
type GenerateRequest struct {
	Topic             string             `json:"topic"`
	Subtopic          string             `json:"subtopic"`
	Difficulty        string             `json:"difficulty"`
	NumberOfQuestions int                `json:"numberOfQuestions"`
	Type              model.QuestionType `json:"type"`
}

// GeneratorService produces mock question batches. It stands in for the
// external generation collaborator: the shapes are real, the content is
// synthesized from the topic and difficulty.
type GeneratorService struct {
	// mu guards rng. Generate runs on concurrent HTTP requests and a
	// math/rand source is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGeneratorService creates a GeneratorService seeded from src.
func NewGeneratorService(src rand.Source) *GeneratorService {
	return &GeneratorService{rng: rand.New(src)}
}

func (s *GeneratorService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

var difficultyPrefixes = map[string][]string{
	"easy":   {"Explain", "Describe", "List", "Define", "Identify"},
	"medium": {"Compare", "Analyze", "Differentiate", "Evaluate", "Discuss"},
	"hard":   {"Critique", "Synthesize", "Assess", "Propose", "Design"},
}

// questionText synthesizes a prompt from topic, subtopic and difficulty.
func (s *GeneratorService) questionText(topic, subtopic, difficulty string) string {
	prefixes, ok := difficultyPrefixes[difficulty]
	if !ok {
		prefixes = difficultyPrefixes["medium"]
	}
	prefix := prefixes[s.intn(len(prefixes))]

	subject := topic
	if subtopic != "" {
		subject = fmt.Sprintf("%s in context of %s", subtopic, topic)
	}
	return fmt.Sprintf("%s the %s.", prefix, subject)
}

// Generate validates the request and returns a batch of exactly
// NumberOfQuestions mock questions, each with a freshly minted identifier.
// The caller replaces its current question list with the result.
func (s *GeneratorService) Generate(req *GenerateRequest) ([]model.Question, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidGenerationParams)
	}
	if req.NumberOfQuestions < MinGeneratedQuestions || req.NumberOfQuestions > MaxGeneratedQuestions {
		return nil, fmt.Errorf("%w: numberOfQuestions must be between %d and %d",
			ErrInvalidGenerationParams, MinGeneratedQuestions, MaxGeneratedQuestions)
	}

	qType := req.Type
	if qType == "" {
		qType = model.QuestionTypeCoding
	}
	if !qType.Valid() {
		return nil, fmt.Errorf("%w: unknown question type %q", ErrInvalidGenerationParams, req.Type)
	}

	questions := make([]model.Question, req.NumberOfQuestions)
	for i := range questions {
		questions[i] = s.generateOne(req, qType)
	}
	return questions, nil
}

func (s *GeneratorService) generateOne(req *GenerateRequest, qType model.QuestionType) model.Question {
	q := model.Question{
		ID:              uuid.New().String(),
		DifficultyLevel: req.Difficulty,
		QuestionText: model.QuestionText{
			Text: s.questionText(req.Topic, req.Subtopic, req.Difficulty),
		},
		Topic: req.Topic,
		Explanation: model.Explanation{
			Text: fmt.Sprintf("This question tests %s implementation skills at %s level.", req.Topic, req.Difficulty),
		},
		Images:    model.ImageSet{Question: []string{}, Explanation: []string{}},
		TestCases: []model.TestCase{},
	}

	if qType == model.QuestionTypeCoding {
		q.QuestionText.StarterCode = "def solution():\n    # Your code here\n    pass"
		q.CorrectAnswer = "def solution():\n    # Sample solution\n    return True"
		q.TestCases = []model.TestCase{
			{
				Input:          model.LiteralValue("example_input"),
				ExpectedOutput: model.LiteralValue("example_output"),
				Description:    "Default example test case",
				IsDefault:      true,
			},
			{
				Input:          model.ParseValue(`{"data": [1, 2, 3], "operation": "sum"}`),
				ExpectedOutput: model.ParseValue("6"),
				Description:    "Basic operation test",
			},
		}
	}

	switch qType {
	case model.QuestionTypeCoding:
		q.Variant = model.CodingVariant{}
	case model.QuestionTypeMCQ:
		q.Variant = &model.MCQVariant{Options: s.mockOptions([]string{
			"Option A", "Option B", "Option C", "Option D",
		})}
	case model.QuestionTypeTrueFalse:
		q.Variant = &model.TrueFalseVariant{CorrectOption: s.intn(2) == 0}
	case model.QuestionTypeCodeOutputMCQ:
		q.Variant = &model.CodeOutputMCQVariant{
			CodeSnippet: "print(\"Hello, World!\")\nfor i in range(3):\n    print(i)",
			OutputOptions: s.mockOptions([]string{
				"Hello, World!\n0\n1\n2",
				"Hello, World!\n1\n2\n3",
				"Hello\n0\n1\n2",
				"Error",
			}),
		}
	}

	return q
}

// mockOptions builds an option list from labels, flagging the first correct.
func (s *GeneratorService) mockOptions(labels []string) []model.Option {
	options := make([]model.Option, len(labels))
	for i, label := range labels {
		options[i] = model.Option{
			ID:        uuid.New().String(),
			Text:      label,
			IsCorrect: i == 0,
		}
	}
	return options
}
