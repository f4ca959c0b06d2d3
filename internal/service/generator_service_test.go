package service

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/model"
)

func newTestGenerator() *GeneratorService {
	return NewGeneratorService(rand.NewSource(1))
}

func TestGenerateRejectsMissingTopic(t *testing.T) {
	g := newTestGenerator()
	_, err := g.Generate(&GenerateRequest{NumberOfQuestions: 15})
	if !errors.Is(err, ErrInvalidGenerationParams) {
		t.Errorf("err = %v, want ErrInvalidGenerationParams", err)
	}
}

func TestGenerateRejectsCountOutOfBounds(t *testing.T) {
	g := newTestGenerator()
	for _, n := range []int{0, 5, 9, 31, 100} {
		_, err := g.Generate(&GenerateRequest{Topic: "sorting", NumberOfQuestions: n})
		if !errors.Is(err, ErrInvalidGenerationParams) {
			t.Errorf("count %d: err = %v, want ErrInvalidGenerationParams", n, err)
		}
	}
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	g := newTestGenerator()
	_, err := g.Generate(&GenerateRequest{Topic: "sorting", NumberOfQuestions: 15, Type: "essay"})
	if !errors.Is(err, ErrInvalidGenerationParams) {
		t.Errorf("err = %v, want ErrInvalidGenerationParams", err)
	}
}

func TestGenerateBatch(t *testing.T) {
	g := newTestGenerator()
	questions, err := g.Generate(&GenerateRequest{
		Topic:             "recursion",
		Difficulty:        "easy",
		NumberOfQuestions: 15,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 15 {
		t.Fatalf("batch size = %d, want 15", len(questions))
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if q.ID == "" || seen[q.ID] {
			t.Errorf("identifier %q missing or duplicated", q.ID)
		}
		seen[q.ID] = true

		// Type defaults to coding when the request leaves it empty.
		if q.Type() != model.QuestionTypeCoding {
			t.Errorf("type = %q, want coding", q.Type())
		}
		if q.Topic != "recursion" {
			t.Errorf("topic = %q", q.Topic)
		}
		if q.QuestionText.StarterCode == "" || q.CorrectAnswer == "" {
			t.Error("coding question missing starter code or answer")
		}
		if len(q.TestCases) != 2 || !q.TestCases[0].IsDefault {
			t.Errorf("test cases = %+v", q.TestCases)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	g := newTestGenerator()
	for _, n := range []int{MinGeneratedQuestions, MaxGeneratedQuestions} {
		questions, err := g.Generate(&GenerateRequest{Topic: "maps", NumberOfQuestions: n})
		if err != nil {
			t.Fatalf("count %d: %v", n, err)
		}
		if len(questions) != n {
			t.Errorf("count %d: got %d", n, len(questions))
		}
	}
}

func TestGenerateVariantShapes(t *testing.T) {
	g := newTestGenerator()

	mcq, err := g.Generate(&GenerateRequest{Topic: "slices", NumberOfQuestions: 10, Type: model.QuestionTypeMCQ})
	if err != nil {
		t.Fatalf("mcq: %v", err)
	}
	v, ok := mcq[0].Variant.(*model.MCQVariant)
	if !ok {
		t.Fatalf("variant = %T", mcq[0].Variant)
	}
	if len(v.Options) != 4 {
		t.Errorf("options = %d, want 4", len(v.Options))
	}
	correct := 0
	for _, opt := range v.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		t.Errorf("correct options = %d, want 1", correct)
	}

	co, err := g.Generate(&GenerateRequest{Topic: "loops", NumberOfQuestions: 10, Type: model.QuestionTypeCodeOutputMCQ})
	if err != nil {
		t.Fatalf("code-output-mcq: %v", err)
	}
	cv, ok := co[0].Variant.(*model.CodeOutputMCQVariant)
	if !ok {
		t.Fatalf("variant = %T", co[0].Variant)
	}
	if cv.CodeSnippet == "" || len(cv.OutputOptions) != 4 {
		t.Errorf("snippet = %q, options = %d", cv.CodeSnippet, len(cv.OutputOptions))
	}
}

// Generate serves overlapping HTTP requests, so the shared source must
// tolerate concurrent callers. Run with -race.
func TestGenerateConcurrentRequests(t *testing.T) {
	g := newTestGenerator()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				questions, err := g.Generate(&GenerateRequest{
					Topic:             "trees",
					Difficulty:        "easy",
					NumberOfQuestions: MinGeneratedQuestions,
					Type:              model.QuestionTypeTrueFalse,
				})
				if err != nil {
					t.Errorf("Generate: %v", err)
					return
				}
				if len(questions) != MinGeneratedQuestions {
					t.Errorf("batch size = %d", len(questions))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGenerateSubtopicInPrompt(t *testing.T) {
	g := newTestGenerator()
	questions, err := g.Generate(&GenerateRequest{
		Topic:             "graphs",
		Subtopic:          "shortest paths",
		NumberOfQuestions: 10,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	text := questions[0].QuestionText.Text
	if text == "" {
		t.Fatal("empty prompt")
	}
	for _, want := range []string{"shortest paths", "graphs"} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt %q missing %q", text, want)
		}
	}
}
