package service

import "github.com/quizforge/quizforge-backend/internal/model"

// ExampleTemplates is the built-in starter set exposed at
// /templates/examples and seeded by cmd/seed-templates.
var ExampleTemplates = []model.QuestionTemplate{
	{
		ID:          "example-1",
		Name:        "Basic Concept MCQ",
		Type:        model.TemplateTypeMCQ,
		Template:    "What is [TOPIC] in the context of [FIELD]?\n[OPTIONS]\nCorrect: [ANSWER]",
		Subject:     "General",
		Difficulty:  "easy",
		Category:    "Concepts",
		Description: "Basic multiple choice question about a concept",
		Variables:   []string{"TOPIC", "FIELD", "OPTIONS", "ANSWER"},
		Examples: []string{
			"What is Machine Learning in the context of Artificial Intelligence?",
			"What is Photosynthesis in the context of Biology?",
		},
		IsPublic:           true,
		FormatInstructions: "Replace [TOPIC] with the main concept, [FIELD] with the subject area, and [OPTIONS] with 4 options A) to D)",
		Language:           "en",
	},
	{
		ID:          "example-2",
		Name:        "Compare and Contrast",
		Type:        model.TemplateTypeOpenEnded,
		Template:    "Compare and contrast [TOPIC1] and [TOPIC2] in terms of their [ASPECT]. Discuss at least three key differences and similarities.",
		Subject:     "Analysis",
		Difficulty:  "medium",
		Category:    "Critical Thinking",
		Description: "Question that requires comparing two related concepts",
		Variables:   []string{"TOPIC1", "TOPIC2", "ASPECT"},
		Examples: []string{
			"Compare and contrast RAM and ROM in terms of their storage characteristics.",
			"Compare and contrast mitosis and meiosis in terms of their cellular processes.",
		},
		IsPublic:           true,
		FormatInstructions: "Replace [TOPIC1] and [TOPIC2] with related concepts, and [ASPECT] with the comparison criteria",
		Language:           "en",
	},
	{
		ID:          "example-3",
		Name:        "Problem-Solving MCQ",
		Type:        model.TemplateTypeMCQ,
		Template:    "Given [SCENARIO], what would be the most appropriate [ACTION] to [GOAL]?\n[OPTIONS]\nCorrect: [ANSWER]",
		Subject:     "Problem Solving",
		Difficulty:  "hard",
		Category:    "Application",
		Description: "Scenario-based multiple choice question",
		Variables:   []string{"SCENARIO", "ACTION", "GOAL", "OPTIONS", "ANSWER"},
		Examples: []string{
			"Given a database with increasing response times, what would be the most appropriate optimization technique to improve performance?",
			"Given a patient with high blood pressure, what would be the most appropriate lifestyle change to reduce cardiovascular risk?",
		},
		IsPublic:           true,
		FormatInstructions: "Replace [SCENARIO] with a practical situation, [ACTION] with a type of solution, and [GOAL] with the desired outcome",
		Language:           "en",
	},
	{
		ID:          "example-4",
		Name:        "Implementation Steps",
		Type:        model.TemplateTypeOpenEnded,
		Template:    "Explain the step-by-step process to implement [TOPIC] in [CONTEXT]. Include any necessary [REQUIREMENTS] and potential challenges.",
		Subject:     "Implementation",
		Difficulty:  "medium",
		Category:    "Practical Application",
		Description: "Question about implementation steps",
		Variables:   []string{"TOPIC", "CONTEXT", "REQUIREMENTS"},
		Examples: []string{
			"Explain the step-by-step process to implement authentication in a web application. Include any necessary security measures and potential challenges.",
			"Explain the step-by-step process to implement a binary search tree. Include any necessary data structures and potential challenges.",
		},
		IsPublic:           true,
		FormatInstructions: "Replace [TOPIC] with the implementation subject, [CONTEXT] with the environment or situation, and [REQUIREMENTS] with specific needs",
		Language:           "en",
	},
	{
		ID:          "example-5",
		Name:        "Best Practice MCQ",
		Type:        model.TemplateTypeMCQ,
		Template:    "Which of the following is the best practice for [TOPIC] when dealing with [SITUATION]?\n[OPTIONS]\nCorrect: [ANSWER]",
		Subject:     "Best Practices",
		Difficulty:  "medium",
		Category:    "Professional Knowledge",
		Description: "Question about recommended approaches",
		Variables:   []string{"TOPIC", "SITUATION", "OPTIONS", "ANSWER"},
		Examples: []string{
			"Which of the following is the best practice for error handling when dealing with asynchronous operations?",
			"Which of the following is the best practice for data backup when dealing with critical systems?",
		},
		IsPublic:           true,
		FormatInstructions: "Replace [TOPIC] with the practice area and [SITUATION] with the specific circumstance",
		Language:           "en",
	},
}
