package model

import "time"

// TemplateType is the kind of question a template produces.
type TemplateType string

const (
	TemplateTypeMCQ       TemplateType = "mcq"
	TemplateTypeOpenEnded TemplateType = "open_ended"
)

// ValidationRules overrides the default template validation when present.
// A template that supplies rules replaces the defaults entirely; an empty
// RequiredVariables list skips the placeholder check altogether.
type ValidationRules struct {
	MinLength         *int     `json:"minLength,omitempty"`
	MaxLength         *int     `json:"maxLength,omitempty"`
	RequiredFields    []string `json:"requiredFields,omitempty"`
	RequiredVariables []string `json:"requiredVariables,omitempty"`
	Pattern           string   `json:"pattern,omitempty"`
}

// QuestionTemplate is a reusable prompt template with [VAR]-style
// placeholders in its body.
type QuestionTemplate struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Type               TemplateType     `json:"type"`
	Template           string           `json:"template"`
	Subject            string           `json:"subject,omitempty"`
	Difficulty         string           `json:"difficulty,omitempty"`
	Category           string           `json:"category,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	Variables          []string         `json:"variables,omitempty"`
	Examples           []string         `json:"examples,omitempty"`
	Description        string           `json:"description,omitempty"`
	IsPublic           bool             `json:"isPublic,omitempty"`
	Language           string           `json:"language,omitempty"`
	FormatInstructions string           `json:"formatInstructions,omitempty"`
	ValidationRules    *ValidationRules `json:"validationRules,omitempty"`
	CreatedAt          time.Time        `json:"createdAt,omitempty"`
	UpdatedAt          time.Time        `json:"updatedAt,omitempty"`
}

// UpsertTemplateRequest is the payload for creating or updating a template.
// Validation beyond binding happens in the template service.
type UpsertTemplateRequest struct {
	Name               string           `json:"name"`
	Type               TemplateType     `json:"type"`
	Template           string           `json:"template"`
	Subject            string           `json:"subject"`
	Difficulty         string           `json:"difficulty"`
	Category           string           `json:"category"`
	Tags               []string         `json:"tags"`
	Variables          []string         `json:"variables"`
	Examples           []string         `json:"examples"`
	Description        string           `json:"description"`
	IsPublic           bool             `json:"isPublic"`
	Language           string           `json:"language"`
	FormatInstructions string           `json:"formatInstructions"`
	ValidationRules    *ValidationRules `json:"validationRules"`
}

// ToTemplate builds the QuestionTemplate a request describes.
func (r *UpsertTemplateRequest) ToTemplate() QuestionTemplate {
	return QuestionTemplate{
		Name:               r.Name,
		Type:               r.Type,
		Template:           r.Template,
		Subject:            r.Subject,
		Difficulty:         r.Difficulty,
		Category:           r.Category,
		Tags:               r.Tags,
		Variables:          r.Variables,
		Examples:           r.Examples,
		Description:        r.Description,
		IsPublic:           r.IsPublic,
		Language:           r.Language,
		FormatInstructions: r.FormatInstructions,
		ValidationRules:    r.ValidationRules,
	}
}
