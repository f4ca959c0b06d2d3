package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quizforge/quizforge-backend/internal/model"
)

// ValidationResult is the outcome of template validation.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// defaultTemplateRules applies when a template carries no explicit
// validationRules. An explicit rules object replaces these entirely.
var defaultTemplateRules = model.ValidationRules{
	MinLength:         intPtr(10),
	MaxLength:         intPtr(1000),
	RequiredFields:    []string{"name", "template", "type"},
	RequiredVariables: []string{"TOPIC"},
}

func intPtr(n int) *int { return &n }

// templateField resolves a required-field name to its value for the presence
// check. Unknown field names read as empty and therefore fail the check.
func templateField(t *model.QuestionTemplate, field string) string {
	switch field {
	case "name":
		return t.Name
	case "template":
		return t.Template
	case "type":
		return string(t.Type)
	case "subject":
		return t.Subject
	case "difficulty":
		return t.Difficulty
	case "category":
		return t.Category
	case "description":
		return t.Description
	case "language":
		return t.Language
	default:
		return ""
	}
}

// ValidateTemplate checks a template against its validation rules, falling
// back to the defaults when it has none. Ordered, human-readable errors;
// an empty list means valid.
//
// mcq templates must contain the [OPTIONS] placeholder regardless of which
// rule set applies. A malformed pattern regex becomes a validation error
// rather than a fault.
func ValidateTemplate(t *model.QuestionTemplate) ValidationResult {
	var errs []string

	rules := t.ValidationRules
	if rules == nil {
		rules = &defaultTemplateRules
	}

	for _, field := range rules.RequiredFields {
		if strings.TrimSpace(templateField(t, field)) == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field))
		}
	}

	if rules.MinLength != nil && len(t.Template) < *rules.MinLength {
		errs = append(errs, fmt.Sprintf("Template must be at least %d characters long", *rules.MinLength))
	}
	if rules.MaxLength != nil && len(t.Template) > *rules.MaxLength {
		errs = append(errs, fmt.Sprintf("Template must not exceed %d characters", *rules.MaxLength))
	}

	for _, variable := range rules.RequiredVariables {
		if !strings.Contains(t.Template, "["+variable+"]") {
			errs = append(errs, fmt.Sprintf("Template must include [%s] variable", variable))
		}
	}

	if rules.Pattern != "" && t.Template != "" {
		re, err := regexp.Compile(rules.Pattern)
		if err != nil {
			errs = append(errs, "Template validation pattern is not a valid regular expression")
		} else if !re.MatchString(t.Template) {
			errs = append(errs, "Template format is invalid")
		}
	}

	if t.Type == model.TemplateTypeMCQ && !strings.Contains(t.Template, "[OPTIONS]") {
		errs = append(errs, "Multiple choice templates must include [OPTIONS] placeholder")
	}

	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// placeholderPattern matches [NAME]-style placeholders in a template body.
var placeholderPattern = regexp.MustCompile(`\[([A-Z][A-Z0-9_]*)\]`)

// RenderTemplate substitutes placeholder values into a template body.
// Placeholders without a value are left intact so a partial preview still
// shows what remains to fill in.
func RenderTemplate(body string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}
