package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := ExportFilename(now); got != "templates_2025-03-07.json" {
		t.Errorf("filename = %q", got)
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	s := NewTemplateService(nil, zerolog.Nop())

	for _, doc := range []string{`{"name": "one template"}`, `"just a string"`, `42`, `not json at all`} {
		_, err := s.Import(context.Background(), []byte(doc))
		if !errors.Is(err, ErrImportNotArray) {
			t.Errorf("doc %s: err = %v, want ErrImportNotArray", doc, err)
		}
	}
}

func TestExampleTemplates(t *testing.T) {
	if len(ExampleTemplates) == 0 {
		t.Fatal("no example templates")
	}

	seen := make(map[string]bool)
	for _, tpl := range ExampleTemplates {
		if tpl.ID == "" || seen[tpl.ID] {
			t.Errorf("example id %q missing or duplicated", tpl.ID)
		}
		seen[tpl.ID] = true

		if tpl.Name == "" || tpl.Template == "" {
			t.Errorf("example %s missing name or body", tpl.ID)
		}
		if tpl.Type == "mcq" && !strings.Contains(tpl.Template, "[OPTIONS]") {
			t.Errorf("mcq example %s lacks [OPTIONS]", tpl.ID)
		}
	}
}
