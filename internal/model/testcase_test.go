package model

import (
	"encoding/json"
	"testing"
)

func TestParseValueLiteral(t *testing.T) {
	cases := []string{"hello", "abc def", "{not json", "[1, 2", ""}
	for _, text := range cases {
		v := ParseValue(text)
		if v.IsStructured() {
			t.Errorf("ParseValue(%q) classified as structured", text)
		}
		if v.Literal() != text {
			t.Errorf("ParseValue(%q).Literal() = %q", text, v.Literal())
		}
	}
}

func TestParseValueStructured(t *testing.T) {
	cases := []string{`[1, 2, 3]`, `{"a": 1}`, `42`, `true`, `null`, `"quoted"`}
	for _, text := range cases {
		v := ParseValue(text)
		if !v.IsStructured() {
			t.Errorf("ParseValue(%q) classified as literal", text)
		}
	}
}

// Structured values keep the typed bytes (Display shows them unchanged) and
// marshalling preserves key order. The encoder compacts whitespace, so the
// wire form is the compact equivalent of the typed text.
func TestParseValueKeepsTypedForm(t *testing.T) {
	text := `{"b": 2,  "a": 1}`
	v := ParseValue(text)

	if got := v.Display(); got != text {
		t.Errorf("Display() = %s, want the typed text %s", got, text)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"b":2,"a":1}` {
		t.Errorf("marshaled form = %s, want key order kept", out)
	}
}

func TestTestValueMarshalLiteral(t *testing.T) {
	v := LiteralValue("plain text")
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"plain text"` {
		t.Errorf("marshaled literal = %s", out)
	}
}

func TestTestValueUnmarshal(t *testing.T) {
	// A JSON string becomes a literal.
	var v TestValue
	if err := json.Unmarshal([]byte(`"hello"`), &v); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if v.IsStructured() || v.Literal() != "hello" {
		t.Errorf("string did not decode to literal %q: %+v", "hello", v)
	}

	// Anything else stays structured.
	if err := json.Unmarshal([]byte(`[1,2,3]`), &v); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if !v.IsStructured() {
		t.Error("array did not decode to structured value")
	}
}

func TestTestValueDisplay(t *testing.T) {
	if got := LiteralValue("abc").Display(); got != "abc" {
		t.Errorf("literal Display() = %q", got)
	}
	if got := ParseValue(`[1, 2]`).Display(); got != `[1, 2]` {
		t.Errorf("structured Display() = %q", got)
	}
}

func TestTestCaseRoundTrip(t *testing.T) {
	tc := TestCase{
		Input:          ParseValue(`[1, 2, 3]`),
		ExpectedOutput: LiteralValue("6"),
		Description:    "sums the list",
		IsDefault:      true,
	}

	raw, err := json.Marshal(tc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got TestCase
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !got.Input.IsStructured() {
		t.Error("input lost its structured form")
	}
	if got.ExpectedOutput.IsStructured() {
		t.Error("expected output gained a structured form")
	}
	if got.ExpectedOutput.Literal() != "6" {
		t.Errorf("expected output = %q", got.ExpectedOutput.Literal())
	}
	if got.Description != tc.Description || got.IsDefault != tc.IsDefault {
		t.Errorf("metadata changed: %+v", got)
	}
}
