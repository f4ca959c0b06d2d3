package model

import (
	"bytes"
	"encoding/json"
)

// TestValue is the value of a test-case input or expected output. It is an
// explicit two-variant value: either a literal string (what the author typed
// when it is not valid JSON) or a structured JSON document (the typed text
// when it parses). The structured case keeps the typed bytes, so Display
// shows exactly what the author typed; the JSON encoder compacts whitespace
// on the wire but keeps key order.
type TestValue struct {
	literal    string
	structured json.RawMessage
}

// LiteralValue returns a TestValue holding text as a plain string.
func LiteralValue(text string) TestValue {
	return TestValue{literal: text}
}

// ParseValue attempts to interpret text as JSON. On success the value is
// structured; on failure it falls back to the literal string. This mirrors
// the form editor, where a cell's representation may flip back and forth as
// the author types.
func ParseValue(text string) TestValue {
	trimmed := bytes.TrimSpace([]byte(text))
	if json.Valid(trimmed) && len(trimmed) > 0 {
		return TestValue{structured: json.RawMessage(trimmed)}
	}
	return TestValue{literal: text}
}

// IsStructured reports whether the value holds parsed JSON rather than a
// literal string.
func (v TestValue) IsStructured() bool {
	return v.structured != nil
}

// Literal returns the literal string. Only meaningful when !IsStructured.
func (v TestValue) Literal() string {
	return v.literal
}

// Structured returns the raw JSON document. Only meaningful when IsStructured.
func (v TestValue) Structured() json.RawMessage {
	return v.structured
}

// Display returns the text an edit cell would show: the literal string as-is,
// or the JSON document for structured values.
func (v TestValue) Display() string {
	if v.IsStructured() {
		return string(v.structured)
	}
	return v.literal
}

// MarshalJSON writes the structured document verbatim, or the literal as a
// JSON string.
func (v TestValue) MarshalJSON() ([]byte, error) {
	if v.IsStructured() {
		return v.structured, nil
	}
	return json.Marshal(v.literal)
}

// UnmarshalJSON classifies incoming values: JSON strings become literals
// (matching what the dashboard stored for non-JSON input), everything else is
// kept structured.
func (v *TestValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = TestValue{literal: s}
		return nil
	}
	keep := make(json.RawMessage, len(trimmed))
	copy(keep, trimmed)
	*v = TestValue{structured: keep}
	return nil
}

// TestCase is one input/expected-output pair on a coding question.
type TestCase struct {
	Input          TestValue `json:"input"`
	ExpectedOutput TestValue `json:"expected_output"`
	Description    string    `json:"description"`
	IsDefault      bool      `json:"is_default"`
}
