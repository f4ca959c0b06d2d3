package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseImageSlot(t *testing.T) {
	for _, name := range []string{"question", "explanation"} {
		slot, err := ParseImageSlot(name)
		if err != nil {
			t.Errorf("ParseImageSlot(%q): %v", name, err)
		}
		if string(slot) != name {
			t.Errorf("slot = %q", slot)
		}
	}
	if _, err := ParseImageSlot("thumbnail"); !errors.Is(err, ErrUnknownImageSlot) {
		t.Errorf("unknown slot err = %v", err)
	}
}

func TestAttachImage(t *testing.T) {
	d := NewBlankDraft()
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a} // PNG magic

	uri, err := d.AttachImage(SlotQuestion, "image/png", int64(len(payload)), bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("AttachImage: %v", err)
	}

	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri = %q", uri)
	}
	if len(d.Question.Images.Question) != 1 || d.Question.Images.Question[0] != uri {
		t.Errorf("question images = %+v", d.Question.Images.Question)
	}
	if len(d.Question.Images.Explanation) != 0 {
		t.Error("attachment leaked into the explanation slot")
	}
}

func TestAttachImageRejectsOversize(t *testing.T) {
	d := NewBlankDraft()

	_, err := d.AttachImage(SlotQuestion, "image/png", MaxImageBytes+1, bytes.NewReader(nil))
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
	if len(d.Question.Images.Question) != 0 {
		t.Error("oversize image was attached")
	}
}

func TestAttachImageRejectsUndersizedDeclaration(t *testing.T) {
	// The declared size passes but the body is over the limit.
	d := NewBlankDraft()
	body := bytes.NewReader(make([]byte, MaxImageBytes+1))

	_, err := d.AttachImage(SlotQuestion, "image/png", 10, body)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestAttachImageRejectsNonImage(t *testing.T) {
	d := NewBlankDraft()

	_, err := d.AttachImage(SlotQuestion, "application/pdf", 4, strings.NewReader("%PDF"))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("err = %v, want ErrUnsupportedImage", err)
	}
}

func TestRemoveImage(t *testing.T) {
	d := NewBlankDraft()
	d.AttachImage(SlotExplanation, "image/png", 1, strings.NewReader("a"))
	d.AttachImage(SlotExplanation, "image/png", 1, strings.NewReader("b"))

	if err := d.RemoveImage(SlotExplanation, 0); err != nil {
		t.Fatalf("RemoveImage: %v", err)
	}
	if len(d.Question.Images.Explanation) != 1 {
		t.Errorf("images after remove = %d", len(d.Question.Images.Explanation))
	}

	if err := d.RemoveImage(SlotExplanation, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out-of-range err = %v", err)
	}
}
