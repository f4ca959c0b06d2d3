package editor

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// MaxImageBytes is the attachment size limit (5 MiB).
const MaxImageBytes = 5 * 1024 * 1024

// ImageSlot selects which image list an attachment belongs to.
type ImageSlot string

const (
	SlotQuestion    ImageSlot = "question"
	SlotExplanation ImageSlot = "explanation"
)

// ParseImageSlot validates a slot name from the request path.
func ParseImageSlot(s string) (ImageSlot, error) {
	switch ImageSlot(s) {
	case SlotQuestion, SlotExplanation:
		return ImageSlot(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownImageSlot, s)
}

func (d *Draft) imageSlot(slot ImageSlot) (*[]string, error) {
	switch slot {
	case SlotQuestion:
		return &d.Question.Images.Question, nil
	case SlotExplanation:
		return &d.Question.Images.Explanation, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImageSlot, slot)
	}
}

// AttachImage validates and appends an uploaded image to the given slot as a
// self-contained base64 data URI. The declared size and MIME type are checked
// before any bytes are read; a failed read leaves the list unchanged.
func (d *Draft) AttachImage(slot ImageSlot, contentType string, size int64, r io.Reader) (string, error) {
	list, err := d.imageSlot(slot)
	if err != nil {
		return "", err
	}

	if size > MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, size, MaxImageBytes)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, contentType)
	}

	// The declared size can lie; cap the read as well.
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageRead, err)
	}
	if int64(len(data)) > MaxImageBytes {
		return "", fmt.Errorf("%w: body larger than declared", ErrImageTooLarge)
	}

	uri := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	*list = append(*list, uri)
	return uri, nil
}

// RemoveImage deletes the image at index from the given slot.
func (d *Draft) RemoveImage(slot ImageSlot, index int) error {
	list, err := d.imageSlot(slot)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*list) {
		return fmt.Errorf("%w: image %d", ErrIndexOutOfRange, index)
	}
	*list = append((*list)[:index:index], (*list)[index+1:]...)
	return nil
}
