package editor

import "errors"

// Sentinel errors for draft editing operations.
var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrOptionNotFound   = errors.New("option not found")
	ErrNoOptionSlot     = errors.New("question type has no option list")
	ErrInvalidJSON      = errors.New("invalid JSON document")
	ErrUnknownType      = errors.New("unknown question type")
	ErrVariantMismatch  = errors.New("operation does not apply to this question type")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageRead        = errors.New("failed to read image")
	ErrUnknownImageSlot = errors.New("unknown image slot")
)
