package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Drafts / editing ──────────────────────────────────────────────
	ErrDraftNotFound   ErrCode = "DRAFT_NOT_FOUND"
	ErrDraftInvalid    ErrCode = "DRAFT_VALIDATION_FAILED"
	ErrIndexOutOfRange ErrCode = "INDEX_OUT_OF_RANGE"
	ErrNoOptionSlot    ErrCode = "NO_OPTION_SLOT"
	ErrInvalidJSON     ErrCode = "INVALID_JSON"

	// ─── Templates ─────────────────────────────────────────────────────
	ErrTemplateInvalid ErrCode = "TEMPLATE_VALIDATION_FAILED"
	ErrImportNotArray  ErrCode = "IMPORT_NOT_ARRAY"

	// ─── Generation ────────────────────────────────────────────────────
	ErrGenerationParams ErrCode = "INVALID_GENERATION_PARAMS"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is not valid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The ID format is not valid."
	case ErrInvalidPayload:
		return "The request payload is not valid."

	case ErrNotFound:
		return "The resource was not found."
	case ErrConflict:
		return "The resource already exists."

	case ErrDraftNotFound:
		return "No open draft with that ID. It may have expired."
	case ErrDraftInvalid:
		return "The draft has validation errors and cannot be committed."
	case ErrIndexOutOfRange:
		return "The requested entry does not exist."
	case ErrNoOptionSlot:
		return "This question type has no option list."
	case ErrInvalidJSON:
		return "The document is not valid JSON; the previous state was kept."

	case ErrTemplateInvalid:
		return "The template failed validation."
	case ErrImportNotArray:
		return "The imported file must contain a JSON array of templates."

	case ErrGenerationParams:
		return "Invalid input parameters."

	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Please upload an image file."
	case ErrFileTooLarge:
		return "Image size should be less than 5MB."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
