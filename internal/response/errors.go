package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Resources ─────────────────────────────────────────────────────
	ErrStudentNotFound  ErrCode = "STUDENT_NOT_FOUND"
	ErrCollegeNotFound  ErrCode = "COLLEGE_NOT_FOUND"
	ErrEndpointNotFound ErrCode = "ENDPOINT_NOT_FOUND"

	// ─── Validation ────────────────────────────────────────────────────
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the wire message for a given error code. Messages stay
// generic for server-side failures so store errors never leak to clients.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrStudentNotFound:
		return "Student not found"
	case ErrCollegeNotFound:
		return "College not found"
	case ErrEndpointNotFound:
		return "Endpoint not found"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "Internal server error"
	default:
		return "An unexpected error occurred"
	}
}
