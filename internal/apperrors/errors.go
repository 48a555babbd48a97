package apperrors

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Kind is the closed set of failure classes the service can report.
type Kind uint8

const (
	KindValidationFailed Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindForeignKeyViolation
	KindMissingRequiredField
	KindStoreUnavailable
	KindInternal
)

// Error is the single error type crossing the service boundary. The kind
// decides the HTTP status and the user-facing message; the cause is kept for
// logging and is never serialized.
type Error struct {
	kind    Kind
	message string
	details []string
	cause   error
}

// ValidationFailed reports one or more field rule violations.
// Details are "field: message" strings, already ordered.
func ValidationFailed(details []string) *Error {
	return &Error{kind: KindValidationFailed, details: details}
}

// BadRequest reports a malformed business request with a literal message.
func BadRequest(message string) *Error {
	return &Error{kind: KindBadRequest, message: message}
}

// BadRequestDetails is BadRequest with structural detail lines, used for
// deserialization failures where each violation is worth reporting.
func BadRequestDetails(message string, details []string) *Error {
	return &Error{kind: KindBadRequest, message: message, details: details}
}

// NotFound reports a missing entity with a literal message.
func NotFound(message string) *Error {
	return &Error{kind: KindNotFound, message: message}
}

// Conflict reports a backend uniqueness violation.
func Conflict(cause error) *Error {
	return &Error{kind: KindConflict, cause: cause}
}

// ForeignKeyViolation reports a backend referential integrity violation.
func ForeignKeyViolation(cause error) *Error {
	return &Error{kind: KindForeignKeyViolation, cause: cause}
}

// MissingRequiredField reports a backend not-null violation.
func MissingRequiredField(cause error) *Error {
	return &Error{kind: KindMissingRequiredField, cause: cause}
}

// StoreUnavailable reports any other backend failure.
func StoreUnavailable(cause error) *Error {
	return &Error{kind: KindStoreUnavailable, cause: cause}
}

// Internal reports a failure the taxonomy did not anticipate.
func Internal(cause error) *Error {
	return &Error{kind: KindInternal, cause: cause}
}

// WithCause returns a copy carrying the given cause for logging.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

// Kind returns the failure class.
func (e *Error) Kind() Kind { return e.kind }

// Details returns the "field: message" lines, if any.
func (e *Error) Details() []string { return e.details }

func (e *Error) Unwrap() error { return e.cause }

// Error renders the full internal detail, cause included. This is what lands
// in logs; the wire form comes from MarshalJSON.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.UserMessage())
	if len(e.details) > 0 {
		b.WriteString(" [" + strings.Join(e.details, "; ") + "]")
	}
	if e.cause != nil {
		b.WriteString(": " + e.cause.Error())
	}
	return b.String()
}

// GetStatus maps the kind to its fixed HTTP status. It satisfies huma's
// StatusError so handlers can return *Error directly.
func (e *Error) GetStatus() int {
	switch e.kind {
	case KindValidationFailed, KindBadRequest, KindForeignKeyViolation, KindMissingRequiredField:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStoreUnavailable, KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// UserMessage is the fixed external message for the kind. BadRequest and
// NotFound carry literal messages; everything else is a canned string so
// backend detail never leaks.
func (e *Error) UserMessage() string {
	switch e.kind {
	case KindValidationFailed:
		return "Validation failed"
	case KindBadRequest, KindNotFound:
		return e.message
	case KindConflict:
		return "A record with this information already exists"
	case KindForeignKeyViolation:
		return "Referenced resource does not exist"
	case KindMissingRequiredField:
		return "Required field is missing"
	case KindStoreUnavailable:
		return "Database operation failed"
	}
	return "An internal error occurred"
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// MarshalJSON produces the wire envelope: {"error": ..., "details": [...]}.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorResponse{
		Error:   e.UserMessage(),
		Details: e.details,
	})
}
