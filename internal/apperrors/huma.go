package apperrors

import (
	"net/http"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
)

// huma reports its own failures (bad JSON, unknown fields, missing required
// fields, schema violations on query params) through the huma.NewError hook.
// Replacing it keeps every response on the {error, details} envelope and
// folds huma's 422 into the taxonomy's 400 for structural errors. Server-side
// statuses collapse to Internal so no incidental detail reaches the caller.
func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status >= http.StatusInternalServerError {
			return Internal(joinErrs(errs))
		}
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) == 0 {
			details = nil
		}
		switch status {
		case http.StatusNotFound:
			return NotFound(message)
		default:
			return BadRequestDetails(message, details)
		}
	}
}

func joinErrs(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Schema keeps huma from reflecting over Error's unexported fields when it
// documents error responses.
func (e *Error) Schema(r huma.Registry) *huma.Schema {
	return r.Schema(reflect.TypeOf(errorResponse{}), true, "ErrorResponse")
}
