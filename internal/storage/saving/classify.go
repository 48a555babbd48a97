package saving

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes for constraint failures.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
)

// Classify buckets a backend failure into a FailureClass. It is the only
// place that knows about driver error codes; swapping the backend means
// swapping this implementation.
func (r *Reader) Classify(err error) FailureClass {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return FailureOther
	}

	switch string(pqErr.Code) {
	case codeUniqueViolation:
		return FailureConflict
	case codeForeignKeyViolation:
		return FailureForeignKey
	case codeNotNullViolation:
		return FailureNotNull
	}
	return FailureOther
}
