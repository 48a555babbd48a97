// Package validation holds the field rules shared by the create and update
// payloads. Checks run only on fields that are present; presence itself is a
// structural concern enforced at the HTTP boundary.
package validation

import (
	"github.com/shopspring/decimal"
)

const (
	amountMessage = "Amount must be greater than 0"
	sourceMessage = "Source must be between 1 and 255 characters"

	sourceMinLen = 1
	sourceMaxLen = 255
)

// FieldError is a single rule violation on a named field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidateCreate checks a full create payload. Both fields are mandatory at
// the deserialization boundary, so they are always checked here.
func ValidateCreate(amount decimal.Decimal, source string) []FieldError {
	var errs []FieldError
	if err := checkAmount(amount); err != nil {
		errs = append(errs, *err)
	}
	if err := checkSource(source); err != nil {
		errs = append(errs, *err)
	}
	return errs
}

// ValidateUpdate checks only the fields present in an update payload.
func ValidateUpdate(amount *decimal.Decimal, source *string) []FieldError {
	var errs []FieldError
	if amount != nil {
		if err := checkAmount(*amount); err != nil {
			errs = append(errs, *err)
		}
	}
	if source != nil {
		if err := checkSource(*source); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

// Details renders violations as "field: message" lines in rule order.
func Details(errs []FieldError) []string {
	if len(errs) == 0 {
		return nil
	}
	details := make([]string, len(errs))
	for i, err := range errs {
		details[i] = err.String()
	}
	return details
}

func checkAmount(amount decimal.Decimal) *FieldError {
	if amount.IsPositive() {
		return nil
	}
	return &FieldError{Field: "amount", Message: amountMessage}
}

func checkSource(source string) *FieldError {
	if len(source) >= sourceMinLen && len(source) <= sourceMaxLen {
		return nil
	}
	return &FieldError{Field: "source", Message: sourceMessage}
}
