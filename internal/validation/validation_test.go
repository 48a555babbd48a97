package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreate_Valid(t *testing.T) {
	errs := ValidateCreate(decimal.RequireFromString("10.50"), "payroll")
	assert.Empty(t, errs)
}

func TestValidateCreate_ZeroAmount(t *testing.T) {
	errs := ValidateCreate(decimal.Zero, "payroll")

	assert.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].Field)
	assert.Equal(t, "Amount must be greater than 0", errs[0].Message)
}

func TestValidateCreate_NegativeAmount(t *testing.T) {
	errs := ValidateCreate(decimal.RequireFromString("-0.01"), "payroll")

	assert.Len(t, errs, 1)
	assert.Equal(t, "amount: Amount must be greater than 0", errs[0].String())
}

func TestValidateCreate_EmptySource(t *testing.T) {
	errs := ValidateCreate(decimal.RequireFromString("5"), "")

	assert.Len(t, errs, 1)
	assert.Equal(t, "source", errs[0].Field)
	assert.Equal(t, "Source must be between 1 and 255 characters", errs[0].Message)
}

func TestValidateCreate_SourceTooLong(t *testing.T) {
	errs := ValidateCreate(decimal.RequireFromString("5"), strings.Repeat("x", 256))

	assert.Len(t, errs, 1)
	assert.Equal(t, "source", errs[0].Field)
}

func TestValidateCreate_SourceAtBounds(t *testing.T) {
	assert.Empty(t, ValidateCreate(decimal.RequireFromString("5"), "a"))
	assert.Empty(t, ValidateCreate(decimal.RequireFromString("5"), strings.Repeat("x", 255)))
}

func TestValidateCreate_BothInvalid_OrderedAmountFirst(t *testing.T) {
	errs := ValidateCreate(decimal.Zero, "")

	assert.Len(t, errs, 2)
	assert.Equal(t, "amount", errs[0].Field)
	assert.Equal(t, "source", errs[1].Field)
}

func TestValidateUpdate_NothingPresent(t *testing.T) {
	assert.Empty(t, ValidateUpdate(nil, nil))
}

func TestValidateUpdate_ChecksOnlyPresentFields(t *testing.T) {
	badAmount := decimal.Zero
	assert.Len(t, ValidateUpdate(&badAmount, nil), 1)

	goodAmount := decimal.RequireFromString("1")
	badSource := ""
	errs := ValidateUpdate(&goodAmount, &badSource)
	assert.Len(t, errs, 1)
	assert.Equal(t, "source", errs[0].Field)
}

func TestDetails(t *testing.T) {
	assert.Nil(t, Details(nil))

	details := Details([]FieldError{
		{Field: "amount", Message: "Amount must be greater than 0"},
		{Field: "source", Message: "Source must be between 1 and 255 characters"},
	})
	assert.Equal(t, []string{
		"amount: Amount must be greater than 0",
		"source: Source must be between 1 and 255 characters",
	}, details)
}
