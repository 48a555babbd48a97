package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Saving represents a savings transaction in the service layer.
type Saving struct {
	ID        int64
	Amount    decimal.Decimal
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSaving is the input for creating a saving. Field rules are checked
// before this reaches the service.
type CreateSaving struct {
	Amount decimal.Decimal
	Source string
}

// SavingPatch carries the optional update fields; unset fields keep their
// stored values.
type SavingPatch struct {
	Amount omit.Val[decimal.Decimal]
	Source omit.Val[string]
}
