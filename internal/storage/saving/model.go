package saving

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Saving is a persisted savings transaction row.
type Saving struct {
	ID        int64           `db:"id"`
	Amount    decimal.Decimal `db:"amount"`
	Source    string          `db:"source"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Create is the input for inserting a new saving. The store assigns the id
// and both timestamps.
type Create struct {
	Amount decimal.Decimal
	Source string
}

// Patch carries the optional fields of a coalesce-update. Unset fields keep
// their stored values; updated_at is refreshed regardless.
type Patch struct {
	Amount omit.Val[decimal.Decimal]
	Source omit.Val[string]
}

// IsEmpty reports whether no field is set.
func (p *Patch) IsEmpty() bool {
	return !p.Amount.IsValue() && !p.Source.IsValue()
}

// Filter bounds a listing. Zero Limit means the caller's default applies
// upstream; rows are always newest first.
type Filter struct {
	Limit  int
	Offset int
}

// FailureClass buckets backend failures so layers above this package never
// depend on driver error codes.
type FailureClass int8

const (
	FailureOther FailureClass = iota
	FailureConflict
	FailureForeignKey
	FailureNotNull
)
